package usecase

import (
	"time"

	"github.com/ayushgupta5924/quickbucks/internal/extractor"
	"github.com/ayushgupta5924/quickbucks/internal/task/repository"
	userrepo "github.com/ayushgupta5924/quickbucks/internal/user/repository"
	"github.com/ayushgupta5924/quickbucks/pkg/log"
)

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	repo     repository.Repository
	userRepo userrepo.Repository
	ext      *extractor.Extractor
	l        log.Logger
	now      func() time.Time
}

// New creates a new task UseCase implementation.
func New(repo repository.Repository, userRepo userrepo.Repository, ext *extractor.Extractor, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:     repo,
		userRepo: userRepo,
		ext:      ext,
		l:        l,
		now:      time.Now,
	}
}
