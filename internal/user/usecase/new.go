package usecase

import (
	"github.com/ayushgupta5924/quickbucks/internal/user/repository"
	"github.com/ayushgupta5924/quickbucks/pkg/log"
	"github.com/ayushgupta5924/quickbucks/pkg/scope"
)

// implUseCase is the private implementation of user.UseCase.
type implUseCase struct {
	repo       repository.Repository
	jwtManager scope.Manager
	l          log.Logger
}

// New creates a new user UseCase implementation.
func New(repo repository.Repository, jwtManager scope.Manager, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:       repo,
		jwtManager: jwtManager,
		l:          l,
	}
}
