package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/ayushgupta5924/quickbucks/internal/insight"
	"github.com/ayushgupta5924/quickbucks/internal/model"
	taskrepo "github.com/ayushgupta5924/quickbucks/internal/task/repository"
	"github.com/ayushgupta5924/quickbucks/pkg/log"
)

const defaultCacheTTL = 5 * time.Minute

// implUseCase is the private implementation of analytics.UseCase.
type implUseCase struct {
	taskRepo taskrepo.Repository
	engine   *insight.Engine
	cache    *expirable.LRU[string, []model.Insight]
	l        log.Logger
	now      func() time.Time
}

// New creates a new analytics UseCase implementation. Generated insights are
// cached per user for cacheTTL, so a burst of dashboard refreshes does not
// recompute the whole analysis each time.
func New(taskRepo taskrepo.Repository, engine *insight.Engine, cacheTTL time.Duration, l log.Logger) *implUseCase {
	if cacheTTL <= 0 {
		cacheTTL = defaultCacheTTL
	}
	return &implUseCase{
		taskRepo: taskRepo,
		engine:   engine,
		cache:    expirable.NewLRU[string, []model.Insight](1000, nil, cacheTTL),
		l:        l,
		now:      time.Now,
	}
}
