package http

import (
	"github.com/ayushgupta5924/quickbucks/internal/task"
	"github.com/ayushgupta5924/quickbucks/pkg/log"
)

type handler struct {
	l  log.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
