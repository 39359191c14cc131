package http

import (
	"github.com/ayushgupta5924/quickbucks/internal/analytics"
	"github.com/ayushgupta5924/quickbucks/pkg/log"
)

type handler struct {
	l  log.Logger
	uc analytics.UseCase
}

// New creates a new HTTP handler for the analytics domain.
func New(l log.Logger, uc analytics.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
