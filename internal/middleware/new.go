package middleware

import (
	"github.com/ayushgupta5924/quickbucks/config"
	"github.com/ayushgupta5924/quickbucks/pkg/log"
	"github.com/ayushgupta5924/quickbucks/pkg/scope"
)

type Middleware struct {
	l          log.Logger
	jwtManager scope.Manager
	config     *config.Config
	limiter    *rateLimiter
}

func New(l log.Logger, jwtManager scope.Manager, cfg *config.Config) Middleware {
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
		config:     cfg,
		limiter:    newRateLimiter(defaultRequestsPerMin),
	}
}
