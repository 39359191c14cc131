package analytics

import (
	"context"

	"github.com/ayushgupta5924/quickbucks/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Read-only reporting over the caller's task history
	Stats(ctx context.Context, sc model.Scope) (StatsOutput, error)
	Insights(ctx context.Context, sc model.Scope) (InsightsOutput, error)
	Patterns(ctx context.Context, sc model.Scope) (PatternsOutput, error)
}
