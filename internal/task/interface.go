package task

import (
	"context"

	"github.com/ayushgupta5924/quickbucks/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Task lifecycle
	Create(ctx context.Context, sc model.Scope, input CreateTaskInput) (CreateTaskOutput, error)
	Parse(ctx context.Context, input ParseTaskInput) (ParseTaskOutput, error)
	List(ctx context.Context, sc model.Scope, input ListTasksInput) (ListTasksOutput, error)
	Complete(ctx context.Context, sc model.Scope, id string) (CompleteTaskOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
}
