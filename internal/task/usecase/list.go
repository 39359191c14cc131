package usecase

import (
	"context"

	"github.com/ayushgupta5924/quickbucks/internal/model"
	"github.com/ayushgupta5924/quickbucks/internal/task"
	repo "github.com/ayushgupta5924/quickbucks/internal/task/repository"
)

// List returns a paginated slice of the user's tasks, newest first.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListTasksInput) (task.ListTasksOutput, error) {
	tasks, total, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		UserID:    sc.UserID,
		Completed: input.Completed,
		Category:  input.Category,
		Limit:     input.Limit,
		Offset:    input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListTasksOutput{}, err
	}

	return task.ListTasksOutput{
		Tasks:  tasks,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}
