package usecase

import (
	"context"

	"github.com/ayushgupta5924/quickbucks/internal/model"
	"github.com/ayushgupta5924/quickbucks/internal/task"
	repo "github.com/ayushgupta5924/quickbucks/internal/task/repository"
)

// Delete permanently removes a task within the user scope.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	deleted, err := uc.repo.DeleteTask(ctx, repo.DeleteTaskOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}
	if !deleted {
		return task.ErrTaskNotFound
	}
	return nil
}
