package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/ayushgupta5924/quickbucks/internal/model"
	"github.com/ayushgupta5924/quickbucks/internal/task"
	repo "github.com/ayushgupta5924/quickbucks/internal/task/repository"
)

// Create builds a TaskDraft (via the language parser when natural input is
// given), applies explicit field overrides and persists the new task.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateTaskInput) (task.CreateTaskOutput, error) {
	draft := uc.buildDraft(input)
	if strings.TrimSpace(draft.Title) == "" {
		return task.CreateTaskOutput{}, task.ErrEmptyInput
	}

	created, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		ID:       uuid.NewString(),
		UserID:   sc.UserID,
		Title:    draft.Title,
		Category: draft.Category,
		Priority: draft.Priority,
		Reward:   draft.Reward,
		DueDate:  draft.DueDate,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.CreateTaskOutput{}, err
	}

	return task.CreateTaskOutput{Task: created}, nil
}

// buildDraft merges the parsed draft with explicitly provided fields.
// Explicit fields always win over extracted ones.
func (uc *implUseCase) buildDraft(input task.CreateTaskInput) model.TaskDraft {
	var draft model.TaskDraft
	if strings.TrimSpace(input.NaturalInput) != "" {
		draft = uc.ext.Extract(uc.now(), input.NaturalInput)
	} else {
		draft.Title = strings.TrimSpace(input.Title)
		draft.Category = model.CategoryOther
		draft.Priority = model.PriorityMedium
	}

	if strings.TrimSpace(input.Title) != "" {
		draft.Title = strings.TrimSpace(input.Title)
	}
	if input.Category != "" {
		draft.Category = model.ParseCategory(input.Category)
	}
	if input.Priority != "" {
		draft.Priority = model.ParsePriority(input.Priority)
	}
	if input.Reward > 0 {
		draft.Reward = input.Reward
	}
	if input.DueDate != nil {
		draft.DueDate = input.DueDate
	}

	return draft
}
