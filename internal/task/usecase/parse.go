package usecase

import (
	"context"
	"strings"

	"github.com/ayushgupta5924/quickbucks/internal/task"
)

// Parse runs the language parser over free text without persisting anything.
// The caller previews the draft and decides whether to create the task.
func (uc *implUseCase) Parse(ctx context.Context, input task.ParseTaskInput) (task.ParseTaskOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return task.ParseTaskOutput{}, task.ErrEmptyInput
	}

	draft := uc.ext.Extract(uc.now(), input.Text)
	return task.ParseTaskOutput{Draft: draft}, nil
}
