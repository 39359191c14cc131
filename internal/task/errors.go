package task

import "errors"

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrAlreadyCompleted = errors.New("task already completed")
	ErrEmptyInput       = errors.New("input text is empty")
)
