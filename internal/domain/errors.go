package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrAlreadyCompleted = errors.New("todo is already completed")
	ErrNotCompleted     = errors.New("todo is not completed")
	ErrNotFound         = errors.New("todo not found")
)

// AlreadyCompletedError is returned by MarkCompleted on a completed todo.
type AlreadyCompletedError struct {
	ID uuid.UUID
}

func (e *AlreadyCompletedError) Error() string {
	return fmt.Sprintf("todo %s is already completed", e.ID)
}

func (e *AlreadyCompletedError) Is(target error) bool { return target == ErrAlreadyCompleted }

// NotCompletedError is returned by MarkIncomplete on an incomplete todo.
type NotCompletedError struct {
	ID uuid.UUID
}

func (e *NotCompletedError) Error() string {
	return fmt.Sprintf("todo %s is not completed", e.ID)
}

func (e *NotCompletedError) Is(target error) bool { return target == ErrNotCompleted }

// NotFoundError is returned by repositories when no todo has the given id.
type NotFoundError struct {
	ID uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("todo %s not found", e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }
