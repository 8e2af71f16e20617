package usecase

import (
	"context"

	dom "github.com/ikedadada/start-ddd-and-clean-architecture/internal/domain"
	"github.com/ikedadada/start-ddd-and-clean-architecture/internal/repo"

	"github.com/google/uuid"
)

// MarkCompleted completes a todo. Completing twice returns
// *dom.AlreadyCompletedError and nothing is saved.
type MarkCompleted struct {
	repo repo.TodoRepo
	tx   repo.Transactor
}

func NewMarkCompleted(r repo.TodoRepo, tx repo.Transactor) *MarkCompleted {
	return &MarkCompleted{repo: r, tx: tx}
}

func (u *MarkCompleted) Execute(ctx context.Context, id uuid.UUID) (dom.Todo, error) {
	return transition(ctx, u.repo, u.tx, id, (*dom.Todo).MarkCompleted)
}

// MarkIncomplete reopens a completed todo. Reopening an incomplete todo
// returns *dom.NotCompletedError and nothing is saved.
type MarkIncomplete struct {
	repo repo.TodoRepo
	tx   repo.Transactor
}

func NewMarkIncomplete(r repo.TodoRepo, tx repo.Transactor) *MarkIncomplete {
	return &MarkIncomplete{repo: r, tx: tx}
}

func (u *MarkIncomplete) Execute(ctx context.Context, id uuid.UUID) (dom.Todo, error) {
	return transition(ctx, u.repo, u.tx, id, (*dom.Todo).MarkIncomplete)
}

func transition(ctx context.Context, r repo.TodoRepo, tx repo.Transactor, id uuid.UUID, apply func(*dom.Todo) error) (dom.Todo, error) {
	return repo.InTx(ctx, tx, func(ctx context.Context) (dom.Todo, error) {
		t, err := r.FindByID(ctx, id)
		if err != nil {
			return dom.Todo{}, err
		}
		if err := apply(&t); err != nil {
			return dom.Todo{}, err
		}
		if err := r.Save(ctx, t); err != nil {
			return dom.Todo{}, err
		}
		return t, nil
	})
}
