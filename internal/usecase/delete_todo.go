package usecase

import (
	"context"

	"github.com/ikedadada/start-ddd-and-clean-architecture/internal/repo"

	"github.com/google/uuid"
)

// DeleteTodo removes a todo after checking it exists, so a missing id
// surfaces as *dom.NotFoundError.
type DeleteTodo struct {
	repo repo.TodoRepo
	tx   repo.Transactor
}

func NewDeleteTodo(r repo.TodoRepo, tx repo.Transactor) *DeleteTodo {
	return &DeleteTodo{repo: r, tx: tx}
}

func (u *DeleteTodo) Execute(ctx context.Context, id uuid.UUID) error {
	return u.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := u.repo.FindByID(ctx, id); err != nil {
			return err
		}
		return u.repo.Delete(ctx, id)
	})
}
