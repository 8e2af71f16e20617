package usecase

import (
	"context"

	dom "github.com/ikedadada/start-ddd-and-clean-architecture/internal/domain"
	"github.com/ikedadada/start-ddd-and-clean-architecture/internal/repo"

	"github.com/google/uuid"
)

type UpdateTodoInput struct {
	ID          uuid.UUID
	Title       string
	Description *string
}

// UpdateTodo replaces title and description of an existing todo.
type UpdateTodo struct {
	repo repo.TodoRepo
	tx   repo.Transactor
}

func NewUpdateTodo(r repo.TodoRepo, tx repo.Transactor) *UpdateTodo {
	return &UpdateTodo{repo: r, tx: tx}
}

func (u *UpdateTodo) Execute(ctx context.Context, in UpdateTodoInput) (dom.Todo, error) {
	return repo.InTx(ctx, u.tx, func(ctx context.Context) (dom.Todo, error) {
		t, err := u.repo.FindByID(ctx, in.ID)
		if err != nil {
			return dom.Todo{}, err
		}
		t.Update(in.Title, in.Description)
		if err := u.repo.Save(ctx, t); err != nil {
			return dom.Todo{}, err
		}
		return t, nil
	})
}
