package usecase

import (
	"context"

	dom "github.com/ikedadada/start-ddd-and-clean-architecture/internal/domain"
	"github.com/ikedadada/start-ddd-and-clean-architecture/internal/repo"
)

type CreateTodoInput struct {
	Title       string
	Description *string
}

// CreateTodo stores a new todo. A single write needs no transaction.
type CreateTodo struct {
	repo repo.TodoRepo
}

func NewCreateTodo(r repo.TodoRepo) *CreateTodo {
	return &CreateTodo{repo: r}
}

func (u *CreateTodo) Execute(ctx context.Context, in CreateTodoInput) (dom.Todo, error) {
	t := dom.NewTodo(in.Title, in.Description)
	if err := u.repo.Save(ctx, t); err != nil {
		return dom.Todo{}, err
	}
	return t, nil
}
