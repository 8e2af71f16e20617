package usecase

import (
	"context"

	dom "github.com/ikedadada/start-ddd-and-clean-architecture/internal/domain"
	"github.com/ikedadada/start-ddd-and-clean-architecture/internal/repo"

	"github.com/google/uuid"
)

type GetTodo struct {
	repo repo.TodoRepo
}

func NewGetTodo(r repo.TodoRepo) *GetTodo {
	return &GetTodo{repo: r}
}

func (u *GetTodo) Execute(ctx context.Context, id uuid.UUID) (dom.Todo, error) {
	return u.repo.FindByID(ctx, id)
}

type GetAllTodos struct {
	repo repo.TodoRepo
}

func NewGetAllTodos(r repo.TodoRepo) *GetAllTodos {
	return &GetAllTodos{repo: r}
}

func (u *GetAllTodos) Execute(ctx context.Context) ([]dom.Todo, error) {
	return u.repo.FindAll(ctx)
}
