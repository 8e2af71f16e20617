package repo

import (
	"context"
	"errors"
	"fmt"

	dom "github.com/ikedadada/start-ddd-and-clean-architecture/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TodoRepo is the persistence contract the usecases depend on.
type TodoRepo interface {
	FindAll(ctx context.Context) ([]dom.Todo, error)
	// FindByID returns *dom.NotFoundError when no todo has id.
	FindByID(ctx context.Context, id uuid.UUID) (dom.Todo, error)
	// Save inserts the todo or overwrites its mutable fields.
	Save(ctx context.Context, t dom.Todo) error
	// Delete removes the todo; a missing id is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}

type PGTodoRepo struct {
	db *pgxpool.Pool
}

func NewPGTodoRepo(db *pgxpool.Pool) *PGTodoRepo {
	return &PGTodoRepo{db: db}
}

func (r *PGTodoRepo) FindAll(ctx context.Context) ([]dom.Todo, error) {
	query := `
		SELECT id, title, description, completed
		FROM todos ORDER BY id`
	rows, err := conn(ctx, r.db).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query todos: %w", err)
	}
	defer rows.Close()
	list := make([]dom.Todo, 0)
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, fmt.Errorf("scan todo: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *PGTodoRepo) FindByID(ctx context.Context, id uuid.UUID) (dom.Todo, error) {
	query := `
		SELECT id, title, description, completed
		FROM todos WHERE id = $1`
	t, err := scanTodo(conn(ctx, r.db).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Todo{}, &dom.NotFoundError{ID: id}
		}
		return dom.Todo{}, fmt.Errorf("get todo %s: %w", id, err)
	}
	return t, nil
}

func (r *PGTodoRepo) Save(ctx context.Context, t dom.Todo) error {
	query := `
		INSERT INTO todos (id, title, description, completed)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			completed = EXCLUDED.completed,
			updated_at = NOW()`
	_, err := conn(ctx, r.db).Exec(ctx, query, t.ID(), t.Title(), t.Description(), t.Completed())
	if err != nil {
		return fmt.Errorf("save todo %s: %w", t.ID(), err)
	}
	return nil
}

func (r *PGTodoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := conn(ctx, r.db).Exec(ctx, `DELETE FROM todos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete todo %s: %w", id, err)
	}
	return nil
}

func scanTodo(row pgx.Row) (dom.Todo, error) {
	var (
		id          uuid.UUID
		title       string
		description *string
		completed   bool
	)
	if err := row.Scan(&id, &title, &description, &completed); err != nil {
		return dom.Todo{}, err
	}
	return dom.ReconstructTodo(id, title, description, completed), nil
}
