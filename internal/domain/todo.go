package domain

import "github.com/google/uuid"

// Todo is the domain entity: business truth, independent of gin and Postgres.
// Fields are unexported so completion only changes through MarkCompleted and
// MarkIncomplete.
type Todo struct {
	id          uuid.UUID
	title       string
	description *string
	completed   bool
}

// NewTodo creates an incomplete todo with a fresh time-ordered id.
// An empty title is a programming error and panics.
func NewTodo(title string, description *string) Todo {
	mustTitle(title)
	return Todo{
		id:          newID(),
		title:       title,
		description: cloneString(description),
	}
}

// ReconstructTodo rehydrates a todo from storage exactly as it was persisted.
func ReconstructTodo(id uuid.UUID, title string, description *string, completed bool) Todo {
	if id == uuid.Nil {
		panic("domain: todo id is required")
	}
	mustTitle(title)
	return Todo{
		id:          id,
		title:       title,
		description: cloneString(description),
		completed:   completed,
	}
}

func (t Todo) ID() uuid.UUID   { return t.id }
func (t Todo) Title() string   { return t.title }
func (t Todo) Completed() bool { return t.completed }

// Description returns a copy; nil means no description.
func (t Todo) Description() *string { return cloneString(t.description) }

// MarkCompleted moves the todo to the completed state.
func (t *Todo) MarkCompleted() error {
	if t.completed {
		return &AlreadyCompletedError{ID: t.id}
	}
	t.completed = true
	return nil
}

// MarkIncomplete moves a completed todo back to incomplete.
func (t *Todo) MarkIncomplete() error {
	if !t.completed {
		return &NotCompletedError{ID: t.id}
	}
	t.completed = false
	return nil
}

// Update replaces title and description. Completion state is kept.
func (t *Todo) Update(title string, description *string) {
	mustTitle(title)
	t.title = title
	t.description = cloneString(description)
}

func newID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		panic("domain: generate todo id: " + err.Error())
	}
	return id
}

func mustTitle(title string) {
	if title == "" {
		panic("domain: todo title is required")
	}
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
