package repo

import (
	"context"
	"testing"

	dom "github.com/ikedadada/start-ddd-and-clean-architecture/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestPGTodoRepo_SaveAndFind(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description *string
	}{
		{name: "with description", title: "title1", description: strPtr("hello")},
		{name: "without description", title: "title2", description: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewPGTodoRepo(newTestPool(t))
			ctx := context.Background()

			todo := dom.NewTodo(tt.title, tt.description)
			require.NoError(t, r.Save(ctx, todo))

			got, err := r.FindByID(ctx, todo.ID())
			require.NoError(t, err)
			assert.Equal(t, todo, got)
		})
	}
}

func TestPGTodoRepo_SaveUpserts(t *testing.T) {
	r := NewPGTodoRepo(newTestPool(t))
	ctx := context.Background()

	todo := dom.NewTodo("before", strPtr("d"))
	require.NoError(t, r.Save(ctx, todo))

	todo.Update("after", nil)
	require.NoError(t, todo.MarkCompleted())
	require.NoError(t, r.Save(ctx, todo))
	require.NoError(t, r.Save(ctx, todo), "save must be idempotent")

	got, err := r.FindByID(ctx, todo.ID())
	require.NoError(t, err)
	assert.Equal(t, "after", got.Title())
	assert.Nil(t, got.Description())
	assert.True(t, got.Completed())

	list, err := r.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestPGTodoRepo_FindByIDNotFound(t *testing.T) {
	r := NewPGTodoRepo(newTestPool(t))
	id := uuid.New()

	_, err := r.FindByID(context.Background(), id)

	require.ErrorIs(t, err, dom.ErrNotFound)
	var nf *dom.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, id, nf.ID)
}

func TestPGTodoRepo_FindAll(t *testing.T) {
	t.Run("ordered by creation", func(t *testing.T) {
		r := NewPGTodoRepo(newTestPool(t))
		ctx := context.Background()
		first := dom.NewTodo("a", nil)
		second := dom.NewTodo("b", strPtr("d2"))
		require.NoError(t, r.Save(ctx, second))
		require.NoError(t, r.Save(ctx, first))

		list, err := r.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, first.ID(), list[0].ID())
		assert.Equal(t, second.ID(), list[1].ID())
	})

	t.Run("empty", func(t *testing.T) {
		r := NewPGTodoRepo(newTestPool(t))
		list, err := r.FindAll(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, list)
		assert.Empty(t, list)
	})
}

func TestPGTodoRepo_Delete(t *testing.T) {
	t.Run("existing", func(t *testing.T) {
		r := NewPGTodoRepo(newTestPool(t))
		ctx := context.Background()
		todo := dom.NewTodo("t", nil)
		require.NoError(t, r.Save(ctx, todo))

		require.NoError(t, r.Delete(ctx, todo.ID()))

		_, err := r.FindByID(ctx, todo.ID())
		assert.ErrorIs(t, err, dom.ErrNotFound)
	})

	t.Run("missing is a no-op", func(t *testing.T) {
		r := NewPGTodoRepo(newTestPool(t))
		assert.NoError(t, r.Delete(context.Background(), uuid.New()))
	})
}
