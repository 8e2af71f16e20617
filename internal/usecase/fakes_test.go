package usecase

import (
	"context"
	"errors"
	"maps"

	dom "github.com/ikedadada/start-ddd-and-clean-architecture/internal/domain"
	"github.com/ikedadada/start-ddd-and-clean-architecture/internal/repo"

	"github.com/google/uuid"
)

var (
	errSave    = errors.New("save error")
	errFind    = errors.New("find error")
	errFindAll = errors.New("findAll error")
	errDelete  = errors.New("delete error")
	errTx      = errors.New("tx error")
)

type fakeTodoRepo struct {
	store map[uuid.UUID]dom.Todo

	saveErr    error
	findErr    error
	findAllErr error
	deleteErr  error

	calls struct {
		save, find, findAll, delete int
	}
}

var _ repo.TodoRepo = (*fakeTodoRepo)(nil)

func newFakeRepo(todos ...dom.Todo) *fakeTodoRepo {
	f := &fakeTodoRepo{store: make(map[uuid.UUID]dom.Todo)}
	for _, t := range todos {
		f.store[t.ID()] = t
	}
	return f
}

func (f *fakeTodoRepo) FindAll(context.Context) ([]dom.Todo, error) {
	f.calls.findAll++
	if f.findAllErr != nil {
		return nil, f.findAllErr
	}
	out := make([]dom.Todo, 0, len(f.store))
	for _, t := range f.store {
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeTodoRepo) FindByID(_ context.Context, id uuid.UUID) (dom.Todo, error) {
	f.calls.find++
	if f.findErr != nil {
		return dom.Todo{}, f.findErr
	}
	t, ok := f.store[id]
	if !ok {
		return dom.Todo{}, &dom.NotFoundError{ID: id}
	}
	return t, nil
}

func (f *fakeTodoRepo) Save(_ context.Context, t dom.Todo) error {
	f.calls.save++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.store[t.ID()] = t
	return nil
}

func (f *fakeTodoRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.calls.delete++
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.store, id)
	return nil
}

// fakeTx restores the repo's store when the unit of work fails.
type fakeTx struct {
	repo   *fakeTodoRepo
	retErr error
	runs   int
}

var _ repo.Transactor = (*fakeTx)(nil)

func (f *fakeTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	f.runs++
	if f.retErr != nil {
		return f.retErr
	}
	snapshot := maps.Clone(f.repo.store)
	if err := fn(ctx); err != nil {
		f.repo.store = snapshot
		return err
	}
	return nil
}

func strPtr(s string) *string { return &s }
