package notes

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evgeniy-krivenko/web-notes/internal/entity"
)

type memRepo struct {
	mu     sync.Mutex
	nextID int64
	notes  map[int64]entity.Note
	err    error
}

func newMemRepo() *memRepo {
	return &memRepo{notes: make(map[int64]entity.Note)}
}

func (r *memRepo) CreateNote(_ context.Context, userID int64, data string, date time.Time) (entity.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil {
		return entity.Note{}, r.err
	}

	r.nextID++
	n := entity.Note{ID: r.nextID, UserID: userID, Data: data, Date: date}
	r.notes[n.ID] = n
	return n, nil
}

func (r *memRepo) GetNote(_ context.Context, id int64) (entity.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.notes[id]
	if !ok {
		return entity.Note{}, entity.ErrNoteNotFound
	}
	return n, nil
}

func (r *memRepo) GetNotesByUserID(_ context.Context, userID int64) ([]entity.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []entity.Note
	for _, n := range r.notes {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *memRepo) UpdateNote(_ context.Context, id int64, data string, date time.Time) (entity.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil {
		return entity.Note{}, r.err
	}

	n, ok := r.notes[id]
	if !ok {
		return entity.Note{}, entity.ErrNoteNotFound
	}
	n.Data, n.Date = data, date
	r.notes[id] = n
	return n, nil
}

func (r *memRepo) DeleteNote(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.notes, id)
	return nil
}

type passTx struct{ calls int }

func (t *passTx) RunInTx(ctx context.Context, f func(context.Context) error) error {
	t.calls++
	return f(ctx)
}

var fixedNow = time.Date(2025, 5, 4, 12, 30, 0, 0, time.UTC)

func newUsecase(t *testing.T, repo *memRepo) (*Usecase, *passTx) {
	t.Helper()

	tx := &passTx{}
	uc, err := New(NewOptions(repo, tx, WithNow(func() time.Time { return fixedNow })))
	require.NoError(t, err)

	return uc, tx
}

func TestNewValidatesOptions(t *testing.T) {
	_, err := New(NewOptions(nil, &passTx{}))
	assert.Error(t, err)
}

func TestCreateNote(t *testing.T) {
	ctx := context.Background()

	t.Run("stores note for user", func(t *testing.T) {
		uc, _ := newUsecase(t, newMemRepo())

		note, err := uc.CreateNote(ctx, 7, "hello")
		require.NoError(t, err)
		assert.Equal(t, int64(7), note.UserID)
		assert.Equal(t, fixedNow, note.Date)
	})

	t.Run("rejects empty note", func(t *testing.T) {
		uc, _ := newUsecase(t, newMemRepo())

		_, err := uc.CreateNote(ctx, 7, "   ")
		assert.ErrorIs(t, err, entity.ErrEmptyNote)
	})

	t.Run("rejects too long note", func(t *testing.T) {
		uc, _ := newUsecase(t, newMemRepo())

		_, err := uc.CreateNote(ctx, 7, strings.Repeat("a", entity.MaxNoteLength+1))
		assert.ErrorIs(t, err, entity.ErrNoteTooLong)
	})
}

func TestEditNote(t *testing.T) {
	ctx := context.Background()

	t.Run("owner edits note", func(t *testing.T) {
		repo := newMemRepo()
		uc, tx := newUsecase(t, repo)
		note, err := repo.CreateNote(ctx, 1, "old", fixedNow.Add(-time.Hour))
		require.NoError(t, err)

		updated, err := uc.EditNote(ctx, 1, note.ID, "new")
		require.NoError(t, err)
		assert.Equal(t, "new", updated.Data)
		assert.Equal(t, fixedNow, updated.Date)
		assert.Equal(t, 1, tx.calls)
	})

	t.Run("missing note", func(t *testing.T) {
		uc, _ := newUsecase(t, newMemRepo())

		_, err := uc.EditNote(ctx, 1, 99, "new")
		assert.ErrorIs(t, err, entity.ErrNoteNotFound)
	})

	t.Run("foreign note", func(t *testing.T) {
		repo := newMemRepo()
		uc, _ := newUsecase(t, repo)
		note, _ := repo.CreateNote(ctx, 2, "theirs", fixedNow)

		_, err := uc.EditNote(ctx, 1, note.ID, "mine now")
		assert.ErrorIs(t, err, entity.ErrForbidden)

		got, _ := repo.GetNote(ctx, note.ID)
		assert.Equal(t, "theirs", got.Data)
	})

	t.Run("storage failure is wrapped", func(t *testing.T) {
		repo := newMemRepo()
		uc, _ := newUsecase(t, repo)
		note, _ := repo.CreateNote(ctx, 1, "old", fixedNow)
		errDB := errors.New("db down")
		repo.err = errDB

		_, err := uc.EditNote(ctx, 1, note.ID, "new")
		assert.ErrorIs(t, err, errDB)
	})
}

func TestDeleteNote(t *testing.T) {
	ctx := context.Background()

	t.Run("owner deletes note", func(t *testing.T) {
		repo := newMemRepo()
		uc, _ := newUsecase(t, repo)
		note, _ := repo.CreateNote(ctx, 1, "bye", fixedNow)

		require.NoError(t, uc.DeleteNote(ctx, 1, note.ID))

		_, err := repo.GetNote(ctx, note.ID)
		assert.ErrorIs(t, err, entity.ErrNoteNotFound)
	})

	t.Run("missing note is a no-op", func(t *testing.T) {
		uc, _ := newUsecase(t, newMemRepo())

		assert.NoError(t, uc.DeleteNote(ctx, 1, 404))
	})

	t.Run("foreign note is kept", func(t *testing.T) {
		repo := newMemRepo()
		uc, _ := newUsecase(t, repo)
		note, _ := repo.CreateNote(ctx, 2, "theirs", fixedNow)

		err := uc.DeleteNote(ctx, 1, note.ID)
		assert.ErrorIs(t, err, entity.ErrForbidden)

		_, err = repo.GetNote(ctx, note.ID)
		assert.NoError(t, err)
	})
}

func TestGetNotesByUserID(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	uc, _ := newUsecase(t, repo)

	_, _ = repo.CreateNote(ctx, 1, "a", fixedNow)
	_, _ = repo.CreateNote(ctx, 2, "b", fixedNow)
	_, _ = repo.CreateNote(ctx, 1, "c", fixedNow)

	notes, err := uc.GetNotesByUserID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "c", notes[0].Data)
}
