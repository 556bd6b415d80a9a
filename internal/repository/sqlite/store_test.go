package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evgeniy-krivenko/web-notes/internal/entity"
)

func openStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(context.Background(), filepath.Join(t.TempDir(), "website", "database.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestStoreNotes(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)

	first := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)

	a, err := store.CreateNote(ctx, 1, "buy milk", first)
	require.NoError(t, err)
	b, err := store.CreateNote(ctx, 1, "call mom", second)
	require.NoError(t, err)
	_, err = store.CreateNote(ctx, 2, "someone else", second)
	require.NoError(t, err)

	notes, err := store.GetNotesByUserID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, b.ID, notes[0].ID, "newest first")
	assert.Equal(t, a.ID, notes[1].ID)
	assert.True(t, first.Equal(notes[1].Date))

	got, err := store.GetNote(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "buy milk", got.Data)
	assert.Equal(t, int64(1), got.UserID)

	updated, err := store.UpdateNote(ctx, a.ID, "buy oat milk", second.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, "buy oat milk", updated.Data)

	require.NoError(t, store.DeleteNote(ctx, a.ID))
	_, err = store.GetNote(ctx, a.ID)
	assert.ErrorIs(t, err, entity.ErrNoteNotFound)
}

func TestStoreUpdateMissing(t *testing.T) {
	store := openStore(t)

	_, err := store.UpdateNote(context.Background(), 42, "x", time.Now())
	assert.ErrorIs(t, err, entity.ErrNoteNotFound)
}

func TestStoreRunInTxRollback(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)

	note, err := store.CreateNote(ctx, 1, "keep me", time.Now())
	require.NoError(t, err)

	errBoom := errors.New("boom")
	err = store.RunInTx(ctx, func(ctx context.Context) error {
		if err := store.DeleteNote(ctx, note.ID); err != nil {
			return err
		}
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	got, err := store.GetNote(ctx, note.ID)
	require.NoError(t, err)
	assert.Equal(t, "keep me", got.Data)
}
