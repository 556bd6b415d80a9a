package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/evgeniy-krivenko/web-notes/internal/entity"
	"github.com/evgeniy-krivenko/web-notes/pkg/logger/slogx"
)

const noteColumns = `id, user_id, data, date`

func (r *Repo) CreateNote(ctx context.Context, userID int64, data string, date time.Time) (entity.Note, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO notes (user_id, data, date) VALUES ($1, $2, $3) RETURNING `+noteColumns,
		userID, data, date,
	)

	note, err := scanNote(row)
	if err != nil {
		return entity.Note{}, fmt.Errorf("create note: %v", err)
	}

	slogx.Debug(ctx, "success to create note", slogx.UserID(userID))

	return note, nil
}

// GetNote locks the row when called inside a transaction.
func (r *Repo) GetNote(ctx context.Context, id int64) (entity.Note, error) {
	row := r.db.QueryRow(ctx, `SELECT `+noteColumns+` FROM notes WHERE id = $1 FOR UPDATE`, id)

	note, err := scanNote(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Note{}, entity.ErrNoteNotFound
		}
		return entity.Note{}, fmt.Errorf("get note: %v", err)
	}

	return note, nil
}

func (r *Repo) GetNotesByUserID(ctx context.Context, userID int64) ([]entity.Note, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+noteColumns+` FROM notes WHERE user_id = $1 ORDER BY date DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("get notes by user: %v", err)
	}

	notes, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.Note, error) {
		return scanNote(row)
	})
	if err != nil {
		return nil, fmt.Errorf("collect notes by user: %v", err)
	}

	return notes, nil
}

func (r *Repo) UpdateNote(ctx context.Context, id int64, data string, date time.Time) (entity.Note, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE notes SET data = $2, date = $3 WHERE id = $1 RETURNING `+noteColumns,
		id, data, date,
	)

	note, err := scanNote(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Note{}, entity.ErrNoteNotFound
		}
		return entity.Note{}, fmt.Errorf("update note: %v", err)
	}

	return note, nil
}

func (r *Repo) DeleteNote(ctx context.Context, id int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM notes WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete note: %v", err)
	}

	return nil
}

func scanNote(row pgx.Row) (entity.Note, error) {
	var n entity.Note
	if err := row.Scan(&n.ID, &n.UserID, &n.Data, &n.Date); err != nil {
		return entity.Note{}, err
	}

	return n, nil
}
