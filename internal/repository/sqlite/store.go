// Package sqlite stores notes in a local SQLite file using the pure-Go driver.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/evgeniy-krivenko/web-notes/internal/entity"
	"github.com/evgeniy-krivenko/web-notes/internal/repository/migrations"
	"github.com/evgeniy-krivenko/web-notes/pkg/database"
	"github.com/evgeniy-krivenko/web-notes/pkg/logger/slogx"
)

const (
	noteColumns = `id, user_id, data, date`
	// Fixed width keeps lexical order equal to time order.
	timeLayout = "2006-01-02T15:04:05.000000000Z"
)

type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store is a notes repository backed by SQLite.
type Store struct {
	db *sql.DB
}

// Open creates the database file (and parent dirs) at path and applies migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("sqlite mkdir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", "file:"+path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}
	// One writer at a time; transactions carry their own connection through the context.
	db.SetMaxOpenConns(1)

	fsys, err := migrations.FS("sqlite")
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := database.Migrate(ctx, db, goose.DialectSQLite3, fsys, slogx.Default()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite migrate: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

type txCtxKey struct{}

func (s *Store) RunInTx(ctx context.Context, f func(context.Context) error) error {
	if _, ok := ctx.Value(txCtxKey{}).(*sql.Tx); ok {
		return f(ctx)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err := f(context.WithValue(ctx, txCtxKey{}, tx)); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			err = fmt.Errorf("%w: rolling back transaction: %v", err, rerr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

func (s *Store) load(ctx context.Context) querier {
	if tx, ok := ctx.Value(txCtxKey{}).(*sql.Tx); ok {
		return tx
	}

	return s.db
}

func (s *Store) CreateNote(ctx context.Context, userID int64, data string, date time.Time) (entity.Note, error) {
	res, err := s.load(ctx).ExecContext(ctx,
		`INSERT INTO notes (user_id, data, date) VALUES (?, ?, ?)`,
		userID, data, formatTime(date),
	)
	if err != nil {
		return entity.Note{}, fmt.Errorf("create note: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return entity.Note{}, fmt.Errorf("create note id: %w", err)
	}

	return entity.Note{ID: id, UserID: userID, Data: data, Date: date.UTC()}, nil
}

func (s *Store) GetNote(ctx context.Context, id int64) (entity.Note, error) {
	row := s.load(ctx).QueryRowContext(ctx, `SELECT `+noteColumns+` FROM notes WHERE id = ?`, id)

	note, err := scanNote(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Note{}, entity.ErrNoteNotFound
		}
		return entity.Note{}, fmt.Errorf("get note: %w", err)
	}

	return note, nil
}

func (s *Store) GetNotesByUserID(ctx context.Context, userID int64) ([]entity.Note, error) {
	rows, err := s.load(ctx).QueryContext(ctx,
		`SELECT `+noteColumns+` FROM notes WHERE user_id = ? ORDER BY date DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("get notes by user: %w", err)
	}
	defer rows.Close()

	var notes []entity.Note
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		notes = append(notes, note)
	}

	return notes, rows.Err()
}

func (s *Store) UpdateNote(ctx context.Context, id int64, data string, date time.Time) (entity.Note, error) {
	res, err := s.load(ctx).ExecContext(ctx,
		`UPDATE notes SET data = ?, date = ? WHERE id = ?`,
		data, formatTime(date), id,
	)
	if err != nil {
		return entity.Note{}, fmt.Errorf("update note: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entity.Note{}, entity.ErrNoteNotFound
	}

	return s.GetNote(ctx, id)
}

func (s *Store) DeleteNote(ctx context.Context, id int64) error {
	if _, err := s.load(ctx).ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanNote(row scanner) (entity.Note, error) {
	var (
		n    entity.Note
		date string
	)
	if err := row.Scan(&n.ID, &n.UserID, &n.Data, &date); err != nil {
		return entity.Note{}, err
	}

	t, err := time.Parse(timeLayout, date)
	if err != nil {
		return entity.Note{}, fmt.Errorf("parse note date %q: %w", date, err)
	}
	n.Date = t

	return n, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}
