package notes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/evgeniy-krivenko/web-notes/internal/entity"
	"github.com/evgeniy-krivenko/web-notes/pkg/logger/slogx"
)

type notesRepository interface {
	CreateNote(ctx context.Context, userID int64, data string, date time.Time) (entity.Note, error)
	GetNote(ctx context.Context, id int64) (entity.Note, error)
	GetNotesByUserID(ctx context.Context, userID int64) ([]entity.Note, error)
	UpdateNote(ctx context.Context, id int64, data string, date time.Time) (entity.Note, error)
	DeleteNote(ctx context.Context, id int64) error
}

type transactor interface {
	RunInTx(ctx context.Context, f func(context.Context) error) error
}

//go:generate go run github.com/kazhuravlev/options-gen/cmd/options-gen@v0.55.3 -out-filename=usecase_options.gen.go -from-struct=Options
type Options struct {
	repo notesRepository `option:"mandatory" validate:"required"`
	tx   transactor      `option:"mandatory" validate:"required"`

	now func() time.Time
}

type Usecase struct {
	Options
}

func New(opts Options) (*Usecase, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate notes usecase options: %v", err)
	}

	if opts.now == nil {
		opts.now = time.Now
	}

	return &Usecase{Options: opts}, nil
}

func (u *Usecase) CreateNote(ctx context.Context, userID int64, data string) (entity.Note, error) {
	if err := validateData(data); err != nil {
		return entity.Note{}, err
	}

	note, err := u.repo.CreateNote(ctx, userID, data, u.now())
	if err != nil {
		return entity.Note{}, fmt.Errorf("usecase create note: %w", err)
	}

	slogx.Info(ctx, "success to create note", slogx.UserID(userID), slogx.NoteID(note.ID))
	return note, nil
}

func (u *Usecase) GetNotesByUserID(ctx context.Context, userID int64) ([]entity.Note, error) {
	notes, err := u.repo.GetNotesByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("usecase get notes by user: %w", err)
	}

	return notes, nil
}

// EditNote replaces the text of a note owned by userID and bumps its date.
func (u *Usecase) EditNote(ctx context.Context, userID, id int64, data string) (entity.Note, error) {
	if err := validateData(data); err != nil {
		return entity.Note{}, err
	}

	var updated entity.Note
	err := u.tx.RunInTx(ctx, func(ctx context.Context) error {
		note, err := u.repo.GetNote(ctx, id)
		if err != nil {
			return err
		}

		if !note.OwnedBy(userID) {
			return entity.ErrForbidden
		}

		updated, err = u.repo.UpdateNote(ctx, id, data, u.now())
		return err
	})
	if err != nil {
		return entity.Note{}, fmt.Errorf("usecase edit note: %w", err)
	}

	slogx.Info(ctx, "success to edit note", slogx.UserID(userID), slogx.NoteID(id))
	return updated, nil
}

// DeleteNote removes a note owned by userID. Missing notes are not an error.
func (u *Usecase) DeleteNote(ctx context.Context, userID, id int64) error {
	err := u.tx.RunInTx(ctx, func(ctx context.Context) error {
		note, err := u.repo.GetNote(ctx, id)
		if err != nil {
			return err
		}

		if !note.OwnedBy(userID) {
			return entity.ErrForbidden
		}

		return u.repo.DeleteNote(ctx, id)
	})
	if errors.Is(err, entity.ErrNoteNotFound) {
		slogx.Debug(ctx, "note to delete does not exist", slogx.UserID(userID), slogx.NoteID(id))
		return nil
	}
	if err != nil {
		return fmt.Errorf("usecase delete note: %w", err)
	}

	slogx.Info(ctx, "success to delete note", slogx.UserID(userID), slogx.NoteID(id))
	return nil
}

func validateData(data string) error {
	if strings.TrimSpace(data) == "" {
		return entity.ErrEmptyNote
	}

	if utf8.RuneCountInString(data) > entity.MaxNoteLength {
		return entity.ErrNoteTooLong
	}

	return nil
}
