package entity

import (
	"errors"
	"time"
)

// MaxNoteLength bounds the note text, matching the storage column.
const MaxNoteLength = 10000

var (
	ErrNoteNotFound = errors.New("note not found")
	ErrForbidden    = errors.New("note belongs to another user")
	ErrEmptyNote    = errors.New("note is empty")
	ErrNoteTooLong  = errors.New("note is too long")
)

type Note struct {
	ID     int64
	UserID int64
	Data   string
	Date   time.Time
}

func (n Note) OwnedBy(userID int64) bool {
	return n.UserID == userID
}
