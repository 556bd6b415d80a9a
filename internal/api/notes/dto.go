package notes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/evgeniy-krivenko/web-notes/internal/entity"
	"github.com/evgeniy-krivenko/web-notes/pkg/logger/slogx"
)

const (
	dateLayout = "2006-01-02 15:04:05"

	// maxBodyBytes fits a note of entity.MaxNoteLength four-byte runes with
	// JSON escaping to spare.
	maxBodyBytes = 64 << 10
)

// NoteID accepts both 5 and "5" on the wire.
type NoteID int64

func (id *NoteID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		b = []byte(s)
	}

	if bytes.Equal(b, []byte("null")) {
		*id = 0
		return nil
	}

	v, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return fmt.Errorf("note id %q: %w", b, err)
	}
	*id = NoteID(v)

	return nil
}

type DeleteNoteRequest struct {
	NoteID NoteID `json:"noteId" validate:"required"`
}

type EditNoteRequest struct {
	NoteID  NoteID `json:"noteId" validate:"required"`
	NewData string `json:"newData" validate:"required"`
}

type EditNoteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	NoteID  int64  `json:"noteId"`
	NewData string `json:"newData"`
	NewDate string `json:"newDate"`
}

type AddNoteRequest struct {
	Note string `json:"note"`
}

type AddNoteResponse struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Note    NoteDTO `json:"note"`
}

type NoteDTO struct {
	ID   int64  `json:"id"`
	Data string `json:"data"`
	Date string `json:"date"`
}

type HomeResponse struct {
	Notes []NoteDTO `json:"notes"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func toNoteDTO(n entity.Note) NoteDTO {
	return NoteDTO{ID: n.ID, Data: n.Data, Date: formatDate(n.Date)}
}

func toNoteDTOs(notes []entity.Note) []NoteDTO {
	out := make([]NoteDTO, 0, len(notes))
	for _, n := range notes {
		out = append(out, toNoteDTO(n))
	}

	return out
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slogx.Warn(ctx, "write json response", slogx.Err(err))
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, status int, msg string) {
	writeJSON(ctx, w, status, ErrorResponse{Error: msg})
}

// decodeJSON reads a size-limited JSON body into v. On failure it writes the
// error response and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil {
		return true
	}

	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		writeError(r.Context(), w, http.StatusRequestEntityTooLarge, msgBodyTooLarge)
		return false
	}

	writeError(r.Context(), w, http.StatusBadRequest, msgInvalidBody)
	return false
}
