package notes

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/evgeniy-krivenko/web-notes/internal/ctxtr"
	"github.com/evgeniy-krivenko/web-notes/internal/entity"
	"github.com/evgeniy-krivenko/web-notes/pkg/logger/slogx"
)

var validate = validator.New()

const (
	msgIncompleteData = "Incomplete data"
	msgInvalidBody    = "Invalid request body"
	msgBodyTooLarge   = "Request body too large"
	msgNoteTooShort   = "Note is too short!"
	msgNoteTooLong    = "Note is too long!"
	msgNoteNotFound   = "Note not found"
	msgForbiddenEdit  = "You do not have permission to edit this note"
)

// Home handles GET /.
func (s *Service) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := ctxtr.UserID(ctx)
	if err != nil {
		unauthorized(w, r)
		return
	}

	notes, err := s.notes.GetNotesByUserID(ctx, userID)
	if err != nil {
		slogx.Error(ctx, "list notes", slogx.UserID(userID), slogx.Err(err))
		writeError(ctx, w, http.StatusInternalServerError, "List error")
		return
	}

	writeJSON(ctx, w, http.StatusOK, HomeResponse{Notes: toNoteDTOs(notes)})
}

// AddNote handles POST /.
func (s *Service) AddNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := ctxtr.UserID(ctx)
	if err != nil {
		unauthorized(w, r)
		return
	}

	var req AddNoteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	note, err := s.notes.CreateNote(ctx, userID, req.Note)
	switch {
	case errors.Is(err, entity.ErrEmptyNote):
		writeError(ctx, w, http.StatusBadRequest, msgNoteTooShort)
		return
	case errors.Is(err, entity.ErrNoteTooLong):
		writeError(ctx, w, http.StatusBadRequest, msgNoteTooLong)
		return
	case err != nil:
		slogx.Error(ctx, "create note", slogx.UserID(userID), slogx.Err(err))
		writeError(ctx, w, http.StatusInternalServerError, "Add error")
		return
	}

	writeJSON(ctx, w, http.StatusCreated, AddNoteResponse{
		Success: true,
		Message: "Note added!",
		Note:    toNoteDTO(note),
	})
}

// DeleteNote handles POST /delete-note. Deleting a missing or foreign note
// changes nothing and still answers with an empty object.
func (s *Service) DeleteNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := ctxtr.UserID(ctx)
	if err != nil {
		unauthorized(w, r)
		return
	}

	var req DeleteNoteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := validate.Struct(req); err != nil {
		writeError(ctx, w, http.StatusBadRequest, msgIncompleteData)
		return
	}

	err = s.notes.DeleteNote(ctx, userID, int64(req.NoteID))
	switch {
	case errors.Is(err, entity.ErrForbidden):
		slogx.Warn(ctx, "attempt to delete foreign note", slogx.UserID(userID), slogx.NoteID(req.NoteID))
	case err != nil:
		slogx.Error(ctx, "delete note", slogx.UserID(userID), slogx.Err(err))
		writeError(ctx, w, http.StatusInternalServerError, "Delete error")
		return
	}

	writeJSON(ctx, w, http.StatusOK, struct{}{})
}

// EditNote handles POST /edit-note.
func (s *Service) EditNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := ctxtr.UserID(ctx)
	if err != nil {
		unauthorized(w, r)
		return
	}

	var req EditNoteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := validate.Struct(req); err != nil {
		writeError(ctx, w, http.StatusBadRequest, msgIncompleteData)
		return
	}

	note, err := s.notes.EditNote(ctx, userID, int64(req.NoteID), req.NewData)
	switch {
	case errors.Is(err, entity.ErrEmptyNote):
		writeError(ctx, w, http.StatusBadRequest, msgIncompleteData)
		return
	case errors.Is(err, entity.ErrNoteTooLong):
		writeError(ctx, w, http.StatusBadRequest, msgNoteTooLong)
		return
	case errors.Is(err, entity.ErrNoteNotFound):
		writeError(ctx, w, http.StatusNotFound, msgNoteNotFound)
		return
	case errors.Is(err, entity.ErrForbidden):
		writeError(ctx, w, http.StatusForbidden, msgForbiddenEdit)
		return
	case err != nil:
		slogx.Error(ctx, "edit note", slogx.UserID(userID), slogx.Err(err))
		writeError(ctx, w, http.StatusInternalServerError, "Edit error: "+err.Error())
		return
	}

	writeJSON(ctx, w, http.StatusOK, EditNoteResponse{
		Success: true,
		Message: "Note updated successfully",
		NoteID:  note.ID,
		NewData: note.Data,
		NewDate: formatDate(note.Date),
	})
}
