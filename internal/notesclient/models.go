package notesclient

// NoteID is an opaque note reference. It is sent as is and never parsed.
type NoteID string

type Note struct {
	ID   int64  `json:"id"`
	Data string `json:"data"`
	Date string `json:"date"`
}

type deleteNoteRequest struct {
	NoteID NoteID `json:"noteId"`
}

type editNoteRequest struct {
	NoteID  NoteID `json:"noteId"`
	NewData string `json:"newData"`
}

type editNoteResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type createNoteRequest struct {
	Note string `json:"note"`
}

type createNoteResponse struct {
	Note Note `json:"note"`
}

type listNotesResponse struct {
	Notes []Note `json:"notes"`
}

type errorResponse struct {
	Error string `json:"error"`
}
