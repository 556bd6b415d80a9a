package slogx

import "log/slog"

func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("err", "")
	}

	return slog.String("err", err.Error())
}

func UserID(id int64) slog.Attr {
	return slog.Int64("user_id", id)
}

func NoteID(id any) slog.Attr {
	return slog.Any("note_id", id)
}
