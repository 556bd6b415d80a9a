// Package actions implements the user-facing note actions: ask the user,
// call the server, then either go back home or show an alert.
package actions

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/evgeniy-krivenko/web-notes/internal/notesclient"
	"github.com/evgeniy-krivenko/web-notes/pkg/logger/slogx"
)

const (
	HomePath = "/"

	MsgConfirmDelete = "Are you sure you want to delete this note? This action is permanent."
	MsgPromptEdit    = "Edit note:"
	MsgDeleteFailed  = "Error deleting note."
	MsgEditFailed    = "Error editing note."
	MsgUnexpected    = "An error occurred."
)

type notesAPI interface {
	DeleteNote(ctx context.Context, id notesclient.NoteID) error
	EditNote(ctx context.Context, id notesclient.NoteID, newData string) error
}

// Dialog is the user's modal surface.
type Dialog interface {
	// Confirm reports whether the user accepted.
	Confirm(message string) bool
	// Prompt returns false when the user cancelled.
	Prompt(message, defaultValue string) (string, bool)
	Alert(message string)
}

type Navigator interface {
	Navigate(ctx context.Context, path string)
}

type logger interface {
	Error(context.Context, string, ...slog.Attr)
	Debug(context.Context, string, ...slog.Attr)
}

//go:generate go run github.com/kazhuravlev/options-gen/cmd/options-gen@v0.55.3 -out-filename=actions_options.gen.go -from-struct=Options
type Options struct {
	notes     notesAPI  `option:"mandatory" validate:"required"`
	dialog    Dialog    `option:"mandatory" validate:"required"`
	navigator Navigator `option:"mandatory" validate:"required"`

	logger logger
}

// Actions holds no mutable state; concurrent calls are independent.
type Actions struct {
	Options
}

func New(opts Options) (*Actions, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate actions options: %v", err)
	}

	if opts.logger == nil {
		opts.logger = noopLogger{}
	}

	return &Actions{Options: opts}, nil
}

func (a *Actions) DeleteNote(ctx context.Context, id notesclient.NoteID) {
	if !a.dialog.Confirm(MsgConfirmDelete) {
		return
	}

	err := a.notes.DeleteNote(ctx, id)
	if err == nil {
		a.navigator.Navigate(ctx, HomePath)
		return
	}

	var appErr *notesclient.ApplicationError
	if errors.As(err, &appErr) {
		a.logger.Debug(ctx, "server refused to delete note",
			slogx.NoteID(id),
			slog.Int("status", appErr.Status),
			slog.String("reason", appErr.Message),
		)
		a.dialog.Alert(MsgDeleteFailed)
		return
	}

	a.logger.Error(ctx, "delete note", slogx.NoteID(id), slogx.Err(err))
	a.dialog.Alert(MsgUnexpected)
}

func (a *Actions) EditNote(ctx context.Context, id notesclient.NoteID) {
	input, ok := a.dialog.Prompt(MsgPromptEdit, "")
	if !ok {
		return
	}

	newData := strings.TrimSpace(input)
	if newData == "" {
		return
	}

	err := a.notes.EditNote(ctx, id, newData)
	if err == nil {
		a.navigator.Navigate(ctx, HomePath)
		return
	}

	var appErr *notesclient.ApplicationError
	if errors.As(err, &appErr) {
		msg := appErr.Message
		if msg == "" {
			msg = MsgEditFailed
		}
		a.dialog.Alert(msg)
		return
	}

	a.logger.Error(ctx, "edit note", slogx.NoteID(id), slogx.Err(err))
	a.dialog.Alert(MsgUnexpected)
}

type noopLogger struct{}

func (noopLogger) Error(context.Context, string, ...slog.Attr) {}

func (noopLogger) Debug(context.Context, string, ...slog.Attr) {}
