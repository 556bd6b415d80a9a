package terminal

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"text/tabwriter"

	"github.com/evgeniy-krivenko/web-notes/internal/notesclient"
	"github.com/evgeniy-krivenko/web-notes/pkg/logger/slogx"
)

type notesLister interface {
	ListNotes(ctx context.Context) ([]notesclient.Note, error)
}

// HomeView is where actions navigate to after success: it prints the user's notes.
type HomeView struct {
	mu    sync.Mutex
	notes notesLister
	out   io.Writer
}

func NewHomeView(notes notesLister, w io.Writer) *HomeView {
	return &HomeView{notes: notes, out: w}
}

func (h *HomeView) Navigate(ctx context.Context, path string) {
	if path != "/" {
		slogx.Warn(ctx, "unknown view", slog.String("path", path))
		return
	}

	if err := h.Render(ctx); err != nil {
		slogx.Error(ctx, "render home view", slogx.Err(err))

		h.mu.Lock()
		fmt.Fprintf(h.out, "! could not load notes: %v\n", err)
		h.mu.Unlock()
	}
}

func (h *HomeView) Render(ctx context.Context) error {
	notes, err := h.notes.ListNotes(ctx)
	if err != nil {
		return fmt.Errorf("list notes: %w", err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if len(notes) == 0 {
		fmt.Fprintln(h.out, "No notes yet.")
		return nil
	}

	tw := tabwriter.NewWriter(h.out, 0, 4, 2, ' ', 0)
	for _, n := range notes {
		fmt.Fprintf(tw, "#%d\t%s\t%s\n", n.ID, n.Date, n.Data)
	}

	return tw.Flush()
}
