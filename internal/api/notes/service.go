package notes

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/evgeniy-krivenko/web-notes/internal/ctxtr"
	"github.com/evgeniy-krivenko/web-notes/internal/entity"
	"github.com/evgeniy-krivenko/web-notes/pkg/logger/slogx"
	"github.com/evgeniy-krivenko/web-notes/pkg/metrics"
)

var _ http.Handler = (*Service)(nil)

type notesUsecase interface {
	CreateNote(ctx context.Context, userID int64, data string) (entity.Note, error)
	GetNotesByUserID(ctx context.Context, userID int64) ([]entity.Note, error)
	EditNote(ctx context.Context, userID, id int64, data string) (entity.Note, error)
	DeleteNote(ctx context.Context, userID, id int64) error
}

//go:generate go run github.com/kazhuravlev/options-gen/cmd/options-gen@v0.55.3 -out-filename=service_options.gen.go -from-struct=Options
type Options struct {
	notes  notesUsecase `option:"mandatory" validate:"required"`
	tokens ctxtr.Tokens `option:"mandatory" validate:"required,min=1"`

	metrics *metrics.HTTP
}

// Service serves the notes pages: the home listing and the note mutations.
type Service struct {
	Options
	router chi.Router
}

func New(opts Options) (*Service, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate notes api options: %v", err)
	}

	s := &Service{Options: opts}
	s.router = s.routes()

	return s, nil
}

func (s *Service) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Service) routes() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(slogx.HTTPMiddleware)
	if s.metrics != nil {
		r.Use(s.metrics.Middleware)
	}
	r.Use(middleware.Recoverer)

	if s.metrics != nil {
		r.Handle("/metrics", s.metrics.Handler())
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Group(func(r chi.Router) {
		r.Use(ctxtr.AuthMiddleware(s.tokens, http.HandlerFunc(unauthorized)))

		r.Get("/", s.Home)
		r.Post("/", s.AddNote)
		r.Post("/delete-note", s.DeleteNote)
		r.Post("/edit-note", s.EditNote)
	})

	return r
}

func unauthorized(w http.ResponseWriter, r *http.Request) {
	writeError(r.Context(), w, http.StatusUnauthorized, "unauthorized")
}
