package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pressly/goose/v3"
	"golang.org/x/sync/errgroup"

	notesapi "github.com/evgeniy-krivenko/web-notes/internal/api/notes"
	"github.com/evgeniy-krivenko/web-notes/internal/config"
	"github.com/evgeniy-krivenko/web-notes/internal/ctxtr"
	"github.com/evgeniy-krivenko/web-notes/internal/entity"
	"github.com/evgeniy-krivenko/web-notes/internal/repository"
	"github.com/evgeniy-krivenko/web-notes/internal/repository/migrations"
	"github.com/evgeniy-krivenko/web-notes/internal/repository/sqlite"
	notesuc "github.com/evgeniy-krivenko/web-notes/internal/usecase/notes"
	"github.com/evgeniy-krivenko/web-notes/pkg/database"
	"github.com/evgeniy-krivenko/web-notes/pkg/gwserver"
	"github.com/evgeniy-krivenko/web-notes/pkg/logger/slogx"
	"github.com/evgeniy-krivenko/web-notes/pkg/metrics"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run app: %v", err)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Parse()
	if err != nil {
		return fmt.Errorf("parse cfg: %v", err)
	}

	if err := slogx.InitGlobal(os.Stdout, cfg.App.LogLevel, cfg.App.Pretty); err != nil {
		return fmt.Errorf("init logger: %v", err)
	}

	tokens, err := ctxtr.ParseTokens(cfg.Auth.Tokens)
	if err != nil {
		return fmt.Errorf("parse auth tokens: %v", err)
	}

	store, closeStore, err := openStore(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer closeStore()

	notesUC, err := notesuc.New(notesuc.NewOptions(store, store))
	if err != nil {
		return fmt.Errorf("init notes usecase: %v", err)
	}

	notesSvc, err := notesapi.New(notesapi.NewOptions(
		notesUC,
		tokens,
		notesapi.WithMetrics(metrics.NewHTTP("notes")),
	))
	if err != nil {
		return fmt.Errorf("init notes api: %v", err)
	}

	srv, err := gwserver.New(gwserver.NewOptions(
		cfg.HTTP.Addr,
		notesSvc,
		gwserver.WithLogger(slogx.Default()),
	))
	if err != nil {
		return fmt.Errorf("init http server: %v", err)
	}

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error { return srv.Run(ctx) })

	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("wait app stop: %v", err)
	}

	return nil
}

type notesStore interface {
	CreateNote(ctx context.Context, userID int64, data string, date time.Time) (entity.Note, error)
	GetNote(ctx context.Context, id int64) (entity.Note, error)
	GetNotesByUserID(ctx context.Context, userID int64) ([]entity.Note, error)
	UpdateNote(ctx context.Context, id int64, data string, date time.Time) (entity.Note, error)
	DeleteNote(ctx context.Context, id int64) error
	RunInTx(ctx context.Context, f func(context.Context) error) error
}

func openStore(ctx context.Context, cfg config.DatabaseConfig) (notesStore, func(), error) {
	switch cfg.Driver {
	case "sqlite":
		store, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite: %v", err)
		}

		slogx.Info(ctx, "use sqlite storage", slog.String("path", cfg.SQLitePath))
		return store, func() { _ = store.Close() }, nil

	case "postgres":
		pool, err := database.NewPGX(ctx, database.NewOptions(
			cfg.Host+":"+cfg.Port,
			cfg.User,
			cfg.Password,
			cfg.Name,
			database.WithRetryAttempts(cfg.RetryAttempts),
			database.WithLogger(slogx.Default()),
		))
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %v", err)
		}
		db := database.NewDatabase(pool)

		fsys, err := migrations.FS("postgres")
		if err != nil {
			db.Close()
			return nil, nil, err
		}

		err = db.WithStdDB(func(stdDB *sql.DB) error {
			return database.Migrate(ctx, stdDB, goose.DialectPostgres, fsys, slogx.Default())
		})
		if err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("migrate postgres: %v", err)
		}

		return &pgStore{Repo: repository.New(db), Database: db}, db.Close, nil
	}

	return nil, nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
}

type pgStore struct {
	*repository.Repo
	*database.Database
}
