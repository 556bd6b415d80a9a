package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

// Database routes queries to the transaction stored in the context, or to the pool.
type Database struct {
	p *pgxpool.Pool
}

func (db *Database) Exec(ctx context.Context, sql string, arguments ...any) (commandTag pgconn.CommandTag, err error) {
	return db.loadDB(ctx).Exec(ctx, sql, arguments...)
}

func (db *Database) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return db.loadDB(ctx).Query(ctx, sql, args...)
}

func (db *Database) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return db.loadDB(ctx).QueryRow(ctx, sql, args...)
}

// WithStdDB runs f with the pool exposed through database/sql for tools such
// as goose. The handle is closed when f returns; the pool stays open.
func (db *Database) WithStdDB(f func(*sql.DB) error) error {
	std := stdlib.OpenDBFromPool(db.p)

	err := f(std)
	if cerr := std.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("close std db: %v", cerr)
	}

	return err
}

func (db *Database) Close() {
	db.p.Close()
}

func NewDatabase(pool *pgxpool.Pool) *Database {
	return &Database{p: pool}
}
