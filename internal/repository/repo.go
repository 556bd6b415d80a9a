package repository

import (
	"github.com/evgeniy-krivenko/web-notes/pkg/database"
)

// Repo stores notes in postgres.
type Repo struct {
	db database.Tx
}

func New(db database.Tx) *Repo {
	return &Repo{db: db}
}
