package repository

import (
	"github.com/jmoiron/sqlx"
)

// AccountRepo implements the identity store on PostgreSQL
type AccountRepo struct {
	db *sqlx.DB
}

// NewAccountRepo creates a new account repository instance
func NewAccountRepo(db *sqlx.DB) *AccountRepo {
	return &AccountRepo{db: db}
}
