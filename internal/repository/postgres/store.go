// internal/repository/postgres/store.go
package postgres

import (
	"github.com/jmoiron/sqlx"
)

// Store is the PostgreSQL implementation of repository.Store.
//
// Expected schema:
//
//	users(id BIGSERIAL PK, name TEXT, email TEXT UNIQUE, password TEXT,
//	      school TEXT, referral_code TEXT, total_raised NUMERIC(20,4),
//	      donation_count BIGINT, created_at TIMESTAMPTZ)
//	donations(id BIGSERIAL PK, user_id BIGINT REFERENCES users(id),
//	      amount NUMERIC(20,4), donor_name TEXT, created_at TIMESTAMPTZ)
//
// The donation critical section runs inside a single DB transaction,
// which gives the same all-or-nothing guarantee the in-memory store
// gets from its write lock.
type Store struct {
	db *sqlx.DB
}

// NewStore creates a Store backed by the given database connection.
func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}
