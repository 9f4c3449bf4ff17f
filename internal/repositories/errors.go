package repositories

import (
	"database/sql"
	"errors"
)

var (
	// ErrNotFound is returned when a specific record is not found.
	ErrNotFound = errors.New("requested record not found")

	// ErrDatabaseError is returned for unexpected database errors.
	// It can be used to wrap more specific driver errors.
	ErrDatabaseError = errors.New("database error")

	// ErrDuplicateKey is returned when an insert/update violates a unique constraint.
	ErrDuplicateKey = errors.New("duplicate key value violates unique constraint")

	// ErrInsufficientStock is returned when a conditional stock decrement
	// matches no row because the remaining quantity is too low.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// SQLExecutor defines an interface that can be satisfied by *sql.DB or *sql.Tx.
// This allows repository methods to be used within transactions or with a direct DB connection.
type SQLExecutor interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	QueryRow(query string, args ...interface{}) *sql.Row
	Query(query string, args ...interface{}) (*sql.Rows, error)
}

// Tx is a transaction handle usable as an SQLExecutor. Satisfied by
// *sql.Tx; services depend on this interface so their transactional
// flows can be exercised without a live database.
type Tx interface {
	SQLExecutor
	Commit() error
	Rollback() error
}

// TxBeginner hands out transactions for request-scoped units of work.
type TxBeginner interface {
	BeginTx() (Tx, error)
}

// dbTxBeginner adapts *sql.DB to TxBeginner.
type dbTxBeginner struct {
	db *sql.DB
}

// NewTxBeginner wraps a connection pool as a TxBeginner.
func NewTxBeginner(db *sql.DB) TxBeginner {
	return &dbTxBeginner{db: db}
}

func (b *dbTxBeginner) BeginTx() (Tx, error) {
	return b.db.Begin()
}
