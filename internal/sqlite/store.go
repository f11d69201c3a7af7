// Package sqlite implements a catalog Store on an in-memory SQLite database.
// The database lives exactly as long as the Store; nothing touches disk.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/vending/pkg/types"
)

// dsn opens a private in-memory database. Each connection to ":memory:" gets
// its own database, so the pool is pinned to one connection.
const dsn = ":memory:"

// Compile-time interface check.
var _ types.Store = (*Store)(nil)

// Store implements types.Store with SQLite as the ordered container.
type Store struct {
	mu     sync.Mutex
	db     *sql.DB
	closed bool
}

// NewStore opens the in-memory database and creates the schema.
func NewStore() (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("create schema: %w", err)
		}
	}
	return &Store{db: db}, nil
}

// All returns every snack ordered by insertion.
func (s *Store) All() ([]types.Snack, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, types.ErrStoreClosed
	}

	rows, err := s.db.Query("SELECT barcode, calories, price, name FROM snacks ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("querying snacks: %w", err)
	}
	defer rows.Close()

	snacks := []types.Snack{}
	for rows.Next() {
		snack, err := hydrateSnack(rows)
		if err != nil {
			return nil, err
		}
		snacks = append(snacks, *snack)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating snacks: %w", err)
	}
	return snacks, nil
}

// Append inserts snacks in one transaction so a batch is all-or-nothing.
func (s *Store) Append(snacks ...types.Snack) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return types.ErrStoreClosed
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT INTO snacks (barcode, calories, price, name) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, snack := range snacks {
		if _, err := stmt.Exec(snack.Barcode(), snack.Calories(), snack.Price().String(), snack.Name()); err != nil {
			return fmt.Errorf("inserting snack %d: %w", snack.Barcode(), err)
		}
	}
	return tx.Commit()
}

// Delete removes the snack at the given position in insertion order.
func (s *Store) Delete(index int) (types.Snack, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return types.Snack{}, types.ErrStoreClosed
	}
	if index < 0 {
		return types.Snack{}, fmt.Errorf("delete %d: %w", index, types.ErrIndexInvalid)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return types.Snack{}, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	var seq int64
	row := tx.QueryRow(
		"SELECT seq, barcode, calories, price, name FROM snacks ORDER BY seq LIMIT 1 OFFSET ?",
		index,
	)
	snack, err := hydrateSnack(row, &seq)
	if errors.Is(err, sql.ErrNoRows) {
		return types.Snack{}, fmt.Errorf("delete %d: %w", index, types.ErrIndexInvalid)
	}
	if err != nil {
		return types.Snack{}, err
	}

	if _, err := tx.Exec("DELETE FROM snacks WHERE seq = ?", seq); err != nil {
		return types.Snack{}, fmt.Errorf("deleting snack %d: %w", snack.Barcode(), err)
	}
	if err := tx.Commit(); err != nil {
		return types.Snack{}, fmt.Errorf("commit delete: %w", err)
	}
	return *snack, nil
}

// Close releases the database, discarding its contents. Idempotent.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// hydrateSnack scans barcode, calories, price, and name, preceded by any
// extra leading columns, and rebuilds the snack through NewSnack so a row
// that violates the field domains is reported instead of surfaced.
func hydrateSnack(row scanner, leading ...any) (*types.Snack, error) {
	var (
		barcode  int
		calories int
		priceStr string
		name     string
	)
	dest := append(leading, &barcode, &calories, &priceStr, &name)
	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning snack: %w", err)
	}

	price, err := decimal.NewFromString(priceStr)
	if err != nil {
		return nil, fmt.Errorf("parsing price of snack %d: %w", barcode, err)
	}
	snack, err := types.NewSnack(barcode, calories, price, name)
	if err != nil {
		return nil, fmt.Errorf("hydrating snack %d: %w", barcode, err)
	}
	return snack, nil
}
