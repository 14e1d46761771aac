// SPDX-License-Identifier: MIT
// Package keystore: SQLite-backed persistence for generated key matrices.

package keystore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/katalvlaran/hillkey/modmatrix"
)

// driverName is the database/sql driver registered by modernc.org/sqlite.
const driverName = "sqlite"

// Record maps the `hill_keys` table for bun queries. Material holds the
// msgpack blob produced by encodeMaterial; Dimension and Modulus are
// duplicated as columns so listings never pay a decode.
type Record struct {
	bun.BaseModel `bun:"table:hill_keys"`

	ID        int64     `bun:"id,pk,autoincrement"`
	Label     string    `bun:"label,notnull,unique"`
	Dimension int       `bun:"dimension,notnull"`
	Modulus   int       `bun:"modulus,notnull"`
	Material  []byte    `bun:"material,notnull"`
	CreatedAt time.Time `bun:"created_at,notnull"`
}

// Store persists key matrices in a SQLite database through bun.
type Store struct {
	db *bun.DB
}

// Open connects to the SQLite database at dsn (":memory:" works for tests)
// and ensures the schema exists.
//
// Implementation:
//   - Stage 1: open database/sql with the pure-Go sqlite driver; in-memory
//     databases are pinned to a single connection because each sqlite
//     connection gets its own private in-memory database.
//   - Stage 2: wrap in bun with the sqlite dialect and create `hill_keys`
//     if missing.
//
// Complexity: O(1) plus one DDL round-trip.
func Open(ctx context.Context, dsn string) (*Store, error) {
	sqlDB, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("keystore: open %q: %w", dsn, err)
	}
	if dsn == ":memory:" {
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	}

	db := bun.NewDB(sqlDB, sqlitedialect.New())
	if _, err := db.NewCreateTable().Model((*Record)(nil)).IfNotExists().Exec(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("keystore: ensure schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save stores key under label and returns the persisted record.
//
// Errors:
//   - ErrEmptyLabel when label is blank.
//   - modmatrix.ErrNilMatrix when key is nil.
//   - ErrDuplicateLabel when the label already names a stored key.
func (s *Store) Save(ctx context.Context, label string, key *modmatrix.Matrix) (*Record, error) {
	if label == "" {
		return nil, ErrEmptyLabel
	}
	if key == nil {
		return nil, modmatrix.ErrNilMatrix
	}

	blob, err := encodeMaterial(key)
	if err != nil {
		return nil, err
	}

	rec := &Record{
		Label:     label,
		Dimension: key.Dimension(),
		Modulus:   key.Modulus(),
		Material:  blob,
		CreatedAt: time.Now().UTC(),
	}

	// Pre-check the label so duplicates surface as the package sentinel
	// rather than a driver-specific constraint error.
	exists, err := s.db.NewSelect().Model((*Record)(nil)).Where("label = ?", label).Exists(ctx)
	if err != nil {
		return nil, fmt.Errorf("keystore: save %q: %w", label, err)
	}
	if exists {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateLabel, label)
	}

	if _, err := s.db.NewInsert().Model(rec).Exec(ctx); err != nil {
		return nil, fmt.Errorf("keystore: save %q: %w", label, err)
	}

	return rec, nil
}

// Get loads the key stored under label. The material is decoded and the key
// invariant re-verified before the matrix is handed back.
//
// Errors:
//   - ErrNotFound when no record carries the label.
//   - ErrCorruptMaterial when the blob fails to decode or violates the
//     invertibility invariant.
func (s *Store) Get(ctx context.Context, label string) (*modmatrix.Matrix, error) {
	var rec Record
	err := s.db.NewSelect().Model(&rec).Where("label = ?", label).Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, label)
		}

		return nil, fmt.Errorf("keystore: get %q: %w", label, err)
	}

	return decodeMaterial(rec.Material)
}

// GetRecord loads the raw record stored under label, material still encoded.
// Export paths use this to ship the msgpack blob unchanged.
//
// Errors:
//   - ErrNotFound when no record carries the label.
func (s *Store) GetRecord(ctx context.Context, label string) (*Record, error) {
	var rec Record
	err := s.db.NewSelect().Model(&rec).Where("label = ?", label).Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, label)
		}

		return nil, fmt.Errorf("keystore: get record %q: %w", label, err)
	}

	return &rec, nil
}

// List returns all stored records ordered by label; materials stay encoded.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	var recs []Record
	if err := s.db.NewSelect().Model(&recs).Order("label ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("keystore: list: %w", err)
	}

	return recs, nil
}

// Delete removes the record stored under label.
//
// Errors:
//   - ErrNotFound when no record carries the label.
func (s *Store) Delete(ctx context.Context, label string) error {
	res, err := s.db.NewDelete().Model((*Record)(nil)).Where("label = ?", label).Exec(ctx)
	if err != nil {
		return fmt.Errorf("keystore: delete %q: %w", label, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("keystore: delete %q: %w", label, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, label)
	}

	return nil
}
