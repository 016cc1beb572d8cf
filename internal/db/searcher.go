package db

import (
	"github.com/uptrace/bun"

	"github.com/verist/staffdb/internal/model"
)

// EmployeeSearcher defines a minimal interface for searching employees.
// Consumers can depend on this instead of concrete Store implementations.
type EmployeeSearcher interface {
	SearchEmployees(query string) ([]model.Employee, error)
}

// BunEmployeeSearcher is a Bun-based implementation of EmployeeSearcher.
type BunEmployeeSearcher struct {
	bdb *bun.DB
}

// NewBunEmployeeSearcher creates a new BunEmployeeSearcher.
func NewBunEmployeeSearcher(bdb *bun.DB) EmployeeSearcher {
	return &BunEmployeeSearcher{bdb: bdb}
}

// NewEmployeeSearcherFromStore creates an EmployeeSearcher from any Store by
// using the underlying Bun DB.
func NewEmployeeSearcherFromStore(s Store) EmployeeSearcher {
	return NewBunEmployeeSearcher(s.BunDB())
}

// SearchEmployees delegates to the centralized Bun search helper.
func (s *BunEmployeeSearcher) SearchEmployees(q string) ([]model.Employee, error) {
	return SearchEmployeesBun(s.bdb, q)
}

// DefaultEmployeeSearcher returns an EmployeeSearcher backed by the
// package-level store if available. It returns nil when the package store is
// not initialized; callers should handle nil by falling back to local filtering.
func DefaultEmployeeSearcher() EmployeeSearcher {
	if store == nil {
		return nil
	}
	return NewEmployeeSearcherFromStore(store)
}
