// Copyright (c) 2025 Verist
// StaffDB - employee records store
// This source code is licensed under the MIT license found in the LICENSE file.

// Package db contains shared database errors and helpers.
package db

import (
	"errors"
	"fmt"
	"strings"
)

// Failure sentinels. Every operation in this package reports failures by
// wrapping exactly one of these, so callers can classify with errors.Is and
// decide whether to log, retry, or propagate. A missing row on a read is not
// a failure; reads return an empty result instead.
var (
	// ErrNotFound is returned when an update or delete targets an identity
	// that no longer exists in the store.
	ErrNotFound = errors.New("record not found")

	// ErrConstraint is returned when the store rejects a write, e.g. a
	// schema constraint violation.
	ErrConstraint = errors.New("constraint violation")

	// ErrConnection is returned when a unit of work cannot be acquired.
	ErrConnection = errors.New("connection failure")

	// ErrTransaction is returned when begin, commit, or rollback itself fails.
	ErrTransaction = errors.New("transaction failure")

	// ErrQuery is returned when a direct or derived read fails at the store level.
	ErrQuery = errors.New("query failure")
)

// MapDBError inspects low-level driver errors and maps common constraint
// violations to ErrConstraint while preserving the original error in the
// chain. This is a conservative, string-based mapping to avoid importing SQL
// driver packages into this package file.
func MapDBError(err error) error {
	if err == nil {
		return nil
	}
	le := strings.ToLower(err.Error())
	// MySQL duplicate entry (1062), Postgres unique violation (23505),
	// SQLite unique/check/not-null constraint messages.
	if strings.Contains(le, "duplicate") || strings.Contains(le, "unique") ||
		strings.Contains(le, "constraint") || strings.Contains(le, "23505") ||
		strings.Contains(le, "1062") {
		return fmt.Errorf("%w: %w", ErrConstraint, err)
	}
	return err
}

// queryErr wraps a read failure unless it already carries a sentinel.
func queryErr(err error) error {
	if err == nil {
		return nil
	}
	for _, s := range []error{ErrNotFound, ErrConstraint, ErrConnection, ErrTransaction, ErrQuery} {
		if errors.Is(err, s) {
			return err
		}
	}
	return fmt.Errorf("%w: %w", ErrQuery, err)
}
