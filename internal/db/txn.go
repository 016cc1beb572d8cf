// Copyright (c) 2025 Verist
// StaffDB - employee records store
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/uptrace/bun"
)

// defaultBeginTimeout bounds how long we wait to acquire a transaction from
// the pool. Without it a saturated pool would block the caller indefinitely.
const defaultBeginTimeout = 5 * time.Second

// beginTimeout returns the transaction acquisition timeout, overridable via
// STAFFDB_DB_TX_BEGIN_TIMEOUT_SECONDS for CI or production tuning.
func beginTimeout() time.Duration {
	if v := os.Getenv("STAFFDB_DB_TX_BEGIN_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	return defaultBeginTimeout
}

// BeginTx starts a transaction on the given Bun DB with a bounded acquisition
// timeout. A begin failure is reported as ErrTransaction.
//
// database/sql ties the transaction's lifetime to the context passed at
// begin, so the timeout must not stay armed past acquisition: the timer is
// stopped as soon as begin returns, and the returned cancel releases the
// context once the caller has committed or rolled back.
func BeginTx(ctx context.Context, bdb *bun.DB, opts *sql.TxOptions) (bun.Tx, context.CancelFunc, error) {
	txCtx, cancel := context.WithCancel(ctx)
	timer := time.AfterFunc(beginTimeout(), cancel)
	tx, err := bdb.BeginTx(txCtx, opts)
	timer.Stop()
	if err != nil {
		cancel()
		return bun.Tx{}, nil, fmt.Errorf("%w: begin: %w", ErrTransaction, err)
	}
	return tx, cancel, nil
}

// WithTx bounds a single logical operation with a transaction: begin, run fn,
// commit on success, roll back on any failure of fn or of commit itself.
// Exactly one of commit or rollback occurs. A rollback failure is logged but
// never masks the error that triggered it.
func WithTx(ctx context.Context, bdb *bun.DB, fn func(ctx context.Context, tx bun.Tx) error) error {
	return withTxOptions(ctx, bdb, nil, fn)
}

// WithReadTx is WithTx with a read-only transaction. Engines that do not
// support read-only transactions treat it the same as WithTx.
func WithReadTx(ctx context.Context, bdb *bun.DB, fn func(ctx context.Context, tx bun.Tx) error) error {
	return withTxOptions(ctx, bdb, &sql.TxOptions{ReadOnly: true}, fn)
}

func withTxOptions(ctx context.Context, bdb *bun.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx bun.Tx) error) error {
	tx, cancel, err := BeginTx(ctx, bdb, opts)
	if err != nil {
		return err
	}
	defer cancel()

	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			dbLogf("db: rollback after failed operation also failed: %v (original: %v)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			dbLogf("db: rollback after failed commit also failed: %v", rbErr)
		}
		return fmt.Errorf("%w: commit: %w", ErrTransaction, err)
	}
	return nil
}
