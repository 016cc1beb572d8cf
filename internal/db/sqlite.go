// Copyright (c) 2025 Verist
// StaffDB - employee records store
// This source code is licensed under the MIT license found in the LICENSE file.

// package db provides the data access layer for StaffDB.
// This file contains the SQLite implementation of the database store.
package db

import (
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SqliteStore is the SQLite implementation of the Store interface. All
// operations come from the embedded BunStore; SQLite needs no
// dialect-specific overrides beyond the single-connection handling for
// in-memory databases done at pool setup.
type SqliteStore struct {
	BunStore
}
