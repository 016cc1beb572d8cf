// Copyright (c) 2025 Verist
// StaffDB - employee records store
// This source code is licensed under the MIT license found in the LICENSE file.

// package db provides the data access layer for StaffDB.
// This file contains the MySQL implementation of the database store.
package db

import (
	_ "github.com/go-sql-driver/mysql" // MySQL driver
)

// MySQLStore is the MySQL implementation of the Store interface.
// The driver requires a DSN like "user:password@tcp(host:port)/dbname";
// append `?parseTime=true` so DATETIME columns scan into time.Time.
type MySQLStore struct {
	BunStore
}
