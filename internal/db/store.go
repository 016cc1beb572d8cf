// Copyright (c) 2025 Verist
// StaffDB - employee records store
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"github.com/uptrace/bun"

	"github.com/verist/staffdb/internal/model"
)

// Store defines the interface for all database operations in StaffDB.
// This allows for multiple database backends to be implemented and for tests
// to substitute an in-memory store.
type Store interface {
	// Direct access operations. Each opens its own unit of work.
	CreateEmployee(e model.Employee) (int, error)
	GetAllEmployees() ([]model.Employee, error)
	GetEmployeeByID(id int) (*model.Employee, error)
	UpdateEmployee(e model.Employee) error
	DeleteEmployee(id int) error
	CountEmployees() (int, error)

	// Derived finders, resolved through the static finder registry.
	FindEmployeesByFirstName(firstName string) ([]model.Employee, error)
	FindEmployeeByEmail(email string) (*model.Employee, error)
	FindEmployeesByLastName(lastName string) ([]model.Employee, error)
	FindEmployeesByFirstNameAndLastName(firstName, lastName string) ([]model.Employee, error)

	// Search performs tokenized substring matching over name and email.
	SearchEmployees(query string) ([]model.Employee, error)

	// Backup methods
	ExportDataForBackup() (*model.BackupData, error)
	ImportDataFromBackup(backup *model.BackupData) error
	IntegrateDataFromBackup(backup *model.BackupData) error

	// BunDB exposes the underlying *bun.DB for advanced callers.
	BunDB() *bun.DB

	// Close releases the store's connection pool. Safe to call more than once.
	Close() error
}
