// Copyright (c) 2025 Verist
// StaffDB - employee records store
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"github.com/uptrace/bun"

	"github.com/verist/staffdb/internal/model"
)

// BunStore is the consolidated bun-backed Store implementation shared by all
// supported database engines. It delegates operations to the centralized Bun
// helpers in this package; per-engine stores embed it and add only
// dialect-specific behavior.
type BunStore struct {
	bun     *bun.DB
	finders *FinderRegistry
}

// BunDB returns the underlying *bun.DB for advanced callers.
func (s *BunStore) BunDB() *bun.DB { return s.bun }

// Close releases the underlying connection pool. sql.DB.Close is safe to
// call repeatedly, which keeps Shutdown idempotent.
func (s *BunStore) Close() error { return s.bun.Close() }

func (s *BunStore) CreateEmployee(e model.Employee) (int, error) {
	return CreateEmployeeBun(s.bun, e)
}

func (s *BunStore) GetAllEmployees() ([]model.Employee, error) {
	return GetAllEmployeesBun(s.bun)
}

func (s *BunStore) GetEmployeeByID(id int) (*model.Employee, error) {
	return GetEmployeeByIDBun(s.bun, id)
}

func (s *BunStore) UpdateEmployee(e model.Employee) error {
	return UpdateEmployeeBun(s.bun, e)
}

func (s *BunStore) DeleteEmployee(id int) error {
	return DeleteEmployeeBun(s.bun, id)
}

func (s *BunStore) CountEmployees() (int, error) {
	return CountEmployeesBun(s.bun)
}

func (s *BunStore) FindEmployeesByFirstName(firstName string) ([]model.Employee, error) {
	return s.finders.Find(s.bun, "FindByFirstName", firstName)
}

func (s *BunStore) FindEmployeeByEmail(email string) (*model.Employee, error) {
	return s.finders.FindOne(s.bun, "FindByEmail", email)
}

func (s *BunStore) FindEmployeesByLastName(lastName string) ([]model.Employee, error) {
	return s.finders.Find(s.bun, "FindByLastName", lastName)
}

func (s *BunStore) FindEmployeesByFirstNameAndLastName(firstName, lastName string) ([]model.Employee, error) {
	return s.finders.Find(s.bun, "FindByFirstNameAndLastName", firstName, lastName)
}

func (s *BunStore) SearchEmployees(query string) ([]model.Employee, error) {
	return SearchEmployeesBun(s.bun, query)
}

func (s *BunStore) ExportDataForBackup() (*model.BackupData, error) {
	return ExportDataForBackupBun(s.bun)
}

func (s *BunStore) ImportDataFromBackup(backup *model.BackupData) error {
	return ImportDataFromBackupBun(s.bun, backup)
}

func (s *BunStore) IntegrateDataFromBackup(backup *model.BackupData) error {
	return IntegrateDataFromBackupBun(s.bun, backup)
}
