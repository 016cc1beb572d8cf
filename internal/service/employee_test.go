// Copyright (c) 2025 Verist
// StaffDB - employee records store
// This source code is licensed under the MIT license found in the LICENSE file.

package service

import (
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/uptrace/bun"

	"github.com/verist/staffdb/internal/db"
	"github.com/verist/staffdb/internal/model"
)

// fakeStore is an in-memory db.Store for exercising the facade without a
// database. It mirrors the store contracts: reads return empty results on a
// miss, update of a missing id fails with ErrNotFound, delete is a no-op.
type fakeStore struct {
	nextID    int
	employees map[int]model.Employee
	failWith  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{nextID: 1, employees: make(map[int]model.Employee)}
}

func (f *fakeStore) CreateEmployee(e model.Employee) (int, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	id := f.nextID
	f.nextID++
	e.ID = id
	f.employees[id] = e
	return id, nil
}

func (f *fakeStore) GetAllEmployees() ([]model.Employee, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := make([]model.Employee, 0, len(f.employees))
	for _, e := range f.employees {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStore) GetEmployeeByID(id int) (*model.Employee, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	e, ok := f.employees[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (f *fakeStore) UpdateEmployee(e model.Employee) error {
	if f.failWith != nil {
		return f.failWith
	}
	if _, ok := f.employees[e.ID]; !ok {
		return db.ErrNotFound
	}
	f.employees[e.ID] = e
	return nil
}

func (f *fakeStore) DeleteEmployee(id int) error {
	if f.failWith != nil {
		return f.failWith
	}
	delete(f.employees, id)
	return nil
}

func (f *fakeStore) CountEmployees() (int, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	return len(f.employees), nil
}

func (f *fakeStore) findWhere(match func(model.Employee) bool) []model.Employee {
	var out []model.Employee
	for _, e := range f.employees {
		if match(e) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *fakeStore) FindEmployeesByFirstName(firstName string) ([]model.Employee, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.findWhere(func(e model.Employee) bool { return e.FirstName == firstName }), nil
}

func (f *fakeStore) FindEmployeeByEmail(email string) (*model.Employee, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	matches := f.findWhere(func(e model.Employee) bool { return e.Email == email })
	if len(matches) == 0 {
		return nil, nil
	}
	return &matches[0], nil
}

func (f *fakeStore) FindEmployeesByLastName(lastName string) ([]model.Employee, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.findWhere(func(e model.Employee) bool { return e.LastName == lastName }), nil
}

func (f *fakeStore) FindEmployeesByFirstNameAndLastName(firstName, lastName string) ([]model.Employee, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.findWhere(func(e model.Employee) bool {
		return e.FirstName == firstName && e.LastName == lastName
	}), nil
}

func (f *fakeStore) SearchEmployees(query string) ([]model.Employee, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	tokens := db.TokenizeSearchQuery(query)
	return db.FilterEmployeesByTokens(f.findWhere(func(model.Employee) bool { return true }), tokens), nil
}

func (f *fakeStore) ExportDataForBackup() (*model.BackupData, error) {
	all, _ := f.GetAllEmployees()
	return &model.BackupData{SchemaVersion: model.CurrentBackupSchemaVersion, Employees: all}, nil
}

func (f *fakeStore) ImportDataFromBackup(backup *model.BackupData) error {
	f.employees = make(map[int]model.Employee)
	for _, e := range backup.Employees {
		f.employees[e.ID] = e
	}
	return nil
}

func (f *fakeStore) IntegrateDataFromBackup(backup *model.BackupData) error {
	for _, e := range backup.Employees {
		if _, ok := f.employees[e.ID]; !ok {
			f.employees[e.ID] = e
		}
	}
	return nil
}

func (f *fakeStore) BunDB() *bun.DB { return nil }
func (f *fakeStore) Close() error   { return nil }

func TestSaveEmployee_AssignsIdentity(t *testing.T) {
	svc := NewEmployeeService(newFakeStore())

	saved, err := svc.SaveEmployee(model.Employee{FirstName: "John", LastName: "Doe", Email: "jd@example.com"})
	if err != nil {
		t.Fatalf("SaveEmployee failed: %v", err)
	}
	if saved.IsTransient() {
		t.Fatalf("expected persisted employee, got transient: %+v", saved)
	}
	if saved.FirstName != "John" || saved.Email != "jd@example.com" {
		t.Fatalf("save must not alter fields: %+v", saved)
	}
}

func TestSaveEmployee_PropagatesStoreErrors(t *testing.T) {
	fs := newFakeStore()
	fs.failWith = db.ErrConstraint
	svc := NewEmployeeService(fs)

	_, err := svc.SaveEmployee(model.Employee{FirstName: "X", LastName: "Y", Email: "x@example.com"})
	if !errors.Is(err, db.ErrConstraint) {
		t.Fatalf("expected store error to propagate, got: %v", err)
	}
}

func TestServiceReads(t *testing.T) {
	fs := newFakeStore()
	svc := NewEmployeeService(fs)

	for _, e := range []model.Employee{
		{FirstName: "John", LastName: "Doe", Email: "john.doe@example.com"},
		{FirstName: "Jane", LastName: "Smith", Email: "jane.smith@example.com"},
		{FirstName: "John", LastName: "Wilson", Email: "john.wilson@example.com"},
	} {
		if _, err := svc.SaveEmployee(e); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	all, err := svc.GetAllEmployees()
	if err != nil || len(all) != 3 {
		t.Fatalf("GetAllEmployees = %d rows, %v", len(all), err)
	}

	johns, err := svc.GetEmployeesByFirstName("John")
	if err != nil || len(johns) != 2 {
		t.Fatalf("GetEmployeesByFirstName = %d rows, %v", len(johns), err)
	}

	smiths, err := svc.GetEmployeesByLastName("Smith")
	if err != nil || len(smiths) != 1 {
		t.Fatalf("GetEmployeesByLastName = %d rows, %v", len(smiths), err)
	}

	jd, err := svc.GetEmployeesByFirstAndLastName("John", "Doe")
	if err != nil || len(jd) != 1 || jd[0].Email != "john.doe@example.com" {
		t.Fatalf("GetEmployeesByFirstAndLastName = %+v, %v", jd, err)
	}

	jane, err := svc.GetEmployeeByEmail("jane.smith@example.com")
	if err != nil || jane == nil || jane.FirstName != "Jane" {
		t.Fatalf("GetEmployeeByEmail = %+v, %v", jane, err)
	}

	missing, err := svc.GetEmployeeByEmail("missing@example.com")
	if err != nil || missing != nil {
		t.Fatalf("expected (nil, nil) for missing email, got %+v, %v", missing, err)
	}

	found, err := svc.SearchEmployees("wilson")
	if err != nil || len(found) != 1 || !strings.Contains(found[0].Email, "wilson") {
		t.Fatalf("SearchEmployees = %+v, %v", found, err)
	}

	n, err := svc.CountEmployees()
	if err != nil || n != 3 {
		t.Fatalf("CountEmployees = %d, %v", n, err)
	}
}

func TestServiceUpdateAndDelete(t *testing.T) {
	fs := newFakeStore()
	svc := NewEmployeeService(fs)

	saved, err := svc.SaveEmployee(model.Employee{FirstName: "Edit", LastName: "Me", Email: "edit@example.com"})
	if err != nil {
		t.Fatalf("SaveEmployee failed: %v", err)
	}

	saved.Email = "edited@example.com"
	if err := svc.UpdateEmployee(saved); err != nil {
		t.Fatalf("UpdateEmployee failed: %v", err)
	}
	got, err := svc.GetEmployeeByID(saved.ID)
	if err != nil || got == nil || got.Email != "edited@example.com" {
		t.Fatalf("update not visible: %+v, %v", got, err)
	}

	if err := svc.UpdateEmployee(model.Employee{ID: 999, FirstName: "No", LastName: "Body", Email: "n@example.com"}); !errors.Is(err, db.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for update of missing id, got: %v", err)
	}

	if err := svc.DeleteEmployee(saved.ID); err != nil {
		t.Fatalf("DeleteEmployee failed: %v", err)
	}
	if err := svc.DeleteEmployee(saved.ID); err != nil {
		t.Fatalf("expected repeat delete to be a no-op, got: %v", err)
	}
	n, err := svc.CountEmployees()
	if err != nil || n != 0 {
		t.Fatalf("CountEmployees after delete = %d, %v", n, err)
	}
}
