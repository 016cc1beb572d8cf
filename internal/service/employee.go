// Copyright (c) 2025 Verist
// StaffDB - employee records store
// This source code is licensed under the MIT license found in the LICENSE file.

// Package service presents the single caller-facing surface over the data
// access layer. It adds no transactional semantics of its own; every
// operation delegates to the injected store, which owns the unit-of-work
// boundaries.
package service

import (
	"github.com/verist/staffdb/internal/db"
	"github.com/verist/staffdb/internal/model"
)

// EmployeeService is the orchestration facade for employee operations.
// The store is injected through the constructor so tests can substitute an
// in-memory implementation.
type EmployeeService struct {
	store db.Store
}

// NewEmployeeService returns a facade backed by the given store.
func NewEmployeeService(store db.Store) *EmployeeService {
	return &EmployeeService{store: store}
}

// SaveEmployee persists a transient employee and returns it with its
// store-assigned ID set.
func (s *EmployeeService) SaveEmployee(e model.Employee) (model.Employee, error) {
	id, err := s.store.CreateEmployee(e)
	if err != nil {
		return model.Employee{}, err
	}
	e.ID = id
	return e, nil
}

// GetAllEmployees returns every persisted employee.
func (s *EmployeeService) GetAllEmployees() ([]model.Employee, error) {
	return s.store.GetAllEmployees()
}

// GetEmployeeByID returns the employee with the given ID, or (nil, nil) when
// no such employee exists.
func (s *EmployeeService) GetEmployeeByID(id int) (*model.Employee, error) {
	return s.store.GetEmployeeByID(id)
}

// GetEmployeesByFirstName returns all employees with the given first name.
func (s *EmployeeService) GetEmployeesByFirstName(firstName string) ([]model.Employee, error) {
	return s.store.FindEmployeesByFirstName(firstName)
}

// GetEmployeeByEmail returns the employee with the given email, or (nil, nil).
func (s *EmployeeService) GetEmployeeByEmail(email string) (*model.Employee, error) {
	return s.store.FindEmployeeByEmail(email)
}

// GetEmployeesByLastName returns all employees with the given last name.
func (s *EmployeeService) GetEmployeesByLastName(lastName string) ([]model.Employee, error) {
	return s.store.FindEmployeesByLastName(lastName)
}

// GetEmployeesByFirstAndLastName returns all employees matching both names.
func (s *EmployeeService) GetEmployeesByFirstAndLastName(firstName, lastName string) ([]model.Employee, error) {
	return s.store.FindEmployeesByFirstNameAndLastName(firstName, lastName)
}

// SearchEmployees matches the query tokens against names and email addresses.
func (s *EmployeeService) SearchEmployees(query string) ([]model.Employee, error) {
	return s.store.SearchEmployees(query)
}

// UpdateEmployee replaces all mutable fields of a persisted employee.
func (s *EmployeeService) UpdateEmployee(e model.Employee) error {
	return s.store.UpdateEmployee(e)
}

// DeleteEmployee removes an employee by ID; a missing ID is a no-op.
func (s *EmployeeService) DeleteEmployee(id int) error {
	return s.store.DeleteEmployee(id)
}

// CountEmployees returns the number of persisted employees.
func (s *EmployeeService) CountEmployees() (int, error) {
	return s.store.CountEmployees()
}
