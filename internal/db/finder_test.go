// Copyright (c) 2025 Verist
// StaffDB - employee records store
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"errors"
	"reflect"
	"testing"

	"github.com/verist/staffdb/internal/model"
)

func TestDeriveFinderColumns(t *testing.T) {
	cases := []struct {
		name    string
		want    []string
		wantErr bool
	}{
		{"FindByFirstName", []string{"first_name"}, false},
		{"FindByLastName", []string{"last_name"}, false},
		{"FindByEmail", []string{"email"}, false},
		{"FindByFirstNameAndLastName", []string{"first_name", "last_name"}, false},
		{"FindByFirstNameAndEmail", []string{"first_name", "email"}, false},
		{"FindBySalary", nil, true},
		{"FindBy", nil, true},
		{"GetByEmail", nil, true},
		{"FindByFirstNameAndSalary", nil, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cols, err := deriveFinderColumns(c.name)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected derivation error for %s, got columns %v", c.name, cols)
				}
				return
			}
			if err != nil {
				t.Fatalf("deriveFinderColumns(%s) failed: %v", c.name, err)
			}
			if !reflect.DeepEqual(cols, c.want) {
				t.Fatalf("deriveFinderColumns(%s) = %v, want %v", c.name, cols, c.want)
			}
		})
	}
}

func TestNewFinderRegistry_DeclaredFindersResolve(t *testing.T) {
	r, err := NewFinderRegistry()
	if err != nil {
		t.Fatalf("NewFinderRegistry failed: %v", err)
	}
	for _, f := range employeeFinders {
		if _, ok := r.finders[f.name]; !ok {
			t.Fatalf("declared finder %s missing from registry", f.name)
		}
	}
}

func TestFinder_UnknownNameAndArity(t *testing.T) {
	newTestDB(t)
	bdb := store.BunDB()
	r, err := NewFinderRegistry()
	if err != nil {
		t.Fatalf("NewFinderRegistry failed: %v", err)
	}

	if _, err := r.Find(bdb, "FindByShoeSize", "42"); !errors.Is(err, ErrQuery) {
		t.Fatalf("expected ErrQuery for unknown finder, got: %v", err)
	}
	if _, err := r.Find(bdb, "FindByFirstNameAndLastName", "John"); !errors.Is(err, ErrQuery) {
		t.Fatalf("expected ErrQuery for wrong argument count, got: %v", err)
	}
	if _, err := r.FindOne(bdb, "FindByFirstName", "John"); !errors.Is(err, ErrQuery) {
		t.Fatalf("expected ErrQuery when using FindOne on a multi-row finder, got: %v", err)
	}
}

func TestFinder_NoMatchReturnsEmpty(t *testing.T) {
	newTestDB(t)

	got, err := FindEmployeesByFirstName("Nobody")
	if err != nil {
		t.Fatalf("FindEmployeesByFirstName failed: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d rows", len(got))
	}

	one, err := FindEmployeeByEmail("ghost@example.com")
	if err != nil {
		t.Fatalf("FindEmployeeByEmail failed: %v", err)
	}
	if one != nil {
		t.Fatalf("expected nil for missing email, got %+v", one)
	}
}

func TestFinder_CombinedNameFinder(t *testing.T) {
	newTestDB(t)

	seed := []model.Employee{
		{FirstName: "John", LastName: "Doe", Email: "john.doe@example.com"},
		{FirstName: "John", LastName: "Wilson", Email: "john.wilson@example.com"},
		{FirstName: "Jane", LastName: "Doe", Email: "jane.doe@example.com"},
	}
	for _, e := range seed {
		if _, err := CreateEmployee(e); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	got, err := store.FindEmployeesByFirstNameAndLastName("John", "Doe")
	if err != nil {
		t.Fatalf("combined finder failed: %v", err)
	}
	if len(got) != 1 || got[0].Email != "john.doe@example.com" {
		t.Fatalf("expected only John Doe, got %+v", got)
	}
}

func TestFinder_ResultsOrderedByID(t *testing.T) {
	newTestDB(t)

	// Insert out of alphabetical order; the finder must order by id.
	for _, e := range []model.Employee{
		{FirstName: "John", LastName: "Zimmer", Email: "jz@example.com"},
		{FirstName: "John", LastName: "Abbott", Email: "ja@example.com"},
	} {
		if _, err := CreateEmployee(e); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	got, err := FindEmployeesByFirstName("John")
	if err != nil {
		t.Fatalf("FindEmployeesByFirstName failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	if got[0].ID > got[1].ID {
		t.Fatalf("expected results ordered by id, got %v then %v", got[0].ID, got[1].ID)
	}
	if got[0].LastName != "Zimmer" {
		t.Fatalf("expected insertion order by id, got %+v first", got[0])
	}
}

func TestFindEmployeeByEmail_DuplicateLowestIDWins(t *testing.T) {
	newTestDB(t)

	// The schema does not enforce email uniqueness. When two rows share an
	// email, the unique finder returns the first inserted one.
	firstID, err := CreateEmployee(model.Employee{FirstName: "Old", LastName: "Row", Email: "dup@example.com"})
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if _, err := CreateEmployee(model.Employee{FirstName: "New", LastName: "Row", Email: "dup@example.com"}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	got, err := FindEmployeeByEmail("dup@example.com")
	if err != nil {
		t.Fatalf("FindEmployeeByEmail failed: %v", err)
	}
	if got == nil || got.ID != firstID {
		t.Fatalf("expected lowest id %d to win, got %+v", firstID, got)
	}
}
