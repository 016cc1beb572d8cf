// Copyright (c) 2025 Verist
// StaffDB - employee records store
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"reflect"
	"testing"

	"github.com/verist/staffdb/internal/model"
)

func TestTokenizeSearchQuery(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"   ", nil},
		{"John", []string{"john"}},
		{"John Doe", []string{"john", "doe"}},
		{"  MIXED   Case\tquery ", []string{"mixed", "case", "query"}},
	}
	for _, c := range cases {
		got := TokenizeSearchQuery(c.in)
		if !reflect.DeepEqual(got, c.want) {
			t.Fatalf("TokenizeSearchQuery(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestFilterEmployeesByTokens(t *testing.T) {
	employees := []model.Employee{
		{ID: 1, FirstName: "John", LastName: "Doe", Email: "john.doe@example.com"},
		{ID: 2, FirstName: "Jane", LastName: "Smith", Email: "jane.smith@example.com"},
		{ID: 3, FirstName: "John", LastName: "Wilson", Email: "john.wilson@corp.example.com"},
	}

	got := FilterEmployeesByTokens(employees, []string{"john"})
	if len(got) != 2 {
		t.Fatalf("expected 2 matches for 'john', got %d", len(got))
	}

	// All tokens must match the same record.
	got = FilterEmployeesByTokens(employees, []string{"john", "corp"})
	if len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("expected only the corp John, got %+v", got)
	}

	got = FilterEmployeesByTokens(employees, []string{"nobody"})
	if len(got) != 0 {
		t.Fatalf("expected no matches, got %+v", got)
	}

	got = FilterEmployeesByTokens(employees, nil)
	if len(got) != len(employees) {
		t.Fatalf("expected nil tokens to pass everything through, got %d", len(got))
	}
}

func TestSearchEmployees_AgainstStore(t *testing.T) {
	newTestDB(t)

	seed := []model.Employee{
		{FirstName: "John", LastName: "Doe", Email: "john.doe@example.com"},
		{FirstName: "Jane", LastName: "Smith", Email: "jane.smith@corp.example.com"},
		{FirstName: "John", LastName: "Wilson", Email: "john.wilson@example.com"},
	}
	for _, e := range seed {
		if _, err := CreateEmployee(e); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	got, err := SearchEmployees("john")
	if err != nil {
		t.Fatalf("SearchEmployees failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 matches for 'john', got %d", len(got))
	}

	// Case-insensitive and matching across fields.
	got, err = SearchEmployees("CORP")
	if err != nil {
		t.Fatalf("SearchEmployees failed: %v", err)
	}
	if len(got) != 1 || got[0].LastName != "Smith" {
		t.Fatalf("expected email substring match for Jane, got %+v", got)
	}

	// Multiple tokens narrow the result.
	got, err = SearchEmployees("john wilson")
	if err != nil {
		t.Fatalf("SearchEmployees failed: %v", err)
	}
	if len(got) != 1 || got[0].LastName != "Wilson" {
		t.Fatalf("expected only John Wilson, got %+v", got)
	}

	// Empty query returns everything.
	got, err = SearchEmployees("")
	if err != nil {
		t.Fatalf("SearchEmployees failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected all rows for empty query, got %d", len(got))
	}
}

func TestDefaultEmployeeSearcher(t *testing.T) {
	if DefaultEmployeeSearcher() != nil {
		t.Fatalf("expected nil searcher before InitDB")
	}

	newTestDB(t)

	s := DefaultEmployeeSearcher()
	if s == nil {
		t.Fatalf("expected a searcher after InitDB")
	}
	if _, err := CreateEmployee(model.Employee{FirstName: "Find", LastName: "Me", Email: "findme@example.com"}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	got, err := s.SearchEmployees("findme")
	if err != nil {
		t.Fatalf("SearchEmployees failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 match, got %d", len(got))
	}
}
