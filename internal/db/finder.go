// Copyright (c) 2025 Verist
// StaffDB - employee records store
// This source code is licensed under the MIT license found in the LICENSE file.

// This file implements the derived finder layer: read operations whose filter
// predicate is derived from a method-style name ("FindByFirstName",
// "FindByFirstNameAndLastName") rather than hand-written. Derivation happens
// exactly once, at store construction, against a static field→column table;
// an underivable name aborts startup. There is no call-time reflection.
package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/uptrace/bun"

	"github.com/verist/staffdb/internal/model"
)

// finderFields is the set of employee fields a finder name may reference,
// mapped to their columns. Identity is excluded; lookups by ID go through
// GetEmployeeByID.
var finderFields = map[string]string{
	"FirstName": "first_name",
	"LastName":  "last_name",
	"Email":     "email",
}

// employeeFinders declares the finder surface of the employee store.
// unique marks finders that return at most one row.
var employeeFinders = []struct {
	name   string
	unique bool
}{
	{"FindByFirstName", false},
	{"FindByEmail", true},
	{"FindByLastName", false},
	{"FindByFirstNameAndLastName", false},
}

// derivedFinder is one resolved entry of the registry.
type derivedFinder struct {
	name    string
	columns []string
	unique  bool
}

// FinderRegistry holds the finder name → filter predicate mapping, built once
// and validated at startup.
type FinderRegistry struct {
	finders map[string]derivedFinder
}

// NewFinderRegistry derives and validates all declared employee finders.
// It fails fast when a name cannot be mapped onto known fields.
func NewFinderRegistry() (*FinderRegistry, error) {
	r := &FinderRegistry{finders: make(map[string]derivedFinder, len(employeeFinders))}
	for _, f := range employeeFinders {
		cols, err := deriveFinderColumns(f.name)
		if err != nil {
			return nil, err
		}
		if f.unique && len(cols) != 1 {
			return nil, fmt.Errorf("finder %s: unique finders take exactly one field", f.name)
		}
		r.finders[f.name] = derivedFinder{name: f.name, columns: cols, unique: f.unique}
	}
	return r, nil
}

// deriveFinderColumns parses "FindBy<Field>[And<Field2>...]" into columns.
func deriveFinderColumns(name string) ([]string, error) {
	rest, ok := strings.CutPrefix(name, "FindBy")
	if !ok || rest == "" {
		return nil, fmt.Errorf("finder %s: name must have the form FindBy<Field>", name)
	}
	fields := strings.Split(rest, "And")
	cols := make([]string, 0, len(fields))
	for _, field := range fields {
		col, ok := finderFields[field]
		if !ok {
			return nil, fmt.Errorf("finder %s: unknown employee field %q", name, field)
		}
		cols = append(cols, col)
	}
	return cols, nil
}

// Find executes the named derived finder with one argument per derived field,
// inside its own read-only unit of work. Results are ordered by id so that
// multi-row finders are deterministic regardless of insertion order.
func (r *FinderRegistry) Find(bdb *bun.DB, name string, args ...string) ([]model.Employee, error) {
	f, ok := r.finders[name]
	if !ok {
		return nil, fmt.Errorf("%w: no derived finder %q", ErrQuery, name)
	}
	if len(args) != len(f.columns) {
		return nil, fmt.Errorf("%w: finder %s takes %d argument(s), got %d", ErrQuery, name, len(f.columns), len(args))
	}

	ctx := context.Background()
	var ems []EmployeeModel
	err := WithReadTx(ctx, bdb, func(ctx context.Context, tx bun.Tx) error {
		sel := tx.NewSelect().Model(&ems)
		for i, col := range f.columns {
			sel = sel.Where("? = ?", bun.Ident(col), args[i])
		}
		sel = sel.OrderExpr("id")
		if f.unique {
			// The schema does not enforce uniqueness for any finder field;
			// on duplicates the lowest id (first inserted) wins.
			sel = sel.Limit(1)
		}
		return sel.Scan(ctx)
	})
	if err != nil {
		return nil, queryErr(err)
	}
	return employeeModelsToModels(ems), nil
}

// FindOne executes a unique derived finder and returns its single match, or
// (nil, nil) when no row matches.
func (r *FinderRegistry) FindOne(bdb *bun.DB, name string, args ...string) (*model.Employee, error) {
	f, ok := r.finders[name]
	if !ok {
		return nil, fmt.Errorf("%w: no derived finder %q", ErrQuery, name)
	}
	if !f.unique {
		return nil, fmt.Errorf("%w: finder %s returns multiple rows, use Find", ErrQuery, name)
	}
	out, err := r.Find(bdb, name, args...)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return &out[0], nil
}
