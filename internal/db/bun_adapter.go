package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"

	"github.com/verist/staffdb/internal/model"
)

// EmployeeModel maps the `employees` table for Bun queries.
type EmployeeModel struct {
	bun.BaseModel `bun:"table:employees"`
	ID            int    `bun:"id,pk,autoincrement"`
	FirstName     string `bun:"first_name"`
	LastName      string `bun:"last_name"`
	Email         string `bun:"email"`
}

// --- Mapping helpers (centralized conversions) ---

func employeeModelToModel(em EmployeeModel) model.Employee {
	return model.Employee{ID: em.ID, FirstName: em.FirstName, LastName: em.LastName, Email: em.Email}
}

func employeeModelFromModel(e model.Employee) EmployeeModel {
	return EmployeeModel{ID: e.ID, FirstName: e.FirstName, LastName: e.LastName, Email: e.Email}
}

func employeeModelsToModels(ems []EmployeeModel) []model.Employee {
	out := make([]model.Employee, 0, len(ems))
	for _, em := range ems {
		out = append(out, employeeModelToModel(em))
	}
	return out
}

// CreateEmployeeBun inserts a new employee within its own unit of work and
// returns the store-assigned ID. The ID column is never supplied by the
// caller; a transient entity becomes persistent only through a committed
// insert here.
func CreateEmployeeBun(bdb *bun.DB, e model.Employee) (int, error) {
	ctx := context.Background()
	em := &EmployeeModel{FirstName: e.FirstName, LastName: e.LastName, Email: e.Email}
	err := WithTx(ctx, bdb, func(ctx context.Context, tx bun.Tx) error {
		// Returning("id") keeps ID assignment portable across Postgres and MySQL.
		if _, err := tx.NewInsert().Model(em).
			Column("first_name", "last_name", "email").
			Returning("id").
			Exec(ctx); err != nil {
			return MapDBError(err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return em.ID, nil
}

// GetAllEmployeesBun retrieves every persisted employee. Order is the store
// default; no ordering is guaranteed to callers.
func GetAllEmployeesBun(bdb *bun.DB) ([]model.Employee, error) {
	ctx := context.Background()
	var ems []EmployeeModel
	err := WithReadTx(ctx, bdb, func(ctx context.Context, tx bun.Tx) error {
		return tx.NewSelect().Model(&ems).Scan(ctx)
	})
	if err != nil {
		return nil, queryErr(err)
	}
	return employeeModelsToModels(ems), nil
}

// GetEmployeeByIDBun retrieves an employee by ID. A missing row is an
// explicit empty outcome, (nil, nil), never an error.
func GetEmployeeByIDBun(bdb *bun.DB, id int) (*model.Employee, error) {
	ctx := context.Background()
	var em EmployeeModel
	err := WithReadTx(ctx, bdb, func(ctx context.Context, tx bun.Tx) error {
		return tx.NewSelect().Model(&em).Where("id = ?", id).Limit(1).Scan(ctx)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, queryErr(err)
	}
	m := employeeModelToModel(em)
	return &m, nil
}

// UpdateEmployeeBun replaces all mutable fields of an existing employee.
// The entity must carry a previously assigned ID; if the row no longer
// exists at commit time the whole unit of work fails with ErrNotFound.
func UpdateEmployeeBun(bdb *bun.DB, e model.Employee) error {
	ctx := context.Background()
	em := employeeModelFromModel(e)
	return WithTx(ctx, bdb, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewUpdate().Model(&em).
			Column("first_name", "last_name", "email").
			WherePK().
			Exec(ctx)
		if err != nil {
			return MapDBError(err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return queryErr(err)
		}
		if n == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// DeleteEmployeeBun removes an employee by ID as a single atomic load-then-
// remove. Deleting an ID that does not exist is a no-op, not an error.
func DeleteEmployeeBun(bdb *bun.DB, id int) error {
	ctx := context.Background()
	return WithTx(ctx, bdb, func(ctx context.Context, tx bun.Tx) error {
		var em EmployeeModel
		exists, err := tx.NewSelect().Model(&em).Where("id = ?", id).Exists(ctx)
		if err != nil {
			return queryErr(err)
		}
		if !exists {
			return nil
		}
		if _, err := tx.NewDelete().Model((*EmployeeModel)(nil)).Where("id = ?", id).Exec(ctx); err != nil {
			return MapDBError(err)
		}
		return nil
	})
}

// CountEmployeesBun returns the number of persisted employees.
func CountEmployeesBun(bdb *bun.DB) (int, error) {
	ctx := context.Background()
	var count int
	err := WithReadTx(ctx, bdb, func(ctx context.Context, tx bun.Tx) error {
		n, err := tx.NewSelect().Model((*EmployeeModel)(nil)).Count(ctx)
		count = n
		return err
	})
	if err != nil {
		return 0, queryErr(err)
	}
	return count, nil
}

// SearchEmployeesBun performs a portable fuzzy search over employees using
// simple tokenized LIKE matching across first name, last name, and email.
// Tokens are ANDed together; within each token we match any of the columns.
func SearchEmployeesBun(bdb *bun.DB, q string) ([]model.Employee, error) {
	ctx := context.Background()
	tokens := TokenizeSearchQuery(q)
	var ems []EmployeeModel
	err := WithReadTx(ctx, bdb, func(ctx context.Context, tx bun.Tx) error {
		sel := tx.NewSelect().Model(&ems)
		for _, tok := range tokens {
			like := "%" + tok + "%"
			// LOWER(...) for case-insensitive matching across engines.
			sel = sel.Where("(LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ?)", like, like, like)
		}
		return sel.OrderExpr("id").Scan(ctx)
	})
	if err != nil {
		return nil, queryErr(err)
	}
	return employeeModelsToModels(ems), nil
}
