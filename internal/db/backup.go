// Copyright (c) 2025 Verist
// StaffDB - employee records store
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/verist/staffdb/internal/model"
)

// ExportDataForBackupBun exports all employees into a model.BackupData using
// a single Bun transaction so the snapshot is consistent.
func ExportDataForBackupBun(bdb *bun.DB) (*model.BackupData, error) {
	ctx := context.Background()
	var backup *model.BackupData
	err := WithReadTx(ctx, bdb, func(ctx context.Context, tx bun.Tx) error {
		backup = &model.BackupData{SchemaVersion: model.CurrentBackupSchemaVersion}

		var ems []EmployeeModel
		if err := tx.NewSelect().Model(&ems).OrderExpr("id").Scan(ctx); err != nil {
			return err
		}
		backup.Employees = employeeModelsToModels(ems)
		return nil
	})
	if err != nil {
		return nil, queryErr(err)
	}
	return backup, nil
}

// ImportDataFromBackupBun performs a full wipe-and-replace within a single
// transaction to ensure atomicity. Identities from the backup are preserved.
func ImportDataFromBackupBun(bdb *bun.DB, backup *model.BackupData) error {
	ctx := context.Background()
	return WithTx(ctx, bdb, func(ctx context.Context, tx bun.Tx) error {
		if _, err := ExecRaw(ctx, tx, "DELETE FROM employees"); err != nil {
			return err
		}
		for _, e := range backup.Employees {
			em := employeeModelFromModel(e)
			if _, err := tx.NewInsert().Model(&em).Exec(ctx); err != nil {
				return MapDBError(err)
			}
		}
		return nil
	})
}

// IntegrateDataFromBackupBun restores data from a backup in a non-destructive
// way, skipping employees whose identity already exists. The existence check
// and the inserts share one transaction, so the integrate is all-or-nothing.
func IntegrateDataFromBackupBun(bdb *bun.DB, backup *model.BackupData) error {
	ctx := context.Background()
	return WithTx(ctx, bdb, func(ctx context.Context, tx bun.Tx) error {
		for _, e := range backup.Employees {
			exists, err := tx.NewSelect().Model((*EmployeeModel)(nil)).Where("id = ?", e.ID).Exists(ctx)
			if err != nil {
				return err
			}
			if exists {
				continue
			}
			em := employeeModelFromModel(e)
			if _, err := tx.NewInsert().Model(&em).Exec(ctx); err != nil {
				return MapDBError(err)
			}
		}
		return nil
	})
}
