// Copyright (c) 2025 Verist
// StaffDB - employee records store
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/klauspost/compress/zstd"
	"github.com/spf13/cobra"

	"github.com/verist/staffdb/internal/db"
	"github.com/verist/staffdb/internal/model"
)

func newBackupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "backup [output-file]",
		Short:   "Export all employee records to a compressed backup file",
		Args:    cobra.MaximumNArgs(1),
		PreRunE: setupDefaultServices,
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := fmt.Sprintf("staffdb-backup-%s.yaml.zst", time.Now().Format("2006-01-02"))
			if len(args) == 1 {
				filename = args[0]
			}

			data, err := db.ExportDataForBackup()
			if err != nil {
				return fmt.Errorf("failed to export data: %w", err)
			}

			if err := writeBackupFile(filename, data); err != nil {
				return err
			}
			fmt.Printf("Backup with %d employee(s) written to %s\n", len(data.Employees), filename)
			return nil
		},
	}
	applyDefaultFlags(cmd)
	return cmd
}

func newRestoreCmd() *cobra.Command {
	var fullRestore bool

	cmd := &cobra.Command{
		Use:   "restore <backup-file>",
		Short: "Restore employee records from a backup file",
		Long: `Restore employee records from a backup created with 'staffdb backup'.
By default records are integrated: employees whose ids already exist are
left untouched. With --full the table is wiped first and the backup
becomes the only content, all inside a single transaction.`,
		Args:    cobra.ExactArgs(1),
		PreRunE: setupDefaultServices,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readBackupFile(args[0])
			if err != nil {
				return err
			}

			if fullRestore {
				if err := db.ImportDataFromBackup(data); err != nil {
					return fmt.Errorf("full restore failed: %w", err)
				}
				fmt.Printf("Full restore complete: %d employee(s).\n", len(data.Employees))
				return nil
			}

			if err := db.IntegrateDataFromBackup(data); err != nil {
				return fmt.Errorf("restore failed: %w", err)
			}
			fmt.Printf("Integrated %d employee record(s) from backup.\n", len(data.Employees))
			return nil
		},
	}
	cmd.Flags().BoolVar(&fullRestore, "full", false, "Perform a full, destructive restore (wipes all existing data first)")
	applyDefaultFlags(cmd)
	return cmd
}

// writeBackupFile marshals the data to YAML and writes it zstd-compressed.
func writeBackupFile(filename string, data *model.BackupData) error {
	raw, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal backup data: %w", err)
	}

	f, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create backup file: %w", err)
	}
	defer f.Close()

	enc, err := zstd.NewWriter(f)
	if err != nil {
		return fmt.Errorf("failed to create compressor: %w", err)
	}
	if _, err := enc.Write(raw); err != nil {
		enc.Close()
		return fmt.Errorf("failed to write backup file: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalize backup file: %w", err)
	}
	return f.Close()
}

// readBackupFile decompresses and unmarshals a backup created by writeBackupFile.
func readBackupFile(filename string) (*model.BackupData, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open backup file: %w", err)
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to create decompressor: %w", err)
	}
	defer dec.Close()

	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup file: %w", err)
	}

	var data model.BackupData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse backup file: %w", err)
	}
	if data.SchemaVersion > model.CurrentBackupSchemaVersion {
		return nil, fmt.Errorf("backup schema version %d is newer than supported version %d",
			data.SchemaVersion, model.CurrentBackupSchemaVersion)
	}
	return &data, nil
}
