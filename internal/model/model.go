package model

import "fmt"

// Employee is the single record type StaffDB persists. An employee is
// transient until its first successful insert assigns an ID; from then on the
// ID is immutable for the lifetime of the record.
type Employee struct {
	ID        int    `yaml:"id"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Email     string `yaml:"email"`
}

// String returns the "First Last <email>" representation.
func (e Employee) String() string {
	return fmt.Sprintf("%s %s <%s>", e.FirstName, e.LastName, e.Email)
}

// IsTransient reports whether the employee has not been persisted yet.
func (e Employee) IsTransient() bool {
	return e.ID == 0
}

// CurrentBackupSchemaVersion is stamped into every export; restores refuse
// files written by a newer schema.
const CurrentBackupSchemaVersion = 1

// BackupData is a consistent snapshot of the store, used for export/import.
type BackupData struct {
	SchemaVersion int        `yaml:"schema_version"`
	Employees     []Employee `yaml:"employees"`
}
