// Copyright (c) 2025 Verist
// StaffDB - employee records store
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verist/staffdb/internal/model"
)

// newDemoCmd builds the demo command, which walks through the full lifecycle
// against the configured database: create, list, find, update, count, delete.
// Useful as a smoke test of a freshly configured backend.
func newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "demo",
		Short:   "Run an end-to-end demo of the employee lifecycle",
		PreRunE: setupDefaultServices,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := employeeService()

			fmt.Println("--- Creating employees ---")
			seed := []model.Employee{
				{FirstName: "John", LastName: "Doe", Email: "john.doe@example.com"},
				{FirstName: "Jane", LastName: "Smith", Email: "jane.smith@example.com"},
				{FirstName: "John", LastName: "Wilson", Email: "john.wilson@example.com"},
			}
			created := make([]model.Employee, 0, len(seed))
			for _, e := range seed {
				saved, err := svc.SaveEmployee(e)
				if err != nil {
					return fmt.Errorf("demo create failed: %w", err)
				}
				fmt.Printf("Saved: %s (id %d)\n", saved.String(), saved.ID)
				created = append(created, saved)
			}

			fmt.Println("\n--- All employees ---")
			all, err := svc.GetAllEmployees()
			if err != nil {
				return fmt.Errorf("demo list failed: %w", err)
			}
			printEmployeeTable(all)

			fmt.Println("\n--- Employees with first name John ---")
			johns, err := svc.GetEmployeesByFirstName("John")
			if err != nil {
				return fmt.Errorf("demo find failed: %w", err)
			}
			printEmployeeTable(johns)

			fmt.Println("\n--- Updating Jane's email ---")
			jane := created[1]
			jane.Email = "jane.smith@corp.example.com"
			if err := svc.UpdateEmployee(jane); err != nil {
				return fmt.Errorf("demo update failed: %w", err)
			}
			fetched, err := svc.GetEmployeeByEmail("jane.smith@corp.example.com")
			if err != nil {
				return fmt.Errorf("demo find by email failed: %w", err)
			}
			if fetched != nil {
				fmt.Printf("Updated: %s\n", fetched.String())
			}

			count, err := svc.CountEmployees()
			if err != nil {
				return fmt.Errorf("demo count failed: %w", err)
			}
			fmt.Printf("\n--- Count: %d employee(s) ---\n", count)

			fmt.Println("\n--- Deleting the demo employees ---")
			for _, e := range created {
				if err := svc.DeleteEmployee(e.ID); err != nil {
					return fmt.Errorf("demo delete failed: %w", err)
				}
			}
			count, err = svc.CountEmployees()
			if err != nil {
				return fmt.Errorf("demo count failed: %w", err)
			}
			fmt.Printf("Count after cleanup: %d\n", count)
			return nil
		},
	}
	applyDefaultFlags(cmd)
	return cmd
}
