// Copyright (c) 2025 Verist
// StaffDB - employee records store
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/verist/staffdb/internal/model"
)

// newEmployeeCmd builds the employee command group. Commands and their flags
// are constructed fresh on every call so flag state never carries over
// between executions in the same process.
func newEmployeeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "employee",
		Aliases: []string{"emp"},
		Short:   "Manage employee records",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupDefaultServices(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	applyDefaultFlags(cmd)

	cmd.AddCommand(
		newEmployeeCreateCmd(),
		newEmployeeListCmd(),
		newEmployeeShowCmd(),
		newEmployeeUpdateCmd(),
		newEmployeeDeleteCmd(),
		newEmployeeCountCmd(),
		newEmployeeFindCmd(),
		newEmployeeSearchCmd(),
	)
	return cmd
}

func newEmployeeCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <first-name> <last-name> <email>",
		Short: "Create a new employee",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			emp := model.Employee{FirstName: args[0], LastName: args[1], Email: args[2]}
			saved, err := employeeService().SaveEmployee(emp)
			if err != nil {
				return fmt.Errorf("failed to create employee: %w", err)
			}
			fmt.Printf("Created employee %d: %s\n", saved.ID, saved.String())
			return nil
		},
	}
}

func newEmployeeListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all employees",
		RunE: func(cmd *cobra.Command, args []string) error {
			employees, err := employeeService().GetAllEmployees()
			if err != nil {
				return fmt.Errorf("failed to list employees: %w", err)
			}
			if len(employees) == 0 {
				fmt.Println("No employees found.")
				return nil
			}
			printEmployeeTable(employees)
			return nil
		},
	}
}

func newEmployeeShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a single employee by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid id %q: %w", args[0], err)
			}
			emp, err := employeeService().GetEmployeeByID(id)
			if err != nil {
				return fmt.Errorf("failed to fetch employee: %w", err)
			}
			if emp == nil {
				fmt.Printf("No employee with id %d.\n", id)
				return nil
			}
			fmt.Printf("ID:         %d\n", emp.ID)
			fmt.Printf("First name: %s\n", emp.FirstName)
			fmt.Printf("Last name:  %s\n", emp.LastName)
			fmt.Printf("Email:      %s\n", emp.Email)
			return nil
		},
	}
}

func newEmployeeUpdateCmd() *cobra.Command {
	var firstName, lastName, email string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update fields of an existing employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid id %q: %w", args[0], err)
			}
			svc := employeeService()
			emp, err := svc.GetEmployeeByID(id)
			if err != nil {
				return fmt.Errorf("failed to fetch employee: %w", err)
			}
			if emp == nil {
				return fmt.Errorf("no employee with id %d", id)
			}
			changed := false
			if cmd.Flags().Changed("first-name") {
				emp.FirstName = firstName
				changed = true
			}
			if cmd.Flags().Changed("last-name") {
				emp.LastName = lastName
				changed = true
			}
			if cmd.Flags().Changed("email") {
				emp.Email = email
				changed = true
			}
			if !changed {
				return fmt.Errorf("nothing to update: pass --first-name, --last-name, or --email")
			}
			if err := svc.UpdateEmployee(*emp); err != nil {
				return fmt.Errorf("failed to update employee: %w", err)
			}
			fmt.Printf("Updated employee %d: %s\n", emp.ID, emp.String())
			return nil
		},
	}
	cmd.Flags().StringVar(&firstName, "first-name", "", "New first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "New last name")
	cmd.Flags().StringVar(&email, "email", "", "New email address")
	return cmd
}

func newEmployeeDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete an employee by id",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid id %q: %w", args[0], err)
			}
			if err := employeeService().DeleteEmployee(id); err != nil {
				return fmt.Errorf("failed to delete employee: %w", err)
			}
			fmt.Printf("Deleted employee %d (if it existed).\n", id)
			return nil
		},
	}
}

func newEmployeeCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Count employees",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := employeeService().CountEmployees()
			if err != nil {
				return fmt.Errorf("failed to count employees: %w", err)
			}
			fmt.Printf("%d employee(s).\n", n)
			return nil
		},
	}
}

func newEmployeeFindCmd() *cobra.Command {
	var firstName, lastName, email string

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Find employees by first name, last name, or email",
		Long: `Find employees using the derived finders. Exactly the flags you pass
are applied: --first-name and --last-name together use the combined finder,
--email looks up the single matching employee.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := employeeService()
			hasFirst := cmd.Flags().Changed("first-name")
			hasLast := cmd.Flags().Changed("last-name")
			hasEmail := cmd.Flags().Changed("email")

			switch {
			case hasEmail:
				if hasFirst || hasLast {
					return fmt.Errorf("--email cannot be combined with name flags")
				}
				emp, err := svc.GetEmployeeByEmail(email)
				if err != nil {
					return fmt.Errorf("find by email failed: %w", err)
				}
				if emp == nil {
					fmt.Printf("No employee with email %s.\n", email)
					return nil
				}
				printEmployeeTable([]model.Employee{*emp})
				return nil
			case hasFirst && hasLast:
				employees, err := svc.GetEmployeesByFirstAndLastName(firstName, lastName)
				if err != nil {
					return fmt.Errorf("find by name failed: %w", err)
				}
				printFindResult(employees)
				return nil
			case hasFirst:
				employees, err := svc.GetEmployeesByFirstName(firstName)
				if err != nil {
					return fmt.Errorf("find by first name failed: %w", err)
				}
				printFindResult(employees)
				return nil
			case hasLast:
				employees, err := svc.GetEmployeesByLastName(lastName)
				if err != nil {
					return fmt.Errorf("find by last name failed: %w", err)
				}
				printFindResult(employees)
				return nil
			default:
				return fmt.Errorf("pass at least one of --first-name, --last-name, --email")
			}
		},
	}
	cmd.Flags().StringVar(&firstName, "first-name", "", "First name to match exactly")
	cmd.Flags().StringVar(&lastName, "last-name", "", "Last name to match exactly")
	cmd.Flags().StringVar(&email, "email", "", "Email to match exactly")
	return cmd
}

func newEmployeeSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search employees across name and email fields",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			employees, err := employeeService().SearchEmployees(query)
			if err != nil {
				return fmt.Errorf("search failed: %w", err)
			}
			printFindResult(employees)
			return nil
		},
	}
}

func printFindResult(employees []model.Employee) {
	if len(employees) == 0 {
		fmt.Println("No matching employees.")
		return
	}
	printEmployeeTable(employees)
}

func printEmployeeTable(employees []model.Employee) {
	fmt.Printf("%-6s %-15s %-15s %s\n", "ID", "FIRST NAME", "LAST NAME", "EMAIL")
	for _, e := range employees {
		fmt.Printf("%-6d %-15s %-15s %s\n", e.ID, e.FirstName, e.LastName, e.Email)
	}
}
