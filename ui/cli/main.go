// Copyright (c) 2025 Verist
// StaffDB - employee records store
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the command-line interface (CLI) for StaffDB using the
// Cobra library. It defines the root command, subcommands (employee, backup,
// restore, db-maintain, demo), flags, and the main entry point for execution.

package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	log "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/verist/staffdb/internal/config"
	"github.com/verist/staffdb/internal/db"
	"github.com/verist/staffdb/internal/service"
)

var version = "dev"   // this will be set by the linker
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)

var appConfig config.Config

// setupDefaultServices loads configuration and initializes the database.
// It runs as PersistentPreRunE for every command that touches the store.
func setupDefaultServices(cmd *cobra.Command, args []string) error {
	optionalConfigPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	defaults := map[string]any{
		"database.type": "sqlite",
		"database.dsn":  "./staffdb.db",
	}

	appConfig, err = config.LoadConfig[config.Config](cmd, defaults, optionalConfigPath)
	// A "file not found" error is expected on first run, so we handle it
	// specifically and write a default config for subsequent runs.
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		if writeErr := config.WriteConfigFile(&appConfig, false); writeErr != nil {
			log.Warnf("Warning: could not write default config file: %v", writeErr)
		}
	} else if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	// Post-process config to ensure critical values are not empty, falling
	// back to defaults. This handles config files with empty values.
	if appConfig.Database.Type == "" {
		appConfig.Database.Type = defaults["database.type"].(string)
		viper.Set("database.type", appConfig.Database.Type)
	}
	if appConfig.Database.Dsn == "" {
		appConfig.Database.Dsn = defaults["database.dsn"].(string)
		viper.Set("database.dsn", appConfig.Database.Dsn)
	}

	if appConfig.Debug {
		db.SetDebug(true)
	}

	// The store is a process-wide resource; skip re-initialization when a
	// previous command in the same process (or a test) already set it up.
	if db.IsInitialized() {
		return nil
	}
	if err := db.InitDB(appConfig.Database.Type, appConfig.Database.Dsn); err != nil {
		return fmt.Errorf("database initialization failed: %w", err)
	}
	return nil
}

// employeeService returns the facade over the initialized store.
func employeeService() *service.EmployeeService {
	return service.NewEmployeeService(db.DefaultStore())
}

// Execute runs the root command and tears the store down on exit.
func Execute() error {
	defer func() {
		if err := db.Shutdown(); err != nil {
			log.Errorf("Error closing database: %v", err)
		}
	}()

	rootCmd := NewRootCmd()
	return rootCmd.Execute()
}

func applyDefaultFlags(cmd *cobra.Command) {
	cmd.Flags().String("database.type", "sqlite", "Database type (e.g., sqlite, postgres, mysql)")
	cmd.Flags().String("database.dsn", "./staffdb.db", "Database connection string (DSN)")
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if cmd.Flags().Changed("config") {
		path, err := cmd.Flags().GetString("config")
		if err != nil {
			return nil, fmt.Errorf("could not read --config flag: %w", err)
		}
		if path == "" {
			return nil, nil
		}
		// Make sure the user-provided file exists to avoid unwanted behavior.
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
		}
		return &path, nil
	}
	return nil, nil
}

// NewRootCmd creates and configures a new root cobra command. Every call
// builds the whole command tree from scratch, including subcommands and
// their flags, so repeated executions in one process (the tests do this)
// never observe flag state from a previous run.
func NewRootCmd() *cobra.Command {
	var cfgFile string
	var verbose bool
	var showVersionFlag bool

	cmd := &cobra.Command{
		Use:   "staffdb",
		Short: "StaffDB is a small transactional employee records store.",
		Long: `StaffDB persists employee records in a relational database
(SQLite, PostgreSQL, or MySQL) behind one consistent interface. Every
operation runs in its own transaction; finders like find-by-email are
derived from a declarative registry instead of hand-written queries.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if showVersionFlag {
				fmt.Printf("%s\n", compositeVersion())
				os.Exit(0)
			}
			if verbose {
				db.SetDebug(true)
			}
			return setupDefaultServices(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.Version = compositeVersion()

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output (sets -v for DB logs)")
	cmd.PersistentFlags().BoolVarP(&showVersionFlag, "version", "V", false, "Print version and exit")
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
	applyDefaultFlags(cmd)

	// Lightweight `version` subcommand so users and CI can run `staffdb version`.
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolveBuildVersion(nil)
			fmt.Printf("version: %s\n", v)
			fmt.Printf("commit: %s\n", c)
			if d != "" {
				fmt.Printf("built: %s\n", d)
			}
		},
	}

	cmd.AddCommand(
		newEmployeeCmd(),
		newBackupCmd(),
		newRestoreCmd(),
		newDBMaintainCmd(),
		newDemoCmd(),
		versionCmd,
	)

	return cmd
}

func compositeVersion() string {
	v, c, d := resolveBuildVersion(nil)
	out := v
	if c != "" && c != "dev" {
		out = out + " (" + c + ")"
	}
	if d != "" {
		out = out + " built: " + d
	}
	return out
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If `info` is nil, it reads build info from
// the runtime. This helper is separated to make unit testing straightforward.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := version
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	var ok bool
	if info == nil {
		if infoLocal, found := debug.ReadBuildInfo(); found {
			info = infoLocal
			ok = true
		}
	} else {
		ok = true
	}

	if ok && info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		// If Main doesn't contain the version (some build paths), try to
		// find our module in the dependencies and use that version.
		if (resolvedVersion == "dev" || resolvedVersion == "(devel)") && info.Deps != nil {
			for _, dep := range info.Deps {
				if dep.Path == "github.com/verist/staffdb" && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}

		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}

// newDBMaintainCmd builds the command that runs engine-specific maintenance
// against the configured DSN.
func newDBMaintainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "db-maintain",
		Short:   "Run database maintenance (VACUUM, OPTIMIZE, integrity checks)",
		PreRunE: setupDefaultServices,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("Running database maintenance...")
			if err := db.RunDBMaintenance(appConfig.Database.Type, appConfig.Database.Dsn); err != nil {
				return fmt.Errorf("maintenance failed: %w", err)
			}
			fmt.Println("Maintenance complete.")
			return nil
		},
	}
	applyDefaultFlags(cmd)
	return cmd
}
