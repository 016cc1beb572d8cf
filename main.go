// Copyright (c) 2025 Verist
// StaffDB - employee records store
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for StaffDB.
//
// Usage:
//
//	go run . [flags]
//	./staffdb [flags]
//
// This launches the StaffDB CLI. See --help for options.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/verist/staffdb/ui/cli"
)

// version is set at build time using -ldflags, e.g.:
// go build -ldflags "-X main.version=1.2.3"
var version = "dev"

// main is the entrypoint for the StaffDB CLI.
func main() {
	if os.Getenv("STAFFDB_SHOW_VERSION") == "1" {
		fmt.Fprintf(os.Stderr, "StaffDB version: %s\n", version)
	}

	if err := cli.Execute(); err != nil {
		log.Printf("StaffDB CLI error: %v", err)
		os.Exit(1)
	}
}
