// Package main is the entry point for the ledgerctl operator CLI.
package main

import (
	"os"

	"github.com/finance-tracker/ledger/config"
	"github.com/finance-tracker/ledger/internal/cli"
)

func main() {
	if err := cli.NewRootCommand(config.Load).Execute(); err != nil {
		os.Exit(1)
	}
}
