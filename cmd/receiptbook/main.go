// Command receiptbook is the local record-keeping tool for a small
// residential society: one administrator, a receipt ledger, an expense
// ledger, and PDF/spreadsheet exports. Everything lives in a single
// SQLite file; there is no server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"receiptbook/pkg/logging"
)

func main() {
	// Optional .env for local overrides; absence is fine.
	_ = godotenv.Load()
	logging.Setup()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
