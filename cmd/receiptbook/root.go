package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"receiptbook/internal/auth"
	"receiptbook/internal/config"
	"receiptbook/internal/events"
	"receiptbook/internal/service"
	"receiptbook/internal/storage"
	"receiptbook/internal/storage/sqlite"
)

// app wires the storage handle and the services built over it. The
// store is opened once per invocation and shared by reference; there is
// no hidden global handle.
type app struct {
	cfg         *config.Config
	store       storage.Store
	bus         *events.Bus
	credentials *auth.CredentialStore
	receipts    *service.ReceiptService
	expenses    *service.ExpenseService
	summary     *service.SummaryService
}

func (a *app) open(dbPath string) error {
	if dbPath != "" {
		a.cfg.DBPath = dbPath
	}
	if err := a.cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	store, err := sqlite.New(a.cfg.DBPath)
	if err != nil {
		// Storage unavailability is fatal; there is no local recovery
		// for a broken database file.
		return fmt.Errorf("initialize storage: %w", err)
	}
	slog.Debug("Storage initialized", "database", a.cfg.DBPath)

	a.store = store
	a.bus = events.NewBus()
	a.credentials = auth.NewCredentialStore(store)
	a.receipts = service.NewReceiptService(store, a.bus)
	a.expenses = service.NewExpenseService(store, a.bus)
	a.summary = service.NewSummaryService(store)
	return nil
}

func (a *app) close() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			slog.Warn("Closing storage failed", "error", err)
		}
	}
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Load()}
	var dbPath string

	rootCmd := &cobra.Command{
		Use:           "receiptbook",
		Short:         "Maintenance receipt book for a housing society",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.open(dbPath)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			a.close()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "",
		"path to the SQLite database file (default from RECEIPTBOOK_DB_PATH)")

	rootCmd.AddCommand(
		newSetupCmd(a),
		newStatusCmd(a),
		newLoginCmd(a),
		newProfileCmd(a),
		newReceiptCmd(a),
		newExpenseCmd(a),
		newSummaryCmd(a),
	)
	return rootCmd
}
