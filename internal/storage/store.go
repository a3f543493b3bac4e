// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"receiptbook/internal/models"
)

// ErrNotFound is returned when a requested record does not exist. The
// main consumer is the credential layer, which maps a missing admin
// profile to "not set up" rather than an error.
var ErrNotFound = errors.New("record not found")

// Store defines the persistence operations for the receipt book.
// This abstraction keeps the credential, ledger, and export layers
// independent of the SQLite implementation.
type Store interface {
	// GetAdmin retrieves the singleton admin profile.
	// Returns ErrNotFound when no profile has been created yet.
	GetAdmin(ctx context.Context) (*models.Admin, error)

	// PutAdmin inserts or replaces the singleton admin profile under
	// its fixed key.
	PutAdmin(ctx context.Context, admin *models.Admin) error

	// AddReceipt mints the next display number and inserts the receipt
	// as one atomic unit: the sequence counter never advances without
	// the matching row, and vice versa. On success the receipt's ID and
	// ReceiptNumber fields are populated.
	AddReceipt(ctx context.Context, receipt *models.Receipt) error

	// ListReceipts returns all receipts in storage order. Callers that
	// want newest-first must reverse.
	ListReceipts(ctx context.Context) ([]models.Receipt, error)

	// LastReceiptNumber returns the current value of the sequence
	// counter, i.e. the numeric part of the most recently minted
	// display number (0 before any receipt exists).
	LastReceiptNumber(ctx context.Context) (int64, error)

	// AddExpenseReport inserts the report and its items, populating the
	// report's ID. The stored total is taken as given.
	AddExpenseReport(ctx context.Context, report *models.ExpenseReport) error

	// ListExpenseReports returns all expense reports with their items,
	// in storage order.
	ListExpenseReports(ctx context.Context) ([]models.ExpenseReport, error)

	// Close releases any resources held by the store.
	Close() error
}
