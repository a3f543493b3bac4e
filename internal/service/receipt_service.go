// Package service holds the ledger-facing application services: they
// validate input, delegate to storage, and broadcast change
// notifications after successful mutations.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"receiptbook/internal/events"
	"receiptbook/internal/models"
	"receiptbook/internal/storage"
)

// ReceiptService is the receipt ledger: appends receipts with minted
// display numbers and reads them back for listing, search, and export.
type ReceiptService struct {
	store storage.Store
	bus   *events.Bus
}

// NewReceiptService creates a ReceiptService with the given storage
// backend and change bus. The bus may be nil when no one listens.
func NewReceiptService(store storage.Store, bus *events.Bus) *ReceiptService {
	return &ReceiptService{store: store, bus: bus}
}

// Add validates and records a payment, returning the stored receipt
// with its assigned identity and display number.
func (s *ReceiptService) Add(ctx context.Context, name, date string, amount models.Money, maintenancePeriod string) (*models.Receipt, error) {
	receipt := &models.Receipt{
		Name:              name,
		Date:              date,
		Amount:            amount,
		MaintenancePeriod: maintenancePeriod,
	}
	if err := receipt.Validate(); err != nil {
		return nil, err
	}

	if err := s.store.AddReceipt(ctx, receipt); err != nil {
		slog.Error("AddReceipt failed", "error", err)
		return nil, fmt.Errorf("add receipt: %w", err)
	}

	slog.Info("Receipt recorded",
		"receipt_number", receipt.ReceiptNumber,
		"name", receipt.Name,
		"amount", receipt.Amount.String(),
	)

	if s.bus != nil {
		s.bus.Publish()
	}
	return receipt, nil
}

// List returns all receipts newest-first.
func (s *ReceiptService) List(ctx context.Context) ([]models.Receipt, error) {
	receipts, err := s.store.ListReceipts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list receipts: %w", err)
	}
	// Storage order is oldest-first; the listing view wants recency.
	for i, j := 0, len(receipts)-1; i < j; i, j = i+1, j-1 {
		receipts[i], receipts[j] = receipts[j], receipts[i]
	}
	return receipts, nil
}

// Search returns receipts whose recipient name or display number
// contains the query, case-insensitively, newest-first. An empty query
// matches everything.
func (s *ReceiptService) Search(ctx context.Context, query string) ([]models.Receipt, error) {
	receipts, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if query == "" {
		return receipts, nil
	}
	q := strings.ToLower(query)
	matched := receipts[:0]
	for _, r := range receipts {
		if strings.Contains(strings.ToLower(r.Name), q) ||
			strings.Contains(strings.ToLower(r.ReceiptNumber), q) {
			matched = append(matched, r)
		}
	}
	return matched, nil
}
