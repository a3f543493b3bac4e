package service

import (
	"context"
	"fmt"

	"receiptbook/internal/models"
	"receiptbook/internal/storage"
)

// Overview is the dashboard snapshot: running totals over both ledgers.
type Overview struct {
	ReceiptCount   int
	TotalCollected models.Money
	ExpenseCount   int
	TotalSpent     models.Money
	Balance        models.Money
}

// SummaryService recomputes the overview from storage on demand. It is
// a disposable read projection: nothing here is authoritative, and a
// change notification on the bus simply means "read again".
type SummaryService struct {
	store storage.Store
}

// NewSummaryService creates a SummaryService over the given storage.
func NewSummaryService(store storage.Store) *SummaryService {
	return &SummaryService{store: store}
}

// Overview recomputes the totals from both ledgers.
func (s *SummaryService) Overview(ctx context.Context) (Overview, error) {
	var o Overview

	receipts, err := s.store.ListReceipts(ctx)
	if err != nil {
		return o, fmt.Errorf("list receipts: %w", err)
	}
	o.ReceiptCount = len(receipts)
	for _, r := range receipts {
		o.TotalCollected.Cents += r.Amount.Cents
	}

	reports, err := s.store.ListExpenseReports(ctx)
	if err != nil {
		return o, fmt.Errorf("list expense reports: %w", err)
	}
	o.ExpenseCount = len(reports)
	for _, r := range reports {
		o.TotalSpent.Cents += r.Total.Cents
	}

	o.Balance.Cents = o.TotalCollected.Cents - o.TotalSpent.Cents
	return o, nil
}
