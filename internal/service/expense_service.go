package service

import (
	"context"
	"fmt"
	"log/slog"

	"receiptbook/internal/events"
	"receiptbook/internal/models"
	"receiptbook/internal/storage"
)

// ExpenseService is the expense ledger: saves calculation sessions and
// reads them back.
type ExpenseService struct {
	store storage.Store
	bus   *events.Bus
}

// NewExpenseService creates an ExpenseService with the given storage
// backend and change bus. The bus may be nil when no one listens.
func NewExpenseService(store storage.Store, bus *events.Bus) *ExpenseService {
	return &ExpenseService{store: store, bus: bus}
}

// Add validates and saves an expense report. The total is stored as
// supplied; keeping it consistent with the items is the caller's
// responsibility, so a calculator that rounds differently still saves
// exactly what it displayed.
func (s *ExpenseService) Add(ctx context.Context, date string, items []models.ExpenseItem, total models.Money) (*models.ExpenseReport, error) {
	report := &models.ExpenseReport{
		Date:  date,
		Items: items,
		Total: total,
	}
	if err := report.Validate(); err != nil {
		return nil, err
	}

	if err := s.store.AddExpenseReport(ctx, report); err != nil {
		slog.Error("AddExpenseReport failed", "error", err)
		return nil, fmt.Errorf("add expense report: %w", err)
	}

	slog.Info("Expense report saved",
		"id", report.ID,
		"items", len(report.Items),
		"total", report.Total.String(),
	)

	if s.bus != nil {
		s.bus.Publish()
	}
	return report, nil
}

// List returns all expense reports in storage order.
func (s *ExpenseService) List(ctx context.Context) ([]models.ExpenseReport, error) {
	reports, err := s.store.ListExpenseReports(ctx)
	if err != nil {
		return nil, fmt.Errorf("list expense reports: %w", err)
	}
	return reports, nil
}
