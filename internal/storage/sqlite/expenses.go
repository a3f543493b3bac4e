package sqlite

import (
	"context"
	"fmt"

	"receiptbook/internal/models"
)

// AddExpenseReport inserts the report row and its items in one
// transaction. The total is stored exactly as the caller computed it.
func (s *SQLiteStore) AddExpenseReport(ctx context.Context, report *models.ExpenseReport) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		"INSERT INTO expense_reports (date, total_cents) VALUES (?, ?)",
		report.Date, report.Total.Cents,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense report: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read expense report id: %w", err)
	}

	for i, item := range report.Items {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO expense_items (report_id, position, label, amount_cents) VALUES (?, ?, ?, ?)",
			id, i, item.Label, item.Amount.Cents,
		)
		if err != nil {
			return fmt.Errorf("failed to insert expense item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	report.ID = id
	return nil
}

// ListExpenseReports returns all expense reports with their items in
// entry order.
func (s *SQLiteStore) ListExpenseReports(ctx context.Context) ([]models.ExpenseReport, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, date, total_cents FROM expense_reports",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expense reports: %w", err)
	}
	defer rows.Close()

	var reports []models.ExpenseReport
	for rows.Next() {
		var r models.ExpenseReport
		if err := rows.Scan(&r.ID, &r.Date, &r.Total.Cents); err != nil {
			return nil, fmt.Errorf("failed to scan expense report: %w", err)
		}
		reports = append(reports, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expense reports: %w", err)
	}

	for i := range reports {
		itemRows, err := s.db.QueryContext(ctx,
			"SELECT label, amount_cents FROM expense_items WHERE report_id = ? ORDER BY position",
			reports[i].ID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to get expense items: %w", err)
		}

		for itemRows.Next() {
			var item models.ExpenseItem
			if err := itemRows.Scan(&item.Label, &item.Amount.Cents); err != nil {
				itemRows.Close()
				return nil, fmt.Errorf("failed to scan expense item: %w", err)
			}
			reports[i].Items = append(reports[i].Items, item)
		}
		itemRows.Close()
		if err := itemRows.Err(); err != nil {
			return nil, fmt.Errorf("failed to iterate expense items: %w", err)
		}
	}

	return reports, nil
}
