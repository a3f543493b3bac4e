package sqlite

import (
	"context"
	"fmt"

	"receiptbook/internal/models"
)

const (
	// Display numbers look like "REC-0001". The width is a formatting
	// minimum, not a cap: number 10000 renders as "REC-10000".
	receiptNumberPrefix = "REC-"
	receiptNumberWidth  = 4

	lastReceiptNumberKey = "last_receipt_number"
)

func formatReceiptNumber(n int64) string {
	return fmt.Sprintf("%s%0*d", receiptNumberPrefix, receiptNumberWidth, n)
}

// AddReceipt mints the next display number and inserts the receipt in a
// single transaction. The counter update and the row insert commit
// together or not at all, which is what makes the unique index on
// receipt_number unreachable in practice.
func (s *SQLiteStore) AddReceipt(ctx context.Context, receipt *models.Receipt) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var last int64
	err = tx.QueryRowContext(ctx,
		"SELECT value FROM settings WHERE key = ?", lastReceiptNumberKey,
	).Scan(&last)
	if err != nil {
		return fmt.Errorf("failed to read sequence counter: %w", err)
	}

	next := last + 1
	if _, err := tx.ExecContext(ctx,
		"UPDATE settings SET value = ? WHERE key = ?", next, lastReceiptNumberKey,
	); err != nil {
		return fmt.Errorf("failed to advance sequence counter: %w", err)
	}

	number := formatReceiptNumber(next)
	res, err := tx.ExecContext(ctx,
		"INSERT INTO receipts (receipt_number, name, date, amount_cents, maintenance_period) VALUES (?, ?, ?, ?, ?)",
		number, receipt.Name, receipt.Date, receipt.Amount.Cents, receipt.MaintenancePeriod,
	)
	if err != nil {
		return fmt.Errorf("failed to insert receipt: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read receipt id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	receipt.ID = id
	receipt.ReceiptNumber = number
	return nil
}

// ListReceipts returns all receipts in storage order.
func (s *SQLiteStore) ListReceipts(ctx context.Context) ([]models.Receipt, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, receipt_number, name, date, amount_cents, maintenance_period FROM receipts",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list receipts: %w", err)
	}
	defer rows.Close()

	var receipts []models.Receipt
	for rows.Next() {
		var r models.Receipt
		if err := rows.Scan(&r.ID, &r.ReceiptNumber, &r.Name, &r.Date, &r.Amount.Cents, &r.MaintenancePeriod); err != nil {
			return nil, fmt.Errorf("failed to scan receipt: %w", err)
		}
		receipts = append(receipts, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate receipts: %w", err)
	}

	return receipts, nil
}

// LastReceiptNumber returns the current sequence counter value.
func (s *SQLiteStore) LastReceiptNumber(ctx context.Context) (int64, error) {
	var last int64
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM settings WHERE key = ?", lastReceiptNumberKey,
	).Scan(&last)
	if err != nil {
		return 0, fmt.Errorf("failed to read sequence counter: %w", err)
	}
	return last, nil
}
