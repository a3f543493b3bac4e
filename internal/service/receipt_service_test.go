package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"receiptbook/internal/events"
	"receiptbook/internal/models"
	"receiptbook/internal/storage"
	"receiptbook/internal/storage/sqlite"
)

func newTestStore(t *testing.T) storage.Store {
	t.Helper()
	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestReceiptServiceAdd(t *testing.T) {
	store := newTestStore(t)
	bus := events.NewBus()
	svc := NewReceiptService(store, bus)
	ctx := context.Background()

	var notified int
	bus.Subscribe(func() { notified++ })

	first, err := svc.Add(ctx, "A. Sharma", "2024-03-01", models.Money{Cents: 10000}, "2024-03")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	second, err := svc.Add(ctx, "B. Patel", "2024-03-02", models.Money{Cents: 20000}, "")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if first.ReceiptNumber != "REC-0001" || second.ReceiptNumber != "REC-0002" {
		t.Errorf("numbers = %q, %q; want REC-0001, REC-0002", first.ReceiptNumber, second.ReceiptNumber)
	}
	if notified != 2 {
		t.Errorf("change notifications = %d, want 2", notified)
	}
}

func TestReceiptServiceAddRejectsInvalidInput(t *testing.T) {
	store := newTestStore(t)
	bus := events.NewBus()
	svc := NewReceiptService(store, bus)
	ctx := context.Background()

	var notified int
	bus.Subscribe(func() { notified++ })

	tests := []struct {
		name    string
		do      func() error
		wantErr error
	}{
		{"empty name", func() error {
			_, err := svc.Add(ctx, "", "2024-03-01", models.Money{Cents: 1}, "")
			return err
		}, models.ErrEmptyName},
		{"bad date", func() error {
			_, err := svc.Add(ctx, "A", "bad", models.Money{Cents: 1}, "")
			return err
		}, models.ErrInvalidDate},
		{"negative amount", func() error {
			_, err := svc.Add(ctx, "A", "2024-03-01", models.Money{Cents: -1}, "")
			return err
		}, models.ErrNegativeAmount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.do(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Add = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if notified != 0 {
		t.Errorf("rejected input must not notify, got %d notifications", notified)
	}

	// Nothing reached storage, so no number was burned.
	last := mustCounter(t, store)
	if last != 0 {
		t.Errorf("sequence counter = %d after rejected adds, want 0", last)
	}
}

func TestReceiptServiceListNewestFirst(t *testing.T) {
	store := newTestStore(t)
	svc := NewReceiptService(store, nil)
	ctx := context.Background()

	for _, name := range []string{"first", "second", "third"} {
		if _, err := svc.Add(ctx, name, "2024-03-01", models.Money{Cents: 100}, ""); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	receipts, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(receipts) != 3 {
		t.Fatalf("got %d receipts, want 3", len(receipts))
	}
	if receipts[0].Name != "third" || receipts[2].Name != "first" {
		t.Errorf("not newest-first: %q, %q, %q", receipts[0].Name, receipts[1].Name, receipts[2].Name)
	}
}

func TestReceiptServiceSearch(t *testing.T) {
	store := newTestStore(t)
	svc := NewReceiptService(store, nil)
	ctx := context.Background()

	for _, name := range []string{"A. Sharma", "B. Patel", "C. Sharma"} {
		if _, err := svc.Add(ctx, name, "2024-03-01", models.Money{Cents: 100}, ""); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	byName, err := svc.Search(ctx, "sharma")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(byName) != 2 {
		t.Errorf("Search(\"sharma\") = %d results, want 2", len(byName))
	}

	byNumber, err := svc.Search(ctx, "rec-0002")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(byNumber) != 1 || byNumber[0].Name != "B. Patel" {
		t.Errorf("Search by number mismatch: %+v", byNumber)
	}

	all, err := svc.Search(ctx, "")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("empty query = %d results, want 3", len(all))
	}
}

func mustCounter(t *testing.T, store storage.Store) int64 {
	t.Helper()
	last, err := store.LastReceiptNumber(context.Background())
	if err != nil {
		t.Fatalf("LastReceiptNumber failed: %v", err)
	}
	return last
}
