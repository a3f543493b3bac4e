package models

import (
	"errors"
	"testing"
)

func TestReceiptValidate(t *testing.T) {
	valid := Receipt{
		Name:              "A. Sharma",
		Date:              "2024-03-15",
		MaintenancePeriod: "2024-03",
		Amount:            Money{Cents: 150000},
	}

	tests := []struct {
		name    string
		mutate  func(*Receipt)
		wantErr error
	}{
		{name: "valid", mutate: func(r *Receipt) {}},
		{name: "blank period is allowed", mutate: func(r *Receipt) { r.MaintenancePeriod = "" }},
		{name: "zero amount is allowed", mutate: func(r *Receipt) { r.Amount = Money{} }},
		{name: "empty name", mutate: func(r *Receipt) { r.Name = "" }, wantErr: ErrEmptyName},
		{name: "bad date", mutate: func(r *Receipt) { r.Date = "15/03/2024" }, wantErr: ErrInvalidDate},
		{name: "impossible date", mutate: func(r *Receipt) { r.Date = "2024-02-30" }, wantErr: ErrInvalidDate},
		{name: "bad period", mutate: func(r *Receipt) { r.MaintenancePeriod = "March 2024" }, wantErr: ErrInvalidPeriod},
		{name: "negative amount", mutate: func(r *Receipt) { r.Amount = Money{Cents: -1} }, wantErr: ErrNegativeAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			err := r.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestExpenseReportValidateAndSum(t *testing.T) {
	report := ExpenseReport{
		Date: "2024-03-15",
		Items: []ExpenseItem{
			{Label: "Paint", Amount: Money{Cents: 50000}},
			{Label: "Rebate", Amount: Money{Cents: -5000}},
		},
	}

	if err := report.Validate(); err != nil {
		t.Fatalf("Validate() failed: %v", err)
	}
	if got := report.SumItems().Cents; got != 45000 {
		t.Errorf("SumItems() = %d, want 45000", got)
	}

	empty := ExpenseReport{Date: "2024-03-15"}
	if err := empty.Validate(); !errors.Is(err, ErrNoExpenseItems) {
		t.Errorf("Validate() with no items = %v, want ErrNoExpenseItems", err)
	}

	unlabeled := report
	unlabeled.Items = []ExpenseItem{{Amount: Money{Cents: 100}}}
	if err := unlabeled.Validate(); !errors.Is(err, ErrEmptyItemLabel) {
		t.Errorf("Validate() with unlabeled item = %v, want ErrEmptyItemLabel", err)
	}
}

func TestProfileUpdateApply(t *testing.T) {
	admin := Admin{
		ID:          AdminID,
		Name:        "Admin",
		SocietyName: "Demo Apartment Division",
		SecretHash:  "abc",
		AuthMethod:  AuthPassword,
		Username:    "u",
	}

	name := "R. Mehta"
	block := "B-12"
	patched := ProfileUpdate{Name: &name, BlockNumber: &block}.Apply(admin)

	if patched.Name != name || patched.BlockNumber != block {
		t.Errorf("patched fields not applied: %+v", patched)
	}
	if patched.SocietyName != admin.SocietyName {
		t.Errorf("unpatched field changed: %q", patched.SocietyName)
	}
	if patched.SecretHash != admin.SecretHash || patched.AuthMethod != admin.AuthMethod {
		t.Error("ProfileUpdate must never touch credentials")
	}
}
