package models

import (
	"errors"
	"time"
)

var (
	ErrEmptyName      = errors.New("recipient name is empty")
	ErrInvalidDate    = errors.New("date must be in YYYY-MM-DD form")
	ErrInvalidPeriod  = errors.New("maintenance period must be in YYYY-MM form")
	ErrNegativeAmount = errors.New("amount must not be negative")
	ErrNoExpenseItems = errors.New("expense report has no items")
	ErrEmptyItemLabel = errors.New("expense item label is empty")
)

const (
	dateLayout   = "2006-01-02"
	periodLayout = "2006-01"
)

// Receipt is one recorded maintenance payment.
type Receipt struct {
	// ID is assigned by storage on insert.
	ID int64

	// ReceiptNumber is the human-facing display number, minted from the
	// sequence counter at creation time. Unique and strictly increasing
	// by construction; distinct from ID.
	ReceiptNumber string

	// Name of the person the payment was received from.
	Name string

	// Date the payment was received, "YYYY-MM-DD".
	Date string

	// MaintenancePeriod the payment covers, "YYYY-MM". Blank on records
	// created before the field existed.
	MaintenancePeriod string

	Amount Money
}

// Validate checks the caller-supplied fields of a receipt before it is
// handed to storage. ReceiptNumber and ID are storage-assigned and not
// checked here.
func (r Receipt) Validate() error {
	if r.Name == "" {
		return ErrEmptyName
	}
	if err := ValidateDate(r.Date); err != nil {
		return err
	}
	if r.MaintenancePeriod != "" {
		if err := ValidatePeriod(r.MaintenancePeriod); err != nil {
			return err
		}
	}
	if r.Amount.Cents < 0 {
		return ErrNegativeAmount
	}
	return nil
}

// ValidateDate reports whether s is a real calendar date in
// "YYYY-MM-DD" form.
func ValidateDate(s string) error {
	if _, err := time.Parse(dateLayout, s); err != nil {
		return ErrInvalidDate
	}
	return nil
}

// ValidatePeriod reports whether s is a year-month in "YYYY-MM" form.
func ValidatePeriod(s string) error {
	if _, err := time.Parse(periodLayout, s); err != nil {
		return ErrInvalidPeriod
	}
	return nil
}

// Today returns the current local date in receipt date form.
func Today() string {
	return time.Now().Format(dateLayout)
}
