package models

// ExpenseItem is one line of an expense report. Amount is signed: a
// negative value records a subtraction (rebate, refund) from the
// running total.
type ExpenseItem struct {
	Label  string
	Amount Money
}

// ExpenseReport is one saved expense calculation session.
//
// Total is computed by the caller before save and stored redundantly;
// storage does not recompute or enforce it. SumItems is provided for
// callers that want to build a consistent total.
type ExpenseReport struct {
	// ID is assigned by storage on insert.
	ID int64

	// Date the report was saved, "YYYY-MM-DD".
	Date string

	// Items in the order they were entered.
	Items []ExpenseItem

	Total Money
}

// SumItems returns the sum of the report's line amounts.
func (r ExpenseReport) SumItems() Money {
	var cents int64
	for _, it := range r.Items {
		cents += it.Amount.Cents
	}
	return Money{Cents: cents}
}

// Validate checks caller-supplied fields before the report reaches
// storage. The stored Total is trusted as-is, matching the contract
// that totals are the caller's responsibility.
func (r ExpenseReport) Validate() error {
	if err := ValidateDate(r.Date); err != nil {
		return err
	}
	if len(r.Items) == 0 {
		return ErrNoExpenseItems
	}
	for _, it := range r.Items {
		if it.Label == "" {
			return ErrEmptyItemLabel
		}
	}
	return nil
}
