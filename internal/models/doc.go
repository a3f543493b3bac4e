// Package models defines the core domain records for the receipt book.
//
// # Records
//
//   - Admin: the single administrator profile, stored under a fixed key
//   - Receipt: one payment received, carrying a minted display number
//   - ExpenseReport: one saved expense calculation with its line items
//
// # Design notes
//
// All monetary values are carried as Money (integer cents) to avoid
// floating-point drift in totals. Calendar fields are plain strings in
// ISO layouts ("2006-01-02" for dates, "2006-01" for maintenance
// periods) because both the storage layer and the export layer want the
// textual form; validation helpers live alongside the types.
//
// Records are append-only once stored: receipts and expense reports have
// no update or delete operations anywhere in the system, and the admin
// profile is mutated only through the credential store.
package models
