package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSummaryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show running totals over both ledgers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			o, err := a.summary.Overview(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Receipts:        %d (Rs. %s collected)\n", o.ReceiptCount, o.TotalCollected)
			fmt.Fprintf(out, "Expense reports: %d (Rs. %s spent)\n", o.ExpenseCount, o.TotalSpent)
			fmt.Fprintf(out, "Balance:         Rs. %s\n", o.Balance)
			return nil
		},
	}
}
