package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"receiptbook/internal/export"
	"receiptbook/internal/models"
)

func newExpenseCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expense",
		Short: "Save, list, and export expense reports",
	}
	cmd.AddCommand(
		newExpenseAddCmd(a),
		newExpenseListCmd(a),
		newExpenseExportCmd(a),
	)
	return cmd
}

func newExpenseAddCmd(a *app) *cobra.Command {
	var (
		date  string
		items []string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Save an expense report from its line items",
		Long: "Save an expense report. Each --item is \"label=amount\"; a negative\n" +
			"amount subtracts (rebate, refund). The stored total is the sum of the\n" +
			"items as entered, computed here before saving.",
		Example: `  receiptbook expense add --item "Paint=500" --item "Rebate=-50"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsed, err := parseExpenseItems(items)
			if err != nil {
				return err
			}

			total := models.ExpenseReport{Items: parsed}.SumItems()
			saved, err := a.expenses.Add(cmd.Context(), date, parsed, total)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Saved expense report #%d, total Rs. %s\n",
				saved.ID, saved.Total)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", models.Today(), "report date, YYYY-MM-DD")
	cmd.Flags().StringArrayVar(&items, "item", nil, `line item as "label=amount", repeatable`)
	return cmd
}

func newExpenseListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved expense reports",
		RunE: func(cmd *cobra.Command, _ []string) error {
			reports, err := a.expenses.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(reports) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No expense reports.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDATE\tITEMS\tTOTAL")
			for _, r := range reports {
				fmt.Fprintf(w, "%d\t%s\t%d\t%s\n", r.ID, r.Date, len(r.Items), r.Total)
			}
			return w.Flush()
		},
	}
}

func newExpenseExportCmd(a *app) *cobra.Command {
	var (
		id  int64
		out string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export one expense report as PDF",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			admin, err := a.credentials.Admin(ctx)
			if err != nil {
				return err
			}
			reports, err := a.expenses.List(ctx)
			if err != nil {
				return err
			}

			var report *models.ExpenseReport
			for i := range reports {
				if reports[i].ID == id {
					report = &reports[i]
					break
				}
			}
			if report == nil {
				return fmt.Errorf("no expense report #%d", id)
			}

			path := defaultPath(out, a.cfg.ExportDir, fmt.Sprintf("expense_report_%d.pdf", id))
			return writeDocument(cmd, path, func(f *os.File) error {
				return export.ExpensePDF(f, *report, admin)
			})
		},
	}

	cmd.Flags().Int64Var(&id, "id", 0, "report ID, as shown by expense list")
	cmd.Flags().StringVar(&out, "out", "", "output file (default under the export directory)")
	return cmd
}

// parseExpenseItems turns repeated "label=amount" flags into line
// items. The split is on the last '=' so labels may contain one.
func parseExpenseItems(raw []string) ([]models.ExpenseItem, error) {
	items := make([]models.ExpenseItem, 0, len(raw))
	for _, s := range raw {
		i := strings.LastIndex(s, "=")
		if i < 0 {
			return nil, fmt.Errorf("item %q: want \"label=amount\"", s)
		}
		label := strings.TrimSpace(s[:i])
		amount, err := models.ParseAmount(s[i+1:])
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", s, err)
		}
		items = append(items, models.ExpenseItem{Label: label, Amount: amount})
	}
	return items, nil
}
