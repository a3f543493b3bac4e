package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"receiptbook/internal/export"
	"receiptbook/internal/models"
)

func newReceiptCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "receipt",
		Short: "Record, list, and export payment receipts",
	}
	cmd.AddCommand(
		newReceiptAddCmd(a),
		newReceiptListCmd(a),
		newReceiptExportCmd(a),
	)
	return cmd
}

func newReceiptAddCmd(a *app) *cobra.Command {
	var (
		name   string
		date   string
		amount string
		period string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a payment and mint its receipt number",
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := models.ParseAmount(amount)
			if err != nil {
				return fmt.Errorf("amount %q: %w", amount, err)
			}

			receipt, err := a.receipts.Add(cmd.Context(), name, date, m, period)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s: %s, Rs. %s\n",
				receipt.ReceiptNumber, receipt.Name, receipt.Amount)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "who the payment was received from")
	cmd.Flags().StringVar(&date, "date", models.Today(), "payment date, YYYY-MM-DD")
	cmd.Flags().StringVar(&amount, "amount", "", "amount received, e.g. 1500 or 1500.50")
	cmd.Flags().StringVar(&period, "period", "", "maintenance period, YYYY-MM (optional)")
	return cmd
}

func newReceiptListCmd(a *app) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List receipts newest-first, optionally filtered",
		RunE: func(cmd *cobra.Command, _ []string) error {
			receipts, err := a.receipts.Search(cmd.Context(), query)
			if err != nil {
				return err
			}
			if len(receipts) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No receipts.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NUMBER\tNAME\tDATE\tPERIOD\tAMOUNT")
			for _, r := range receipts {
				period := r.MaintenancePeriod
				if period == "" {
					period = "-"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					r.ReceiptNumber, r.Name, r.Date, period, r.Amount)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&query, "query", "", "filter by recipient name or receipt number")
	return cmd
}

func newReceiptExportCmd(a *app) *cobra.Command {
	var (
		format string
		number string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export one receipt or the full ledger as PDF or xlsx",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			admin, err := a.credentials.Admin(ctx)
			if err != nil {
				return err
			}
			receipts, err := a.receipts.List(ctx)
			if err != nil {
				return err
			}

			switch {
			case number != "":
				receipt, ok := findReceipt(receipts, number)
				if !ok {
					return fmt.Errorf("no receipt %q", number)
				}
				if format != "pdf" {
					return fmt.Errorf("single receipts export as pdf only")
				}
				path := defaultPath(out, a.cfg.ExportDir, fmt.Sprintf("receipt_%s.pdf", receipt.ReceiptNumber))
				return writeDocument(cmd, path, func(f *os.File) error {
					return export.ReceiptPDF(f, receipt, admin)
				})
			case format == "pdf":
				path := defaultPath(out, a.cfg.ExportDir, "all_receipts.pdf")
				return writeDocument(cmd, path, func(f *os.File) error {
					return export.ReceiptsPDF(f, receipts, admin)
				})
			case format == "xlsx":
				path := defaultPath(out, a.cfg.ExportDir, "all_receipts.xlsx")
				return writeDocument(cmd, path, func(f *os.File) error {
					return export.ReceiptsExcel(f, receipts)
				})
			default:
				return fmt.Errorf("unknown format %q (want pdf or xlsx)", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "pdf", "pdf or xlsx")
	cmd.Flags().StringVar(&number, "number", "", "export a single receipt by display number")
	cmd.Flags().StringVar(&out, "out", "", "output file (default under the export directory)")
	return cmd
}

func findReceipt(receipts []models.Receipt, number string) (models.Receipt, bool) {
	for _, r := range receipts {
		if r.ReceiptNumber == number {
			return r, true
		}
	}
	return models.Receipt{}, false
}

func defaultPath(out, dir, name string) string {
	if out != "" {
		return out
	}
	return filepath.Join(dir, name)
}

// writeDocument renders into a freshly created file, removing it again
// if rendering fails partway.
func writeDocument(cmd *cobra.Command, path string, render func(*os.File) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := render(f); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("render %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
