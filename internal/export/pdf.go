// Package export renders ledger records into PDF and spreadsheet
// documents. All functions are pure renderers over already-loaded data:
// they hold no state and write the finished document to an io.Writer.
package export

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/go-pdf/fpdf"

	"receiptbook/internal/models"
)

const (
	headerHeight = 25.0
	marginX      = 14.0
)

// ReceiptPDF renders a single receipt as a one-page PDF: society
// header, field table, amount box, optional signature, footer.
func ReceiptPDF(w io.Writer, receipt models.Receipt, admin *models.Admin) error {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()
	drawHeader(doc, admin)

	pageW, pageH := doc.GetPageSize()

	doc.SetFont("Helvetica", "B", 18)
	doc.SetTextColor(33, 33, 33)
	doc.Text(marginX, 40, "Receipt")

	period := receipt.MaintenancePeriod
	if period == "" {
		period = "N/A"
	}
	fields := [][2]string{
		{"Receipt No.", receipt.ReceiptNumber},
		{"Received From", receipt.Name},
		{"Date", receipt.Date},
		{"Maintenance Period", period},
	}

	doc.SetY(48)
	for _, f := range fields {
		doc.SetX(marginX)
		doc.SetFont("Helvetica", "B", 11)
		doc.CellFormat(55, 9, f[0], "", 0, "L", false, 0, "")
		doc.SetFont("Helvetica", "", 11)
		doc.CellFormat(0, 9, f[1], "", 1, "L", false, 0, "")
	}

	// Amount box
	boxY := doc.GetY() + 10
	doc.SetFillColor(245, 245, 245)
	doc.RoundedRect(marginX, boxY, pageW-2*marginX, 15, 3, "1234", "F")
	doc.SetFont("Helvetica", "B", 14)
	doc.Text(marginX+6, boxY+10, "Amount")
	amount := "Rs. " + receipt.Amount.String()
	doc.SetXY(marginX, boxY+4)
	doc.CellFormat(pageW-2*marginX-6, 8, amount, "", 1, "R", false, 0, "")

	drawSignature(doc, admin, boxY+30)

	// Footer
	doc.SetFont("Helvetica", "", 9)
	doc.SetTextColor(158, 158, 158)
	doc.Text(marginX, pageH-15, "This is a computer generated receipt.")
	if admin != nil {
		doc.Text(marginX, pageH-10, "Issued by "+admin.Name)
	}

	return doc.Output(w)
}

// ReceiptsPDF renders the full ledger as a tabular PDF with a
// grand-total row.
func ReceiptsPDF(w io.Writer, receipts []models.Receipt, admin *models.Admin) error {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.AddPage()
	drawHeader(doc, admin)
	doc.SetAutoPageBreak(true, 20)
	doc.SetY(35)

	widths := []float64{35, 60, 28, 32, 27}
	headers := []string{"Receipt No.", "Name", "Date", "Period", "Amount"}

	doc.SetFont("Helvetica", "B", 10)
	doc.SetFillColor(236, 239, 241)
	doc.SetTextColor(33, 33, 33)
	doc.SetX(marginX)
	for i, h := range headers {
		doc.CellFormat(widths[i], 8, h, "1", 0, "L", true, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont("Helvetica", "", 10)
	var total models.Money
	for _, r := range receipts {
		period := r.MaintenancePeriod
		if period == "" {
			period = "N/A"
		}
		doc.SetX(marginX)
		doc.CellFormat(widths[0], 7, r.ReceiptNumber, "1", 0, "L", false, 0, "")
		doc.CellFormat(widths[1], 7, r.Name, "1", 0, "L", false, 0, "")
		doc.CellFormat(widths[2], 7, r.Date, "1", 0, "L", false, 0, "")
		doc.CellFormat(widths[3], 7, period, "1", 0, "L", false, 0, "")
		doc.CellFormat(widths[4], 7, r.Amount.String(), "1", 1, "R", false, 0, "")
		total.Cents += r.Amount.Cents
	}

	doc.SetFont("Helvetica", "B", 10)
	doc.SetX(marginX)
	doc.CellFormat(widths[0]+widths[1]+widths[2]+widths[3], 8, "Grand Total", "1", 0, "L", true, 0, "")
	doc.CellFormat(widths[4], 8, total.String(), "1", 1, "R", true, 0, "")

	return doc.Output(w)
}

// ExpensePDF renders an expense report: item/amount grid plus the
// stored total (reprinted as saved, not recomputed).
func ExpensePDF(w io.Writer, report models.ExpenseReport, admin *models.Admin) error {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.AddPage()
	drawHeader(doc, admin)
	doc.SetAutoPageBreak(true, 20)

	doc.SetFont("Helvetica", "B", 16)
	doc.SetTextColor(33, 33, 33)
	doc.Text(marginX, 40, "Expense Report")
	doc.SetFont("Helvetica", "", 11)
	doc.SetTextColor(117, 117, 117)
	doc.Text(marginX, 47, "Date: "+report.Date)

	doc.SetY(52)
	doc.SetFont("Helvetica", "B", 10)
	doc.SetFillColor(236, 239, 241)
	doc.SetTextColor(33, 33, 33)
	doc.SetX(marginX)
	doc.CellFormat(140, 8, "Item", "1", 0, "L", true, 0, "")
	doc.CellFormat(42, 8, "Amount", "1", 1, "R", true, 0, "")

	doc.SetFont("Helvetica", "", 10)
	for _, item := range report.Items {
		doc.SetX(marginX)
		doc.CellFormat(140, 7, item.Label, "1", 0, "L", false, 0, "")
		doc.CellFormat(42, 7, item.Amount.String(), "1", 1, "R", false, 0, "")
	}

	doc.SetFont("Helvetica", "B", 10)
	doc.SetX(marginX)
	doc.CellFormat(140, 8, "Grand Total", "1", 0, "L", true, 0, "")
	doc.CellFormat(42, 8, report.Total.String(), "1", 1, "R", true, 0, "")

	return doc.Output(w)
}

// drawHeader paints the society letterhead band across the top of the
// current page. Safe to call with a nil admin; the band is drawn empty.
func drawHeader(doc *fpdf.Fpdf, admin *models.Admin) {
	pageW, _ := doc.GetPageSize()

	doc.SetFillColor(245, 245, 245)
	doc.Rect(0, 0, pageW, headerHeight, "F")

	if admin != nil {
		doc.SetFont("Helvetica", "B", 16)
		doc.SetTextColor(33, 33, 33)
		doc.SetY(5)
		doc.CellFormat(0, 8, admin.SocietyName, "", 1, "C", false, 0, "")
		doc.SetFont("Helvetica", "", 9)
		doc.SetTextColor(117, 117, 117)
		doc.CellFormat(0, 6, admin.SocietyAddress+" | "+admin.SocietyRegNo, "", 1, "C", false, 0, "")
	}

	doc.SetDrawColor(224, 224, 224)
	doc.Line(0, headerHeight, pageW, headerHeight)
}

// drawSignature embeds the admin's signature image with its caption.
// Missing or undecodable signatures are skipped, never fatal: a receipt
// without a signature is still a valid document.
func drawSignature(doc *fpdf.Fpdf, admin *models.Admin, y float64) {
	if admin == nil || admin.Signature == "" {
		return
	}
	img, imgType, err := decodeSignature(admin.Signature)
	if err != nil {
		slog.Warn("Skipping signature image", "error", err)
		return
	}

	const sigX, sigW, sigH = 150.0, 40.0, 20.0
	opts := fpdf.ImageOptions{ImageType: imgType}
	doc.RegisterImageOptionsReader("signature", opts, bytes.NewReader(img))
	doc.ImageOptions("signature", sigX, y, sigW, sigH, false, opts, 0, "")

	doc.SetDrawColor(117, 117, 117)
	doc.Line(sigX, y+sigH+2, sigX+sigW, y+sigH+2)
	doc.SetFont("Helvetica", "", 9)
	doc.SetTextColor(117, 117, 117)
	doc.SetY(y + sigH + 3)
	doc.SetX(sigX)
	doc.CellFormat(sigW, 4, admin.Name, "", 1, "C", false, 0, "")
	doc.SetX(sigX)
	doc.CellFormat(sigW, 4, "Authorized Signature", "", 1, "C", false, 0, "")
}

// decodeSignature unpacks a base64 data URL into raw image bytes and
// the fpdf image-type tag.
func decodeSignature(dataURL string) ([]byte, string, error) {
	rest, ok := strings.CutPrefix(dataURL, "data:")
	if !ok {
		return nil, "", fmt.Errorf("signature is not a data URL")
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, "", fmt.Errorf("signature data URL has no payload")
	}

	imgType := "PNG"
	switch {
	case strings.HasPrefix(meta, "image/png"):
		imgType = "PNG"
	case strings.HasPrefix(meta, "image/jpeg"), strings.HasPrefix(meta, "image/jpg"):
		imgType = "JPG"
	default:
		return nil, "", fmt.Errorf("unsupported signature image type %q", meta)
	}

	img, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("decode signature image: %w", err)
	}
	return img, imgType, nil
}
