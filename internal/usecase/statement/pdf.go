package statement

import (
	"bytes"
	"time"

	"meewoo-banking/internal/domain/customer"
	"meewoo-banking/internal/domain/ledger"

	"github.com/jung-kurt/gofpdf"
)

// renderPDF lays out the statement: bank header, account holder block, then
// one table row per ledger entry with credits and debits in separate columns.
func renderPDF(c *customer.Customer, entries []ledger.Entry, from, to time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Transaction History", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Meewoo Bank", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, "Account Statement", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, "Account Holder: "+c.FullName(), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, "Customer ID: "+c.CustomerID, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, "Account Number: "+c.AccountNumber, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, "IFSC: "+c.IFSCode+"    Branch: "+c.BranchCode, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, "Period: "+from.Format("02 Jan 2006")+" to "+to.Format("02 Jan 2006"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	colWidths := []float64{28, 34, 70, 29, 29}
	headers := []string{"Date", "Type", "Description", "Debit", "Credit"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(colWidths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	if len(entries) == 0 {
		pdf.CellFormat(190, 7, "No transactions in the selected period.", "1", 1, "C", false, 0, "")
	}
	for i := range entries {
		e := &entries[i]
		amount := e.Amount.StringFixed(2)
		debit, credit := amount, ""
		if e.Type.Credit() {
			debit, credit = "", amount
		}
		desc := e.Description
		if len(desc) > 60 {
			desc = desc[:57] + "..."
		}
		pdf.CellFormat(colWidths[0], 6, e.OccurredAt.Format("02-01-2006"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colWidths[1], 6, string(e.Type), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colWidths[2], 6, desc, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[3], 6, debit, "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[4], 6, credit, "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(0, 5, "Generated on "+time.Now().UTC().Format("02 Jan 2006 15:04 MST"), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
