package invoice

import (
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"github.com/aldosh/aldo/internal/config"
	"github.com/aldosh/aldo/internal/dateutil"
	"github.com/aldosh/aldo/internal/entry"
)

// Doc carries everything the PDF composer needs: already-computed
// totals, a pre-allocated invoice number, and the config metadata. The
// composer renders only; it never touches ledger or counter state.
type Doc struct {
	Number     string
	IssueDate  dateutil.Date
	DueDate    dateutil.Date
	Start      dateutil.Date
	End        dateutil.Date
	Entries    []entry.HourEntry
	TotalHours decimal.Decimal
	HourlyRate decimal.Decimal
	Currency   string
	Business   config.Business
	Client     config.Client
	Terms      string
	FooterText string
}

// TotalAmount returns the invoice total (hours times rate).
func (d Doc) TotalAmount() decimal.Decimal {
	return d.TotalHours.Mul(d.HourlyRate)
}

// Compose renders the invoice as an A4 PDF at outPath.
func Compose(doc Doc, outPath string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Invoice %s", doc.Number), false)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	contentWidth := pageWidth - left - right

	// Title
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(contentWidth, 12, "INVOICE", "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Header block: number, dates, parties, period.
	colWidth := contentWidth / 3
	headerCell := func(label, value string) {
		x, y := pdf.GetXY()
		pdf.SetFont("Helvetica", "B", 8)
		pdf.MultiCell(colWidth, 4, label, "", "L", false)
		pdf.SetXY(x, y+4)
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(colWidth, 4, value, "", "L", false)
		pdf.SetXY(x+colWidth, y)
	}

	rowStart := pdf.GetY()
	headerCell("INVOICE NUMBER", doc.Number)
	headerCell("DATE OF ISSUE", doc.IssueDate.String())
	headerCell("DUE DATE", doc.DueDate.String())
	pdf.SetXY(left, rowStart+14)

	rowStart = pdf.GetY()
	headerCell("BILLED TO", partyLines(doc.Client.Name, doc.Client.Address, doc.Client.Email))
	headerCell("FROM", partyLines(doc.Business.Name, doc.Business.Address, doc.Business.Email))
	headerCell("PERIOD", fmt.Sprintf("%s to %s", doc.Start, doc.End))
	pdf.SetXY(left, rowStart+24)

	// Work summary table.
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentWidth, 8, "WORK SUMMARY", "", 1, "L", false, 0, "")

	dateW, hoursW, amountW := 35.0, 25.0, 30.0
	descW := contentWidth - dateW - hoursW - amountW

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(dateW, 7, "Date", "1", 0, "L", true, 0, "")
	pdf.CellFormat(descW, 7, "Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(hoursW, 7, "Hours", "1", 0, "R", true, 0, "")
	pdf.CellFormat(amountW, 7, "Amount", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, e := range doc.Entries {
		amount := e.Hours.Mul(doc.HourlyRate)
		pdf.CellFormat(dateW, 6, e.Date.String(), "1", 0, "L", false, 0, "")
		pdf.CellFormat(descW, 6, e.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(hoursW, 6, e.Hours.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(amountW, 6, money(amount, doc.Currency), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(dateW+descW, 7, "TOTAL", "1", 0, "L", false, 0, "")
	pdf.CellFormat(hoursW, 7, doc.TotalHours.StringFixed(2), "1", 0, "R", false, 0, "")
	pdf.CellFormat(amountW, 7, money(doc.TotalAmount(), doc.Currency), "1", 1, "R", false, 0, "")
	pdf.Ln(8)

	// Payment details.
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentWidth, 8, "PAYMENT DETAILS", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	paymentRow := func(label, value string) {
		if value == "" {
			return
		}
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(45, 6, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(contentWidth-45, 6, value, "", 1, "L", false, 0, "")
	}
	paymentRow("Hourly Rate:", money(doc.HourlyRate, doc.Currency))
	paymentRow("Total Amount Due:", money(doc.TotalAmount(), doc.Currency))
	paymentRow("Terms:", doc.Terms)

	// Footer.
	if doc.FooterText != "" {
		pdf.Ln(12)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(contentWidth, 5, doc.FooterText, "", 1, "C", false, 0, "")
	}

	return pdf.OutputFileAndClose(outPath)
}

func money(v decimal.Decimal, currency string) string {
	if currency == "" {
		return v.StringFixed(2)
	}
	return fmt.Sprintf("%s %s", currency, v.StringFixed(2))
}

func partyLines(parts ...string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += "\n"
		}
		out += p
	}
	return out
}
