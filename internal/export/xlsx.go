// Package export writes the ledger as an xlsx workbook: one sheet of
// raw entries, one sheet of per-month totals.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/aldosh/aldo/internal/ledger"
)

const (
	entriesSheet = "Entries"
	monthsSheet  = "Monthly Totals"
)

// WriteXLSX writes the ledger to an xlsx file at path.
func WriteXLSX(l *ledger.Ledger, path string) error {
	xlsx := excelize.NewFile()

	_ = xlsx.SetAppProps(&excelize.AppProperties{
		Application: "aldo",
	})

	sheet := xlsx.GetSheetName(xlsx.GetActiveSheetIndex())
	_ = xlsx.SetSheetName(sheet, entriesSheet)

	if err := writeEntries(xlsx, l); err != nil {
		return err
	}
	if err := writeMonthlyTotals(xlsx, l); err != nil {
		return err
	}

	return xlsx.SaveAs(path)
}

func writeEntries(xlsx *excelize.File, l *ledger.Ledger) error {
	_ = xlsx.SetColWidth(entriesSheet, "A", "A", 12)
	_ = xlsx.SetColWidth(entriesSheet, "B", "B", 10)
	_ = xlsx.SetColWidth(entriesSheet, "C", "C", 50)

	if err := writeHeader(xlsx, entriesSheet, []string{"Date", "Hours", "Description"}); err != nil {
		return err
	}

	row := 2
	for _, e := range l.All() {
		_ = xlsx.SetCellValue(entriesSheet, cell('A', row), e.Date.String())
		hours, _ := e.Hours.Float64()
		_ = xlsx.SetCellValue(entriesSheet, cell('B', row), hours)
		_ = xlsx.SetCellValue(entriesSheet, cell('C', row), e.Description)
		row++
	}

	// Total row under the entries.
	total, _ := ledger.SumHours(l.All()).Float64()
	boldStyle, err := xlsx.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	_ = xlsx.SetCellValue(entriesSheet, cell('A', row), "TOTAL")
	_ = xlsx.SetCellValue(entriesSheet, cell('B', row), total)
	_ = xlsx.SetCellStyle(entriesSheet, cell('A', row), cell('B', row), boldStyle)

	return nil
}

func writeMonthlyTotals(xlsx *excelize.File, l *ledger.Ledger) error {
	if _, err := xlsx.NewSheet(monthsSheet); err != nil {
		return err
	}

	_ = xlsx.SetColWidth(monthsSheet, "A", "A", 12)
	_ = xlsx.SetColWidth(monthsSheet, "B", "C", 14)

	if err := writeHeader(xlsx, monthsSheet, []string{"Month", "Hours", "Days Worked"}); err != nil {
		return err
	}

	row := 2
	for _, mt := range l.MonthlyTotals() {
		_ = xlsx.SetCellValue(monthsSheet, cell('A', row), fmt.Sprintf("%04d-%02d", mt.Year, mt.Month))
		hours, _ := mt.TotalHours.Float64()
		_ = xlsx.SetCellValue(monthsSheet, cell('B', row), hours)
		_ = xlsx.SetCellValue(monthsSheet, cell('C', row), mt.Days)
		row++
	}

	return nil
}

func writeHeader(xlsx *excelize.File, sheet string, titles []string) error {
	style, err := xlsx.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDDDDD"}},
	})
	if err != nil {
		return err
	}

	col := 'A'
	for _, title := range titles {
		_ = xlsx.SetCellValue(sheet, cell(col, 1), title)
		col++
	}
	return xlsx.SetCellStyle(sheet, cell('A', 1), cell(col-1, 1), style)
}

func cell(col rune, row int) string {
	return fmt.Sprintf("%c%d", col, row)
}
