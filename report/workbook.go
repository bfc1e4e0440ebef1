package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/robinvdvleuten/invoicecheck/invoice"
)

// SheetName is the single worksheet a workbook report carries.
const SheetName = "Invoices"

// writeWorkbook renders the same table as the CSV writer into an XLSX
// workbook. Cells stay text so amounts keep their exact source form.
func writeWorkbook(rows []invoice.Record, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}

	columns := Columns(rows)
	header := make([]any, len(columns))
	for i, name := range columns {
		header[i] = name
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return err
	}

	for n, row := range rows {
		cells := make([]any, len(columns))
		for i, name := range columns {
			cells[i] = row.Text(name)
		}
		if err := f.SetSheetRow(SheetName, fmt.Sprintf("A%d", n+2), &cells); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}

	return nil
}
