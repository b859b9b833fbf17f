package services

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Cadastro"

// ExportXLSX writes an accepted submission as a one-sheet workbook with
// one label/value row per field, in form order.
func ExportXLSX(sub *Submission) ([]byte, error) {
	if !sub.Accepted() {
		return nil, fmt.Errorf("cannot export rejected %s submission", sub.Form.Slug())
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	rows := [][]interface{}{{sub.Form.Title(), ""}, {"Campo", "Valor"}}
	for _, field := range sub.Form.Schema.Fields {
		rows = append(rows, []interface{}{field.Label, sub.Values[field.Name]})
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if err := f.SetColWidth(exportSheet, "A", "A", 28); err != nil {
		return nil, fmt.Errorf("failed to size columns: %w", err)
	}
	if err := f.SetColWidth(exportSheet, "B", "B", 48); err != nil {
		return nil, fmt.Errorf("failed to size columns: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
