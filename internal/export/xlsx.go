package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// XLSXWriter collects tables into one workbook, a sheet per table, and
// saves it on Close.
type XLSXWriter struct {
	Dir  string
	Name string

	file   *excelize.File
	sheets int
}

func NewXLSXWriter(dir, name string) (*XLSXWriter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("xlsx: create export dir: %w", err)
	}
	return &XLSXWriter{Dir: dir, Name: name, file: excelize.NewFile()}, nil
}

func (xw *XLSXWriter) Write(t Table) error {
	sheet := t.Name
	if xw.sheets == 0 {
		// Reuse the default sheet for the first table.
		if err := xw.file.SetSheetName("Sheet1", sheet); err != nil {
			return fmt.Errorf("xlsx: rename sheet: %w", err)
		}
	} else {
		if _, err := xw.file.NewSheet(sheet); err != nil {
			return fmt.Errorf("xlsx: new sheet %s: %w", sheet, err)
		}
	}
	xw.sheets++

	for i, name := range t.Columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		xw.file.SetCellValue(sheet, cell, name)
	}
	for rowIdx, row := range t.Rows {
		for colIdx, val := range row {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			xw.file.SetCellValue(sheet, cell, val)
		}
	}
	return nil
}

func (xw *XLSXWriter) Close() error {
	if xw.sheets == 0 {
		return xw.file.Close()
	}
	path := filepath.Join(xw.Dir, xw.Name+".xlsx")
	if err := xw.file.SaveAs(path); err != nil {
		return fmt.Errorf("xlsx: save %s: %w", path, err)
	}
	fmt.Printf("📦 Exported %s (%d sheets)\n", path, xw.sheets)
	return xw.file.Close()
}
