package ingest

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// templateFields is the column order of the exported template. Each entry
// pairs a canonical field with its preferred header (the highest-priority
// alias), so a filled-in template round-trips through the pipeline without
// triggering a single fallback value.
var templateFields = []struct {
	field  string
	header string
}{
	{FieldName, "Domain"},
	{FieldDescription, "Description"},
	{FieldCountry, "Country"},
	{FieldCategory, "Type"},
	{FieldPrice, "Price"},
	{FieldStock, "Stock"},
	{FieldFeatures, "Features"},
}

// templateExample is the single example row shipped in the template.
var templateExample = []string{
	"example.com",
	"Example product description",
	"United States",
	"General",
	"1000",
	"10",
	"Replace this row with your own products",
}

// WriteTemplate writes a one-row example file with every canonical column
// header correctly named, for users to fill in and re-upload. The output
// format follows the extension: .xlsx produces a workbook, anything else a
// CSV file.
func WriteTemplate(path string) error {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return writeTemplateWorkbook(path)
	}
	return writeTemplateCSV(path)
}

func writeTemplateCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating template: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(templateHeaders()); err != nil {
		return fmt.Errorf("writing template headers: %w", err)
	}
	if err := w.Write(templateExample); err != nil {
		return fmt.Errorf("writing template row: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing template: %w", err)
	}
	return nil
}

func writeTemplateWorkbook(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	headers := make([]any, 0, len(templateFields))
	for _, h := range templateHeaders() {
		headers = append(headers, h)
	}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return fmt.Errorf("writing template headers: %w", err)
	}

	example := make([]any, 0, len(templateExample))
	for _, v := range templateExample {
		example = append(example, v)
	}
	if err := f.SetSheetRow(sheet, "A2", &example); err != nil {
		return fmt.Errorf("writing template row: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving template: %w", err)
	}
	return nil
}

// templateHeaders returns the template's header row.
func templateHeaders() []string {
	headers := make([]string, len(templateFields))
	for i, tf := range templateFields {
		headers[i] = tf.header
	}
	return headers
}
