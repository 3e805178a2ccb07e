package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/openshelf/stockroom/pkg/types"
)

// Pipeline reads an uploaded file, decodes it into ordered raw rows, and
// normalizes each row into a canonical product. It has no side effects:
// nothing touches the store until the caller persists the returned batch.
type Pipeline struct {
	normalizer *Normalizer
}

// NewPipeline returns a Pipeline using the given alias table, or the
// default table when aliases is nil.
func NewPipeline(aliases AliasTable) *Pipeline {
	return &Pipeline{normalizer: NewNormalizer(aliases)}
}

// IngestFile selects the parse mode from the file's extension, decodes the
// payload, and returns the normalized batch in original row order, so
// re-uploading the same file is deterministic.
//
// Unsupported extensions, unreadable or corrupt payloads, and zero-row
// results all wrap types.ErrIngestionFailed.
func (p *Pipeline) IngestFile(path string) ([]*types.Product, error) {
	var (
		rows []Row
		err  error
	)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv", ".txt":
		rows, err = readDelimited(path, ',')
	case ".tsv":
		rows, err = readDelimited(path, '\t')
	case ".xlsx", ".xlsm":
		rows, err = readWorkbook(path)
	default:
		return nil, fmt.Errorf("%w: unsupported extension %q", types.ErrIngestionFailed, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrIngestionFailed, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: file contains no data rows", types.ErrIngestionFailed)
	}

	batch := make([]*types.Product, 0, len(rows))
	for _, row := range rows {
		batch = append(batch, p.normalizer.Normalize(row))
	}
	return batch, nil
}

// readDelimited parses a delimited text file into header-keyed rows. The
// first record is the header row; empty rows are skipped. The reader is
// configured leniently: variable field counts and lazy quotes are accepted
// so ragged exports from spreadsheet tools still parse.
func readDelimited(path string, comma rune) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("missing header row")
		}
		return nil, fmt.Errorf("reading header row: %w", err)
	}
	headers = cleanHeaders(headers)

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}
		if row, ok := recordToRow(headers, record); ok {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// readWorkbook parses the first sheet of an XLSX/XLSM workbook into
// header-keyed rows. Only the first sheet is read; the first row is the
// header row and empty rows are skipped.
func readWorkbook(path string) ([]Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("missing header row")
	}
	headers := cleanHeaders(records[0])

	var rows []Row
	for _, record := range records[1:] {
		if row, ok := recordToRow(headers, record); ok {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// cleanHeaders trims whitespace and names blank headers by column index so
// every value in a row remains addressable.
func cleanHeaders(headers []string) []string {
	cleaned := make([]string, len(headers))
	for i, h := range headers {
		h = strings.TrimSpace(h)
		if h == "" {
			h = fmt.Sprintf("Column_%d", i+1)
		}
		cleaned[i] = h
	}
	return cleaned
}

// recordToRow converts one record into a header-keyed row. Columns missing
// from short records map to empty strings. Returns ok=false for rows whose
// every cell is blank.
func recordToRow(headers []string, record []string) (Row, bool) {
	row := make(Row, len(headers))
	empty := true
	for i, header := range headers {
		value := ""
		if i < len(record) {
			value = strings.TrimSpace(record[i])
		}
		if value != "" {
			empty = false
		}
		row[header] = value
	}
	return row, !empty
}
