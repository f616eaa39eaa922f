package ingest

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/TiwariPiyush2510/Par-Stock/internal/domain"
	"github.com/xuri/excelize/v2"
)

// Table is a decoded source table: a header row plus data rows. Header names
// are trimmed and lower-cased for column lookup; cell values are kept exactly
// as they appeared in the source.
type Table struct {
	Source  string
	Headers []string
	Rows    [][]string

	index map[string]int
}

func newTable(source string, headers []string, rows [][]string) *Table {
	t := &Table{
		Source:  source,
		Headers: make([]string, len(headers)),
		Rows:    rows,
		index:   make(map[string]int, len(headers)),
	}
	for i, h := range headers {
		h = strings.ToLower(strings.TrimSpace(h))
		t.Headers[i] = h
		if _, ok := t.index[h]; !ok {
			t.index[h] = i
		}
	}
	return t
}

// Column returns the index of the first header matching any of the given
// aliases, in alias order.
func (t *Table) Column(aliases ...string) (int, bool) {
	for _, a := range aliases {
		if i, ok := t.index[a]; ok {
			return i, true
		}
	}
	return 0, false
}

// Cell returns the trimmed value at the given row and column, or "" when the
// row is shorter than the header.
func (t *Table) Cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

// ReadTable decodes raw bytes into a Table. The decoder is picked by filename
// extension (case-insensitive): .csv, .tsv and .txt are treated as delimited
// text, everything else, including a missing extension, as an xlsx workbook.
// Failing to parse, or parsing to zero data rows, yields MalformedInputError.
func ReadTable(r io.Reader, filename string) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &domain.MalformedInputError{Input: filename, Reason: "read failed: " + err.Error()}
	}

	var records [][]string
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv", ".txt":
		records, err = readDelimited(data, ',')
	case ".tsv":
		records, err = readDelimited(data, '\t')
	default:
		records, err = readWorkbook(data)
	}
	if err != nil {
		return nil, &domain.MalformedInputError{Input: filename, Reason: err.Error()}
	}

	if len(records) < 2 {
		return nil, &domain.MalformedInputError{Input: filename, Reason: "no data rows"}
	}

	return newTable(filename, records[0], records[1:]), nil
}

var errNoSheets = errors.New("workbook has no sheets")

func readDelimited(data []byte, comma rune) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	return reader.ReadAll()
}

func readWorkbook(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errNoSheets
	}

	rows, err := f.Rows(sheets[0])
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records [][]string
	for rows.Next() {
		record, err := rows.Columns()
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Error(); err != nil {
		return nil, err
	}
	return records, nil
}
