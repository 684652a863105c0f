package model

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Table is a rectangular grid of string cells with named columns.
type Table struct {
	ColumnNames []string
	ColumnTypes []Type // nil when no types were supplied
	Rows        [][]string
}

// Config controls table construction.
type Config struct {
	// ColumnTypes optionally assigns a semantic type to each column. When
	// non-nil its length must match the column count.
	ColumnTypes []Type

	// AllowRagged pads short rows with empty cells and truncates long
	// rows to the column count, instead of rejecting width mismatches.
	AllowRagged bool
}

// NewTable builds a table from dense rows and column names. Empty names
// are replaced with positional ones and duplicate names are suffixed, so
// headers expanded from merged cells still yield addressable columns.
// Rows whose width differs from the column count are rejected unless
// cfg.AllowRagged is set.
func NewTable(rows [][]string, columnNames []string, cfg Config) (*Table, error) {
	if len(columnNames) == 0 {
		return nil, fmt.Errorf("table requires column names")
	}
	if cfg.ColumnTypes != nil && len(cfg.ColumnTypes) != len(columnNames) {
		return nil, fmt.Errorf("column type count %d does not match column count %d",
			len(cfg.ColumnTypes), len(columnNames))
	}

	names := normalizeColumnNames(columnNames)

	width := len(names)
	out := make([][]string, len(rows))
	for i, row := range rows {
		switch {
		case len(row) == width:
			out[i] = row
		case !cfg.AllowRagged:
			return nil, fmt.Errorf("row %d has %d cells, expected %d", i, len(row), width)
		case len(row) > width:
			out[i] = row[:width]
		default:
			padded := make([]string, width)
			copy(padded, row)
			out[i] = padded
		}
	}

	var types []Type
	if cfg.ColumnTypes != nil {
		types = append([]Type(nil), cfg.ColumnTypes...)
	}

	return &Table{
		ColumnNames: names,
		ColumnTypes: types,
		Rows:        out,
	}, nil
}

// normalizeColumnNames fills in empty names and disambiguates duplicates.
// An empty name at position i becomes "column_<i+1>"; a repeated name
// gains a numeric suffix ("city", "city_2", "city_3").
func normalizeColumnNames(columnNames []string) []string {
	names := make([]string, len(columnNames))
	used := make(map[string]bool, len(columnNames))

	for i, name := range columnNames {
		if name == "" {
			name = fmt.Sprintf("column_%d", i+1)
		}
		candidate := name
		for n := 2; used[candidate]; n++ {
			candidate = fmt.Sprintf("%s_%d", name, n)
		}
		used[candidate] = true
		names[i] = candidate
	}

	return names
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColCount returns the number of columns.
func (t *Table) ColCount() int {
	return len(t.ColumnNames)
}

// Column returns the values of the named column, top to bottom.
func (t *Table) Column(name string) ([]string, error) {
	col := -1
	for i, n := range t.ColumnNames {
		if n == name {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, fmt.Errorf("no column named %q", name)
	}

	values := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[col]
	}
	return values, nil
}

// ToMarkdown converts the table to markdown format.
func (t *Table) ToMarkdown() string {
	var sb strings.Builder

	sb.WriteString("|")
	for _, name := range t.ColumnNames {
		sb.WriteString(" " + escapeMarkdown(name) + " |")
	}
	sb.WriteString("\n|")
	for range t.ColumnNames {
		sb.WriteString(" --- |")
	}
	sb.WriteString("\n")

	for _, row := range t.Rows {
		sb.WriteString("|")
		for _, cell := range row {
			sb.WriteString(" " + escapeMarkdown(cell) + " |")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// WriteCSV writes the table to w in CSV format, column names first.
func (t *Table) WriteCSV(w io.Writer) error {
	return t.writeDelimited(w, ',')
}

// WriteTSV writes the table to w in tab-separated format, column names
// first.
func (t *Table) WriteTSV(w io.Writer) error {
	return t.writeDelimited(w, '\t')
}

func (t *Table) writeDelimited(w io.Writer, comma rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma
	if err := cw.Write(t.ColumnNames); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// escapeMarkdown escapes characters that break markdown tables.
func escapeMarkdown(text string) string {
	text = strings.ReplaceAll(text, "\r", "")
	text = strings.ReplaceAll(text, "\n", " ")
	return strings.ReplaceAll(text, "|", `\|`)
}
