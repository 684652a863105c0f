// Package xls carries the legacy spreadsheet normalization helpers used
// when tables originate from spreadsheet exports: cell type inference,
// boolean and serial-date normalization, and the mapping from
// mso-number-format declarations to column types.
package xls

// CellType represents the type of data in a legacy spreadsheet cell.
type CellType int

const (
	// CellTypeEmpty indicates an empty cell.
	CellTypeEmpty CellType = iota
	// CellTypeText indicates a string value.
	CellTypeText
	// CellTypeNumber indicates a numeric value.
	CellTypeNumber
	// CellTypeDate indicates a serial date value.
	CellTypeDate
	// CellTypeBoolean indicates a boolean value.
	CellTypeBoolean
	// CellTypeError indicates an error value.
	CellTypeError
)

// String returns the string representation of the cell type.
func (t CellType) String() string {
	switch t {
	case CellTypeEmpty:
		return "empty"
	case CellTypeText:
		return "text"
	case CellTypeNumber:
		return "number"
	case CellTypeDate:
		return "date"
	case CellTypeBoolean:
		return "boolean"
	case CellTypeError:
		return "error"
	default:
		return "unknown"
	}
}

// DetermineType reduces the cell types observed in one column to a single
// column type. Empty cells are ignored; a column mixing several non-empty
// types normalizes to text. The second return reports whether any error
// cells were present among mixed types, so callers can surface them
// instead of silently treating the column as text.
func DetermineType(types []CellType) (CellType, bool) {
	set := make(map[CellType]bool, len(types))
	for _, t := range types {
		if t != CellTypeEmpty {
			set[t] = true
		}
	}

	switch len(set) {
	case 0:
		return CellTypeEmpty, false
	case 1:
		for t := range set {
			return t, false
		}
	}
	return CellTypeText, set[CellTypeError]
}
