package xls

import (
	"math"
	"time"
)

// Excel serial dates count days from an epoch that depends on the
// workbook's date mode: mode 0 (the default, with its phantom 1900 leap
// day already accounted for) and mode 1 (the 1904 Macintosh epoch).
var (
	epoch1900 = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)
	epoch1904 = time.Date(1904, time.January, 1, 0, 0, 0, 0, time.UTC)
)

// NormalizeBooleans converts a column of raw numeric cell values to
// booleans. Nil entries (empty cells) stay nil.
func NormalizeBooleans(values []*float64) []*bool {
	normalized := make([]*bool, len(values))
	for i, v := range values {
		if v == nil {
			continue
		}
		b := *v != 0
		normalized[i] = &b
	}
	return normalized
}

// DateColumn holds a normalized date column.
type DateColumn struct {
	Values []*time.Time

	// WithDate and WithTime report which components actually occur in the
	// column, letting callers pick a date, time, or timestamp type.
	WithDate bool
	WithTime bool
}

// NormalizeDates converts a column of Excel serial date numbers to times
// in UTC. Nil entries (empty cells) stay nil. datemode selects the
// workbook epoch: 0 for 1900, 1 for 1904.
func NormalizeDates(values []*float64, datemode int) DateColumn {
	epoch := epoch1900
	if datemode == 1 {
		epoch = epoch1904
	}

	col := DateColumn{Values: make([]*time.Time, len(values))}
	for i, v := range values {
		if v == nil {
			continue
		}

		days, frac := math.Modf(*v)
		t := epoch.AddDate(0, 0, int(days)).
			Add(time.Duration(math.Round(frac * 24 * float64(time.Hour))))
		col.Values[i] = &t

		hasDate := days != 0
		hasTime := frac != 0
		if hasDate {
			col.WithDate = true
		}
		if hasTime {
			col.WithTime = true
		}
	}
	return col
}
