package htmltable

import (
	"fmt"
	"strings"
)

// Warning describes a non-fatal issue encountered during extraction.
// Warnings indicate that extraction succeeded but the result may be
// imperfect, for example rows synthesized by a rowspan were discarded
// because of a row limit.
type Warning struct {
	// Table identifies which requested table the warning applies to.
	Table TableID

	// Message is a human-readable description of the issue.
	Message string
}

// String returns the warning as a single human-readable line.
func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Table, w.Message)
}

// FormatWarnings joins warnings into a single string for display.
//
// Example:
//
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", htmltable.FormatWarnings(warnings))
//	}
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
