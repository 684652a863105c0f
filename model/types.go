package model

// Kind identifies the semantic type of a column.
type Kind int

const (
	// KindText indicates free-form text.
	KindText Kind = iota
	// KindNumber indicates numeric values.
	KindNumber
	// KindBoolean indicates true/false values.
	KindBoolean
	// KindDate indicates calendar dates.
	KindDate
	// KindDateTime indicates timestamps.
	KindDateTime
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindDate:
		return "date"
	case KindDateTime:
		return "datetime"
	default:
		return "unknown"
	}
}

// Type describes the semantic type of a column. It is a descriptor
// attached to the table for downstream consumers; cell values remain
// strings.
type Type struct {
	Kind   Kind
	Format string // reference layout for dates and times, empty otherwise
}

// Text returns a text column type.
func Text() Type { return Type{Kind: KindText} }

// Number returns a numeric column type.
func Number() Type { return Type{Kind: KindNumber} }

// Boolean returns a boolean column type.
func Boolean() Type { return Type{Kind: KindBoolean} }

// Date returns a date column type with the given reference layout
// (time.Parse style). An empty layout leaves the format unspecified.
func Date(layout string) Type { return Type{Kind: KindDate, Format: layout} }

// DateTime returns a timestamp column type with the given reference
// layout.
func DateTime(layout string) Type { return Type{Kind: KindDateTime, Format: layout} }

// String returns the string representation of the type.
func (t Type) String() string {
	if t.Format == "" {
		return t.Kind.String()
	}
	return t.Kind.String() + "(" + t.Format + ")"
}
