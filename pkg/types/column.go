package types

// Comparator orders two field values. It returns a negative number when a
// sorts before b, zero when they are equal and a positive number otherwise.
// The view orders nil and missing values itself, so a Comparator attached to
// a ColumnSpec only sees present values.
type Comparator func(a, b any) int

// ColumnSpec describes how one record field may be sorted, searched and
// aggregated.
type ColumnSpec struct {
	Key        string     // Record field name (required, unique per view).
	Label      string     // Display heading; defaults to Key.
	Sortable   bool       // ToggleSort accepts this key.
	Searchable bool       // Search term is matched against this field.
	Aggregate  bool       // Field contributes to Summary sums and averages.
	Compare    Comparator // Optional custom ordering.
}

// Heading returns the column label, falling back to the key.
func (c ColumnSpec) Heading() string {
	if c.Label != "" {
		return c.Label
	}
	return c.Key
}
