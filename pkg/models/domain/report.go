package domain

// RGB is a section accent color. Accent colors are fixed per section
// category so the same category renders identically across documents.
type RGB struct {
	R, G, B int
}

// Section is one titled, color-coded tabular block of the report.
type Section struct {
	Title string
	Color RGB
	Table Table
}

// Table holds the section's rows plus the layout hints the paginated
// renderer needs. Widths and Truncation are parallel to Headers; the
// delimited renderer ignores both.
type Table struct {
	Headers    []string
	Rows       [][]string
	Widths     []float64
	Truncation []int
}
