package checklist

// Checkbox is a single "- [ ]" line found in markdown.
type Checkbox struct {
	Line    int    // position among the checkboxes found
	Indent  string // leading whitespace
	Checked bool   // true if [x]
	Text    string
	RawLine string
}

// Stats is the progress of a checklist.
type Stats struct {
	Total     int
	Completed int
	Pending   int
	Progress  float64 // completion percentage (0-100)
}
