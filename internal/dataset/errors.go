package dataset

import "fmt"

// FormatError reports a structural problem in the input table: a missing
// required column, an unknown layer value, or a cell that fails numeric
// parsing. Row is the 1-based data row (0 for header-level problems).
type FormatError struct {
	Path   string
	Row    int
	Column string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("%s: row %d, column %q: %v", e.Path, e.Row, e.Column, e.Err)
	}
	if e.Column != "" {
		return fmt.Sprintf("%s: column %q: %v", e.Path, e.Column, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }
