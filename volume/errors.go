package volume

import "fmt"

// FormatError reports a structural problem with a volume export: a
// missing required column, an empty file, or a header that cannot be
// located. Structural problems abort the load; bad cell values do not.
type FormatError struct {
	Period string // "AM" or "PM"
	Detail string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s volume file: %s", e.Period, e.Detail)
}
