package display

import (
	"errors"
	"fmt"
)

// ErrOutOfRange reports a Unix timestamp outside the renderable calendar
// range (before the epoch or past the year 9999). It is the only failure
// this package produces; every other formatter is total.
var ErrOutOfRange = errors.New("unix timestamp out of range")

// sprint renders a value in its canonical display form: String() when the
// value implements fmt.Stringer, fmt's %v otherwise. Errors render as their
// Error() text.
func sprint(v any) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", v)
}

// sprintDebug renders a value in Go syntax: strings come out quoted,
// composites carry their type. The %#v counterpart of sprint.
func sprintDebug(v any) string {
	return fmt.Sprintf("%#v", v)
}
