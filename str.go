package display

import "github.com/mattn/go-runewidth"

// defaultStrWidth caps rendered strings at a log-friendly length.
const defaultStrWidth = 100

// StrValue renders a string capped at a maximum display width, so an
// arbitrarily long value cannot flood a log line. Width is measured in
// terminal columns: wide runes count as two.
type StrValue struct {
	s     string
	limit int
}

// Str wraps a string for display with the default cap of 100 columns.
func Str(s string) StrValue {
	return StrValue{s: s, limit: defaultStrWidth}
}

// AtMost sets the display-width cap. A cap of 0 or less disables truncation.
func (v StrValue) AtMost(n int) StrValue {
	v.limit = n
	return v
}

// String implements fmt.Stringer.
func (v StrValue) String() string {
	return truncDisplay(v.s, v.limit)
}

// MarshalText implements encoding.TextMarshaler. It never fails.
func (v StrValue) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// truncDisplay truncates s to at most width display columns. Widths of three
// or fewer leave no room for the "..." tail, so the string is cut bare.
func truncDisplay(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 3 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "...")
}
