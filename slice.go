package display

import "strings"

// defaultLimit is the number of leading elements rendered before the elision
// marker when a slice is too long to show in full.
const defaultLimit = 4

// SliceValue renders a slice as a bracketed, separator-joined string, eliding
// the middle of long slices with a ".." marker:
//
//	display.Slice([]int{1, 2, 3, 4, 5, 6}) // [1,2,3,4,..,6]
//
// AtMost, Sep, Braces, and ElemWidth return modified copies, so a configured
// value can be stored and reused.
type SliceValue[T any] struct {
	s         []T
	limit     int
	sep       string
	left      string
	right     string
	elemWidth int
}

// Slice wraps a slice for display with the default limit of 4 leading
// elements.
func Slice[T any](s []T) SliceValue[T] {
	return SliceValue[T]{s: s, limit: defaultLimit, sep: ",", left: "[", right: "]"}
}

// SliceN is shorthand for Slice(s).AtMost(n).
func SliceN[T any](s []T, n int) SliceValue[T] {
	return Slice(s).AtMost(n)
}

// AtMost sets the number of leading elements rendered before the ".."
// marker. Elision triggers only when it shortens the output: a slice of n
// elements renders in full unless n > limit+1. A limit of 0 keeps only the
// marker and the final element ("[..,9]"); negative limits are treated as 0.
func (v SliceValue[T]) AtMost(n int) SliceValue[T] {
	if n < 0 {
		n = 0
	}
	v.limit = n
	return v
}

// Sep sets the separator between elements, including around the elision
// marker. Default ",".
func (v SliceValue[T]) Sep(sep string) SliceValue[T] {
	v.sep = sep
	return v
}

// Braces sets the opening and closing delimiters. Default "[" and "]".
func (v SliceValue[T]) Braces(left, right string) SliceValue[T] {
	v.left = left
	v.right = right
	return v
}

// ElemWidth caps each rendered element at w display columns, truncating with
// "...". Zero, the default, disables the cap.
func (v SliceValue[T]) ElemWidth(w int) SliceValue[T] {
	v.elemWidth = w
	return v
}

// String implements fmt.Stringer.
func (v SliceValue[T]) String() string {
	var sb strings.Builder
	sb.WriteString(v.left)
	n := len(v.s)
	if n-1 > v.limit {
		for i := range v.limit {
			if i > 0 {
				sb.WriteString(v.sep)
			}
			sb.WriteString(v.elem(v.s[i]))
		}
		if v.limit > 0 {
			sb.WriteString(v.sep)
		}
		sb.WriteString("..")
		sb.WriteString(v.sep)
		sb.WriteString(v.elem(v.s[n-1]))
	} else {
		for i, e := range v.s {
			if i > 0 {
				sb.WriteString(v.sep)
			}
			sb.WriteString(v.elem(e))
		}
	}
	sb.WriteString(v.right)
	return sb.String()
}

func (v SliceValue[T]) elem(e T) string {
	s := sprint(e)
	if v.elemWidth > 0 {
		s = truncDisplay(s, v.elemWidth)
	}
	return s
}

// MarshalText implements encoding.TextMarshaler. It never fails.
func (v SliceValue[T]) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}
