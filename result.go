package display

// ResultValue renders a (value, error) pair as a tagged result: the Ok form
// carries the value's display text, the Err form the error's.
type ResultValue[T any] struct {
	v   T
	err error
}

// Result wraps Go's native result shape, the (value, error) pair, so a call
// result can be displayed in one tagged token:
//
//	display.Result(strconv.Atoi(s)) // Ok(42) or Err(strconv.Atoi: ...)
//
// A nil error selects the Ok form. A non-nil error selects the Err form and
// the value is ignored.
func Result[T any](v T, err error) ResultValue[T] {
	return ResultValue[T]{v: v, err: err}
}

// String implements fmt.Stringer.
func (r ResultValue[T]) String() string {
	if r.err != nil {
		return "Err(" + r.err.Error() + ")"
	}
	return "Ok(" + sprint(r.v) + ")"
}

// MarshalText implements encoding.TextMarshaler. It never fails.
func (r ResultValue[T]) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}
