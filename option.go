package display

// OptionValue renders an optional value: the inner value's display form when
// present, the literal "None" when absent. The zero OptionValue is absent.
type OptionValue[T any] struct {
	v      *T
	render func(any) string
}

// Option wraps a pointer-shaped optional, Go's usual representation of a
// maybe-missing value. A nil pointer renders "None"; otherwise the pointee
// renders via its canonical display form.
func Option[T any](v *T) OptionValue[T] {
	return OptionValue[T]{v: v, render: sprint}
}

// OptionOk wraps a comma-ok-shaped optional, as produced by map lookups and
// type assertions:
//
//	v, ok := index[key]
//	logger.Info("lookup", zap.Stringer("hit", display.OptionOk(v, ok)))
func OptionOk[T any](v T, ok bool) OptionValue[T] {
	if !ok {
		return OptionValue[T]{}
	}
	return OptionValue[T]{v: &v, render: sprint}
}

// OptionDebug is Option with the inner value rendered in Go syntax (%#v)
// instead of its display form. Strings come out quoted; composites carry
// their type.
func OptionDebug[T any](v *T) OptionValue[T] {
	return OptionValue[T]{v: v, render: sprintDebug}
}

// String implements fmt.Stringer.
func (o OptionValue[T]) String() string {
	if o.v == nil {
		return "None"
	}
	return o.render(*o.v)
}

// MarshalText implements encoding.TextMarshaler. It never fails.
func (o OptionValue[T]) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}
