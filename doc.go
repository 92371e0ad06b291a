// Package display renders common value shapes as compact strings: optional
// values, (value, error) results, bounded slices, capped strings, and
// Unix-millisecond timestamps.
//
// Every wrapper is a plain value implementing [fmt.Stringer]; construction
// allocates nothing beyond the wrapper itself and formats nothing. Rendering
// happens only when String is called, which makes the wrappers cheap to pass
// as deferred log fields: a disabled level never pays for formatting.
//
//	logger.Debug("applied",
//		zap.Stringer("entries", display.Slice(entryIDs)),
//		zap.Stringer("leader", display.Option(leaderID)),
//		zap.Stringer("at", display.UnixMilli(ms).Short()),
//	)
//
// # Optionals
//
// [Option] wraps a pointer; nil renders the literal "None", anything else
// renders the pointee. [OptionOk] accepts the comma-ok pair from map lookups
// and type assertions. [OptionDebug] renders the inner value in Go syntax
// (%#v) instead of its display form:
//
//	v := 1
//	display.Option(&v)           // 1
//	display.Option[int](nil)     // None
//	s := "hello"
//	display.OptionDebug(&s)      // "hello"
//
// # Results
//
// [Result] wraps a (value, error) pair and renders exactly one of the two
// tagged forms:
//
//	display.Result(42, nil)                  // Ok(42)
//	display.Result(0, errors.New("boom"))    // Err(boom)
//	display.Result(strconv.Atoi(input))      // either, straight off the call
//
// # Slices
//
// [Slice] joins elements with "," inside "[" and "]". Long slices keep the
// first few elements and the last one, with a ".." marker in between; by
// default 4 leading elements are kept, and elision only happens when it
// shortens the output:
//
//	display.Slice([]int{1, 2, 3, 4, 5})          // [1,2,3,4,5]
//	display.Slice([]int{1, 2, 3, 4, 5, 6})       // [1,2,3,4,..,6]
//	display.SliceN([]int{1, 2, 3, 4, 5, 6}, 1)   // [1,..,6]
//
// [SliceValue.AtMost] sets the leading-element count, [SliceValue.Sep] the
// separator, [SliceValue.Braces] the delimiters, and [SliceValue.ElemWidth]
// a per-element display-width cap:
//
//	display.Slice(words).Sep(", ").Braces("{", "}")
//	display.Slice(rows).ElemWidth(40)
//
// # Strings
//
// [Str] caps a string at a display width (100 columns unless changed with
// [StrValue.AtMost]), truncating with "...". Width counts terminal columns,
// so wide runes count as two.
//
// # Timestamps
//
// [UnixMilli] renders a millisecond Unix timestamp as an ISO-8601 UTC
// datetime. The default form has microsecond precision and an explicit
// offset; [Timestamp.Short] drops to millisecond precision with no offset:
//
//	display.UnixMilli(1723102819023)          // 2024-08-08T07:40:19.023000Z+0000
//	display.UnixMilli(1723102819023).Short()  // 2024-08-08T07:40:19.023
//
// [Timestamp.InMillis] and [Timestamp.WithTimezone] select the remaining
// combinations. An optional timestamp composes with [Option]:
//
//	display.Option(lastApplied) // None, or the formatted time
//
// # Encoding
//
// Every wrapper also implements [encoding.TextMarshaler], so wrappers embed
// directly in structs serialized with encoding/json or gopkg.in/yaml.v3.
// Only the timestamp marshaler can fail; the rest always succeed.
//
// # Errors
//
// Formatting is total everywhere except timestamp conversion. A timestamp
// before the Unix epoch or past the year 9999 is rejected: String renders
// the loud fallback "Invalid(<ms>ms)", and MarshalText reports
// [ErrOutOfRange].
package display
