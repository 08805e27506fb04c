// Package slicedisplay renders a slice of values as a single
// human-readable line, with configurable terminators, delimiter, and
// post-delimiter spacing.
//
// The entry point is [Slice], which wraps a slice in a [Display]
// handle carrying the default chrome:
//
//	nums := []int{1, 2, 3, 4, 5}
//	fmt.Println(slicedisplay.Slice(nums)) // [1, 2, 3, 4, 5]
//
// A Display borrows the slice and is cheap to copy. It does nothing
// until rendered, so a bare call to Slice has no effect.
//
// # Configuration
//
// Builder methods return a new handle with one setting replaced; the
// receiver is never modified, and calls chain in any order with the
// last value per setting winning:
//
//	d := slicedisplay.Slice(nums)
//	d.Delimiter(";").String()                            // [1; 2; 3; 4; 5]
//	d.Delimiter("-").Spaced(false).String()              // [1-2-3-4-5]
//	d.Terminator("{", "}").Spaced(false).Delimiter(";").String()
//	                                                     // {1;2;3;4;5}
//
// Tokens are arbitrary strings. Multi-character tokens work, and an
// empty token renders as nothing:
//
//	d.Terminator("{{", "}}").Delimiter(" ... ").Spaced(false).String()
//	// {{1 ... 2 ... 3 ... 4 ... 5}}
//
// An empty slice renders as the two terminators alone ("[]" under the
// default chrome); a single element renders with no delimiter. No
// configuration produces a trailing delimiter or space.
//
// # Sinks
//
// A handle can be rendered three ways: [Display.Write] streams into
// any [io.Writer] and reports the writer's errors, [Display.String]
// materializes a string, and the [fmt.Formatter] implementation lets
// a handle appear directly in formatted printing:
//
//	fmt.Printf("primes: %v\n", slicedisplay.Slice(primes))
//
// # Element Rendering
//
// Elements render themselves; the package imposes no escaping or
// quoting, and an element's text may freely contain the delimiter or
// terminator characters. An element implementing [Texter] writes its
// own text into the sink and may fail; any other element goes through
// [fmt.Fprint], so [fmt.Stringer] implementations and plain values
// both work unmodified.
//
// # Streaming
//
// [Seq] renders from an [iter.Seq] and [Chan] from a channel, with
// the same chrome and builder surface as [Slice], for sequences that
// are not materialized as slices:
//
//	slicedisplay.Seq(maps.Keys(m)).Terminator("{", "}").String()
//
// # Errors
//
// The package has no failure modes of its own and accepts every
// configuration. Rendering stops at the first error from the sink or
// from an element's [Texter] and returns it unchanged; the sink may
// then hold a partial prefix of the output.
package slicedisplay
