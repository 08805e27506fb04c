package slicedisplay

import (
	"fmt"
	"io"
	"strings"
)

// Default chrome: "[1, 2, 3]".
const (
	defaultOpen  = "["
	defaultClose = "]"
	defaultDelim = ","
)

// Texter writes an element's textual form directly into a sink.
// Elements implementing it render themselves without going through
// [fmt] and may report a failure, which aborts rendering and is
// returned to the caller unchanged. Elements that do not implement
// Texter are rendered with [fmt.Fprint], so [fmt.Stringer], error,
// and [fmt.Formatter] implementations all work with no adaptation.
type Texter interface {
	WriteText(w io.Writer) error
}

// Display pairs a slice with the chrome used to render it: an opening
// terminator, a closing terminator, a delimiter between elements, and
// a flag controlling whether a single space follows each delimiter.
//
// A Display borrows the slice; it never copies or mutates it, and it
// is valid only as long as the slice is. The zero cost of copying a
// Display makes the builder methods pure: each returns a new Display
// with one setting replaced, leaving the receiver untouched.
type Display[T any] struct {
	slice []T
	open  string
	close string
	delim string
	space bool
}

// Slice returns a Display over s with the default chrome. It accepts
// owned slices, sub-slice views, and named slice types uniformly;
// fixed-size arrays are rendered via arr[:].
//
// The result does not display anything by itself: it is inert until
// rendered through [Display.Write], [Display.String], or a formatted
// print.
func Slice[S ~[]E, E any](s S) Display[E] {
	return Display[E]{
		slice: s,
		open:  defaultOpen,
		close: defaultClose,
		delim: defaultDelim,
		space: true,
	}
}

// Terminator returns a copy of d with both terminators replaced. The
// pair is always set together. Any strings are accepted, including
// empty ones, which render as nothing.
func (d Display[T]) Terminator(open, close string) Display[T] {
	d.open, d.close = open, close
	return d
}

// Delimiter returns a copy of d with the inter-element delimiter
// replaced. The delimiter appears between adjacent elements only,
// never after the last.
func (d Display[T]) Delimiter(delim string) Display[T] {
	d.delim = delim
	return d
}

// Spaced returns a copy of d configured to emit (or not emit) a
// single space after each delimiter.
func (d Display[T]) Spaced(on bool) Display[T] {
	d.space = on
	return d
}

// Write renders the slice into w. Output is the opening terminator,
// the elements separated by the delimiter (plus a space when spacing
// is on), and the closing terminator. An empty slice renders as the
// two terminators alone.
//
// Writes go straight to w with no buffering. The first error from w
// or from an element's [Texter] aborts rendering and is returned
// unchanged; w may then hold a partial prefix of the output.
func (d Display[T]) Write(w io.Writer) error {
	if err := writeToken(w, d.open); err != nil {
		return err
	}
	for i, elem := range d.slice {
		if i > 0 {
			if err := writeSep(w, d.delim, d.space); err != nil {
				return err
			}
		}
		if err := writeElem(w, elem); err != nil {
			return err
		}
	}
	return writeToken(w, d.close)
}

// String renders the slice into a new string. It implements
// [fmt.Stringer].
func (d Display[T]) String() string {
	var sb strings.Builder
	_ = d.Write(&sb) // strings.Builder does not fail
	return sb.String()
}

// Format implements [fmt.Formatter] for the %v and %s verbs,
// streaming the rendering into the formatter without an intermediate
// string.
func (d Display[T]) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		_ = d.Write(f)
	default:
		fmt.Fprintf(f, "%%!%c(slicedisplay.Display)", verb)
	}
}

func writeToken(w io.Writer, tok string) error {
	if tok == "" {
		return nil
	}
	_, err := io.WriteString(w, tok)
	return err
}

func writeSep(w io.Writer, delim string, space bool) error {
	if err := writeToken(w, delim); err != nil {
		return err
	}
	if !space {
		return nil
	}
	_, err := io.WriteString(w, " ")
	return err
}

func writeElem(w io.Writer, elem any) error {
	if t, ok := elem.(Texter); ok {
		return t.WriteText(w)
	}
	_, err := fmt.Fprint(w, elem)
	return err
}
