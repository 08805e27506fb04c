package slicedisplay

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

// SeqDisplay renders elements produced by an iterator with the same
// output shape and chrome as [Display], without collecting them into
// a slice first. Each rendering call iterates seq once; re-rendering
// behaves like a fresh Display only when seq is re-iterable.
type SeqDisplay[T any] struct {
	seq   iter.Seq[T]
	open  string
	close string
	delim string
	space bool
}

// Seq returns a SeqDisplay over seq with the default chrome. Like
// [Slice], the result is inert until rendered.
func Seq[T any](seq iter.Seq[T]) SeqDisplay[T] {
	return SeqDisplay[T]{
		seq:   seq,
		open:  defaultOpen,
		close: defaultClose,
		delim: defaultDelim,
		space: true,
	}
}

// Chan returns a SeqDisplay that renders the values received from ch
// until it is closed. It is a thin wrapper around [Seq]. A channel
// can only be drained once, so the result is single-use.
func Chan[T any](ch <-chan T) SeqDisplay[T] {
	return Seq(chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for elem := range ch {
			if !yield(elem) {
				return
			}
		}
	}
}

// Terminator returns a copy of d with both terminators replaced.
func (d SeqDisplay[T]) Terminator(open, close string) SeqDisplay[T] {
	d.open, d.close = open, close
	return d
}

// Delimiter returns a copy of d with the inter-element delimiter
// replaced.
func (d SeqDisplay[T]) Delimiter(delim string) SeqDisplay[T] {
	d.delim = delim
	return d
}

// Spaced returns a copy of d configured to emit (or not emit) a
// single space after each delimiter.
func (d SeqDisplay[T]) Spaced(on bool) SeqDisplay[T] {
	d.space = on
	return d
}

// Write renders the iterator's elements into w under the same
// contract as [Display.Write]. Iteration stops at the first write or
// element error, which is returned unchanged.
func (d SeqDisplay[T]) Write(w io.Writer) error {
	if err := writeToken(w, d.open); err != nil {
		return err
	}
	first := true
	var werr error
	d.seq(func(elem T) bool {
		if !first {
			if werr = writeSep(w, d.delim, d.space); werr != nil {
				return false
			}
		}
		first = false
		werr = writeElem(w, elem)
		return werr == nil
	})
	if werr != nil {
		return werr
	}
	return writeToken(w, d.close)
}

// String renders the iterator's elements into a new string. It
// implements [fmt.Stringer].
func (d SeqDisplay[T]) String() string {
	var sb strings.Builder
	_ = d.Write(&sb)
	return sb.String()
}

// Format implements [fmt.Formatter] for the %v and %s verbs.
func (d SeqDisplay[T]) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		_ = d.Write(f)
	default:
		fmt.Fprintf(f, "%%!%c(slicedisplay.SeqDisplay)", verb)
	}
}
