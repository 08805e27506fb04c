package slicedisplay

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errInternalWrite = errors.New("write failed")

type errWriterInternal struct{}

func (*errWriterInternal) Write([]byte) (int, error) {
	return 0, errInternalWrite
}

func TestSliceDefaults(t *testing.T) {
	t.Parallel()
	d := Slice([]int{1})
	assert.Equal(t, "[", d.open)
	assert.Equal(t, "]", d.close)
	assert.Equal(t, ",", d.delim)
	assert.True(t, d.space)
}

func TestSeqDefaults(t *testing.T) {
	t.Parallel()
	d := Seq(func(func(int) bool) {})
	assert.Equal(t, "[", d.open)
	assert.Equal(t, "]", d.close)
	assert.Equal(t, ",", d.delim)
	assert.True(t, d.space)
}

func TestBuildersLeaveReceiverFieldsIntact(t *testing.T) {
	t.Parallel()
	d := Slice([]int{1, 2})
	_ = d.Terminator("{", "}")
	_ = d.Delimiter(";")
	_ = d.Spaced(false)
	assert.Equal(t, "[", d.open)
	assert.Equal(t, "]", d.close)
	assert.Equal(t, ",", d.delim)
	assert.True(t, d.space)
}

func TestBuildersShareBackingSlice(t *testing.T) {
	t.Parallel()
	nums := []int{1, 2, 3}
	d := Slice(nums).Delimiter(";")
	// The handle borrows; mutations to the slice show up on render.
	nums[0] = 9
	assert.Equal(t, "[9; 2; 3]", d.String())
}

func TestWriteTokenEmptySkipsSink(t *testing.T) {
	t.Parallel()
	// An empty token must not reach the sink at all.
	assert.NoError(t, writeToken(&errWriterInternal{}, ""))
	assert.ErrorIs(t, writeToken(&errWriterInternal{}, "["), errInternalWrite)
}

func TestWriteSep(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	assert.NoError(t, writeSep(&buf, ";", true))
	assert.Equal(t, "; ", buf.String())

	buf.Reset()
	assert.NoError(t, writeSep(&buf, ";", false))
	assert.Equal(t, ";", buf.String())
}

func TestWriteElemFallback(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	assert.NoError(t, writeElem(&buf, 42))
	assert.Equal(t, "42", buf.String())

	buf.Reset()
	assert.NoError(t, writeElem(&buf, "hi"))
	assert.Equal(t, "hi", buf.String())
}
