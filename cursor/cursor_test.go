package cursor

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadLinePositions(t *testing.T) {
	c := New(strings.NewReader("one\ntwo\nthree\n"))
	require.Equal(t, int64(0), c.Position())
	line, err := c.ReadLine()
	require.NoError(t, err)
	require.Equal(t, "one\n", string(line))
	require.Equal(t, int64(4), c.Position())
	line, err = c.ReadLine()
	require.NoError(t, err)
	require.Equal(t, "two\n", string(line))
	require.Equal(t, int64(8), c.Position())
	line, err = c.ReadLine()
	require.NoError(t, err)
	require.Equal(t, "three\n", string(line))
	require.Equal(t, int64(14), c.Position())
	line, err = c.ReadLine()
	require.NoError(t, err)
	require.Nil(t, line)
	require.Equal(t, int64(14), c.Position())
}

func TestReadLineUnterminatedFinalLine(t *testing.T) {
	c := New(strings.NewReader("one\ntwo"))
	line, err := c.ReadLine()
	require.NoError(t, err)
	require.Equal(t, "one\n", string(line))
	line, err = c.ReadLine()
	require.NoError(t, err)
	require.Equal(t, "two", string(line))
	require.Equal(t, int64(7), c.Position())
	line, err = c.ReadLine()
	require.NoError(t, err)
	require.Nil(t, line)
}

func TestSeekMidLine(t *testing.T) {
	c := New(strings.NewReader("alpha\nbravo\ncharlie\n"))
	require.NoError(t, c.Seek(8))
	require.Equal(t, int64(8), c.Position())
	line, err := c.ReadLine()
	require.NoError(t, err)
	require.Equal(t, "avo\n", string(line))
	require.Equal(t, int64(12), c.Position())
	line, err = c.ReadLine()
	require.NoError(t, err)
	require.Equal(t, "charlie\n", string(line))
}

func TestSeekDiscardsBufferedState(t *testing.T) {
	c := New(strings.NewReader("alpha\nbravo\n"))
	_, err := c.ReadLine()
	require.NoError(t, err)
	require.NoError(t, c.Seek(0))
	line, err := c.ReadLine()
	require.NoError(t, err)
	require.Equal(t, "alpha\n", string(line))
}

func TestSeekPastEnd(t *testing.T) {
	c := New(strings.NewReader("alpha\n"))
	require.NoError(t, c.Seek(100))
	line, err := c.ReadLine()
	require.NoError(t, err)
	require.Nil(t, line)
}

type errReadSeeker struct {
	readErr error
	seekErr error
}

func (e *errReadSeeker) Read(b []byte) (int, error) {
	return 0, e.readErr
}

func (e *errReadSeeker) Seek(offset int64, whence int) (int64, error) {
	if e.seekErr != nil {
		return 0, e.seekErr
	}
	return offset, nil
}

func TestReadLineFaultPropagates(t *testing.T) {
	fault := errors.New("device gone")
	c := New(&errReadSeeker{readErr: fault})
	_, err := c.ReadLine()
	require.ErrorIs(t, err, fault)
	require.ErrorContains(t, err, "cursor: read at offset 0")
}

func TestSeekFaultPropagates(t *testing.T) {
	fault := errors.New("device gone")
	c := New(&errReadSeeker{seekErr: fault})
	err := c.Seek(42)
	require.ErrorIs(t, err, fault)
	require.ErrorContains(t, err, "cursor: seek to offset 42")
}

func TestLongLine(t *testing.T) {
	long := strings.Repeat("x", 1<<16)
	c := New(strings.NewReader(long + "\nend\n"))
	line, err := c.ReadLine()
	require.NoError(t, err)
	require.Equal(t, long+"\n", string(line))
	require.Equal(t, int64(len(long)+1), c.Position())
	line, err = c.ReadLine()
	require.NoError(t, err)
	require.Equal(t, "end\n", string(line))
}
