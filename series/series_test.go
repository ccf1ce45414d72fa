package series

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead_Valid(t *testing.T) {
	in := "0 1 2\n  1\t1.5   -2e-3\n2 1 2\n"
	tbl, err := Read(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, 3, tbl.Rows())
	assert.Equal(t, 3, tbl.Cols())
	assert.Equal(t, 1, tbl.Harmonics())
	assert.Equal(t, []float64{0, 1, 2}, tbl.Time())
	assert.Equal(t, []float64{1, 1.5, 1}, tbl.Harmonic(0))
	assert.Equal(t, []float64{2, -2e-3, 2}, tbl.Harmonic(1))
	assert.Equal(t, 1.5, tbl.At(1, 1))
	assert.Empty(t, tbl.Path())
}

func TestRead_ColumnIsCopy(t *testing.T) {
	tbl, err := Read(strings.NewReader("0 1\n1 2\n"))
	require.NoError(t, err)

	c := tbl.Harmonic(0)
	c[0] = 99
	assert.Equal(t, 1.0, tbl.At(0, 1))
}

func TestRead_ParseError(t *testing.T) {
	_, err := Read(strings.NewReader("0 1 2\n1 abc 2\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParse)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 2, perr.Line)
	assert.Equal(t, 2, perr.Column)
	assert.Equal(t, "abc", perr.Token)
}

func TestRead_ShapeErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		line int
		got  int
		want int
	}{
		{"ragged short", "0 1 2\n1 1\n", 2, 2, 3},
		{"ragged long", "0 1\n1 1 1\n", 2, 3, 2},
		{"blank line", "0 1\n\n2 1\n", 2, 0, 2},
		{"blank first line", "\n0 1\n", 1, 0, 1},
		{"empty", "", 0, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tbl, err := Read(strings.NewReader(tc.in))
			require.Error(t, err)
			assert.Nil(t, tbl)
			assert.ErrorIs(t, err, ErrShape)

			var serr *ShapeError
			require.True(t, errors.As(err, &serr))
			assert.Equal(t, tc.line, serr.Line)
			assert.Equal(t, tc.got, serr.Got)
			assert.Equal(t, tc.want, serr.Want)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ExpSmoothed.txt")
	require.NoError(t, os.WriteFile(path, []byte("0 1 2 3\n1 1 2 3\n"), 0o600))

	tbl, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, tbl.Path())
	assert.Equal(t, 2, tbl.Rows())
	assert.Equal(t, 2, tbl.Harmonics())

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("0 1\n1 x\n"), 0o600))
	_, err = Load(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), bad+":2")

	_, err = Load(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNew(t *testing.T) {
	tbl, err := New([][]float64{{0, 1, 2}, {1, 3, 4}})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4}, tbl.Harmonic(1))

	_, err = New([][]float64{{0, 1}, {1}})
	assert.ErrorIs(t, err, ErrShape)

	_, err = New(nil)
	assert.ErrorIs(t, err, ErrShape)
}
