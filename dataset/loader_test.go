package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/estigo"
)

func TestReadCSV(t *testing.T) {
	ds, err := ReadCSV(strings.NewReader("1,2.5\n-3, 4\n"))
	require.NoError(t, err)

	assert.Equal(t, 2, ds.Len())
	assert.Equal(t, 2, ds.Dim())
	assert.Equal(t, []float64{1, 2.5}, ds.Sample(0))
	assert.Equal(t, []float64{-3, 4}, ds.Sample(1))
}

func TestReadCSV_NotNumeric(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("1,2\n3,abc\n"))
	require.Error(t, err)

	var numErr *estigo.ErrNotNumeric
	require.ErrorAs(t, err, &numErr)
	assert.Equal(t, 1, numErr.Row)
	assert.Equal(t, 1, numErr.Col)
	assert.Equal(t, "abc", numErr.Value)
}

func TestLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("1,2\n3,4\n"), 0o644))

	ds, err := LoadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, 2, ds.Len())
	assert.Equal(t, []float64{3, 4}, ds.Sample(1))
}

func TestLoadCSV_Gzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv.gz")

	f, err := os.Create(path)
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte("5,6\n7,8\n"))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())

	ds, err := LoadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, 2, ds.Len())
	assert.Equal(t, []float64{5, 6}, ds.Sample(0))
}

func TestLoadCSV_Missing(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}
