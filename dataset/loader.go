package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/hupe1980/estigo"
)

// LoadCSV reads a numeric CSV file into a Dataset. Files ending in ".gz"
// are decompressed transparently. Every field must parse as a float;
// otherwise an ErrNotNumeric identifying the offending row and column is
// returned and no dataset is produced.
func LoadCSV(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open gzip dataset: %w", err)
		}
		defer gz.Close()
		r = gz
	}

	return ReadCSV(r)
}

// ReadCSV reads numeric CSV records from r into a Dataset.
func ReadCSV(r io.Reader) (*Dataset, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	ds := &Dataset{
		samples: make([][]float64, len(records)),
	}

	for i, record := range records {
		// csv.Reader enforces a uniform field count across records.
		if i == 0 {
			ds.dim = len(record)
		}

		sample := make([]float64, len(record))
		for j, field := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, &estigo.ErrNotNumeric{Row: i, Col: j, Value: field}
			}
			sample[j] = v
		}
		ds.samples[i] = sample
	}

	return ds, nil
}
