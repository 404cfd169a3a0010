// Package series loads observation sequences for the bar builder. It is the
// plumbing side of the pipeline: the builder itself never touches files.
package series

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"imbalance-bars-go/bars"
)

// Load reads a CSV observation file with columns t,o,h,l,c,v where t is a
// unix timestamp in milliseconds. A single header row is allowed. Any
// malformed data row fails the whole load; the builder's input contract
// forbids missing or non-numeric fields.
func Load(path string) ([]bars.Observation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	out := make([]bars.Observation, 0, len(rows))
	for i, row := range rows {
		if len(row) < 6 {
			return nil, fmt.Errorf("%s row %d: want 6 columns, got %d", path, i+1, len(row))
		}
		ms, err := strconv.ParseInt(row[0], 10, 64)
		if err != nil {
			if i == 0 {
				continue // header row
			}
			return nil, fmt.Errorf("%s row %d: bad timestamp %q", path, i+1, row[0])
		}
		var vals [5]float64
		for j := 1; j < 6; j++ {
			v, err := strconv.ParseFloat(row[j], 64)
			if err != nil {
				return nil, fmt.Errorf("%s row %d column %d: %v", path, i+1, j+1, err)
			}
			vals[j-1] = v
		}
		out = append(out, bars.Observation{
			Open:   vals[0],
			High:   vals[1],
			Low:    vals[2],
			Close:  vals[3],
			Volume: vals[4],
			Ts:     time.UnixMilli(ms).UTC(),
		})
	}
	return out, nil
}
