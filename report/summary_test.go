package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imbalance-bars-go/bars"
)

func sampleResult() *bars.Result {
	return &bars.Result{
		Bars: []bars.Bar{
			{Open: 100, High: 102, Low: 99, Close: 101, Volume: 10, Datetime: time.UnixMilli(60000).UTC()},
			{Open: 101, High: 103, Low: 100, Close: 99, Volume: 30, Datetime: time.UnixMilli(180000).UTC()},
		},
		Imbalance:    []float64{10, -10, -20, -10},
		CumImbalance: []float64{10, -10, -30, -10},
		Threshold:    []float64{5.5, 7.75, 13.875, 11.9375},
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize("btc", 5, sampleResult())
	assert.Equal(t, "btc", s.Dataset)
	assert.Equal(t, 5, s.Observations)
	assert.Equal(t, 2, s.Bars)
	assert.Equal(t, 40.0, s.TotalVolume)
	assert.Equal(t, 10.0, s.MinVolume)
	assert.Equal(t, 30.0, s.MaxVolume)
	assert.Equal(t, 20.0, s.MeanVolume)
	assert.Equal(t, 0.5, s.Compression)
	assert.Equal(t, 11.9375, s.FinalThreshold)
	assert.Equal(t, time.UnixMilli(60000).UTC(), s.FirstBar)
	assert.Equal(t, time.UnixMilli(180000).UTC(), s.LastBar)
}

func TestSummarizeNoBars(t *testing.T) {
	res := &bars.Result{Threshold: []float64{0.91, 0.829}}
	s := Summarize("quiet", 3, res)
	assert.Equal(t, 0, s.Bars)
	assert.Equal(t, 0.0, s.Compression)
	assert.Equal(t, 0.829, s.FinalThreshold)
	assert.True(t, s.FirstBar.IsZero())
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.csv")
	require.NoError(t, WriteCSV(path, []Summary{Summarize("btc", 5, sampleResult())}))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "btc", records[1][0])
	assert.Equal(t, "5", records[1][1])
	assert.Equal(t, "2", records[1][2])
}

func TestWriteCSVEmpty(t *testing.T) {
	err := WriteCSV(filepath.Join(t.TempDir(), "summary.csv"), nil)
	assert.Error(t, err)
}
