package saver

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imbalance-bars-go/bars"
)

func sampleRows() []Row {
	return Rows([]bars.Bar{
		{Open: 100, High: 102, Low: 99, Close: 101, Volume: 30, Datetime: time.UnixMilli(60000).UTC()},
		{Open: 101, High: 104, Low: 100.5, Close: 103, Volume: 12.5, Datetime: time.UnixMilli(120000).UTC()},
	})
}

func TestRowsConversion(t *testing.T) {
	rows := sampleRows()
	require.Len(t, rows, 2)
	assert.Equal(t, int64(60000), rows[0].Datetime)
	assert.Equal(t, 100.0, rows[0].Open)
	assert.Equal(t, 12.5, rows[1].Volume)
}

func TestCSVSaver(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bars.csv")
	require.NoError(t, CSVSaver{}.Save(sampleRows(), path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"t", "o", "h", "l", "c", "v"}, records[0])
	assert.Equal(t, "60000", records[1][0])
	assert.Equal(t, "12.5", records[2][5])
}

func TestJSONSaver(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bars.json")
	rows := sampleRows()
	require.NoError(t, JSONSaver{}.Save(rows, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var got []Row
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, rows, got)
}

func TestParquetSaver(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bars.parquet")
	require.NoError(t, ParquetSaver{}.Save(sampleRows(), path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestForFormat(t *testing.T) {
	for _, format := range []string{"csv", "JSON", " parquet "} {
		s, err := ForFormat(format)
		require.NoError(t, err, format)
		require.NotNil(t, s)
	}
	_, err := ForFormat("xml")
	assert.Error(t, err)
}
