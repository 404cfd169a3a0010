package pipeline

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imbalance-bars-go/bars"
	"imbalance-bars-go/config"
)

// The reference walk: closes 100,101,99,99,103 with volume 10 per row and
// alpha 0.5 breaches on every post-seed observation, producing 4 bars.
const referenceInput = `t,o,h,l,c,v
60000,100,101,99,100,0
120000,100,102,100,101,10
180000,101,101,98,99,10
240000,99,100,98,99,10
300000,99,104,99,103,10
`

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunnerEndToEnd(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "bars.csv")
	summary := filepath.Join(dir, "summary.csv")

	r := Runner{
		Name: "ref",
		Dataset: config.Dataset{
			Input:         writeInput(t, referenceInput),
			Output:        output,
			Format:        "csv",
			Alpha:         0.5,
			SummaryOutput: summary,
		},
	}
	sum, err := r.Run()
	require.NoError(t, err)
	assert.Equal(t, 5, sum.Observations)
	assert.Equal(t, 4, sum.Bars)
	assert.Equal(t, 40.0, sum.TotalVolume)
	assert.InDelta(t, 9.4375, sum.FinalThreshold, 1e-12)

	f, err := os.Open(output)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 5) // header + 4 bars
	assert.Equal(t, "120000", records[1][0])
	assert.Equal(t, "300000", records[4][0])

	_, err = os.Stat(summary)
	require.NoError(t, err)
}

func TestRunnerIdempotent(t *testing.T) {
	dir := t.TempDir()
	r := Runner{
		Name: "ref",
		Dataset: config.Dataset{
			Input:  writeInput(t, referenceInput),
			Output: filepath.Join(dir, "bars.json"),
			Format: "json",
			Alpha:  0.5,
		},
	}
	first, err := r.Run()
	require.NoError(t, err)
	second, err := r.Run()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRunnerMissingInput(t *testing.T) {
	r := Runner{
		Name: "missing",
		Dataset: config.Dataset{
			Input:  filepath.Join(t.TempDir(), "missing.csv"),
			Output: filepath.Join(t.TempDir(), "bars.csv"),
			Format: "csv",
			Alpha:  0.5,
		},
	}
	_, err := r.Run()
	assert.Error(t, err)
}

func TestRunnerInvalidAlpha(t *testing.T) {
	r := Runner{
		Name: "bad_alpha",
		Dataset: config.Dataset{
			Input:  writeInput(t, referenceInput),
			Output: filepath.Join(t.TempDir(), "bars.csv"),
			Format: "csv",
			Alpha:  1.5,
		},
	}
	_, err := r.Run()
	require.Error(t, err)
	assert.True(t, errors.Is(err, bars.ErrAlphaOutOfRange))
}
