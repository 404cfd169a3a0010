// Package report condenses a build pass into summary statistics for
// logging and CSV export.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"imbalance-bars-go/bars"
)

// Summary describes one dataset run.
type Summary struct {
	Dataset        string
	Observations   int // input rows including the seed
	Bars           int
	TotalVolume    float64
	MinVolume      float64
	MaxVolume      float64
	MeanVolume     float64
	Compression    float64 // bars per post-seed observation
	FinalThreshold float64
	FirstBar       time.Time
	LastBar        time.Time
}

// Summarize computes summary statistics over one build result.
func Summarize(dataset string, observations int, res *bars.Result) Summary {
	s := Summary{
		Dataset:      dataset,
		Observations: observations,
		Bars:         len(res.Bars),
	}
	if n := len(res.Threshold); n > 0 {
		s.FinalThreshold = res.Threshold[n-1]
		s.Compression = float64(len(res.Bars)) / float64(n)
	}
	if len(res.Bars) == 0 {
		return s
	}
	s.FirstBar = res.Bars[0].Datetime
	s.LastBar = res.Bars[len(res.Bars)-1].Datetime
	s.MinVolume = res.Bars[0].Volume
	s.MaxVolume = res.Bars[0].Volume
	for _, b := range res.Bars {
		if b.Volume < s.MinVolume {
			s.MinVolume = b.Volume
		}
		if b.Volume > s.MaxVolume {
			s.MaxVolume = b.Volume
		}
		s.TotalVolume += b.Volume
	}
	s.MeanVolume = s.TotalVolume / float64(len(res.Bars))
	return s
}

// WriteCSV writes summaries to path.
func WriteCSV(path string, sums []Summary) error {
	if len(sums) == 0 {
		return fmt.Errorf("no summary data")
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"dataset", "observations", "bars",
		"totalVolume", "minVolume", "maxVolume", "meanVolume",
		"compression", "finalThreshold", "firstBar", "lastBar",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, s := range sums {
		record := []string{
			s.Dataset,
			strconv.Itoa(s.Observations),
			strconv.Itoa(s.Bars),
			fmt.Sprintf("%.6f", s.TotalVolume),
			fmt.Sprintf("%.6f", s.MinVolume),
			fmt.Sprintf("%.6f", s.MaxVolume),
			fmt.Sprintf("%.6f", s.MeanVolume),
			fmt.Sprintf("%.6f", s.Compression),
			fmt.Sprintf("%.6f", s.FinalThreshold),
			formatTime(s.FirstBar),
			formatTime(s.LastBar),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
