package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"strconv"
	"time"
)

// Generates a synthetic random-walk OHLCV series for exercising the bar
// builder without exchange data.
// Usage:
//
//	go run ./cmd/synthdata -out data/synth.csv -rows 5000 -seed 42
func main() {
	out := flag.String("out", "data/synth.csv", "output CSV path")
	rows := flag.Int("rows", 1000, "number of observations")
	seed := flag.Int64("seed", 42, "rng seed")
	start := flag.String("start", "2024-01-01T00:00:00Z", "first timestamp (RFC3339)")
	step := flag.Duration("step", time.Minute, "spacing between observations")
	price := flag.Float64("price", 100, "starting price")
	flag.Parse()

	ts, err := time.Parse(time.RFC3339, *start)
	if err != nil {
		log.Fatalf("parse start: %v", err)
	}

	rng := rand.New(rand.NewSource(*seed))
	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("create %s: %v", *out, err)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"t", "o", "h", "l", "c", "v"}); err != nil {
		log.Fatalf("write header: %v", err)
	}

	p := *price
	for i := 0; i < *rows; i++ {
		open := p
		p += rng.NormFloat64() * 0.5
		if p < 1 {
			p = 1
		}
		high := math.Max(open, p) + rng.Float64()*0.3
		low := math.Min(open, p) - rng.Float64()*0.3
		volume := 100 + rng.Float64()*900
		record := []string{
			strconv.FormatInt(ts.UnixMilli(), 10),
			floatStr(open),
			floatStr(high),
			floatStr(low),
			floatStr(p),
			floatStr(volume),
		}
		if err := w.Write(record); err != nil {
			log.Fatalf("write row %d: %v", i, err)
		}
		ts = ts.Add(*step)
	}
	fmt.Printf("wrote %d observations to %s\n", *rows, *out)
}

func floatStr(v float64) string { return strconv.FormatFloat(v, 'f', 6, 64) }
