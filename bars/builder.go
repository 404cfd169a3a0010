// Package bars resamples an OHLCV series into volume imbalance bars: bars
// whose boundaries are set by cumulative directional volume breaching an
// adaptive threshold instead of by a fixed clock.
package bars

import (
	"fmt"
	"math"
)

// Result holds the bars produced by one build pass. The four diagnostic
// slices are aligned index-for-index with the post-seed input (obs[1:]).
type Result struct {
	Bars []Bar

	Direction    []int     // β: +1 if close rose, -1 otherwise
	Imbalance    []float64 // θ = volume × β
	CumImbalance []float64 // running θ sum since the last bar boundary, as seen at the breach test
	Threshold    []float64 // EMA of |θ|, seeded at 1, never reset
}

// accum is the builder state threaded through the single pass.
type accum struct {
	cumTheta  float64
	threshold float64
	start     int // window start in the post-seed index space
}

// Build performs one forward pass over obs and returns the emitted bars plus
// the diagnostic series. The first observation only seeds the direction
// comparison and contributes no imbalance. Trailing observations that never
// breach the threshold form an incomplete window and are dropped, so the bar
// count is data-dependent and may be zero.
//
// Build is pure: it keeps no state between calls and the same input and
// alpha always produce identical output.
func Build(obs []Observation, alpha float64) (*Result, error) {
	if err := validate(obs, alpha); err != nil {
		return nil, err
	}

	n := len(obs) - 1
	res := &Result{
		Direction:    make([]int, 0, n),
		Imbalance:    make([]float64, 0, n),
		CumImbalance: make([]float64, 0, n),
		Threshold:    make([]float64, 0, n),
	}
	st := accum{threshold: 1}

	for i := 1; i < len(obs); i++ {
		beta := directionOf(obs[i].Close - obs[i-1].Close)
		theta := obs[i].Volume * float64(beta)
		st.cumTheta += theta
		// Threshold updates every observation, before the breach test.
		st.threshold = alpha*math.Abs(theta) + (1-alpha)*st.threshold

		res.Direction = append(res.Direction, beta)
		res.Imbalance = append(res.Imbalance, theta)
		res.CumImbalance = append(res.CumImbalance, st.cumTheta)
		res.Threshold = append(res.Threshold, st.threshold)

		if math.Abs(st.cumTheta) > st.threshold {
			// Post-seed window [st.start, i-1] maps to obs[st.start+1 : i+1].
			res.Bars = append(res.Bars, aggregate(obs[st.start+1:i+1]))
			st.cumTheta = 0
			st.start = i
		}
	}
	return res, nil
}

// directionOf classifies a close-to-close change with a strict greater-than
// test, so a flat close counts as a down move. Changing the tie-break moves
// bar boundaries on real series; kept as-is for compatibility.
func directionOf(diff float64) int {
	if diff > 0 {
		return 1
	}
	return -1
}

func aggregate(window []Observation) Bar {
	last := window[len(window)-1]
	b := Bar{
		Open:     window[0].Open,
		High:     window[0].High,
		Low:      window[0].Low,
		Close:    last.Close,
		Datetime: last.Ts,
	}
	for _, o := range window {
		if o.High > b.High {
			b.High = o.High
		}
		if o.Low < b.Low {
			b.Low = o.Low
		}
		b.Volume += o.Volume
	}
	return b
}

// validate fails fast before any accumulation begins.
func validate(obs []Observation, alpha float64) error {
	if alpha <= 0 || alpha > 1 {
		return fmt.Errorf("alpha %v: %w", alpha, ErrAlphaOutOfRange)
	}
	if len(obs) < 2 {
		return ErrTooFewObservations
	}
	for i, o := range obs {
		for _, v := range [5]float64{o.Open, o.High, o.Low, o.Close, o.Volume} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("observation %d: %w", i, ErrBadValue)
			}
		}
		if o.Volume < 0 {
			return fmt.Errorf("observation %d: %w", i, ErrNegativeVolume)
		}
		if i > 0 && !o.Ts.After(obs[i-1].Ts) {
			return fmt.Errorf("observation %d: %w", i, ErrNonMonotonicTime)
		}
	}
	return nil
}
