package bars

import "time"

// Observation is one OHLCV sample of the input series.
type Observation struct {
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
	Ts     time.Time
}
