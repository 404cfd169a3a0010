package bars

import "time"

// Bar aggregates one window of observations. Datetime is the timestamp of
// the observation whose imbalance breached the threshold.
type Bar struct {
	Open     float64
	High     float64
	Low      float64
	Close    float64
	Volume   float64
	Datetime time.Time
}
