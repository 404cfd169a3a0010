package saver

import "imbalance-bars-go/bars"

// Row is the flat DTO every saver writes (CSV/JSON/Parquet). Datetime is a
// unix timestamp in milliseconds, matching the observation input format.
type Row struct {
	Datetime int64   `json:"t" parquet:"t"`
	Open     float64 `json:"o" parquet:"o"`
	High     float64 `json:"h" parquet:"h"`
	Low      float64 `json:"l" parquet:"l"`
	Close    float64 `json:"c" parquet:"c"`
	Volume   float64 `json:"v" parquet:"v"`
}

// Rows converts emitted bars to the serialization DTO.
func Rows(bs []bars.Bar) []Row {
	out := make([]Row, 0, len(bs))
	for _, b := range bs {
		out = append(out, Row{
			Datetime: b.Datetime.UnixMilli(),
			Open:     b.Open,
			High:     b.High,
			Low:      b.Low,
			Close:    b.Close,
			Volume:   b.Volume,
		})
	}
	return out
}
