package saver

import (
	"fmt"
	"strings"
)

// ForFormat returns the saver for format (csv, json or parquet).
func ForFormat(format string) (BarSaver, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "csv":
		return CSVSaver{}, nil
	case "json":
		return JSONSaver{}, nil
	case "parquet":
		return ParquetSaver{}, nil
	default:
		return nil, fmt.Errorf("saver: unsupported format %q (use csv, json or parquet)", format)
	}
}
