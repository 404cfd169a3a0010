// Package saver serializes emitted bars. The pipeline depends only on the
// BarSaver interface; the concrete format comes from config.
package saver

// BarSaver writes one run's bars to a file. Implementations are stateless.
type BarSaver interface {
	Save(rows []Row, path string) error
	Extension() string
}
