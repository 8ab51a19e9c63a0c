package telemetry

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

// Writer appends GenerationStats rows as CSV, writing the header once.
type Writer struct {
	w             io.Writer
	headerWritten bool
}

// NewWriter wraps w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write appends one stats row.
func (sw *Writer) Write(stats GenerationStats) error {
	records := []GenerationStats{stats}
	if !sw.headerWritten {
		if err := gocsv.Marshal(records, sw.w); err != nil {
			return fmt.Errorf("writing stats: %w", err)
		}
		sw.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, sw.w); err != nil {
		return fmt.Errorf("writing stats: %w", err)
	}
	return nil
}
