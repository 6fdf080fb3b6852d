// Package report stores the consistency report produced at the end of a run.
package report

import (
	"context"
	"fmt"
	"os"

	"contactsorter/internal/ports"
)

// FileSink writes the rendered report to a plain-text file.
type FileSink struct{}

var _ ports.ReportSink = (*FileSink)(nil)

// NewFileSink builds the file-backed report sink.
func NewFileSink() *FileSink {
	return &FileSink{}
}

// Publish writes the report text, replacing any previous run's file.
func (s *FileSink) Publish(ctx context.Context, path string, report string) error {
	if err := os.WriteFile(path, []byte(report), 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}
