// Package csvout writes classified buckets as comma-delimited text.
package csvout

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"contactsorter/internal/domain"
	"contactsorter/internal/ports"
)

var header = []string{"Name", "Email", "Phone"}

// Writer emits one CSV file per bucket with a fixed header row.
type Writer struct{}

var _ ports.BucketWriter = (*Writer)(nil)

// NewWriter builds the delimited-text bucket writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteBucket writes the header followed by one row per contact, with
// standard CSV quoting.
func (w *Writer) WriteBucket(ctx context.Context, path string, contacts []domain.Contact) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		_ = file.Close()
		return fmt.Errorf("write header to %s: %w", path, err)
	}

	for _, contact := range contacts {
		if err := writer.Write([]string{contact.Name, contact.Email, contact.Phone}); err != nil {
			_ = file.Close()
			return fmt.Errorf("write row to %s: %w", path, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		_ = file.Close()
		return fmt.Errorf("flush %s: %w", path, err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	return nil
}
