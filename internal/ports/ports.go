package ports

import (
	"context"

	"contactsorter/internal/domain"
)

// ContactSource reads raw contact records from a card-format export.
type ContactSource interface {
	Read(ctx context.Context, path string) ([]domain.Contact, error)
}

// BucketWriter persists one classified bucket to a file.
type BucketWriter interface {
	WriteBucket(ctx context.Context, path string, contacts []domain.Contact) error
}

// ReportSink stores the rendered consistency report of a run.
type ReportSink interface {
	Publish(ctx context.Context, path string, report string) error
}
