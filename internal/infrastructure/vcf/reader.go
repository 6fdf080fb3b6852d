// Package vcf adapts the go-vcard codec to the pipeline's record-in,
// record-out contracts.
package vcf

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/emersion/go-vcard"

	"contactsorter/internal/domain"
	"contactsorter/internal/ports"
)

// Reader parses a card-format export into raw contacts.
type Reader struct {
	logger *slog.Logger
}

var _ ports.ContactSource = (*Reader)(nil)

// NewReader wires an optional logger for per-file diagnostics.
func NewReader(logger *slog.Logger) *Reader {
	return &Reader{logger: logger}
}

// Read decodes every card in the file. A record may omit any field; the
// corresponding contact field stays empty. A missing or unreadable file is
// an error for the whole run.
func (r *Reader) Read(ctx context.Context, path string) ([]domain.Contact, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input %s: %w", path, err)
	}
	defer file.Close()

	decoder := vcard.NewDecoder(file)
	contacts := make([]domain.Contact, 0)

	for {
		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode card %d in %s: %w", len(contacts)+1, path, err)
		}
		contacts = append(contacts, extract(card))
	}

	r.debug("input parsed", "path", path, "contacts", len(contacts))
	return contacts, nil
}

// extract populates each field from the first matching card property.
func extract(card vcard.Card) domain.Contact {
	return domain.Contact{
		Name:  card.Value(vcard.FieldFormattedName),
		Email: card.Value(vcard.FieldEmail),
		Phone: card.Value(vcard.FieldTelephone),
	}
}

func (r *Reader) debug(msg string, args ...interface{}) {
	if r.logger != nil {
		r.logger.Debug(msg, args...)
	}
}
