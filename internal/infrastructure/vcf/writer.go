package vcf

import (
	"context"
	"fmt"
	"os"

	"github.com/emersion/go-vcard"

	"contactsorter/internal/domain"
	"contactsorter/internal/ports"
)

// fallbackName replaces an empty formatted name, since a card without FN
// is not a useful contact entry.
const fallbackName = "Unnamed Contact"

// Writer serializes a bucket back into card format, one card per contact.
type Writer struct{}

var _ ports.BucketWriter = (*Writer)(nil)

// NewWriter builds the card-format bucket writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteBucket writes every contact as a card: FN always present, EMAIL
// tagged as an internet address when non-empty, TEL tagged as a cell
// number when non-empty.
func (w *Writer) WriteBucket(ctx context.Context, path string, contacts []domain.Contact) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	encoder := vcard.NewEncoder(file)
	for _, contact := range contacts {
		if err := encoder.Encode(toCard(contact)); err != nil {
			_ = file.Close()
			return fmt.Errorf("encode card in %s: %w", path, err)
		}
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	return nil
}

func toCard(contact domain.Contact) vcard.Card {
	card := make(vcard.Card)

	name := contact.Name
	if name == "" {
		name = fallbackName
	}
	card.SetValue(vcard.FieldFormattedName, name)

	if contact.Email != "" {
		card.Add(vcard.FieldEmail, &vcard.Field{
			Value:  contact.Email,
			Params: vcard.Params{vcard.ParamType: []string{"INTERNET"}},
		})
	}

	if contact.Phone != "" {
		card.Add(vcard.FieldTelephone, &vcard.Field{
			Value:  contact.Phone,
			Params: vcard.Params{vcard.ParamType: []string{"CELL"}},
		})
	}

	vcard.ToV4(card)
	return card
}
