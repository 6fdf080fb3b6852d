// Package normalize turns raw parsed contact fields into their canonical
// pipeline shape. Only phone numbers carry any real normalization; names
// and emails pass through untouched.
package normalize

import (
	"strings"

	"contactsorter/internal/domain"
)

// Phone normalizes a telephone value: outer whitespace is trimmed, embedded
// spaces are removed, and the first occurrence of "00" is replaced with "+".
// Known quirk: the replacement hits the first "00" anywhere in the string,
// not only a leading dial prefix, so "+4100123" becomes "+41+123". Kept
// that way deliberately.
//
// Normalization is total: any input, including the empty string, yields a
// result without error.
func Phone(value string) string {
	value = strings.TrimSpace(value)
	value = strings.ReplaceAll(value, " ", "")
	return strings.Replace(value, "00", "+", 1)
}

// Contacts returns a copy of the list with every phone number normalized.
func Contacts(contacts []domain.Contact) []domain.Contact {
	normalized := make([]domain.Contact, len(contacts))
	for i, contact := range contacts {
		contact.Phone = Phone(contact.Phone)
		normalized[i] = contact
	}
	return normalized
}
