package domain

// Contact is the core value entity extracted from a single vCard record.
// All fields are optional; a missing source field becomes the empty string.
// The struct is comparable, so it can key maps and back set membership.
type Contact struct {
	Name  string
	Email string
	Phone string
}

// Equal reports whether two contacts are identical for deduplication
// purposes: exact string equality on Name, Email and Phone. No case
// folding, no fuzzy matching.
func (c Contact) Equal(other Contact) bool {
	return c == other
}

// Bucket is the ordered subset of contacts assigned to one classification
// label.
type Bucket struct {
	Label    string
	Contacts []Contact
}

// LabelAllOthers names the implicit remainder bucket for contacts that
// match no declared rule.
const LabelAllOthers = "all_others"
