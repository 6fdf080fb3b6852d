package classify

import (
	"testing"

	"contactsorter/internal/domain"
)

func TestDefaultRulesOrder(t *testing.T) {
	t.Parallel()

	want := []string{
		"Doctors",
		"Restaurants",
		"cern_emails",
		"phone_prefix_41",
		"phone_prefix_39",
		"phone_prefix_33",
	}

	rules := DefaultRules().Rules()
	if len(rules) != len(want) {
		t.Fatalf("expected %d rules, got %d", len(want), len(rules))
	}
	for i, rule := range rules {
		if rule.Label != want[i] {
			t.Fatalf("rule %d: expected %s, got %s", i, want[i], rule.Label)
		}
	}
}

func TestRuleSetRegisterReplacesInPlace(t *testing.T) {
	t.Parallel()

	set := NewRuleSet()
	set.Register(Rule{Label: "first", Match: func(domain.Contact) bool { return false }})
	set.Register(Rule{Label: "second", Match: func(domain.Contact) bool { return false }})
	set.Register(Rule{Label: "first", Match: func(domain.Contact) bool { return true }})

	rules := set.Rules()
	if len(rules) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(rules))
	}
	if rules[0].Label != "first" || !rules[0].Match(domain.Contact{}) {
		t.Fatalf("replacement did not keep position or behavior")
	}
}

func TestPartitionCompleteness(t *testing.T) {
	t.Parallel()

	contacts := []domain.Contact{
		{Name: "Dott. Rossi", Email: "rossi@example.com", Phone: "+39061234567"},
		{Name: "Ristorante Da Mario", Phone: "+39061111111"},
		{Name: "Alice", Email: "alice@cern.ch", Phone: "+41791234567"},
		{Name: "Pierre", Phone: "+33612345678"},
		{Name: "Nobody Special", Email: "nobody@example.com", Phone: "+1555000111"},
	}

	result := Partition(contacts, DefaultRules())

	if result.Total() != len(contacts) {
		t.Fatalf("partition lost contacts: placed %d of %d", result.Total(), len(contacts))
	}

	counts := result.Counts()
	if counts["Doctors"] != 1 || counts["Restaurants"] != 1 || counts["cern_emails"] != 1 {
		t.Fatalf("unexpected counts: %v", counts)
	}
	if counts["phone_prefix_33"] != 1 || counts[domain.LabelAllOthers] != 1 {
		t.Fatalf("unexpected counts: %v", counts)
	}
}

func TestPartitionDisjointness(t *testing.T) {
	t.Parallel()

	// Matches Doctors, cern_emails and phone_prefix_41 simultaneously.
	contacts := []domain.Contact{
		{Name: "Doc Brown", Email: "brown@cern.ch", Phone: "+41791234567"},
	}

	result := Partition(contacts, DefaultRules())

	placements := map[domain.Contact][]string{}
	for _, bucket := range result.Buckets {
		for _, contact := range bucket.Contacts {
			placements[contact] = append(placements[contact], bucket.Label)
		}
	}

	for contact, labels := range placements {
		if len(labels) != 1 {
			t.Fatalf("contact %+v placed in %v", contact, labels)
		}
	}
}

func TestPartitionFirstMatchWins(t *testing.T) {
	t.Parallel()

	// "medical restaurant" satisfies both Doctors and Restaurants; the
	// Doctors rule is declared first and must claim it.
	contacts := []domain.Contact{
		{Name: "Medical Restaurant"},
	}

	result := Partition(contacts, DefaultRules())
	counts := result.Counts()

	if counts["Doctors"] != 1 {
		t.Fatalf("expected Doctors to claim the contact, counts: %v", counts)
	}
	if counts["Restaurants"] != 0 {
		t.Fatalf("Restaurants must not claim an already-claimed contact, counts: %v", counts)
	}
}

func TestPartitionDuplicatesStayTogether(t *testing.T) {
	t.Parallel()

	dup := domain.Contact{Name: "Doc Brown", Email: "brown@example.com", Phone: "+41791234567"}
	contacts := []domain.Contact{dup, dup}

	result := Partition(contacts, DefaultRules())
	counts := result.Counts()

	if counts["Doctors"] != 2 {
		t.Fatalf("identical duplicates must land in one bucket together, counts: %v", counts)
	}
	if result.Total() != 2 {
		t.Fatalf("expected both copies placed, got %d", result.Total())
	}
}

func TestPartitionEmptyInput(t *testing.T) {
	t.Parallel()

	result := Partition(nil, DefaultRules())

	if result.Total() != 0 {
		t.Fatalf("expected empty buckets, got total %d", result.Total())
	}
	if len(result.Buckets) != 7 {
		t.Fatalf("expected 6 rule buckets plus all_others, got %d", len(result.Buckets))
	}
	for _, bucket := range result.Buckets {
		if len(bucket.Contacts) != 0 {
			t.Fatalf("bucket %s not empty", bucket.Label)
		}
	}
}

func TestPartitionEmptyFieldsNeverMatch(t *testing.T) {
	t.Parallel()

	contacts := []domain.Contact{{}}

	result := Partition(contacts, DefaultRules())
	counts := result.Counts()

	if counts[domain.LabelAllOthers] != 1 {
		t.Fatalf("empty contact must fall through to all_others, counts: %v", counts)
	}
}
