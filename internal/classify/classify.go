// Package classify partitions a normalized contact list into disjoint
// buckets by running an ordered list of named predicates with
// first-match-wins semantics.
package classify

import (
	"strings"

	"contactsorter/internal/domain"
)

// Rule is a single named predicate over a contact. Rules never error;
// a predicate over absent data simply does not match.
type Rule struct {
	Label string
	Match func(domain.Contact) bool
}

// RuleSet keeps rules in declaration order. Order is load-bearing: a
// contact matching several rules belongs to the first one registered.
type RuleSet struct {
	rules []Rule
	index map[string]int
}

// NewRuleSet builds an empty ordered rule set.
func NewRuleSet() *RuleSet {
	return &RuleSet{index: map[string]int{}}
}

// Register appends a rule, or replaces one with the same label in place.
func (s *RuleSet) Register(rule Rule) {
	if s.index == nil {
		s.index = map[string]int{}
	}
	if i, ok := s.index[rule.Label]; ok {
		s.rules[i] = rule
		return
	}
	s.index[rule.Label] = len(s.rules)
	s.rules = append(s.rules, rule)
}

// Rules returns the registered rules in declaration order.
func (s *RuleSet) Rules() []Rule {
	return s.rules
}

// DefaultRules returns the built-in rule set in its fixed order.
func DefaultRules() *RuleSet {
	set := NewRuleSet()
	set.Register(Rule{Label: "Doctors", Match: func(c domain.Contact) bool {
		name := strings.ToLower(c.Name)
		return strings.Contains(name, "doc") ||
			strings.Contains(name, "dott") ||
			strings.Contains(name, "medi")
	}})
	set.Register(Rule{Label: "Restaurants", Match: func(c domain.Contact) bool {
		name := strings.ToLower(c.Name)
		return strings.Contains(name, "rist") || strings.Contains(name, "rest")
	}})
	set.Register(Rule{Label: "cern_emails", Match: func(c domain.Contact) bool {
		return strings.HasSuffix(c.Email, "cern.ch")
	}})
	set.Register(Rule{Label: "phone_prefix_41", Match: phonePrefix("+41")})
	set.Register(Rule{Label: "phone_prefix_39", Match: phonePrefix("+39")})
	set.Register(Rule{Label: "phone_prefix_33", Match: phonePrefix("+33")})
	return set
}

func phonePrefix(prefix string) func(domain.Contact) bool {
	return func(c domain.Contact) bool {
		return strings.HasPrefix(c.Phone, prefix)
	}
}

// Result carries the partition outcome: one bucket per rule label plus the
// all_others remainder, in declaration order.
type Result struct {
	Buckets []domain.Bucket
}

// Counts returns the per-label bucket sizes.
func (r Result) Counts() map[string]int {
	counts := make(map[string]int, len(r.Buckets))
	for _, bucket := range r.Buckets {
		counts[bucket.Label] = len(bucket.Contacts)
	}
	return counts
}

// Total returns the number of contacts placed across all buckets.
func (r Result) Total() int {
	total := 0
	for _, bucket := range r.Buckets {
		total += len(bucket.Contacts)
	}
	return total
}

// Partition assigns every contact to exactly one bucket. Each rule claims
// the contacts that match it and were not claimed by an earlier rule; the
// processed set grows only between rules, so identical duplicates matching
// the same rule land together in that rule's bucket. Contacts left
// unclaimed after all rules form the all_others bucket.
func Partition(contacts []domain.Contact, set *RuleSet) Result {
	processed := make(map[domain.Contact]struct{})

	rules := set.Rules()
	result := Result{Buckets: make([]domain.Bucket, 0, len(rules)+1)}

	for _, rule := range rules {
		selected := make([]domain.Contact, 0)
		for _, contact := range contacts {
			if !rule.Match(contact) {
				continue
			}
			if _, claimed := processed[contact]; claimed {
				continue
			}
			selected = append(selected, contact)
		}

		for _, contact := range selected {
			processed[contact] = struct{}{}
		}

		result.Buckets = append(result.Buckets, domain.Bucket{Label: rule.Label, Contacts: selected})
	}

	remainder := make([]domain.Contact, 0)
	for _, contact := range contacts {
		if _, claimed := processed[contact]; !claimed {
			remainder = append(remainder, contact)
		}
	}
	result.Buckets = append(result.Buckets, domain.Bucket{Label: domain.LabelAllOthers, Contacts: remainder})

	return result
}
