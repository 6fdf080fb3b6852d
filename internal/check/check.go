// Package check validates a finished partition run: the bucket counts must
// cover the input exactly, and duplicate emails or phone numbers in the
// input are reported. Findings are diagnostics about the data, never errors.
package check

import (
	"fmt"
	"strings"

	"contactsorter/internal/domain"
)

// DuplicateGroup collects the contacts sharing one non-empty key value.
type DuplicateGroup struct {
	Key     string
	Members []domain.Contact
}

// Report is the outcome of all consistency checks for one run.
type Report struct {
	InitialCount    int
	FilteredCount   int
	DuplicateEmails []DuplicateGroup
	DuplicatePhones []DuplicateGroup
}

// CountsMatch reports whether the partition covered the input exactly.
func (r Report) CountsMatch() bool {
	return r.InitialCount == r.FilteredCount
}

// Run inspects the original contact list (duplicates included) together
// with the per-bucket counts of the finished partition. Buckets themselves
// are never touched.
func Run(contacts []domain.Contact, bucketCounts map[string]int) Report {
	report := Report{InitialCount: len(contacts)}

	for _, count := range bucketCounts {
		report.FilteredCount += count
	}

	report.DuplicateEmails = groupDuplicates(contacts, func(c domain.Contact) string { return c.Email })
	report.DuplicatePhones = groupDuplicates(contacts, func(c domain.Contact) string { return c.Phone })

	return report
}

// groupDuplicates buckets contacts by a non-empty key and keeps only groups
// with more than one member, ordered by first occurrence in the input.
func groupDuplicates(contacts []domain.Contact, key func(domain.Contact) string) []DuplicateGroup {
	members := map[string][]domain.Contact{}
	order := make([]string, 0)

	for _, contact := range contacts {
		k := key(contact)
		if k == "" {
			continue
		}
		if _, seen := members[k]; !seen {
			order = append(order, k)
		}
		members[k] = append(members[k], contact)
	}

	groups := make([]DuplicateGroup, 0)
	for _, k := range order {
		if len(members[k]) > 1 {
			groups = append(groups, DuplicateGroup{Key: k, Members: members[k]})
		}
	}
	return groups
}

// Render formats the report as the human-readable check_results.txt text.
func Render(report Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Initial number of contacts: %d\n", report.InitialCount)
	fmt.Fprintf(&b, "Total number of filtered contacts: %d\n", report.FilteredCount)
	if report.CountsMatch() {
		b.WriteString("Check 1 PASSED: Total contacts match.\n")
	} else {
		b.WriteString("Check 1 FAILED: Total contacts do not match.\n")
	}

	if len(report.DuplicateEmails) > 0 {
		b.WriteString("Check 2 FAILED: Duplicate emails found.\n")
		for _, group := range report.DuplicateEmails {
			fmt.Fprintf(&b, "\nDuplicate email: %s\n", group.Key)
			for _, contact := range group.Members {
				fmt.Fprintf(&b, "  - Name: %s, Phone: %s\n", contact.Name, contact.Phone)
			}
		}
	} else {
		b.WriteString("Check 2 PASSED: No duplicate emails found.\n")
	}

	if len(report.DuplicatePhones) > 0 {
		b.WriteString("\nCheck 2 FAILED: Duplicate phone numbers found.\n")
		for _, group := range report.DuplicatePhones {
			fmt.Fprintf(&b, "\nDuplicate phone: %s\n", group.Key)
			for _, contact := range group.Members {
				fmt.Fprintf(&b, "  - Name: %s, Email: %s\n", contact.Name, contact.Email)
			}
		}
	} else {
		b.WriteString("\nCheck 2 PASSED: No duplicate phone numbers found.\n")
	}

	return b.String()
}
