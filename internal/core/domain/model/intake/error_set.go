package intake

import "sort"

// ValidationErrorSet maps a form field name to its validation message.
// It is recomputed on every relevant input change and never persisted.
// An empty set means the checked step is valid.
type ValidationErrorSet map[string]string

// IsEmpty reports whether the set contains no errors.
func (s ValidationErrorSet) IsEmpty() bool {
	return len(s) == 0
}

// Fields returns the failing field names in stable order.
func (s ValidationErrorSet) Fields() []string {
	fields := make([]string, 0, len(s))
	for field := range s {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// DuplicateErrorSet maps a form field name to a duplicate-conflict message.
// Filled by the exhaustive duplicate guard: every colliding field is reported
// at once. Like ValidationErrorSet it is ephemeral and never persisted.
type DuplicateErrorSet map[string]string

// IsEmpty reports whether the set contains no conflicts.
func (s DuplicateErrorSet) IsEmpty() bool {
	return len(s) == 0
}

// Fields returns the colliding field names in stable order.
func (s DuplicateErrorSet) Fields() []string {
	fields := make([]string, 0, len(s))
	for field := range s {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}
