package utils

import "strings"

// FieldSet pairs field names with their submitted values, in the order the
// fields should be reported back to the caller.
type FieldSet struct {
	names  []string
	values []string
}

// Require adds a field to the set and returns the set for chaining.
func (f *FieldSet) Require(name, value string) *FieldSet {
	f.names = append(f.names, name)
	f.values = append(f.values, value)
	return f
}

// Missing returns the names of all fields whose value is blank.
func (f *FieldSet) Missing() []string {
	var missing []string
	for i, v := range f.values {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, f.names[i])
		}
	}
	return missing
}

// MissingFieldsMessage builds the aggregated validation message for a set
// of missing field names, or "" when none are missing.
func MissingFieldsMessage(missing []string) string {
	if len(missing) == 0 {
		return ""
	}
	return "Please provide: " + strings.Join(missing, ", ")
}
