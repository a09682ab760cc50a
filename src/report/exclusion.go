package report

import "strings"

// FilterExcluded returns the entries of excludedFields starting with prefix.
// Total on any input; no normalization or deduplication. Note that a bare
// section prefix such as "case" also matches entries owned by sibling
// sections ("case_back_type" starts with "case"), which is why section
// filtering goes through ExcludedForSection instead.
func FilterExcluded(excludedFields []string, prefix string) []string {
	out := make([]string, 0, len(excludedFields))
	for _, f := range excludedFields {
		if strings.HasPrefix(f, prefix) {
			out = append(out, f)
		}
	}
	return out
}

// Excluded reports whether a single field is switched off by the
// certificate type's exclusion list. An entry applies when it names the
// field exactly, or when it names the section the field belongs to.
// An entry like "case" therefore excludes "case_material" but not
// "case_back_type", which the case_back section owns.
func Excluded(excludedFields []string, fieldName string) bool {
	section := SectionOf(fieldName)
	for _, e := range excludedFields {
		if e == fieldName || (section != "" && e == section) {
			return true
		}
	}
	return false
}

// ExcludedForSection returns the names of a section's fields that the
// exclusion list switches off.
func ExcludedForSection(excludedFields []string, section string) []string {
	var out []string
	for _, f := range SectionFields(section) {
		if Excluded(excludedFields, f.Name) {
			out = append(out, f.Name)
		}
	}
	return out
}
