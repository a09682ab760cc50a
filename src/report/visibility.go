package report

// Visible evaluates a field's secondary visibility condition against the
// current values. Exclusion is a separate axis; a field hidden by its
// certificate type stays hidden regardless of what this returns.
func Visible(field Field, values Values) bool {
	if field.When == nil {
		return true
	}
	current, _ := values[field.When.Field].(string)
	if field.When.Eq != "" {
		return current == field.When.Eq
	}
	return current != field.When.Neq
}

// VisibleFields returns the section's fields that are neither excluded by
// the certificate type nor hidden by a sibling value. This is what a form
// renders.
func VisibleFields(section string, excludedFields []string, values Values) []Field {
	var out []Field
	for _, f := range SectionFields(section) {
		if Excluded(excludedFields, f.Name) {
			continue
		}
		if !Visible(f, values) {
			continue
		}
		out = append(out, f)
	}
	return out
}
