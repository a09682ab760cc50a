package report

// Values is the flat attribute map one section edits, and the shape of the
// persisted attributes blob. Values are strings, numbers, string slices
// (multi-select or file path lists) or nested maps for dimension fields.
type Values map[string]any

// Aggregate merges section value maps into one flat map. Key namespaces do
// not collide across sections (the registry enforces unique field names),
// so merge order does not matter.
func Aggregate(sections ...Values) Values {
	flat := Values{}
	for _, sec := range sections {
		for k, v := range sec {
			flat[k] = v
		}
	}
	return flat
}

// SplitIdentity separates the general_object_* identity keys from the
// inspection attributes. Identity keys are matched literally against
// IdentityFields; everything else stays in the attributes map.
func SplitIdentity(flat Values) (identity Values, attributes Values) {
	identity = Values{}
	attributes = Values{}
	idents := map[string]bool{}
	for _, name := range IdentityFields {
		idents[name] = true
	}
	for k, v := range flat {
		if idents[k] {
			identity[k] = v
		} else {
			attributes[k] = v
		}
	}
	return identity, attributes
}

// CleanAttributes drops entries that carry no information: nil, empty
// strings, empty slices, and nested maps whose every value is itself empty.
// An untouched optional field is then indistinguishable from one that never
// existed, keeping the stored blob minimal and repeated saves idempotent.
func CleanAttributes(attributes Values) Values {
	cleaned := Values{}
	for k, v := range attributes {
		if !emptyValue(v) {
			cleaned[k] = v
		}
	}
	return cleaned
}

func emptyValue(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case []string:
		return len(val) == 0
	case []any:
		return len(val) == 0
	case map[string]any:
		for _, sub := range val {
			if !emptyValue(sub) {
				return false
			}
		}
		return true
	case Values:
		for _, sub := range val {
			if !emptyValue(sub) {
				return false
			}
		}
		return true
	default:
		// numbers and booleans always carry information, zero included
		return false
	}
}
