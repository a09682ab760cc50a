package report

// FieldChange is one edit event coming from a form.
type FieldChange struct {
	Field string
	Value any
}

// sentinelScores maps a sentinel-capable parent field to the condition
// scores that reset to 0 when the parent is set to SentinelNone. A
// component that does not exist is graded 0, not left unset.
var sentinelScores = map[string][]string{
	"bracelet_type": {
		"bracelet_score", "bracelet_clasp_score", "bracelet_link_score",
	},
	"case_bezel_type": {
		"case_bezel_score", "case_bezel_insert_score",
	},
}

// Apply is the pure form reducer: it returns a new value map with the
// change applied and derived state recomputed. Fields whose visibility
// condition no longer holds are dropped, and sentinel parents reset their
// dependent scores. The input map is not mutated.
func Apply(values Values, change FieldChange) Values {
	next := Values{}
	for k, v := range values {
		next[k] = v
	}
	next[change.Field] = change.Value

	if scores, ok := sentinelScores[change.Field]; ok {
		if s, _ := change.Value.(string); s == SentinelNone {
			for _, scoreField := range scores {
				next[scoreField] = 0
			}
		}
	}

	// Drop values of fields that are no longer visible. Runs to fixpoint
	// because clearing one field can hide another (gem setting type hides
	// when the set-with-gems answer disappears).
	for changed := true; changed; {
		changed = false
		for name := range next {
			f, ok := Lookup(name)
			if !ok || f.Kind == KindScore {
				continue
			}
			if !Visible(f, next) {
				delete(next, name)
				changed = true
			}
		}
	}

	return next
}
