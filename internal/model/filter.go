package model

// FilterSpec is the combined set of user-chosen predicates applied to the
// exploded ratings table before aggregation. Predicates compose with AND.
//
// Set-membership predicates distinguish "not provided" from "provided but
// empty": a nil slice applies no restriction, while an empty non-nil slice
// matches zero rows (the user deselected everything).
type FilterSpec struct {
	AgeMin      *int     `json:"age_min,omitempty"` // inclusive
	AgeMax      *int     `json:"age_max,omitempty"` // inclusive
	Genders     []string `json:"genders,omitempty"`
	Occupations []string `json:"occupations,omitempty"`
	Genres      []string `json:"genres,omitempty"`
}

// IsZero reports whether the spec applies no restriction at all.
func (s FilterSpec) IsZero() bool {
	return s.AgeMin == nil && s.AgeMax == nil &&
		s.Genders == nil && s.Occupations == nil && s.Genres == nil
}
