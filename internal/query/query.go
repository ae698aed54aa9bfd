// Package query derives the list view's projection of the candidate
// collection. It never mutates the store: filtering and sorting always
// produce a fresh slice.
package query

import (
	"sort"
	"strings"

	"github.com/ArifBabayev05/cvibes/internal/cvibes"
)

type Field string

const (
	FieldName   Field = "name"
	FieldStatus Field = "status"
)

type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Sort holds the list view's sort state.
type Sort struct {
	Field     Field
	Direction Direction
}

// DefaultSort matches the list view's initial state.
func DefaultSort() Sort {
	return Sort{Field: FieldName, Direction: Ascending}
}

// Toggle flips the direction when the same field is selected again and
// resets to ascending when a different field is picked.
func (s *Sort) Toggle(field Field) {
	if s.Field == field {
		if s.Direction == Ascending {
			s.Direction = Descending
		} else {
			s.Direction = Ascending
		}
		return
	}

	s.Field = field
	s.Direction = Ascending
}

// Apply filters the candidates by the search term and sorts the survivors.
// The match is a case-insensitive substring test against the name, the
// email, or any skill; an empty term keeps everything. Only the name and
// status fields sort; any other field leaves the original order intact.
func Apply(candidates []*cvibes.Candidate, term string, s Sort) []*cvibes.Candidate {
	result := filter(candidates, term)

	key := sortKey(s.Field)
	if key == nil {
		return result
	}

	sort.SliceStable(result, func(i, j int) bool {
		a, b := key(result[i]), key(result[j])
		if s.Direction == Descending {
			return b < a
		}
		return a < b
	})

	return result
}

func filter(candidates []*cvibes.Candidate, term string) []*cvibes.Candidate {
	result := make([]*cvibes.Candidate, 0, len(candidates))

	term = strings.ToLower(term)
	for _, candidate := range candidates {
		if term == "" || matches(candidate, term) {
			result = append(result, candidate)
		}
	}

	return result
}

func matches(candidate *cvibes.Candidate, term string) bool {
	if strings.Contains(strings.ToLower(candidate.Name), term) {
		return true
	}
	if strings.Contains(strings.ToLower(candidate.Contact.Email), term) {
		return true
	}
	for _, skill := range candidate.Skills {
		if strings.Contains(strings.ToLower(skill), term) {
			return true
		}
	}
	return false
}

func sortKey(field Field) func(*cvibes.Candidate) string {
	switch field {
	case FieldName:
		return func(c *cvibes.Candidate) string { return strings.ToLower(c.Name) }
	case FieldStatus:
		return func(c *cvibes.Candidate) string { return strings.ToLower(c.Status) }
	default:
		return nil
	}
}
