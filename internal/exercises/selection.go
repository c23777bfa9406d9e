package exercises

import "slices"

// Selection is the ordered set of exercise ids picked while editing a routine.
type Selection struct {
	IDs []string `json:"ids"`
}

func NewSelection(ids ...string) *Selection {
	s := &Selection{IDs: []string{}}
	for _, id := range ids {
		if !s.Contains(id) {
			s.IDs = append(s.IDs, id)
		}
	}
	return s
}

func (s *Selection) Contains(id string) bool {
	return slices.Contains(s.IDs, id)
}

// Toggle adds the id if absent, removes it otherwise.
// Returns whether the id is selected after the call.
func (s *Selection) Toggle(id string) bool {
	if i := slices.Index(s.IDs, id); i >= 0 {
		s.IDs = slices.Delete(s.IDs, i, i+1)
		return false
	}
	s.IDs = append(s.IDs, id)
	return true
}
