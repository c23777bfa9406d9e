package exercises

import "strings"

// FilterByName keeps the exercises whose name contains search, ignoring case.
// Empty search keeps all.
func FilterByName(exercises []Exercise, search string) []Exercise {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return exercises
	}

	filtered := make([]Exercise, 0, len(exercises))
	for _, e := range exercises {
		if strings.Contains(strings.ToLower(e.Name), search) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
