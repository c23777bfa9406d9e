package exercises

// Exercise is a catalog entry. The catalog comes from a third-party dataset
// and is never written by the app, only by the import tool.
type Exercise struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	BodyPart         string   `json:"bodyPart"`
	Target           string   `json:"target"`
	SecondaryMuscles []string `json:"secondaryMuscles"`
	Equipment        string   `json:"equipment"`
	Instructions     []string `json:"instructions"`
	GifURL           string   `json:"gifUrl,omitempty"`
}

// Details is the exercise detail view, summary and how-to steps.
type Details struct {
	Exercise
	Summary string   `json:"summary"`
	HowTo   []string `json:"howTo"`
}

// ByID indexes exercises by their catalog id.
func ByID(exercises []Exercise) map[string]Exercise {
	m := make(map[string]Exercise, len(exercises))
	for _, e := range exercises {
		m[e.ID] = e
	}
	return m
}
