package domain

// Recommendation is an immutable catalog entry: a coping plan with a
// one-sentence rationale and exactly three actionable steps.
type Recommendation struct {
	ID    string
	Title string
	Why   string
	Steps []string
}
