package nutrition

// Candidate is an immutable recipe snapshot from the recipe collaborator.
// Not owned by this system, only filtered and displayed.
type Candidate struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Fiber    float64 `json:"fiber"`
	ImageURL string  `json:"image_url,omitempty"`
}

// MacroBudget is the remaining daily budget per macro, goal minus consumed,
// each clamped to >= 0 by the caller.
type MacroBudget struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Fiber    float64 `json:"fiber"`
}

// SmartSuggestions returns the candidates whose tagged macro fits inside the
// remaining budget. "quick" filters on total calories; an unrecognized
// category passes everything through. Input order is preserved and no
// ranking is applied; callers slice the first results for display.
func SmartSuggestions(recipes []Candidate, category string, remaining MacroBudget) []Candidate {
	keep := func(r Candidate) bool {
		switch category {
		case "protein":
			return r.Protein <= remaining.Protein
		case "carbs":
			return r.Carbs <= remaining.Carbs
		case "fats":
			return r.Fats <= remaining.Fats
		case "fiber":
			return r.Fiber <= remaining.Fiber
		case "quick":
			return r.Calories <= remaining.Calories
		default:
			return true
		}
	}

	out := make([]Candidate, 0, len(recipes))
	for _, r := range recipes {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
