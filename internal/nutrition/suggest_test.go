package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var suggestionPool = []Candidate{
	{ID: "1", Title: "Greek Yogurt Bowl", Calories: 220, Protein: 18, Carbs: 24, Fats: 4, Fiber: 3},
	{ID: "2", Title: "Steak Burrito", Calories: 750, Protein: 42, Carbs: 68, Fats: 30, Fiber: 8},
	{ID: "3", Title: "Lentil Soup", Calories: 310, Protein: 16, Carbs: 40, Fats: 7, Fiber: 12},
	{ID: "4", Title: "Protein Shake", Calories: 180, Protein: 30, Carbs: 9, Fats: 3, Fiber: 1},
}

func TestSmartSuggestionsProtein(t *testing.T) {
	got := SmartSuggestions(suggestionPool, "protein", MacroBudget{Protein: 20})
	assert.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[1].ID)
}

func TestSmartSuggestionsQuickUsesCalories(t *testing.T) {
	got := SmartSuggestions(suggestionPool, "quick", MacroBudget{Calories: 250})
	assert.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "4", got[1].ID)
}

func TestSmartSuggestionsFiber(t *testing.T) {
	got := SmartSuggestions(suggestionPool, "fiber", MacroBudget{Fiber: 5})
	assert.Len(t, got, 2)
}

func TestSmartSuggestionsUnknownCategoryPassesThrough(t *testing.T) {
	got := SmartSuggestions(suggestionPool, "default", MacroBudget{})
	assert.Equal(t, suggestionPool, got)
}

func TestSmartSuggestionsPreservesOrder(t *testing.T) {
	got := SmartSuggestions(suggestionPool, "carbs", MacroBudget{Carbs: 100})
	ids := make([]string, len(got))
	for i, r := range got {
		ids[i] = r.ID
	}
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids)
}

func TestSmartSuggestionsEmptyInput(t *testing.T) {
	assert.Empty(t, SmartSuggestions(nil, "protein", MacroBudget{Protein: 50}))
}
