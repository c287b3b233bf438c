package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeCravingsSweetMajority(t *testing.T) {
	i := AnalyzeCravings([]string{"Sweet", "sweet", "Savory", "sweet"}, nil)
	assert.Equal(t, PatternSweet, i.Pattern)
	assert.Equal(t, 3, i.Count)
	assert.Equal(t, 4, i.Total)
	assert.Equal(t, 75, i.Percentage)
}

func TestAnalyzeCravingsBalancedOnTie(t *testing.T) {
	i := AnalyzeCravings([]string{"sweet", "savory"}, nil)
	assert.Equal(t, PatternBalanced, i.Pattern)
	assert.Equal(t, 50, i.Percentage)
}

func TestAnalyzeCravingsWindowCap(t *testing.T) {
	tastes := make([]string, 0, 12)
	for i := 0; i < 12; i++ {
		tastes = append(tastes, "sweet")
	}
	i := AnalyzeCravings(tastes, nil)
	assert.Equal(t, 10, i.Total)
	assert.Equal(t, 10, i.Count)
}

func TestAnalyzeCravingsEmpty(t *testing.T) {
	i := AnalyzeCravings(nil, nil)
	assert.Equal(t, PatternBalanced, i.Pattern)
	assert.Equal(t, 0, i.Total)
	assert.Equal(t, 0, i.Percentage)
}

func TestDetectDeficiencies(t *testing.T) {
	defs := DetectDeficiencies(60, 120, 30, 28)
	assert.Len(t, defs, 1)
	assert.Equal(t, "protein", defs[0].Nutrient)

	defs = DetectDeficiencies(118, 120, 10, 28)
	// 118 is within 90% of 120; fiber is not.
	assert.Len(t, defs, 1)
	assert.Equal(t, "fiber", defs[0].Nutrient)

	assert.Empty(t, DetectDeficiencies(120, 120, 28, 28))
}
