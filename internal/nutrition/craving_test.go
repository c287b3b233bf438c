package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseCalorieRange(t *testing.T) {
	assert.Equal(t, CalorieRange{150, 350}, BaseCalorieRange("Just a Snack"))
	assert.Equal(t, CalorieRange{350, 600}, BaseCalorieRange("Small Meal"))
	assert.Equal(t, CalorieRange{550, 900}, BaseCalorieRange("Full Meal"))
	assert.Equal(t, CalorieRange{300, 750}, BaseCalorieRange(""))
	assert.Equal(t, CalorieRange{300, 750}, BaseCalorieRange("famished"))
}

func TestTightenRangeByHealth(t *testing.T) {
	base := CalorieRange{550, 900} // mid 725, spread 175

	tight := TightenRangeByHealth(base, 80)
	assert.InDelta(t, 725-175*0.25, tight.Min, 0.001)
	assert.InDelta(t, 725+175*0.25, tight.Max, 0.001)

	wide := TightenRangeByHealth(base, 20)
	assert.InDelta(t, 725-175*0.6, wide.Min, 0.001)
	assert.InDelta(t, 725+175*0.6, wide.Max, 0.001)

	assert.Equal(t, base, TightenRangeByHealth(base, 50))
}

func TestGenerateCravingProfileFullMealSweet(t *testing.T) {
	p := GenerateCravingProfile(QuizAnswers{Hunger: "Full Meal", Taste: "Sweet"}, 80)

	// (550,900) tightened to (681.25, 768.75), then * 1.1 for sweet.
	assert.InDelta(t, 749, p.CalorieRange.Min, 0.5)
	assert.InDelta(t, 846, p.CalorieRange.Max, 0.5)
	assert.Equal(t, 18, p.ProteinTarget) // round(25 * 0.7)
	assert.Equal(t, 35, p.MaxPrepTime)
	assert.True(t, p.SweetBias)
	assert.False(t, p.SavoryBias)
	assert.Empty(t, p.DietFilter)
}

func TestGenerateCravingProfileMultipliersCompose(t *testing.T) {
	// Tired (1.1) and sweet (1.1) multiply, not add.
	p := GenerateCravingProfile(QuizAnswers{Hunger: "Small Meal", Mood: "tired", Taste: "Sweet"}, 50)
	assert.InDelta(t, 350*1.1*1.1, p.CalorieRange.Min, 0.5)
	assert.InDelta(t, 600*1.1*1.1, p.CalorieRange.Max, 0.5)
	assert.Equal(t, 20, p.MaxPrepTime)
}

func TestGenerateCravingProfileDietOverrides(t *testing.T) {
	p := GenerateCravingProfile(QuizAnswers{Diet: "High Protein", Mood: "energetic"}, 50)
	assert.Equal(t, 35, p.ProteinTarget) // diet wins over mood's 30

	p = GenerateCravingProfile(QuizAnswers{Mood: "energetic"}, 50)
	assert.Equal(t, 30, p.ProteinTarget)

	p = GenerateCravingProfile(QuizAnswers{Diet: "Vegan"}, 50)
	assert.Equal(t, "vegan", p.DietFilter)

	p = GenerateCravingProfile(QuizAnswers{Diet: "Keto"}, 50)
	assert.Equal(t, "keto", p.DietFilter)
}

func TestGenerateCravingProfileSavory(t *testing.T) {
	p := GenerateCravingProfile(QuizAnswers{Taste: "Savory"}, 50)
	assert.True(t, p.SavoryBias)
	assert.Equal(t, 33, p.ProteinTarget) // round(25 * 1.3)
	// Savory has no calorie multiplier.
	assert.InDelta(t, 300, p.CalorieRange.Min, 0.5)
	assert.InDelta(t, 750, p.CalorieRange.Max, 0.5)
}

func TestGenerateCravingProfileReasonsOrder(t *testing.T) {
	p := GenerateCravingProfile(QuizAnswers{
		Hunger: "Full Meal", Mood: "tired", Diet: "Vegan", Taste: "Sweet",
	}, 80)
	assert.Len(t, p.Reasons, 5)
	assert.Contains(t, p.Reasons[0], "hunger")
	assert.Contains(t, p.Reasons[1], "tired")
	assert.Contains(t, p.Reasons[2], "vegan")
	assert.Contains(t, p.Reasons[3], "sweet")
	assert.Contains(t, p.Reasons[4], "health")
}

func TestGenerateCravingProfileDefaults(t *testing.T) {
	p := GenerateCravingProfile(QuizAnswers{}, 50)
	assert.Equal(t, "You're craving something satisfying & balanced", p.Summary)
	assert.Equal(t, 25, p.ProteinTarget)
	assert.Equal(t, 35, p.MaxPrepTime)
	assert.Empty(t, p.Reasons)
}

func TestGenerateCravingProfileSummary(t *testing.T) {
	p := GenerateCravingProfile(QuizAnswers{Texture: "Crunchy", Taste: "Savory"}, 50)
	assert.Equal(t, "You're craving something crunchy & savory", p.Summary)
}
