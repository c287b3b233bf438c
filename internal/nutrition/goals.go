package nutrition

import (
	"math"
	"strings"
)

// Profile holds the biometric inputs used for goal derivation. It is a
// read-only snapshot of the stored user profile; callers validate that
// weight, height and age are positive before handing it to this package.
type Profile struct {
	HeightCM       float64
	WeightKG       float64
	Age            int
	Gender         string // "male" or "female"
	Goal           string // "loss", "maintain", "gain" or a custom label
	TargetWeightKG float64 // 0 means no target set
	TimelineMonths int     // 0 means no timeline set
}

// DailyGoals is the derived daily target bundle. It is recomputed from the
// profile on demand and never stored as a source of truth.
type DailyGoals struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
	Fiber    int `json:"fiber"`
}

const (
	// kcal per kg of body fat, the standard approximation.
	kcalPerKg = 7700

	minDailyAdjustment = 200
	maxDailyAdjustment = 750

	// CalorieFloor is the minimum daily calorie goal. Shortfall below the
	// floor is returned as an exercise gap instead of further restriction.
	CalorieFloor = 1200
)

// BMR computes the basal metabolic rate via Mifflin-St Jeor.
func BMR(p Profile) float64 {
	bmr := 10*p.WeightKG + 6.25*p.HeightCM - 5*float64(p.Age)
	if strings.EqualFold(p.Gender, "male") {
		return bmr + 5
	}
	return bmr - 161
}

// CalcCalories derives the daily calorie goal and, when the goal would fall
// below the safety floor, the exercise gap in kcal to be closed with activity.
//
// When a target weight is set and differs from the current weight, the
// direction (loss vs gain) is inferred from the target and overrides the
// stored goal string for directionality only.
func CalcCalories(p Profile) (goal int, exerciseGap int) {
	bmr := BMR(p)

	direction := goalDirection(p.Goal)
	if p.TargetWeightKG > 0 && p.TargetWeightKG != p.WeightKG {
		if p.TargetWeightKG < p.WeightKG {
			direction = "loss"
		} else {
			direction = "gain"
		}
	}

	timelineDays := float64(p.TimelineMonths) * 30
	if timelineDays < 30 {
		timelineDays = 30
	}

	gapKG := 5.0
	if p.TargetWeightKG > 0 {
		gapKG = math.Abs(p.WeightKG - p.TargetWeightKG)
	}

	adjustment := gapKG * kcalPerKg / timelineDays
	if adjustment < minDailyAdjustment {
		adjustment = minDailyAdjustment
	}
	if adjustment > maxDailyAdjustment {
		adjustment = maxDailyAdjustment
	}

	target := bmr
	switch direction {
	case "loss":
		target = bmr - adjustment
	case "gain":
		target = bmr + adjustment
	}

	rounded := int(math.Round(target))
	if rounded < CalorieFloor {
		return CalorieFloor, CalorieFloor - rounded
	}
	return rounded, 0
}

// MacrosFromWeight splits a calorie goal into protein, carbs and fat grams.
// Protein scales with body weight by goal, fat is a fixed share of calories,
// and carbs take the remainder, clamped at zero when the calorie goal is too
// low to cover the protein and fat allocation.
func MacrosFromWeight(calories int, weightKG float64, goal string) (protein, carbs, fat int) {
	proteinFactor := 1.2
	fatPercent := 0.25
	switch goalDirection(goal) {
	case "loss":
		proteinFactor = 1.6
	case "gain":
		proteinFactor = 2.0
		fatPercent = 0.20
	}

	protein = int(math.Round(weightKG * proteinFactor))
	fat = int(math.Round(float64(calories) * fatPercent / 9))

	carbs = int(math.Round(float64(calories-protein*4-fat*9) / 4))
	if carbs < 0 {
		carbs = 0
	}
	return protein, carbs, fat
}

// Goals derives the full daily goal bundle from a profile.
func Goals(p Profile) DailyGoals {
	calories, _ := CalcCalories(p)
	protein, carbs, fat := MacrosFromWeight(calories, p.WeightKG, p.Goal)
	return DailyGoals{
		Calories: calories,
		Protein:  protein,
		Carbs:    carbs,
		Fat:      fat,
		Fiber:    int(math.Round(float64(calories) / 1000 * 14)),
	}
}

// WaterGoalML returns the daily water goal in milliliters, proportional to
// body weight at 35 ml/kg.
func WaterGoalML(weightKG float64) int {
	if weightKG <= 0 {
		return 0
	}
	return int(math.Round(weightKG * 35))
}

// ExerciseMinutes returns the minutes of activity at the given MET needed to
// burn the requested calories, from kcal = minutes * MET * weight / 200.
// Returns 0 when either input is non-positive.
func ExerciseMinutes(caloriesToBurn, weightKG, met float64) int {
	if caloriesToBurn <= 0 || weightKG <= 0 {
		return 0
	}
	if met <= 0 {
		met = 3.5
	}
	return int(math.Ceil(caloriesToBurn * 200 / (met * weightKG)))
}

// goalDirection normalizes the free-form goal string into a direction.
// Unrecognized goals map to "maintain".
func goalDirection(goal string) string {
	g := strings.ToLower(goal)
	switch {
	case strings.Contains(g, "loss") || strings.Contains(g, "lose"):
		return "loss"
	case strings.Contains(g, "gain") || strings.Contains(g, "muscle"):
		return "gain"
	default:
		return "maintain"
	}
}
