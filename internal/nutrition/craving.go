package nutrition

import (
	"fmt"
	"math"
	"strings"
)

// CalorieRange is an inclusive kcal window.
type CalorieRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// QuizAnswers holds the five categorical quiz responses. Any field may be
// empty; absent answers fall back to defaults during derivation.
type QuizAnswers struct {
	Mood    string `json:"mood"`
	Texture string `json:"texture"`
	Taste   string `json:"taste"`
	Hunger  string `json:"hunger"`
	Diet    string `json:"diet"`
}

// CravingProfile is the derived, immutable output of a quiz session.
type CravingProfile struct {
	Summary       string       `json:"craving_profile"`
	CalorieRange  CalorieRange `json:"calorie_range"`
	ProteinTarget int          `json:"protein_target"`
	MaxPrepTime   int          `json:"max_prep_time"`
	DietFilter    string       `json:"diet_filter,omitempty"`
	SweetBias     bool         `json:"sweet_bias"`
	SavoryBias    bool         `json:"savory_bias"`
	Reasons       []string     `json:"reasons"`
}

type moodAdjustments struct {
	calorieMultiplier float64 // 0 means unset
	maxPrepTime       int
	proteinTarget     int
	comfortBias       bool
	varietyBias       bool
}

type dietLogic struct {
	proteinTarget int
	dietFilter    string
}

type tasteAdjustments struct {
	calorieMultiplier float64
	proteinBias       float64
	sweetBias         bool
	savoryBias        bool
}

// BaseCalorieRange maps the hunger answer to a base kcal window by substring
// match on "snack", "small" and "full".
func BaseCalorieRange(hunger string) CalorieRange {
	h := strings.ToLower(hunger)
	switch {
	case strings.Contains(h, "snack"):
		return CalorieRange{Min: 150, Max: 350}
	case strings.Contains(h, "small"):
		return CalorieRange{Min: 350, Max: 600}
	case strings.Contains(h, "full"):
		return CalorieRange{Min: 550, Max: 900}
	default:
		return CalorieRange{Min: 300, Max: 750}
	}
}

// TightenRangeByHealth narrows or widens a calorie window around its midpoint
// based on the user's health preference (0-100). Health-focused users get a
// tighter band, permissive users a wider one.
func TightenRangeByHealth(r CalorieRange, healthPreference int) CalorieRange {
	mid := (r.Min + r.Max) / 2
	spread := (r.Max - r.Min) / 2

	switch {
	case healthPreference >= 70:
		return CalorieRange{Min: mid - spread*0.25, Max: mid + spread*0.25}
	case healthPreference <= 30:
		return CalorieRange{Min: mid - spread*0.6, Max: mid + spread*0.6}
	default:
		return r
	}
}

func deriveMoodAdjustments(mood string) moodAdjustments {
	switch strings.ToLower(mood) {
	case "tired":
		return moodAdjustments{calorieMultiplier: 1.1, maxPrepTime: 20}
	case "stressed":
		return moodAdjustments{calorieMultiplier: 1.15, comfortBias: true}
	case "energetic":
		return moodAdjustments{proteinTarget: 30}
	case "bored":
		return moodAdjustments{varietyBias: true}
	default:
		return moodAdjustments{}
	}
}

func deriveDietLogic(diet string) dietLogic {
	d := strings.ToLower(strings.TrimSpace(diet))
	switch {
	case d == "":
		return dietLogic{}
	case d == "high protein":
		return dietLogic{proteinTarget: 35}
	case d == "vegan" || d == "vegetarian":
		return dietLogic{dietFilter: d}
	default:
		return dietLogic{dietFilter: d}
	}
}

func deriveTasteAdjustments(taste string) tasteAdjustments {
	switch strings.ToLower(taste) {
	case "sweet":
		return tasteAdjustments{calorieMultiplier: 1.1, proteinBias: 0.7, sweetBias: true}
	case "savory":
		return tasteAdjustments{proteinBias: 1.3, savoryBias: true}
	default:
		return tasteAdjustments{}
	}
}

// GenerateCravingProfile composes the quiz answers into a craving profile.
// Calorie multipliers from mood and taste compose multiplicatively over the
// health-tightened base range. A pure function: no persistence, no errors,
// absent answers fall back to defaults.
func GenerateCravingProfile(answers QuizAnswers, healthPreference int) CravingProfile {
	base := BaseCalorieRange(answers.Hunger)
	r := TightenRangeByHealth(base, healthPreference)

	mood := deriveMoodAdjustments(answers.Mood)
	diet := deriveDietLogic(answers.Diet)
	taste := deriveTasteAdjustments(answers.Taste)

	multiplier := 1.0
	if mood.calorieMultiplier > 0 {
		multiplier *= mood.calorieMultiplier
	}
	if taste.calorieMultiplier > 0 {
		multiplier *= taste.calorieMultiplier
	}
	r.Min *= multiplier
	r.Max *= multiplier

	proteinTarget := 25
	if mood.proteinTarget > 0 {
		proteinTarget = mood.proteinTarget
	}
	if diet.proteinTarget > 0 {
		proteinTarget = diet.proteinTarget
	}
	proteinBias := 1.0
	if taste.proteinBias > 0 {
		proteinBias = taste.proteinBias
	}

	maxPrepTime := 35
	if mood.maxPrepTime > 0 {
		maxPrepTime = mood.maxPrepTime
	}

	texture := answers.Texture
	if texture == "" {
		texture = "satisfying"
	}
	tasteWord := answers.Taste
	if tasteWord == "" {
		tasteWord = "balanced"
	}

	// Reason order is fixed and significant for display.
	var reasons []string
	if answers.Hunger != "" {
		reasons = append(reasons, fmt.Sprintf("Portion sized for \"%s\" hunger", answers.Hunger))
	}
	if answers.Mood != "" {
		reasons = append(reasons, fmt.Sprintf("Adjusted for your %s mood", strings.ToLower(answers.Mood)))
	}
	if diet.dietFilter != "" || diet.proteinTarget > 0 {
		reasons = append(reasons, fmt.Sprintf("Respecting your %s preference", strings.ToLower(answers.Diet)))
	}
	if taste.sweetBias || taste.savoryBias {
		reasons = append(reasons, fmt.Sprintf("Leaning %s per your taste", strings.ToLower(answers.Taste)))
	}
	if healthPreference >= 70 {
		reasons = append(reasons, "Tight calorie band for your health focus")
	}

	return CravingProfile{
		Summary:       fmt.Sprintf("You're craving something %s & %s", strings.ToLower(texture), strings.ToLower(tasteWord)),
		CalorieRange:  CalorieRange{Min: math.Round(r.Min), Max: math.Round(r.Max)},
		ProteinTarget: int(math.Round(float64(proteinTarget) * proteinBias)),
		MaxPrepTime:   maxPrepTime,
		DietFilter:    diet.dietFilter,
		SweetBias:     taste.sweetBias,
		SavoryBias:    taste.savoryBias,
		Reasons:       reasons,
	}
}
