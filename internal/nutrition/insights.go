package nutrition

import (
	"math"
	"strings"
)

// Craving patterns recognized by the insight analyzer.
const (
	PatternSweet    = "sweet"
	PatternSavory   = "savory"
	PatternBalanced = "balanced"
)

// NutrientDeficiency flags a nutrient whose recent average fell short of goal.
type NutrientDeficiency struct {
	Nutrient string  `json:"nutrient"`
	Average  float64 `json:"average"`
	Goal     float64 `json:"goal"`
}

// CravingInsight summarizes the dominant taste pattern over a rolling window
// of quiz answers. Recomputed per dashboard load, not incrementally
// maintained.
type CravingInsight struct {
	Pattern      string               `json:"pattern"`
	Count        int                  `json:"count"`
	Total        int                  `json:"total"`
	Percentage   int                  `json:"percentage"`
	Deficiencies []NutrientDeficiency `json:"deficiencies"`
}

// insightWindow caps the number of recent taste answers considered.
const insightWindow = 10

// AnalyzeCravings derives the craving pattern from the most recent taste
// answers (newest first, at most the last 10) and attaches any nutrient
// deficiencies observed over the same period.
func AnalyzeCravings(tastes []string, deficiencies []NutrientDeficiency) CravingInsight {
	if len(tastes) > insightWindow {
		tastes = tastes[:insightWindow]
	}

	sweet, savory := 0, 0
	for _, t := range tastes {
		switch strings.ToLower(t) {
		case "sweet":
			sweet++
		case "savory":
			savory++
		}
	}

	total := len(tastes)
	insight := CravingInsight{
		Pattern:      PatternBalanced,
		Total:        total,
		Deficiencies: deficiencies,
	}

	switch {
	case total == 0:
	case sweet > savory:
		insight.Pattern = PatternSweet
		insight.Count = sweet
	case savory > sweet:
		insight.Pattern = PatternSavory
		insight.Count = savory
	default:
		insight.Count = sweet
	}

	if total > 0 {
		insight.Percentage = int(math.Round(float64(insight.Count) / float64(total) * 100))
	}
	return insight
}

// DetectDeficiencies compares window averages against goals for protein and
// fiber and reports the ones running below 90% of goal.
func DetectDeficiencies(avgProtein, proteinGoal, avgFiber, fiberGoal float64) []NutrientDeficiency {
	var out []NutrientDeficiency
	if proteinGoal > 0 && avgProtein < proteinGoal*0.9 {
		out = append(out, NutrientDeficiency{Nutrient: "protein", Average: math.Round(avgProtein), Goal: proteinGoal})
	}
	if fiberGoal > 0 && avgFiber < fiberGoal*0.9 {
		out = append(out, NutrientDeficiency{Nutrient: "fiber", Average: math.Round(avgFiber), Goal: fiberGoal})
	}
	return out
}
