package nutrition

// Behavioral states derived from a trailing week of intake vs goals.
const (
	StateLethargic  = "lethargic"
	StateStressed   = "stressed"
	StateConsistent = "consistent"
	StateNormal     = "normal"
)

// Recipe query fields selected by the classifier.
const (
	QueryEnergy = "energy"
	QueryCarbs  = "carbs"
)

// DayIntake is one day of the trailing window: logged calories against the
// day's calorie goal. A day counts as logged when Calories > 0.
type DayIntake struct {
	Calories float64 `json:"calories"`
	Goal     float64 `json:"goal"`
}

// RecipeQuery is the lookup window the classifier hands to the recipe
// collaborator: a kcal window (QueryEnergy) or a carb-gram window (QueryCarbs).
type RecipeQuery struct {
	Field string  `json:"field"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

// WeeklyStatus is the result of classifying the trailing week. It is
// recomputed fresh on every load; nothing here is persisted.
type WeeklyStatus struct {
	State      string      `json:"state"`
	Message    string      `json:"message"`
	LoggedDays int         `json:"logged_days"`
	Query      RecipeQuery `json:"query"`
}

// ClassifyWeek inspects up to 7 days of intake and selects a qualitative
// state plus the recipe lookup window that goes with it. Days with zero
// calories are excluded from the averages, so "logged days" can be fewer
// than the window length.
func ClassifyWeek(days []DayIntake) WeeklyStatus {
	var calSum, goalSum float64
	logged := 0
	for _, d := range days {
		if d.Calories > 0 {
			calSum += d.Calories
			goalSum += d.Goal
			logged++
		}
	}

	if logged == 0 {
		return WeeklyStatus{
			State:      StateConsistent,
			Message:    "Log your first meal to get personalized picks",
			LoggedDays: 0,
			Query:      RecipeQuery{Field: QueryEnergy, Min: 300, Max: 600},
		}
	}

	avgCal := calSum / float64(logged)
	avgGoal := goalSum / float64(logged)

	switch {
	case avgCal < avgGoal*0.8:
		return WeeklyStatus{
			State:      StateLethargic,
			Message:    "You've been eating light all week, fuel up",
			LoggedDays: logged,
			Query:      RecipeQuery{Field: QueryEnergy, Min: 600, Max: 1200},
		}
	case avgCal > avgGoal*1.2:
		return WeeklyStatus{
			State:      StateStressed,
			Message:    "A lighter bite could help you reset",
			LoggedDays: logged,
			Query:      RecipeQuery{Field: QueryEnergy, Min: 50, Max: 300},
		}
	case logged >= 4:
		return WeeklyStatus{
			State:      StateConsistent,
			Message:    "Solid week, you've earned a cheat meal",
			LoggedDays: logged,
			Query:      RecipeQuery{Field: QueryCarbs, Min: 80, Max: 150},
		}
	default:
		return WeeklyStatus{
			State:      StateConsistent,
			Message:    "You're doing great, keep it up",
			LoggedDays: logged,
			Query:      RecipeQuery{Field: QueryEnergy, Min: 400, Max: 800},
		}
	}
}
