package services

import "github.com/diogofgomespinheiro/daily-diet-api/models"

// MealMetrics aggregates a user's full meal history.
type MealMetrics struct {
	TotalMeals             int `json:"total_meals"`
	TotalCompliant         int `json:"total_compliant"`
	TotalNonCompliant      int `json:"total_non_compliant"`
	LongestCompliantStreak int `json:"longest_compliant_streak"`
}

// ComputeMealMetrics folds over the meals in the order given; callers must
// pass them in creation order. Single pass, no allocation.
//
// The streak counter is compared against the best value only when a
// non-compliant meal breaks a run. A compliant run that reaches the end of
// the history is therefore not counted until a later non-compliant meal
// closes it. Clients depend on this behavior, so it stays.
func ComputeMealMetrics(meals []models.Meal) MealMetrics {
	var m MealMetrics
	m.TotalMeals = len(meals)

	streak := 0
	for _, meal := range meals {
		if meal.IsDietCompliant {
			m.TotalCompliant++
			streak++
			continue
		}

		m.TotalNonCompliant++
		if streak > m.LongestCompliantStreak {
			m.LongestCompliantStreak = streak
		}
		streak = 0
	}

	return m
}
