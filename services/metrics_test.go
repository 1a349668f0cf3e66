package services

import (
	"testing"

	"github.com/diogofgomespinheiro/daily-diet-api/models"

	"github.com/stretchr/testify/assert"
)

func mealsFromFlags(flags []bool) []models.Meal {
	meals := make([]models.Meal, 0, len(flags))
	for _, f := range flags {
		meals = append(meals, models.Meal{IsDietCompliant: f})
	}
	return meals
}

func TestComputeMealMetrics(t *testing.T) {
	tests := []struct {
		name  string
		flags []bool
		want  MealMetrics
	}{
		{
			name:  "empty history",
			flags: nil,
			want:  MealMetrics{},
		},
		{
			name:  "mixed history counts the longest closed run",
			flags: []bool{true, false, true, true, true, false, true, true},
			want: MealMetrics{
				TotalMeals:             8,
				TotalCompliant:         6,
				TotalNonCompliant:      2,
				LongestCompliantStreak: 3,
			},
		},
		{
			// A run is only scored when a non-compliant meal closes it,
			// so a fully compliant history scores zero.
			name:  "all compliant scores no streak",
			flags: []bool{true, true, true, true, true},
			want: MealMetrics{
				TotalMeals:             5,
				TotalCompliant:         5,
				TotalNonCompliant:      0,
				LongestCompliantStreak: 0,
			},
		},
		{
			name:  "trailing open run is not scored",
			flags: []bool{true, true, false, true, true, true, true},
			want: MealMetrics{
				TotalMeals:             7,
				TotalCompliant:         6,
				TotalNonCompliant:      1,
				LongestCompliantStreak: 2,
			},
		},
		{
			name:  "all non compliant",
			flags: []bool{false, false, false},
			want: MealMetrics{
				TotalMeals:        3,
				TotalNonCompliant: 3,
			},
		},
		{
			name:  "single closed run",
			flags: []bool{true, true, true, false},
			want: MealMetrics{
				TotalMeals:             4,
				TotalCompliant:         3,
				TotalNonCompliant:      1,
				LongestCompliantStreak: 3,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeMealMetrics(mealsFromFlags(tt.flags))
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got.TotalMeals, got.TotalCompliant+got.TotalNonCompliant)
		})
	}
}

func TestComputeMealMetrics_OrderSensitive(t *testing.T) {
	closed := ComputeMealMetrics(mealsFromFlags([]bool{true, true, false}))
	open := ComputeMealMetrics(mealsFromFlags([]bool{false, true, true}))

	assert.Equal(t, 2, closed.LongestCompliantStreak)
	assert.Equal(t, 0, open.LongestCompliantStreak)
}
