package utils

import (
	"errors"
	"fmt"
	"math"
)

// Multipliers applied to the basal rate, keyed by the five activity tiers.
var activityMultipliers = map[string]float64{
	"sedentary":         1.2,
	"lightly active":    1.375,
	"moderately active": 1.55,
	"very active":       1.725,
	"extra active":      1.9,
}

// BasalMetabolicRate implements the Harris-Benedict equation. It expects
// weight in kilograms and height in centimeters. Only "male" selects the
// male coefficients; every other gender value uses the female ones.
func BasalMetabolicRate(age int, weightKg, heightCm float64, gender string) (float64, error) {
	if age <= 0 || weightKg <= 0 || heightCm <= 0 {
		return 0, errors.New("age, weight and height must be positive")
	}
	if gender == "male" {
		return 88.362 + 13.397*weightKg + 4.799*heightCm - 5.677*float64(age), nil
	}
	return 447.593 + 9.247*weightKg + 3.098*heightCm - 4.330*float64(age), nil
}

// EstimateDailyCalories scales the basal rate by the activity multiplier
// and rounds to the nearest calorie.
func EstimateDailyCalories(age int, weightKg, heightCm float64, gender, activityLevel string) (int, error) {
	bmr, err := BasalMetabolicRate(age, weightKg, heightCm, gender)
	if err != nil {
		return 0, err
	}
	mult, ok := activityMultipliers[activityLevel]
	if !ok {
		return 0, fmt.Errorf("unknown activity level %q", activityLevel)
	}
	return int(math.Round(bmr * mult)), nil
}
