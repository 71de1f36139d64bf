package models

import (
	"gorm.io/gorm"
)

// Nutrition is the canonical reference record for one food, keyed by
// name. Nutrients are per Quantity grams and act as a scaling template.
type Nutrition struct {
	gorm.Model
	Name     string  `gorm:"uniqueIndex;not null"`
	Quantity float64 `gorm:"not null"` // basis amount in grams
	Calories float64
	Carbs    float64
	Fat      float64
	Protein  float64
	Sodium   float64
	Sugar    float64
}
