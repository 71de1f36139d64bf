package models

import (
	"time"

	"gorm.io/gorm"
)

// FoodEntry is one logged food. The nutrient fields are an integer
// snapshot scaled from the Nutrition reference at logging time; the
// Date is fixed when the entry is created and survives edits.
type FoodEntry struct {
	gorm.Model
	UserID        uint   `gorm:"index;not null"`
	Name          string `gorm:"not null"`
	MealType      string `gorm:"size:16;index"` // breakfast|lunch|dinner|snack
	Quantity      float64 // grams
	Notes         string `gorm:"type:text"`
	Calories      int
	Protein       int
	Carbohydrates int
	Fat           int
	Date          time.Time `gorm:"index;not null"`
}
