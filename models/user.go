package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	GoogleID         string `gorm:"index"` // empty for password accounts
	Email            string `gorm:"uniqueIndex;not null"`
	Password         string `json:"-"` // bcrypt hash; empty for Google accounts
	Name             string
	Age              int
	Weight           float64 // kg
	Height           float64 // cm
	Gender           string  `gorm:"size:10"` // "male" | "female" | "other"
	ActivityLevel    string  `gorm:"size:20"` // "sedentary" … "extra active"
	DailyCalorieGoal float64 `gorm:"default:2000"`
	ProfileComplete  bool    `gorm:"default:false"`
}
