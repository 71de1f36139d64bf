package config

import (
	"backend/models"

	"gorm.io/gorm"
)

// Starter reference set, per 100g unless noted. Rows are only inserted
// when the table is empty so operator-maintained data is never touched.
var nutritionSeed = []models.Nutrition{
	{Name: "Apple", Quantity: 100, Calories: 52, Carbs: 14, Fat: 0.2, Protein: 0.3, Sodium: 1, Sugar: 10},
	{Name: "Banana", Quantity: 100, Calories: 89, Carbs: 23, Fat: 0.3, Protein: 1.1, Sodium: 1, Sugar: 12},
	{Name: "White Rice", Quantity: 100, Calories: 130, Carbs: 28, Fat: 0.3, Protein: 2.7, Sodium: 1, Sugar: 0.1},
	{Name: "Chicken Breast", Quantity: 100, Calories: 165, Carbs: 0, Fat: 3.6, Protein: 31, Sodium: 74, Sugar: 0},
	{Name: "Egg", Quantity: 50, Calories: 72, Carbs: 0.4, Fat: 4.8, Protein: 6.3, Sodium: 71, Sugar: 0.2},
	{Name: "Whole Milk", Quantity: 100, Calories: 61, Carbs: 4.8, Fat: 3.3, Protein: 3.2, Sodium: 43, Sugar: 5.1},
	{Name: "Oatmeal", Quantity: 100, Calories: 68, Carbs: 12, Fat: 1.4, Protein: 2.4, Sodium: 49, Sugar: 0.5},
	{Name: "Bread", Quantity: 100, Calories: 265, Carbs: 49, Fat: 3.2, Protein: 9, Sodium: 491, Sugar: 5},
	{Name: "Peanut Butter", Quantity: 100, Calories: 588, Carbs: 20, Fat: 50, Protein: 25, Sodium: 17, Sugar: 9},
	{Name: "Salmon", Quantity: 100, Calories: 208, Carbs: 0, Fat: 13, Protein: 20, Sodium: 59, Sugar: 0},
	{Name: "Broccoli", Quantity: 100, Calories: 34, Carbs: 7, Fat: 0.4, Protein: 2.8, Sodium: 33, Sugar: 1.7},
	{Name: "Greek Yogurt", Quantity: 100, Calories: 59, Carbs: 3.6, Fat: 0.4, Protein: 10, Sodium: 36, Sugar: 3.2},
}

func SeedNutrition(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Nutrition{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return db.Create(&nutritionSeed).Error
}
