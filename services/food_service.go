package services

import (
	"errors"
	"math"
	"strings"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

var (
	ErrNutritionNotFound = errors.New("food not found in nutrition database")
	ErrEntryNotFound     = errors.New("food entry not found")
	ErrBadReference      = errors.New("nutrition reference has a non-positive quantity basis")
	ErrInvalidEntry      = errors.New("quantity must be positive and meal type one of breakfast, lunch, dinner or snack")
)

type FoodService struct {
	db *gorm.DB
}

func NewFoodService(db *gorm.DB) *FoodService {
	return &FoodService{db: db}
}

type EntryInput struct {
	Name     string
	MealType string
	Quantity float64
	Notes    string
	Date     *time.Time
}

// scaledNutrients derives the entry's integer nutrient snapshot from the
// reference record. The reference basis must be positive.
func scaledNutrients(ref *models.Nutrition, quantity float64) (calories, protein, carbs, fat int, err error) {
	if ref.Quantity <= 0 {
		return 0, 0, 0, 0, ErrBadReference
	}
	m := quantity / ref.Quantity
	round := func(v float64) int { return int(math.Round(v * m)) }
	return round(ref.Calories), round(ref.Protein), round(ref.Carbs), round(ref.Fat), nil
}

func validMealType(mt string) bool {
	for _, known := range mealTypes {
		if known == mt {
			return true
		}
	}
	return false
}

func (s *FoodService) findReference(name string) (*models.Nutrition, error) {
	var ref models.Nutrition
	if err := s.db.Where("name = ?", name).First(&ref).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNutritionNotFound
		}
		return nil, err
	}
	return &ref, nil
}

func (s *FoodService) AddEntry(userID uint, in EntryInput) (*models.FoodEntry, error) {
	if in.Quantity <= 0 || !validMealType(in.MealType) {
		return nil, ErrInvalidEntry
	}

	ref, err := s.findReference(in.Name)
	if err != nil {
		return nil, err
	}
	cal, prot, carbs, fat, err := scaledNutrients(ref, in.Quantity)
	if err != nil {
		return nil, err
	}

	date := time.Now()
	if in.Date != nil {
		date = *in.Date
	}

	entry := &models.FoodEntry{
		UserID:        userID,
		Name:          in.Name,
		MealType:      in.MealType,
		Quantity:      in.Quantity,
		Notes:         in.Notes,
		Calories:      cal,
		Protein:       prot,
		Carbohydrates: carbs,
		Fat:           fat,
		Date:          date,
	}
	if err := s.db.Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

// UpdateEntry re-scales the nutrient snapshot when the name or quantity
// changes. The entry's date never changes, even across edits.
func (s *FoodService) UpdateEntry(userID, entryID uint, in EntryInput) (*models.FoodEntry, error) {
	var entry models.FoodEntry
	if err := s.db.Where("id = ? AND user_id = ?", entryID, userID).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}

	name := entry.Name
	if in.Name != "" {
		name = in.Name
	}
	quantity := entry.Quantity
	if in.Quantity > 0 {
		quantity = in.Quantity
	}

	if in.MealType != "" {
		if !validMealType(in.MealType) {
			return nil, ErrInvalidEntry
		}
		entry.MealType = in.MealType
	}
	if in.Notes != "" {
		entry.Notes = in.Notes
	}

	if name != entry.Name || quantity != entry.Quantity {
		ref, err := s.findReference(name)
		if err != nil {
			return nil, err
		}
		cal, prot, carbs, fat, err := scaledNutrients(ref, quantity)
		if err != nil {
			return nil, err
		}
		entry.Name = name
		entry.Quantity = quantity
		entry.Calories, entry.Protein, entry.Carbohydrates, entry.Fat = cal, prot, carbs, fat
	}

	if err := s.db.Save(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *FoodService) DeleteEntry(userID, entryID uint) error {
	res := s.db.Where("id = ? AND user_id = ?", entryID, userID).Delete(&models.FoodEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrEntryNotFound
	}
	return nil
}

func (s *FoodService) ListEntries(userID uint) ([]models.FoodEntry, error) {
	var entries []models.FoodEntry
	err := s.db.
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&entries).Error
	return entries, err
}

func (s *FoodService) ListEntriesByDate(userID uint, date time.Time) ([]models.FoodEntry, error) {
	from := dayStart(date)
	var entries []models.FoodEntry
	err := s.db.
		Where("user_id = ? AND date >= ? AND date < ?", userID, from, from.AddDate(0, 0, 1)).
		Order("date DESC").
		Find(&entries).Error
	return entries, err
}

// SearchNutrition matches reference foods by case-insensitive substring.
func (s *FoodService) SearchNutrition(query string) ([]models.Nutrition, error) {
	var refs []models.Nutrition
	pattern := "%" + strings.ToLower(query) + "%"
	err := s.db.
		Where("LOWER(name) LIKE ?", pattern).
		Limit(10).
		Find(&refs).Error
	return refs, err
}
