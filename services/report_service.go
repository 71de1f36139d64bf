package services

import (
	"context"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

// DaySummary is the exact integer nutrient total over one window.
type DaySummary struct {
	TotalCalories      int `json:"totalCalories"`
	TotalProtein       int `json:"totalProtein"`
	TotalCarbohydrates int `json:"totalCarbohydrates"`
	TotalFat           int `json:"totalFat"`
}

// DailyReport additionally buckets the day's entries by meal type.
type DailyReport struct {
	DaySummary
	Meals map[string][]models.FoodEntry `json:"meals"`
}

type MonthlyReport struct {
	DaySummary
	AverageDailyCalories float64 `json:"averageDailyCalories"`
}

type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

// Daily summarizes [start of day, start of next day). Entries with a
// meal type outside the four known ones count toward the totals but
// appear in no bucket.
func (s *ReportService) Daily(ctx context.Context, userID uint, date time.Time) (*DailyReport, error) {
	from := dayStart(date)
	entries, err := s.entriesBetween(ctx, userID, from, from.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	report := &DailyReport{
		DaySummary: sumEntries(entries),
		Meals:      make(map[string][]models.FoodEntry, len(mealTypes)),
	}
	for _, mt := range mealTypes {
		report.Meals[mt] = []models.FoodEntry{}
	}
	for _, e := range entries {
		if _, ok := report.Meals[e.MealType]; ok {
			report.Meals[e.MealType] = append(report.Meals[e.MealType], e)
		}
	}
	return report, nil
}

// Weekly produces one sub-summary per calendar date over the 7 days
// starting at start, keyed by ISO date. Dates without entries still
// appear with zero totals.
func (s *ReportService) Weekly(ctx context.Context, userID uint, start time.Time) (map[string]DaySummary, error) {
	from := dayStart(start)
	entries, err := s.entriesBetween(ctx, userID, from, from.AddDate(0, 0, 7))
	if err != nil {
		return nil, err
	}

	byDate := make(map[string][]models.FoodEntry)
	for _, e := range entries {
		key := e.Date.Format("2006-01-02")
		byDate[key] = append(byDate[key], e)
	}

	out := make(map[string]DaySummary, 7)
	for i := 0; i < 7; i++ {
		key := from.AddDate(0, 0, i).Format("2006-01-02")
		out[key] = sumEntries(byDate[key])
	}
	return out, nil
}

// Monthly summarizes the given calendar month. The average divides by
// the number of days in the month, not the number of days with entries.
func (s *ReportService) Monthly(ctx context.Context, userID uint, year, month int) (*MonthlyReport, error) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	next := first.AddDate(0, 1, 0)
	entries, err := s.entriesBetween(ctx, userID, first, next)
	if err != nil {
		return nil, err
	}

	report := &MonthlyReport{DaySummary: sumEntries(entries)}
	daysInMonth := next.AddDate(0, 0, -1).Day()
	report.AverageDailyCalories = float64(report.TotalCalories) / float64(daysInMonth)
	return report, nil
}

// One store read per report; all window math happens in memory.
func (s *ReportService) entriesBetween(ctx context.Context, userID uint, from, to time.Time) ([]models.FoodEntry, error) {
	var entries []models.FoodEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, from, to).
		Find(&entries).Error
	return entries, err
}

func sumEntries(entries []models.FoodEntry) DaySummary {
	var t DaySummary
	for _, e := range entries {
		t.TotalCalories += e.Calories
		t.TotalProtein += e.Protein
		t.TotalCarbohydrates += e.Carbohydrates
		t.TotalFat += e.Fat
	}
	return t
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
