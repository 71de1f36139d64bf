package services

import (
	"context"
	"fmt"
	"strings"

	"backend/models"

	"gorm.io/gorm"
)

const (
	evidenceLimit = 5
	fallbackLimit = 3

	lowCalorieCeiling = 300
	highCalorieFloor  = 400
)

var mealTypes = []string{"breakfast", "lunch", "dinner", "snack"}

// calorieBand is a single numeric constraint on the calories column.
type calorieBand struct {
	op    string // "<" or ">"
	limit int
}

// bandRules maps query phrases to calorie bands; the first rule with a
// matching phrase wins.
var bandRules = []struct {
	phrases []string
	band    calorieBand
}{
	{[]string{"low calorie", "low-calorie"}, calorieBand{op: "<", limit: lowCalorieCeiling}},
	{[]string{"high calorie", "high-calorie"}, calorieBand{op: ">", limit: highCalorieFloor}},
}

// queryIntent is everything the selector reads out of a free-text question.
type queryIntent struct {
	keywords  []string
	mealTypes []string
	band      *calorieBand
}

func (qi queryIntent) empty() bool {
	return len(qi.keywords) == 0 && len(qi.mealTypes) == 0 && qi.band == nil
}

// parseQueryIntent derives filter constraints from the question text:
// whitespace tokens longer than two characters become keyword candidates,
// meal-type names match as substrings, and the band rules detect calorie
// intent.
func parseQueryIntent(query string) queryIntent {
	lower := strings.ToLower(query)

	var qi queryIntent
	for _, tok := range strings.Fields(lower) {
		if len(tok) > 2 {
			qi.keywords = append(qi.keywords, tok)
		}
	}
	for _, mt := range mealTypes {
		if strings.Contains(lower, mt) {
			qi.mealTypes = append(qi.mealTypes, mt)
		}
	}
rules:
	for _, rule := range bandRules {
		for _, p := range rule.phrases {
			if strings.Contains(lower, p) {
				band := rule.band
				qi.band = &band
				break rules
			}
		}
	}
	return qi
}

// EvidenceSelector builds the bounded set of a user's entries relevant to
// a chat question. The specific filter runs first; when it matches
// nothing the query widens so the model still sees some of the user's
// data, and a question with no usable constraints goes straight to the
// widened form.
type EvidenceSelector struct {
	db *gorm.DB
}

func NewEvidenceSelector(db *gorm.DB) *EvidenceSelector {
	return &EvidenceSelector{db: db}
}

func (s *EvidenceSelector) Select(ctx context.Context, query string, userID uint) ([]models.FoodEntry, error) {
	qi := parseQueryIntent(query)
	if qi.empty() {
		return s.fallback(ctx, userID, nil)
	}

	q := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if len(qi.mealTypes) > 0 {
		q = q.Where("meal_type IN ?", qi.mealTypes)
	}
	if qi.band != nil {
		q = q.Where(fmt.Sprintf("calories %s ?", qi.band.op), qi.band.limit)
	}
	if len(qi.keywords) > 0 {
		q = q.Where(s.keywordClause(qi.keywords))
	}

	var entries []models.FoodEntry
	if err := q.Limit(evidenceLimit).Find(&entries).Error; err != nil {
		return nil, err
	}
	if len(entries) > 0 {
		return entries, nil
	}
	return s.fallback(ctx, userID, qi.mealTypes)
}

// keywordClause ORs a case-insensitive substring match over name and
// notes for each keyword; the caller ANDs the whole group onto the filter.
func (s *EvidenceSelector) keywordClause(keywords []string) *gorm.DB {
	pattern := "%" + keywords[0] + "%"
	clause := s.db.Where("LOWER(name) LIKE ? OR LOWER(notes) LIKE ?", pattern, pattern)
	for _, kw := range keywords[1:] {
		pattern = "%" + kw + "%"
		clause = clause.Or("LOWER(name) LIKE ? OR LOWER(notes) LIKE ?", pattern, pattern)
	}
	return clause
}

// fallback returns the user's latest entries, keeping a detected
// meal-type restriction when there is one, capped at fallbackLimit.
func (s *EvidenceSelector) fallback(ctx context.Context, userID uint, types []string) ([]models.FoodEntry, error) {
	q := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if len(types) > 0 {
		q = q.Where("meal_type IN ?", types)
	}
	var entries []models.FoodEntry
	err := q.Order("date DESC").Limit(fallbackLimit).Find(&entries).Error
	return entries, err
}
