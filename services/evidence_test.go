package services

import (
	"context"
	"testing"
	"time"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQueryIntent(t *testing.T) {
	t.Run("short tokens are not keywords", func(t *testing.T) {
		qi := parseQueryIntent("is my ok")
		assert.Empty(t, qi.keywords)
		assert.Empty(t, qi.mealTypes)
		assert.Nil(t, qi.band)
		assert.True(t, qi.empty())
	})

	t.Run("meal type detected as substring", func(t *testing.T) {
		qi := parseQueryIntent("what did I have for Breakfast")
		assert.Contains(t, qi.mealTypes, "breakfast")
	})

	t.Run("low calorie phrase", func(t *testing.T) {
		qi := parseQueryIntent("show me low calorie snacks")
		require.NotNil(t, qi.band)
		assert.Equal(t, "<", qi.band.op)
		assert.Equal(t, lowCalorieCeiling, qi.band.limit)
	})

	t.Run("hyphenated high calorie phrase", func(t *testing.T) {
		qi := parseQueryIntent("any high-calorie meals today")
		require.NotNil(t, qi.band)
		assert.Equal(t, ">", qi.band.op)
		assert.Equal(t, highCalorieFloor, qi.band.limit)
	})

	t.Run("first band rule wins", func(t *testing.T) {
		qi := parseQueryIntent("low calorie or high calorie")
		require.NotNil(t, qi.band)
		assert.Equal(t, "<", qi.band.op)
	})
}

func entryAt(userID uint, name, mealType string, calories int, daysAgo int) models.FoodEntry {
	return models.FoodEntry{
		UserID:   userID,
		Name:     name,
		MealType: mealType,
		Quantity: 1,
		Calories: calories,
		Date:     time.Now().AddDate(0, 0, -daysAgo),
	}
}

func TestSelectEmptyIntentFallsBackToNewest(t *testing.T) {
	db := newTestDB(t)
	seedEntries(t, db,
		entryAt(1, "Oats", "breakfast", 150, 4),
		entryAt(1, "Rice", "lunch", 350, 3),
		entryAt(1, "Eggs", "dinner", 200, 2),
		entryAt(1, "Soup", "dinner", 120, 1),
		entryAt(2, "Cake", "snack", 500, 0),
	)

	sel := NewEvidenceSelector(db)
	entries, err := sel.Select(context.Background(), "is it ok", 1)
	require.NoError(t, err)

	require.Len(t, entries, 3)
	assert.Equal(t, "Soup", entries[0].Name)
	assert.Equal(t, "Eggs", entries[1].Name)
	assert.Equal(t, "Rice", entries[2].Name)
}

func TestSelectFiltersByMealTypeAndKeyword(t *testing.T) {
	db := newTestDB(t)
	seedEntries(t, db,
		entryAt(1, "Grilled Chicken", "lunch", 320, 1),
		entryAt(1, "Chicken Soup", "dinner", 180, 1),
		entryAt(1, "Salad", "lunch", 90, 1),
	)

	sel := NewEvidenceSelector(db)
	entries, err := sel.Select(context.Background(), "did I eat chicken for lunch", 1)
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, "Grilled Chicken", entries[0].Name)
}

func TestSelectCalorieBandExcludesEntriesOutsideBand(t *testing.T) {
	db := newTestDB(t)
	seedEntries(t, db,
		entryAt(1, "Burger", "lunch", 650, 1),
		entryAt(1, "Veggie Burger", "lunch", 250, 1),
	)

	sel := NewEvidenceSelector(db)
	entries, err := sel.Select(context.Background(), "high calorie burger", 1)
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, "Burger", entries[0].Name)

	entries, err = sel.Select(context.Background(), "low calorie burger", 1)
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, "Veggie Burger", entries[0].Name)
}

func TestSelectKeywordMatchesNotes(t *testing.T) {
	db := newTestDB(t)
	e := entryAt(1, "Mystery Bowl", "lunch", 300, 1)
	e.Notes = "mostly quinoa with vegetables"
	seedEntries(t, db, e, entryAt(1, "Toast", "breakfast", 120, 1))

	sel := NewEvidenceSelector(db)
	entries, err := sel.Select(context.Background(), "how much quinoa", 1)
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, "Mystery Bowl", entries[0].Name)
}

func TestSelectNoMatchFallsBackKeepingMealType(t *testing.T) {
	db := newTestDB(t)
	seedEntries(t, db,
		entryAt(1, "Oats", "breakfast", 150, 3),
		entryAt(1, "Toast", "breakfast", 120, 2),
		entryAt(1, "Eggs", "breakfast", 200, 1),
		entryAt(1, "Granola", "breakfast", 310, 0),
		entryAt(1, "Rice", "lunch", 350, 0),
	)

	sel := NewEvidenceSelector(db)
	entries, err := sel.Select(context.Background(), "zzzunmatched breakfast", 1)
	require.NoError(t, err)

	require.Len(t, entries, 3)
	for _, e := range entries {
		assert.Equal(t, "breakfast", e.MealType)
	}
	assert.Equal(t, "Granola", entries[0].Name)
}

func TestSelectCapsAtFive(t *testing.T) {
	db := newTestDB(t)
	for i := 0; i < 8; i++ {
		seedEntries(t, db, entryAt(1, "Chicken Plate", "lunch", 300, i))
	}

	sel := NewEvidenceSelector(db)
	entries, err := sel.Select(context.Background(), "chicken", 1)
	require.NoError(t, err)
	assert.Len(t, entries, 5)
}

func TestSelectScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	seedEntries(t, db,
		entryAt(1, "Chicken Curry", "dinner", 420, 1),
		entryAt(2, "Chicken Wrap", "lunch", 380, 1),
	)

	sel := NewEvidenceSelector(db)
	entries, err := sel.Select(context.Background(), "chicken", 1)
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, uint(1), entries[0].UserID)
}
