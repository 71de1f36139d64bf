package services

import (
	"strings"
	"testing"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeSystemMessageEmptyInputs(t *testing.T) {
	assert.Empty(t, composeSystemMessage(nil, nil, nil))
}

func TestComposeSystemMessageDefaultPersona(t *testing.T) {
	evidence := []models.FoodEntry{{Name: "Apple", MealType: "snack", Calories: 52}}
	msg := composeSystemMessage(nil, nil, evidence)

	assert.True(t, strings.HasPrefix(msg, "SYSTEM: YOU MUST FOLLOW THESE RULES EXACTLY!"))
	assert.Contains(t, msg, "1. ONLY give the direct answer without ANY explanation or reasoning\n")
	assert.Contains(t, msg, "3. Respond in a SINGLE sentence\n")
	assert.Contains(t, msg, "6. Assume default user profile: Age 20, Weight 50kg, Female\n")
	assert.Contains(t, msg, "7. Height: 5 feet 2 inches\n")
	assert.Contains(t, msg, "9. Assume portion size of 1 for all items\n")
}

func TestComposeSystemMessageRendersProfile(t *testing.T) {
	profile := &models.User{Age: 30, Weight: 70, Height: 175, Gender: "male"}
	msg := composeSystemMessage(profile, nil, []models.FoodEntry{{Name: "Rice"}})

	assert.Contains(t, msg, "6. User profile: Age 30, Weight 70kg, Gender male\n")
	assert.Contains(t, msg, "7. Height: 175cm\n")
	assert.NotContains(t, msg, "default user profile")
}

func TestComposeSystemMessageProfileWithoutHeight(t *testing.T) {
	profile := &models.User{Age: 25, Weight: 60, Gender: "female"}
	msg := composeSystemMessage(profile, nil, []models.FoodEntry{{Name: "Rice"}})

	assert.Contains(t, msg, "7. Height: 5 feet 2 inches\n")
}

func TestComposeSystemMessageSections(t *testing.T) {
	today := []models.FoodEntry{
		{Name: "Oats", MealType: "breakfast", Calories: 150, Protein: 5, Carbohydrates: 27, Fat: 3},
	}
	evidence := []models.FoodEntry{
		{Name: "Chicken", MealType: "lunch", Calories: 320, Notes: "grilled", Protein: 30, Carbohydrates: 0, Fat: 8},
		{Name: "Soup", MealType: "dinner", Calories: 120, Protein: 4, Carbohydrates: 10, Fat: 2},
	}

	msg := composeSystemMessage(nil, today, evidence)

	assert.Contains(t, msg, "Today's food entries:\n- Oats (breakfast): 150 calories, 5g protein, 27g carbs, 3g fat\n")
	assert.Contains(t, msg, "Available food information:\n- Chicken (lunch): 320 calories\n  Notes: grilled\n  Nutrition: 30g protein, 0g carbs, 8g fat")

	// today's entries render before the evidence block
	assert.Less(t, strings.Index(msg, "Today's food entries:"), strings.Index(msg, "Available food information:"))
	// evidence order is preserved
	assert.Less(t, strings.Index(msg, "- Chicken"), strings.Index(msg, "- Soup"))
}

func TestComposePromptPrependsSystemMessage(t *testing.T) {
	history := []ChatMessage{
		{Role: "user", Content: "what did I eat"},
		{Role: "assistant", Content: "oats"},
		{Role: "user", Content: "how many calories"},
	}
	evidence := []models.FoodEntry{{Name: "Oats", MealType: "breakfast", Calories: 150}}

	messages := composePrompt(history, evidence, nil, nil)

	require.Len(t, messages, 4)
	assert.Equal(t, "system", messages[0].Role)
	assert.Equal(t, history, messages[1:])
}

func TestComposePromptWithoutContextIsHistoryOnly(t *testing.T) {
	history := []ChatMessage{{Role: "user", Content: "hello"}}

	messages := composePrompt(history, nil, nil, nil)

	require.Len(t, messages, 1)
	assert.Equal(t, "user", messages[0].Role)
}
