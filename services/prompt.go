package services

import (
	"fmt"
	"strings"

	"backend/models"
)

// Fallback height string used when the profile has no usable height.
const defaultHeight = "5 feet 2 inches"

// composeSystemMessage renders the instruction block that grounds the
// model: behavioral rules, the user's profile (or a fixed default
// persona), today's entries, then the evidence set. Returns "" when
// there is nothing to ground the model with.
func composeSystemMessage(profile *models.User, todayEntries, evidence []models.FoodEntry) string {
	if profile == nil && len(todayEntries) == 0 && len(evidence) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("SYSTEM: YOU MUST FOLLOW THESE RULES EXACTLY! You are a nutrition and meal planning assistant.\n")
	b.WriteString("1. ONLY give the direct answer without ANY explanation or reasoning\n")
	b.WriteString("2. Do NOT show your work or calculations\n")
	b.WriteString("3. Respond in a SINGLE sentence\n")
	b.WriteString("4. Focus ONLY on nutrition facts from the database\n")
	b.WriteString("5. If asked about calories, just give the total number\n")

	if profile != nil {
		b.WriteString(fmt.Sprintf("6. User profile: Age %d, Weight %gkg, Gender %s\n", profile.Age, profile.Weight, profile.Gender))
		height := defaultHeight
		if profile.Height > 0 {
			height = fmt.Sprintf("%gcm", profile.Height)
		}
		b.WriteString(fmt.Sprintf("7. Height: %s\n", height))
	} else {
		b.WriteString("6. Assume default user profile: Age 20, Weight 50kg, Female\n")
		b.WriteString("7. Height: " + defaultHeight + "\n")
	}

	b.WriteString("8. Consider the food data provided as today's intake\n")
	b.WriteString("9. Assume portion size of 1 for all items\n")
	b.WriteString("10. Base recommendations on the user's profile and food data\n\n")

	if len(todayEntries) > 0 {
		b.WriteString("Today's food entries:\n")
		for _, e := range todayEntries {
			b.WriteString(fmt.Sprintf("- %s (%s): %d calories, %dg protein, %dg carbs, %dg fat\n",
				e.Name, e.MealType, e.Calories, e.Protein, e.Carbohydrates, e.Fat))
		}
		b.WriteString("\n")
	}

	if len(evidence) > 0 {
		b.WriteString("Available food information:\n")
		b.WriteString(formatEvidence(evidence))
	}

	return b.String()
}

// formatEvidence renders each evidence entry as a header line, its notes
// and its macro breakdown, preserving the selector's return order.
func formatEvidence(entries []models.FoodEntry) string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("- %s (%s): %d calories\n  Notes: %s\n  Nutrition: %dg protein, %dg carbs, %dg fat",
			e.Name, e.MealType, e.Calories, e.Notes, e.Protein, e.Carbohydrates, e.Fat))
	}
	return strings.Join(lines, "\n\n")
}

// composePrompt prepends the system instruction (when one is built) to
// the stored transcript. No history turn is summarized or dropped here;
// truncation already happened in the ConversationStore.
func composePrompt(history []ChatMessage, evidence []models.FoodEntry, profile *models.User, todayEntries []models.FoodEntry) []ChatMessage {
	messages := make([]ChatMessage, 0, len(history)+1)
	if sys := composeSystemMessage(profile, todayEntries, evidence); sys != "" {
		messages = append(messages, ChatMessage{Role: "system", Content: sys})
	}
	return append(messages, history...)
}
