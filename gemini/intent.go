package gemini

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/teckion/dealership-api/models"
)

// AnalyzeIntent classifies the buyer's questionnaire answers into a
// structured Intent. Falls back to the neutral default intent when the call
// fails or the payload is off-schema, so matching degrades to keyword-only
// scoring instead of erroring.
func (c *Client) AnalyzeIntent(ctx context.Context, userInput string) models.Intent {
	prompt := fmt.Sprintf(`
    Analyze User Input: "%s"
    Task:
    1. Classify into ONE category: Family, City Commute, Trekking, Luxury Preference, Budget-Constrained, Safety-First.
    2. Extract lifestyle tags.
    3. Suggest features.
    4. Extract maximum budget in Indian Rupees (INR) if mentioned. Detect 'Lakh', 'Cr', 'Crore'.
       Examples: "15 Lakh" -> 1500000, "1.5 Cr" -> 15000000, "500000" -> 500000.
       If no budget mentioned, return 0.
    5. Extract minimum seats required based on people count. If not specified, default to 0.
    Output JSON: { "category": string, "lifestyle_patterns": string[], "recommended_features": string[], "detected_budget": number, "min_seats": number }`,
		userInput)

	var intent models.Intent
	if err := c.generateJSON(ctx, prompt, &intent); err != nil {
		zap.S().With(err).Warn("intent classification failed, using default intent")
		return models.DefaultIntent()
	}
	return ValidateIntent(intent)
}

// ValidateIntent checks the classifier payload field by field: an off-enum
// category falls back to the default category, negative numerics clamp to
// zero, and everything else passes through untouched
func ValidateIntent(intent models.Intent) models.Intent {
	if !models.ValidCategory(intent.Category) {
		intent.Category = models.DefaultIntent().Category
	}
	if intent.DetectedBudget < 0 {
		intent.DetectedBudget = 0
	}
	if intent.MinSeats < 0 {
		intent.MinSeats = 0
	}
	return intent
}
