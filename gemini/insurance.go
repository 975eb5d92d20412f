package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/teckion/dealership-api/models"
)

// AnalyzeInsuranceNeeds recommends the single best plan for a buyer's
// lifestyle. Fallback recommends the first plan as general coverage; the
// returned plan id is always one of the offered plans.
func (c *Client) AnalyzeInsuranceNeeds(ctx context.Context, intent models.Intent, plans []models.InsurancePlan) models.PlanRecommendation {
	fallback := models.PlanRecommendation{Reason: "Best general coverage."}
	if len(plans) > 0 {
		fallback.RecommendedPlanID = plans[0].ID
	}

	encoded, _ := json.Marshal(plans)
	budget := "Unknown"
	if intent.DetectedBudget > 0 {
		budget = fmt.Sprintf("%d", intent.DetectedBudget)
	}
	prompt := fmt.Sprintf(`
    Task: Recommend the best insurance plan for a user based on their lifestyle and the available plans.

    User Profile:
    - Category: %s
    - Lifestyle Tags: %s
    - Budget Limit: %s

    Available Plans:
    %s

    Instructions:
    1. Select ONE plan as the "Best Fit".
    2. Explain WHY in 1 sentence (e.g. "Because you do off-roading, the Engine Protect add-on is crucial.").

    Output JSON: { "recommendedPlanId": string, "reason": string }`,
		intent.Category, strings.Join(intent.LifestylePatterns, ", "), budget, encoded)

	var rec models.PlanRecommendation
	if err := c.generateJSON(ctx, prompt, &rec); err != nil {
		zap.S().With(err).Warn("insurance recommendation failed")
		return fallback
	}
	if !knownPlan(rec.RecommendedPlanID, plans) {
		return fallback
	}
	return rec
}

// QueryInsuranceAgent answers a freeform question about the offered plans
func (c *Client) QueryInsuranceAgent(ctx context.Context, question string, plans []models.InsurancePlan) string {
	encoded, _ := json.Marshal(plans)
	prompt := fmt.Sprintf(`
    System: You are an Expert Insurance Agent.
    Context: The user is looking at these specific plans for their car:
    %s

    User Question: "%s"

    Instructions:
    1. Answer the question specifically referencing the plans provided if applicable.
    2. If the user asks for comparison, compare premiums and coverage.
    3. Explain terms like "Zero Dep", "IDV", "RTI" simply if asked.
    4. Be concise.`,
		encoded, question)

	text, err := c.generateText(ctx, prompt)
	if err != nil || strings.TrimSpace(text) == "" {
		zap.S().With(err).Warn("insurance agent query failed")
		return "Service unavailable."
	}
	return text
}

func knownPlan(id string, plans []models.InsurancePlan) bool {
	for _, p := range plans {
		if p.ID == id {
			return true
		}
	}
	return false
}
