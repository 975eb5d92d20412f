package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/teckion/dealership-api/models"
)

// QueryAnalyticsChatbot answers a seller question against their dashboard
// stats. Only the rollup document goes into the prompt, never raw buyer data.
func (c *Client) QueryAnalyticsChatbot(ctx context.Context, question string, stats *models.Analytics) string {
	safeContext := map[string]interface{}{
		"summary": "Automotive Sales Dashboard",
		"stats":   stats,
	}
	encoded, _ := json.Marshal(safeContext)
	prompt := fmt.Sprintf(`
    System: You are an AI assistant for a car dealership dashboard.
    Data Context: %s
    User Question: "%s"
    Instructions: Answer concisely (under 50 words) based strictly on the Data Context.`,
		encoded, question)

	text, err := c.generateText(ctx, prompt)
	if err != nil || strings.TrimSpace(text) == "" {
		zap.S().With(err).Warn("analytics chatbot query failed")
		return "I'm having trouble connecting right now. Please try again."
	}
	return text
}
