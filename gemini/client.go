// Package gemini wraps the Google generative AI client behind the Service
// interface. Every call validates the model's payload against the expected
// shape; a failed call or malformed payload degrades to a documented fallback
// instead of surfacing an error to the buyer flow.
package gemini

import (
	"context"
	"encoding/json"
	"os"
	"regexp"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/teckion/dealership-api/models"
)

const (
	defaultModel      = "gemini-2.5-flash"
	defaultImageModel = "gemini-2.5-flash-image"
)

// Service is the AI surface the handlers depend on
type Service interface {
	AnalyzeIntent(ctx context.Context, userInput string) models.Intent
	GenerateTemplate(ctx context.Context, vehicle models.VehicleDetails, dealership string) string
	BuildContract(ctx context.Context, template string, vehicle models.VehicleDetails, buyerInputs map[string]string) models.BuiltContract
	RefineText(ctx context.Context, currentText, instruction string) string
	FillSellerVariables(ctx context.Context, template string, sellerInputs map[string]string) string
	ExtractBuyerFields(ctx context.Context, template string) []string
	IdentifySellerFields(ctx context.Context, template string) []string
	VerifyCompliance(ctx context.Context, oldText, newText, request string) models.ComplianceResult
	ContractAssistant(ctx context.Context, question, contractText string) models.AssistantAnswer
	AnalyzeInsuranceNeeds(ctx context.Context, intent models.Intent, plans []models.InsurancePlan) models.PlanRecommendation
	QueryInsuranceAgent(ctx context.Context, question string, plans []models.InsurancePlan) string
	QueryAnalyticsChatbot(ctx context.Context, question string, stats *models.Analytics) string
	GenerateVehicleVisuals(ctx context.Context, vehicle models.VehicleDetails, sceneContext, modification string) ([][]byte, error)
}

// Client implements Service on top of the genai SDK
type Client struct {
	client     *genai.Client
	modelName  string
	imageModel string
}

// New builds a Client. An empty apiKey falls back to GEMINI_API_KEY, an empty
// modelName to the default flash model.
func New(ctx context.Context, apiKey, modelName string) (*Client, error) {
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	cl, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	if modelName == "" {
		modelName = defaultModel
	}
	return &Client{client: cl, modelName: modelName, imageModel: defaultImageModel}, nil
}

// Close releases the underlying client
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// generateText runs a plain text completion
func (c *Client) generateText(ctx context.Context, prompt string) (string, error) {
	m := c.client.GenerativeModel(c.modelName)
	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	return joinTextParts(resp), nil
}

// generateJSON runs a completion in JSON mode and unmarshals the payload
// into out
func (c *Client) generateJSON(ctx context.Context, prompt string, out interface{}) error {
	m := c.client.GenerativeModel(c.modelName)
	m.ResponseMIMEType = "application/json"
	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(stripFences(joinTextParts(resp))), out)
}

func joinTextParts(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if t, ok := p.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	return b.String()
}

var htmlFence = regexp.MustCompile("(?i)```html")

// CleanHTML strips markdown code fences the model sometimes wraps HTML in
func CleanHTML(text string) string {
	if text == "" {
		return ""
	}
	clean := htmlFence.ReplaceAllString(text, "")
	clean = strings.ReplaceAll(clean, "```", "")
	return strings.TrimSpace(clean)
}

func stripFences(text string) string {
	clean := strings.ReplaceAll(text, "```json", "")
	clean = strings.ReplaceAll(clean, "```", "")
	return strings.TrimSpace(clean)
}
