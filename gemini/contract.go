package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/teckion/dealership-api/models"
)

// GenerateTemplate drafts a full seller-side sales agreement template for a
// vehicle. Seller placeholders use [BRACKETS], buyer placeholders use
// {{braces}}. Falls back to an empty string, the caller keeps its existing
// template.
func (c *Client) GenerateTemplate(ctx context.Context, vehicle models.VehicleDetails, dealership string) string {
	if dealership == "" {
		dealership = "Seller Name"
	}
	prompt := fmt.Sprintf(`
    Generate a highly detailed, professional "Vehicle Sales Agreement" in proper HTML format.

    CONTEXT DATA:
    - Vehicle: %s %s (%s)
    - Price: [PRICE] (or %d)
    - Seller: %s

    INSTRUCTIONS:
    1. Format: Return ONLY semantic HTML. Use <h3> for section headers, <p> for paragraphs, <ol>/<ul> for lists, <strong> for defined terms.
    2. Style: Formal, legal English. Professional and comprehensive.
    3. Required structure: centered title, preamble naming %s ("Seller") and {{buyer_name}} ("Buyer"), definitions,
       purchase and sale with price breakdown, vehicle description with VIN [VIN], mileage [MILEAGE], color [COLOR],
       seller representations including an AS-IS warranty disclaimer, buyer representations, covenants,
       conditions to closing, indemnification, miscellaneous, and a signature block.
    4. Placeholders:
       - Seller fields (filled now): [VIN], [DATE], [PRICE], [MILEAGE], [COLOR].
       - Buyer fields (filled later): {{buyer_name}}, {{address}}, {{phone}}.
    5. Output: return only the raw HTML string.`,
		vehicle.Name, vehicle.Trim, vehicle.Drive, vehicle.PriceRange[0], dealership, dealership)

	text, err := c.generateText(ctx, prompt)
	if err != nil {
		zap.S().With(err).Warn("template generation failed")
		return ""
	}
	return CleanHTML(text)
}

// BuildContract fills the buyer placeholders of a seller-prepared template
// and produces the final document plus a plain-language summary. Fallback is
// an explicit error document so the failure is visible, never a half-filled
// contract.
func (c *Client) BuildContract(ctx context.Context, template string, vehicle models.VehicleDetails, buyerInputs map[string]string) models.BuiltContract {
	inputs, _ := json.Marshal(buyerInputs)
	prompt := fmt.Sprintf(`
    Task: Contract Completion (Final Buyer Fill).

    INPUT TEMPLATE (ALREADY FILLED BY SELLER):
    """%s"""

    USER PROVIDED DETAILS (BUYER):
    %s

    VEHICLE DATA:
    - Model: %s %s
    - Price: %d

    INSTRUCTIONS:
    1. Fill the remaining {{buyer_...}} placeholders using User Details.
    2. Format into clean HTML (A4 style).
    3. CRITICAL: Do NOT use Markdown symbols. Use HTML tags (<h3>, <p>, <b>, <ul>, <br>).
    4. Ensure there is enough vertical spacing between clauses.

    Output JSON: { "final_contract_html": string, "summary": string }`,
		template, inputs, vehicle.Name, vehicle.Trim, vehicle.PriceRange[0])

	var built models.BuiltContract
	if err := c.generateJSON(ctx, prompt, &built); err != nil || built.ContractHTML == "" {
		zap.S().With(err).Warn("contract build failed")
		return models.BuiltContract{
			ContractHTML: "<p>Error generating contract.</p>",
			Summary:      "Generation failed.",
		}
	}
	built.ContractHTML = CleanHTML(built.ContractHTML)
	return built
}

// RefineText applies a freeform editing instruction to contract text.
// Fallback is the unedited input.
func (c *Client) RefineText(ctx context.Context, currentText, instruction string) string {
	prompt := fmt.Sprintf(`Role: Legal Contract Editor. Current Text: """%s""" Instruction: "%s".
    Constraint: Return ONLY updated text. Maintain HTML tags if present. Do NOT use markdown symbols.`,
		currentText, instruction)

	text, err := c.generateText(ctx, prompt)
	if err != nil || strings.TrimSpace(text) == "" {
		zap.S().With(err).Warn("contract refinement failed")
		return currentText
	}
	return CleanHTML(text)
}

// FillSellerVariables substitutes the seller's [BRACKET] placeholders while
// leaving buyer {{braces}} untouched. Fallback is the unedited template.
func (c *Client) FillSellerVariables(ctx context.Context, template string, sellerInputs map[string]string) string {
	inputs, _ := json.Marshal(sellerInputs)
	prompt := fmt.Sprintf(`
    Task: Fill SELLER placeholders in the contract template.

    TEMPLATE:
    """%s"""

    SELLER INPUTS:
    %s

    Rules:
    1. Replace placeholders like [VIN], [DATE], etc. with the provided inputs.
    2. CRITICAL: DO NOT touch {{buyer_name}} or any {{placeholder}} meant for the buyer. Leave them exactly as is.
    3. Return the updated template. Maintain any HTML tags if present.`,
		template, inputs)

	text, err := c.generateText(ctx, prompt)
	if err != nil || strings.TrimSpace(text) == "" {
		zap.S().With(err).Warn("seller variable fill failed")
		return template
	}
	return CleanHTML(text)
}

// ExtractBuyerFields lists the inputs a buyer must supply for a template.
// Sensitive identity documents are excluded by prompt. Fallback is the
// minimal name+address pair.
func (c *Client) ExtractBuyerFields(ctx context.Context, template string) []string {
	prompt := fmt.Sprintf(`
    Analyze this Vehicle Sales Contract Template.
    Identify the SPECIFIC variables/placeholders that the BUYER needs to provide.

    TEMPLATE:
    """%s"""

    Rules:
    1. Look for placeholders like {{buyer_name}}, {{address}}, {{phone}}.
    2. IGNORE placeholders that seem like they should have been filled by the seller (like [VIN], [WARRANTY_DATE]).
    3. CRITICAL: DO NOT ASK for "Driving License", "DL Number", "Passport", or "ID Proof". These are sensitive and collected offline/later. Exclude them from the list.
    4. Output JSON: { "fields": ["Full Name", "Residential Address", ...] }`,
		template)

	var out struct {
		Fields []string `json:"fields"`
	}
	if err := c.generateJSON(ctx, prompt, &out); err != nil || len(out.Fields) == 0 {
		zap.S().With(err).Warn("buyer field extraction failed")
		return []string{"Full Legal Name", "Current Address"}
	}
	return out.Fields
}

// IdentifySellerFields lists the placeholders the seller must fill before a
// template is usable. Fallback is empty, the seller UI simply offers no
// guided fill.
func (c *Client) IdentifySellerFields(ctx context.Context, template string) []string {
	prompt := fmt.Sprintf(`
    Analyze this Contract Template.
    Identify placeholders that the SELLER (Dealership) needs to fill RIGHT NOW before saving the template.

    TEMPLATE:
    """%s"""

    Rules:
    1. Look for placeholders like [VIN], [DATE], [WARRANTY_PERIOD], [DEALER_LICENSE], [STOCK_NO], [PRICE], [MILEAGE], [COLOR].
    2. CRITICAL: DO NOT include placeholders related to the Buyer (e.g., {{buyer_name}}, {{address}}). These must remain blank.
    3. Return distinct labels for the seller to fill.

    Output JSON: { "seller_fields": ["VIN Number", "Warranty Duration (Months)", "Today's Date"] }`,
		template)

	var out struct {
		SellerFields []string `json:"seller_fields"`
	}
	if err := c.generateJSON(ctx, prompt, &out); err != nil {
		zap.S().With(err).Warn("seller field extraction failed")
		return nil
	}
	return out.SellerFields
}

// VerifyCompliance gives an advisory verdict on whether a revised contract
// satisfies the buyer's change request. The gate is soft: on failure the
// verdict is satisfied with an explicit skip reason, so an AI outage never
// blocks a seller from resubmitting.
func (c *Client) VerifyCompliance(ctx context.Context, oldText, newText, request string) models.ComplianceResult {
	prompt := fmt.Sprintf(`
    Task: Verify Contract Compliance.

    Original Request from Buyer: "%s"

    New Contract Text:
    """%s"""

    Instructions:
    1. Analyze if the New Contract Text has been modified to reasonably satisfy the Buyer's request compared to standard automotive terms.
    2. Output JSON: { "satisfied": boolean, "reason": string }`,
		request, newText)

	var result models.ComplianceResult
	if err := c.generateJSON(ctx, prompt, &result); err != nil {
		zap.S().With(err).Warn("compliance verification failed, skipping")
		return models.ComplianceResult{Satisfied: true, Reason: "AI verification skipped."}
	}
	return result
}

// ContractAssistant answers a buyer question about their contract with a
// supporting citation. The citation is only kept when it exists
// character-for-character in the contract, otherwise the client could not
// highlight it.
func (c *Client) ContractAssistant(ctx context.Context, question, contractText string) models.AssistantAnswer {
	prompt := fmt.Sprintf(`
    System: You are a Legal Assistant helping a car buyer understand their contract.
    Contract Text: """%s"""
    User Question: "%s"

    Task:
    1. Answer the user's question clearly based on the contract text.
    2. Identify a SHORT, UNIQUE sentence or phrase (max 10-15 words) from the contract text that directly supports your answer.
    3. CRITICAL: The 'citation_quote' MUST exist character-for-character in the text so it can be highlighted. Do not paraphrase the quote.

    Output JSON: { "answer": string, "citation_quote": string }`,
		contractText, question)

	var answer models.AssistantAnswer
	if err := c.generateJSON(ctx, prompt, &answer); err != nil || answer.Answer == "" {
		zap.S().With(err).Warn("contract assistant failed")
		return models.AssistantAnswer{Answer: "I couldn't analyze the document at this moment."}
	}
	return ValidateCitation(answer, contractText)
}

// ValidateCitation drops a citation the contract text does not actually
// contain
func ValidateCitation(answer models.AssistantAnswer, contractText string) models.AssistantAnswer {
	if answer.CitationQuote != "" && !strings.Contains(contractText, answer.CitationQuote) {
		answer.CitationQuote = ""
	}
	return answer
}
