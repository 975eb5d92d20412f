package models

// Intent is the structured classification of a buyer's questionnaire answers.
// Produced once per matching request by the intent classifier and consumed
// immediately; never persisted.
type Intent struct {
	Category            string   `json:"category"`
	LifestylePatterns   []string `json:"lifestyle_patterns"`
	RecommendedFeatures []string `json:"recommended_features"`
	DetectedBudget      int64    `json:"detected_budget"`
	MinSeats            int      `json:"min_seats"`
}

// Intent categories
const (
	CategoryFamily   = "Family"
	CategoryCommute  = "City Commute"
	CategoryTrekking = "Trekking"
	CategoryLuxury   = "Luxury Preference"
	CategoryBudget   = "Budget-Constrained"
	CategorySafety   = "Safety-First"
)

// ValidCategory reports whether c is one of the fixed intent categories
func ValidCategory(c string) bool {
	switch c {
	case CategoryFamily, CategoryCommute, CategoryTrekking, CategoryLuxury, CategoryBudget, CategorySafety:
		return true
	}
	return false
}

// DefaultIntent is the fallback used when the classifier call fails or
// returns a malformed payload
func DefaultIntent() Intent {
	return Intent{
		Category:            CategoryCommute,
		LifestylePatterns:   []string{"General Use"},
		RecommendedFeatures: []string{"Standard Safety"},
		DetectedBudget:      0,
		MinSeats:            0,
	}
}

// QuestionnaireAnswers are the buyer's free-text answers to the four
// lifestyle questions
type QuestionnaireAnswers struct {
	People     string `json:"people"`
	Terrain    string `json:"terrain"`
	PrimaryUse string `json:"primary_use"`
	Budget     string `json:"budget"`
}

// BuiltContract is the filled document returned by the contract builder
type BuiltContract struct {
	ContractHTML string `json:"final_contract_html"`
	Summary      string `json:"summary"`
}

// ComplianceResult is the advisory verdict on whether a revision satisfies
// the buyer's change request
type ComplianceResult struct {
	Satisfied bool   `json:"satisfied"`
	Reason    string `json:"reason"`
}

// AssistantAnswer is the contract assistant's reply. CitationQuote, when
// non-empty, exists character-for-character in the contract text so the
// client can highlight it.
type AssistantAnswer struct {
	Answer        string `json:"answer"`
	CitationQuote string `json:"citation_quote"`
}

// PlanRecommendation names the insurance plan best matching a buyer's intent
type PlanRecommendation struct {
	RecommendedPlanID string `json:"recommendedPlanId"`
	Reason            string `json:"reason"`
}
