package gemini_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/teckion/dealership-api/gemini"
	"github.com/teckion/dealership-api/models"
)

func TestCleanHTMLStripsFences(t *testing.T) {
	assert.Equal(t, "<p>hello</p>", gemini.CleanHTML("```html\n<p>hello</p>\n```"))
	assert.Equal(t, "<p>hello</p>", gemini.CleanHTML("```\n<p>hello</p>\n```"))
	assert.Equal(t, "<p>hello</p>", gemini.CleanHTML("<p>hello</p>"))
	assert.Equal(t, "", gemini.CleanHTML(""))
}

func TestCleanHTMLCaseInsensitiveFence(t *testing.T) {
	assert.Equal(t, "<b>x</b>", gemini.CleanHTML("```HTML\n<b>x</b>\n```"))
}

func TestValidateIntentSubstitutesUnknownCategory(t *testing.T) {
	got := gemini.ValidateIntent(models.Intent{
		Category:       "Spaceship",
		DetectedBudget: 2000000,
		MinSeats:       4,
	})
	assert.Equal(t, models.DefaultIntent().Category, got.Category)
	assert.Equal(t, int64(2000000), got.DetectedBudget)
	assert.Equal(t, 4, got.MinSeats)
}

func TestValidateIntentClampsNegativeValues(t *testing.T) {
	got := gemini.ValidateIntent(models.Intent{
		Category:       models.CategoryFamily,
		DetectedBudget: -100,
		MinSeats:       -2,
	})
	assert.Equal(t, models.CategoryFamily, got.Category)
	assert.Equal(t, int64(0), got.DetectedBudget)
	assert.Equal(t, 0, got.MinSeats)
}

func TestValidateIntentPassesWellFormed(t *testing.T) {
	intent := models.Intent{
		Category:          models.CategoryTrekking,
		LifestylePatterns: []string{"Off-road"},
		DetectedBudget:    4000000,
		MinSeats:          5,
	}
	assert.Equal(t, intent, gemini.ValidateIntent(intent))
}

func TestValidateCitationDropsFabricatedQuote(t *testing.T) {
	contract := "<p>The vehicle is sold AS-IS with no warranty.</p>"

	kept := gemini.ValidateCitation(models.AssistantAnswer{
		Answer:        "There is no warranty.",
		CitationQuote: "sold AS-IS with no warranty",
	}, contract)
	assert.Equal(t, "sold AS-IS with no warranty", kept.CitationQuote)

	dropped := gemini.ValidateCitation(models.AssistantAnswer{
		Answer:        "There is no warranty.",
		CitationQuote: "the car has no warranty at all",
	}, contract)
	assert.Equal(t, "", dropped.CitationQuote)
	assert.Equal(t, "There is no warranty.", dropped.Answer)
}
