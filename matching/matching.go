// Package matching scores dealership inventory against a buyer's classified
// intent and raw questionnaire answers. It is pure computation: no I/O, no
// randomness, deterministic for a given input.
package matching

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/teckion/dealership-api/models"
)

// Scoring weights. A vehicle accumulates points per rule; anything that
// lands at or below scoreFloor is dropped from the result set.
const (
	budgetFitBonus     = 30
	budgetComfortBonus = 5
	budgetStretchBonus = 10
	budgetMissPenalty  = -50

	seatsFitBonus     = 25
	seatsSnugBonus    = 5
	seatsMissPenalty  = -40
	keywordBonus      = 2
	terrainAWDBonus   = 15
	terrainRWDPenalty = -5
	usageTagBonus     = 10

	scoreFloor   = -20
	fallbackSize = 6
)

var terrainHints = []string{"snow", "mud", "off-road", "mountain"}

// SearchTerms builds the keyword list for the substring rule: every
// whitespace token longer than two characters across all four answers, plus
// the intent category and lifestyle patterns. Duplicates are kept on purpose,
// repeated terms weigh heavier.
func SearchTerms(intent models.Intent, answers models.QuestionnaireAnswers) []string {
	raw := strings.Join([]string{answers.People, answers.Terrain, answers.PrimaryUse, answers.Budget}, " ")
	var terms []string
	for _, tok := range strings.Fields(strings.ToLower(raw)) {
		if len(tok) > 2 {
			terms = append(terms, tok)
		}
	}
	if intent.Category != "" {
		terms = append(terms, strings.ToLower(intent.Category))
	}
	for _, p := range intent.LifestylePatterns {
		if p != "" {
			terms = append(terms, strings.ToLower(p))
		}
	}
	return terms
}

// Score computes the match score of a single vehicle. Budget and seat rules
// are skipped entirely when the intent left them unspecified (zero), so an
// empty intent is neutral.
func Score(v models.Vehicle, intent models.Intent, answers models.QuestionnaireAnswers, terms []string) int {
	score := 0
	d := v.Details

	if intent.DetectedBudget > 0 {
		price := d.PriceRange[0]
		budget := intent.DetectedBudget
		switch {
		case price <= budget:
			score += budgetFitBonus
			if float64(price) < float64(budget)*0.8 {
				score += budgetComfortBonus
			}
		case float64(price) <= float64(budget)*1.15:
			score += budgetStretchBonus
		default:
			score += budgetMissPenalty
		}
	}

	if intent.MinSeats > 0 {
		if d.Seats >= intent.MinSeats {
			score += seatsFitBonus
			if d.Seats == intent.MinSeats || d.Seats == intent.MinSeats+1 {
				score += seatsSnugBonus
			}
		} else {
			score += seatsMissPenalty
		}
	}

	haystack := serialize(v)
	for _, term := range terms {
		if strings.Contains(haystack, term) {
			score += keywordBonus
		}
	}

	terrain := strings.ToLower(answers.Terrain)
	for _, hint := range terrainHints {
		if strings.Contains(terrain, hint) {
			switch d.Drive {
			case "AWD", "4WD":
				score += terrainAWDBonus
			case "RWD":
				score += terrainRWDPenalty
			}
			break
		}
	}

	use := strings.ToLower(answers.PrimaryUse)
	if strings.Contains(use, "commute") || strings.Contains(use, "city") {
		if hasAnyTag(d.UseCases, "Efficient", "City Commute", "Eco-Friendly") {
			score += usageTagBonus
		}
	}
	if strings.Contains(use, "camp") || strings.Contains(use, "adventure") {
		if hasAnyTag(d.UseCases, "Camping", "Adventure") {
			score += usageTagBonus
		}
	}

	return score
}

// Rank scores every vehicle and returns them ordered best-first. The sort is
// stable: ties keep their catalog order.
func Rank(intent models.Intent, answers models.QuestionnaireAnswers, inventory []models.Vehicle) []models.ScoredVehicle {
	terms := SearchTerms(intent, answers)
	scored := make([]models.ScoredVehicle, 0, len(inventory))
	for _, v := range inventory {
		scored = append(scored, models.ScoredVehicle{
			Vehicle: v,
			Score:   Score(v, intent, answers, terms),
		})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// Filter drops vehicles whose score fell at or below the floor
func Filter(scored []models.ScoredVehicle) []models.ScoredVehicle {
	kept := make([]models.ScoredVehicle, 0, len(scored))
	for _, sv := range scored {
		if sv.Score > scoreFloor {
			kept = append(kept, sv)
		}
	}
	return kept
}

// Match is the full pipeline: rank, filter, and when the filter rejects
// everything fall back to the first few inventory entries unscored. An empty
// inventory stays empty, never fabricated.
func Match(intent models.Intent, answers models.QuestionnaireAnswers, inventory []models.Vehicle) []models.ScoredVehicle {
	if len(inventory) == 0 {
		return []models.ScoredVehicle{}
	}
	kept := Filter(Rank(intent, answers, inventory))
	if len(kept) > 0 {
		return kept
	}
	n := fallbackSize
	if len(inventory) < n {
		n = len(inventory)
	}
	fallback := make([]models.ScoredVehicle, 0, n)
	for _, v := range inventory[:n] {
		fallback = append(fallback, models.ScoredVehicle{Vehicle: v})
	}
	return fallback
}

func serialize(v models.Vehicle) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return strings.ToLower(string(b))
}

func hasAnyTag(tags []string, wanted ...string) bool {
	for _, t := range tags {
		for _, w := range wanted {
			if t == w {
				return true
			}
		}
	}
	return false
}
