package matching_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/teckion/dealership-api/matching"
	"github.com/teckion/dealership-api/models"
)

func vehicle(name, drive string, seats int, price int64, tags ...string) models.Vehicle {
	return models.Vehicle{
		ID: primitive.NewObjectID(),
		Details: models.VehicleDetails{
			Name:       name,
			Drive:      drive,
			Seats:      seats,
			PriceRange: [2]int64{price, price + 500000},
			UseCases:   tags,
		},
	}
}

func TestScoreZeroIntentIsNeutral(t *testing.T) {
	intent := models.Intent{} // no budget, no seats, no category
	answers := models.QuestionnaireAnswers{}
	terms := matching.SearchTerms(intent, answers)

	cheap := vehicle("Budgetmobile", "FWD", 4, 1000000)
	pricey := vehicle("Goldplate", "RWD", 2, 99000000)

	assert.Equal(t, 0, matching.Score(cheap, intent, answers, terms))
	assert.Equal(t, 0, matching.Score(pricey, intent, answers, terms))
}

func TestScoreBudgetBounds(t *testing.T) {
	intent := models.Intent{DetectedBudget: 3000000}
	answers := models.QuestionnaireAnswers{}
	terms := matching.SearchTerms(intent, answers)

	within := vehicle("Sensible", "FWD", 4, 2900000)
	comfortably := vehicle("Frugal", "FWD", 4, 2000000)
	stretch := vehicle("Stretch", "FWD", 4, 3400000)
	wayOver := vehicle("Dream", "RWD", 2, 9000000)

	assert.GreaterOrEqual(t, matching.Score(within, intent, answers, terms), 30)
	assert.Equal(t, 35, matching.Score(comfortably, intent, answers, terms))
	assert.Equal(t, 10, matching.Score(stretch, intent, answers, terms))
	assert.Equal(t, -50, matching.Score(wayOver, intent, answers, terms))
}

func TestScoreSeatRule(t *testing.T) {
	intent := models.Intent{MinSeats: 5}
	answers := models.QuestionnaireAnswers{}
	terms := matching.SearchTerms(intent, answers)

	exact := vehicle("Fiveseat", "FWD", 5, 2000000)
	roomy := vehicle("Sixseat", "FWD", 6, 2000000)
	huge := vehicle("Bus", "FWD", 8, 2000000)
	small := vehicle("Coupe", "RWD", 2, 2000000)

	assert.Equal(t, 30, matching.Score(exact, intent, answers, terms))
	assert.Equal(t, 30, matching.Score(roomy, intent, answers, terms))
	assert.Equal(t, 25, matching.Score(huge, intent, answers, terms))
	assert.Equal(t, -40, matching.Score(small, intent, answers, terms))
}

func TestScoreMudTerrainDriveDelta(t *testing.T) {
	intent := models.Intent{}
	answers := models.QuestionnaireAnswers{Terrain: "lots of mud on the farm roads"}
	terms := matching.SearchTerms(intent, answers)

	awd := vehicle("Trail", "AWD", 5, 2000000)
	rwd := vehicle("Slide", "RWD", 5, 2000000)
	fwd := vehicle("Flat", "FWD", 5, 2000000)

	awdScore := matching.Score(awd, intent, answers, terms)
	rwdScore := matching.Score(rwd, intent, answers, terms)
	fwdScore := matching.Score(fwd, intent, answers, terms)

	assert.Equal(t, 20, awdScore-rwdScore)
	assert.Equal(t, fwdScore+15, awdScore)
}

func TestScoreCommuteTags(t *testing.T) {
	intent := models.Intent{}
	answers := models.QuestionnaireAnswers{PrimaryUse: "daily city commute"}
	terms := matching.SearchTerms(intent, answers)

	eco := vehicle("Sprout", "FWD", 4, 2000000, "Eco-Friendly")
	truck := vehicle("Hauler", "4WD", 3, 2000000, "Towing")

	assert.Greater(t, matching.Score(eco, intent, answers, terms), matching.Score(truck, intent, answers, terms))
}

func TestRankFamilyOfFivePrefersRoomierVehicle(t *testing.T) {
	intent := models.Intent{
		Category:       models.CategoryFamily,
		DetectedBudget: 4000000,
		MinSeats:       5,
	}
	answers := models.QuestionnaireAnswers{
		People:     "we are a family of five",
		Terrain:    "paved suburban roads",
		PrimaryUse: "school runs and errands",
		Budget:     "around 40 lakh",
	}

	fourSeater := vehicle("CityPod", "FWD", 4, 2500000, "City Commute")
	fiveSeater := vehicle("FamilyCruiser", "AWD", 5, 3500000, "Family")

	ranked := matching.Rank(intent, answers, []models.Vehicle{fourSeater, fiveSeater})

	assert.Equal(t, "FamilyCruiser", ranked[0].Details.Name)
	assert.Greater(t, ranked[0].Score, ranked[1].Score)
}

func TestRankStableOnTies(t *testing.T) {
	intent := models.Intent{}
	answers := models.QuestionnaireAnswers{}

	first := vehicle("Alpha", "FWD", 4, 2000000)
	second := vehicle("Beta", "FWD", 4, 2000000)
	third := vehicle("Gamma", "FWD", 4, 2000000)

	ranked := matching.Rank(intent, answers, []models.Vehicle{first, second, third})

	assert.Equal(t, "Alpha", ranked[0].Details.Name)
	assert.Equal(t, "Beta", ranked[1].Details.Name)
	assert.Equal(t, "Gamma", ranked[2].Details.Name)
}

func TestFilterDropsLowScores(t *testing.T) {
	scored := []models.ScoredVehicle{
		{Vehicle: vehicle("Keep", "FWD", 4, 2000000), Score: 12},
		{Vehicle: vehicle("Edge", "FWD", 4, 2000000), Score: -20},
		{Vehicle: vehicle("Drop", "FWD", 4, 2000000), Score: -50},
	}

	kept := matching.Filter(scored)

	assert.Len(t, kept, 1)
	assert.Equal(t, "Keep", kept[0].Details.Name)
}

func TestMatchFallsBackToFirstSixWhenAllFiltered(t *testing.T) {
	// Tight budget makes every vehicle miss by a mile
	intent := models.Intent{DetectedBudget: 100000}
	answers := models.QuestionnaireAnswers{}

	var inventory []models.Vehicle
	for _, name := range []string{"V1", "V2", "V3", "V4", "V5", "V6", "V7", "V8"} {
		inventory = append(inventory, vehicle(name, "FWD", 4, 5000000))
	}

	matches := matching.Match(intent, answers, inventory)

	assert.Len(t, matches, 6)
	for i, m := range matches {
		assert.Equal(t, inventory[i].Details.Name, m.Details.Name)
		assert.Equal(t, 0, m.Score)
	}
}

func TestMatchEmptyInventoryStaysEmpty(t *testing.T) {
	intent := models.Intent{DetectedBudget: 3000000, MinSeats: 5}
	answers := models.QuestionnaireAnswers{People: "family of five"}

	matches := matching.Match(intent, answers, nil)

	assert.Empty(t, matches)
}

func TestMatchKeepsOnlySurvivors(t *testing.T) {
	intent := models.Intent{DetectedBudget: 3000000}
	answers := models.QuestionnaireAnswers{}

	fit := vehicle("Fit", "FWD", 4, 2500000)
	miss := vehicle("Miss", "RWD", 2, 9000000)

	matches := matching.Match(intent, answers, []models.Vehicle{miss, fit})

	assert.Len(t, matches, 1)
	assert.Equal(t, "Fit", matches[0].Details.Name)
}

func TestSearchTermsFiltersShortTokens(t *testing.T) {
	intent := models.Intent{Category: models.CategoryTrekking, LifestylePatterns: []string{"Off-road"}}
	answers := models.QuestionnaireAnswers{People: "me and my dog"}

	terms := matching.SearchTerms(intent, answers)

	assert.Contains(t, terms, "dog")
	assert.Contains(t, terms, "trekking")
	assert.Contains(t, terms, "off-road")
	assert.NotContains(t, terms, "me")
	assert.NotContains(t, terms, "my")
}
