package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/teckion/dealership-api/api"
	"github.com/teckion/dealership-api/config"
	"github.com/teckion/dealership-api/databases"
	"github.com/teckion/dealership-api/gemini"
	"github.com/teckion/dealership-api/matching"
	"github.com/teckion/dealership-api/models"
)

// Match exported for testing purposes
type Match struct {
	VDB databases.VehicleDatabase
	ADB databases.AnalyticsDatabase
	AI  gemini.Service
}

// MatchResponse carries the intent alongside the ranked vehicles so the
// storefront can show why the matches were chosen
type MatchResponse struct {
	Intent  models.Intent          `json:"intent"`
	Matches []models.ScoredVehicle `json:"matches"`
}

// MatchHandler classifies the buyer's questionnaire answers and returns the
// ranked inventory. Inventory reads that fail or come back empty fall back to
// the built-in catalog so a buyer always sees results while a deployment is
// still seeding.
func (m Match) MatchHandler(w http.ResponseWriter, r *http.Request) {
	var answers models.QuestionnaireAnswers
	if err := json.NewDecoder(r.Body).Decode(&answers); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	combined := strings.TrimSpace(strings.Join([]string{
		answers.People, answers.Terrain, answers.PrimaryUse, answers.Budget,
	}, ". "))

	intent := m.AI.AnalyzeIntent(r.Context(), combined)

	// Usage counters are best effort, a failed increment never blocks a match
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()
	if err := m.ADB.IncrementCategory(ctx, intent.Category); err != nil {
		zap.S().With(err).Warn("failed to increment analytics counters")
	}

	inventory, err := m.VDB.Find(ctx, bson.D{})
	if err != nil || len(inventory) == 0 {
		zap.S().Warn("inventory unavailable, matching against default catalog")
		inventory = databases.DefaultCatalog()
	}

	matches := matching.Match(intent, answers, inventory)

	b, err := json.Marshal(MatchResponse{Intent: intent, Matches: matches})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
