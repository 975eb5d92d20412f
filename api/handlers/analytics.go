package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/teckion/dealership-api/api"
	"github.com/teckion/dealership-api/config"
	"github.com/teckion/dealership-api/databases"
	"github.com/teckion/dealership-api/gemini"
	"github.com/teckion/dealership-api/models"
)

// Analytics exported for testing purposes
type Analytics struct {
	DB databases.AnalyticsDatabase
	AI gemini.Service
}

// AnalyticsHandler returns the usage rollup document. A deployment that has
// seen no traffic yet gets an empty rollup, not an error.
func (a Analytics) AnalyticsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()
	usage, err := a.DB.FindUsage(ctx)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			usage = &models.Analytics{}
		} else {
			config.ErrorStatus("failed to get analytics", http.StatusInternalServerError, w, err)
			return
		}
	}

	b, err := json.Marshal(usage)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// chatbotRequest is a seller question about their dashboard numbers
type chatbotRequest struct {
	Question string `json:"question"`
}

// AnalyticsChatbotHandler answers a seller's question against the usage
// rollup
func (a Analytics) AnalyticsChatbotHandler(w http.ResponseWriter, r *http.Request) {
	var req chatbotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if req.Question == "" {
		config.ErrorStatus("question is required", http.StatusBadRequest, w, fmt.Errorf("empty question"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()
	usage, err := a.DB.FindUsage(ctx)
	if err != nil {
		usage = &models.Analytics{}
	}

	answer := a.AI.QueryAnalyticsChatbot(r.Context(), req.Question, usage)

	b, err := json.Marshal(map[string]string{"answer": answer})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
