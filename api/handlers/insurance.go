package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/teckion/dealership-api/api"
	"github.com/teckion/dealership-api/config"
	"github.com/teckion/dealership-api/databases"
	"github.com/teckion/dealership-api/gemini"
	"github.com/teckion/dealership-api/models"
)

// Insurance exported for testing purposes
type Insurance struct {
	VDB databases.VehicleDatabase
	AI  gemini.Service
}

// insuranceRecommendRequest asks for the best plan on a vehicle given the
// buyer's classified intent
type insuranceRecommendRequest struct {
	VehicleID string        `json:"vehicleID"`
	Intent    models.Intent `json:"intent"`
}

// RecommendPlanHandler picks the best-fit insurance plan from the vehicle's
// offered plans
func (i Insurance) RecommendPlanHandler(w http.ResponseWriter, r *http.Request) {
	var req insuranceRecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	vID, err := primitive.ObjectIDFromHex(req.VehicleID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()
	vehicle, err := i.VDB.FindOne(ctx, bson.M{"_id": vID})
	if err != nil {
		config.ErrorStatus("failed to get vehicle by ID", http.StatusNotFound, w, err)
		return
	}
	if len(vehicle.Details.InsuranceOptions) == 0 {
		config.ErrorStatus("vehicle offers no insurance plans", http.StatusNotFound, w, fmt.Errorf("no plans on vehicle %s", req.VehicleID))
		return
	}

	rec := i.AI.AnalyzeInsuranceNeeds(r.Context(), req.Intent, vehicle.Details.InsuranceOptions)

	b, err := json.Marshal(rec)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// insuranceAgentRequest is a freeform question about a vehicle's plans
type insuranceAgentRequest struct {
	VehicleID string `json:"vehicleID"`
	Question  string `json:"question"`
}

// InsuranceAgentHandler answers a buyer's question about the plans offered
// on a vehicle
func (i Insurance) InsuranceAgentHandler(w http.ResponseWriter, r *http.Request) {
	var req insuranceAgentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if req.Question == "" {
		config.ErrorStatus("question is required", http.StatusBadRequest, w, fmt.Errorf("empty question"))
		return
	}

	vID, err := primitive.ObjectIDFromHex(req.VehicleID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()
	vehicle, err := i.VDB.FindOne(ctx, bson.M{"_id": vID})
	if err != nil {
		config.ErrorStatus("failed to get vehicle by ID", http.StatusNotFound, w, err)
		return
	}

	answer := i.AI.QueryInsuranceAgent(r.Context(), req.Question, vehicle.Details.InsuranceOptions)

	b, err := json.Marshal(map[string]string{"answer": answer})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
