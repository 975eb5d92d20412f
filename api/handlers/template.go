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
)

// Template exported for testing purposes. It covers the seller-side contract
// template workbench: drafting, refining and placeholder analysis.
type Template struct {
	VDB databases.VehicleDatabase
	AI  gemini.Service
}

// templateGenerateRequest asks for a fresh template for a vehicle
type templateGenerateRequest struct {
	VehicleID      string `json:"vehicleID"`
	DealershipName string `json:"dealershipName"`
}

// GenerateTemplateHandler drafts a sales agreement template for a vehicle
func (t Template) GenerateTemplateHandler(w http.ResponseWriter, r *http.Request) {
	var req templateGenerateRequest
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
	vehicle, err := t.VDB.FindOne(ctx, bson.M{"_id": vID})
	if err != nil {
		config.ErrorStatus("failed to get vehicle by ID", http.StatusNotFound, w, err)
		return
	}

	template := t.AI.GenerateTemplate(r.Context(), vehicle.Details, req.DealershipName)
	if template == "" {
		config.ErrorStatus("failed to generate template", http.StatusInternalServerError, w, fmt.Errorf("empty template"))
		return
	}

	b, _ := json.Marshal(map[string]string{"template": template})
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// refineRequest applies an editing instruction to template or contract text
type refineRequest struct {
	Text        string `json:"text"`
	Instruction string `json:"instruction"`
}

// RefineTemplateHandler applies a freeform editing instruction
func (t Template) RefineTemplateHandler(w http.ResponseWriter, r *http.Request) {
	var req refineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if req.Text == "" || req.Instruction == "" {
		config.ErrorStatus("text and instruction are required", http.StatusBadRequest, w, fmt.Errorf("missing required fields"))
		return
	}

	refined := t.AI.RefineText(r.Context(), req.Text, req.Instruction)

	b, _ := json.Marshal(map[string]string{"text": refined})
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// fillSellerRequest substitutes the seller placeholders in a template
type fillSellerRequest struct {
	Template string            `json:"template"`
	Inputs   map[string]string `json:"inputs"`
}

// FillSellerFieldsHandler substitutes the seller's bracket placeholders
func (t Template) FillSellerFieldsHandler(w http.ResponseWriter, r *http.Request) {
	var req fillSellerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if req.Template == "" {
		config.ErrorStatus("template is required", http.StatusBadRequest, w, fmt.Errorf("empty template"))
		return
	}

	filled := t.AI.FillSellerVariables(r.Context(), req.Template, req.Inputs)

	b, _ := json.Marshal(map[string]string{"template": filled})
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// templateFieldsRequest carries a template for placeholder analysis
type templateFieldsRequest struct {
	Template string `json:"template"`
}

// BuyerFieldsHandler lists the inputs the buyer must provide for a template
func (t Template) BuyerFieldsHandler(w http.ResponseWriter, r *http.Request) {
	var req templateFieldsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if req.Template == "" {
		config.ErrorStatus("template is required", http.StatusBadRequest, w, fmt.Errorf("empty template"))
		return
	}

	fields := t.AI.ExtractBuyerFields(r.Context(), req.Template)

	b, _ := json.Marshal(map[string][]string{"fields": fields})
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// SellerFieldsHandler lists the placeholders the seller must fill before a
// template is usable
func (t Template) SellerFieldsHandler(w http.ResponseWriter, r *http.Request) {
	var req templateFieldsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if req.Template == "" {
		config.ErrorStatus("template is required", http.StatusBadRequest, w, fmt.Errorf("empty template"))
		return
	}

	fields := t.AI.IdentifySellerFields(r.Context(), req.Template)
	if fields == nil {
		fields = []string{}
	}

	b, _ := json.Marshal(map[string][]string{"seller_fields": fields})
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
