package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/teckion/dealership-api/api"
	"github.com/teckion/dealership-api/config"
	"github.com/teckion/dealership-api/databases"
	"github.com/teckion/dealership-api/gemini"
	"github.com/teckion/dealership-api/models"
	"github.com/teckion/dealership-api/signature"
)

// Contract exported for testing purposes
type Contract struct {
	DB     databases.ContractDatabase
	VDB    databases.VehicleDatabase
	QDB    databases.QueryDatabase
	UDB    databases.UserDatabase
	AI     gemini.Service
	Signer signature.Service
	Mailer Mailer
}

// contractCreateRequest is the payload to open a new contract
type contractCreateRequest struct {
	BuyerID     string            `json:"buyerID"`
	SellerID    string            `json:"sellerID"`
	VehicleID   string            `json:"vehicleID"`
	BuyerName   string            `json:"buyerName"`
	BuyerInputs map[string]string `json:"buyerInputs"`
}

// CreateContractHandler builds the final contract document from the
// vehicle's template and the buyer's inputs and records it in pending
func (c Contract) CreateContractHandler(w http.ResponseWriter, r *http.Request) {
	var req contractCreateRequest
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
	vehicle, err := c.VDB.FindOne(ctx, bson.M{"_id": vID})
	if err != nil {
		config.ErrorStatus("failed to get vehicle by ID", http.StatusNotFound, w, err)
		return
	}

	built := c.AI.BuildContract(r.Context(), vehicle.Details.ContractTemplate, vehicle.Details, req.BuyerInputs)

	now := time.Now().UTC()
	contract := models.Contract{
		ID: primitive.NewObjectID(),
		Details: models.ContractDetails{
			BuyerID:         req.BuyerID,
			SellerID:        req.SellerID,
			VehicleID:       req.VehicleID,
			VehicleName:     vehicle.Details.Name,
			ContractHTML:    built.ContractHTML,
			ContractSummary: built.Summary,
			Status:          models.StatusPending,
			CreatedAt:       now,
			UpdatedAt:       now,
		},
	}

	if _, err := c.DB.InsertOne(ctx, contract); err != nil {
		config.ErrorStatus("failed to create contract", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(contract)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// ContractByIDHandler returns a contract by ID
func (c Contract) ContractByIDHandler(w http.ResponseWriter, r *http.Request) {
	contractID := mux.Vars(r)["contract_id"]

	cID, err := primitive.ObjectIDFromHex(contractID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	dbResp, err := c.DB.FindOne(context.Background(), bson.M{"_id": cID})
	if err != nil {
		config.ErrorStatus("failed to get contract by ID", http.StatusNotFound, w, err)
		return
	}

	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// ContractsByBuyerIDHandler returns all contracts belonging to a buyer
func (c Contract) ContractsByBuyerIDHandler(w http.ResponseWriter, r *http.Request) {
	buyerID := mux.Vars(r)["buyer_id"]
	c.contractsBy(w, r, bson.M{"contract.buyerID": buyerID}, "failed to get contracts by buyer ID")
}

// ContractsBySellerIDHandler returns all contracts belonging to a seller
func (c Contract) ContractsBySellerIDHandler(w http.ResponseWriter, r *http.Request) {
	sellerID := mux.Vars(r)["seller_id"]
	c.contractsBy(w, r, bson.M{"contract.sellerID": sellerID}, "failed to get contracts by seller ID")
}

func (c Contract) contractsBy(w http.ResponseWriter, r *http.Request, filter bson.M, errMsg string) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()
	dbResp, err := c.DB.Find(ctx, filter)
	if err != nil {
		config.ErrorStatus(errMsg, http.StatusNotFound, w, err)
		return
	}
	if len(dbResp) == 0 {
		dbResp = []models.Contract{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// changeRequest is the buyer's ask for a contract revision
type changeRequest struct {
	Message   string `json:"message"`
	BuyerName string `json:"buyerName"`
}

// RequestChangesHandler moves a non-terminal contract to needs_changes and
// files the request in the seller's CRM inbox
func (c Contract) RequestChangesHandler(w http.ResponseWriter, r *http.Request) {
	contract, cID, ok := c.loadContract(w, r)
	if !ok {
		return
	}
	if contract.Details.Status.Terminal() {
		config.ErrorStatus("contract is finalized", http.StatusConflict, w,
			fmt.Errorf("no transitions allowed from status %s", contract.Details.Status))
		return
	}

	var req changeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if req.Message == "" {
		config.ErrorStatus("change request message is required", http.StatusBadRequest, w, fmt.Errorf("empty message"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()
	_, err := c.DB.UpdateOne(ctx, bson.M{"_id": cID}, bson.M{"$set": bson.M{
		"contract.status":               models.StatusNeedsChanges,
		"contract.changeRequestMessage": req.Message,
		"contract.updatedAt":            time.Now().UTC(),
	}})
	if err != nil {
		config.ErrorStatus("failed to update contract", http.StatusInternalServerError, w, err)
		return
	}

	// CRM context for the seller, best effort
	now := time.Now().UTC()
	_, err = c.QDB.InsertOne(ctx, models.UserQuery{
		ID: primitive.NewObjectID(),
		Details: models.QueryDetails{
			BuyerID:     contract.Details.BuyerID,
			BuyerName:   req.BuyerName,
			SellerID:    contract.Details.SellerID,
			VehicleID:   contract.Details.VehicleID,
			VehicleName: contract.Details.VehicleName,
			Message:     fmt.Sprintf("[Contract Change Request] %s", req.Message),
			Status:      models.QueryOpen,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	})
	if err != nil {
		zap.S().With(err).Warn("failed to file change request query")
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(fmt.Sprintf(`{"status": "%s"}`, models.StatusNeedsChanges)))
}

// reviseRequest is the seller's resubmission of a contract under revision
type reviseRequest struct {
	ContractHTML string `json:"contractHTML"`
	SellerNote   string `json:"sellerNote"`
	Confirm      bool   `json:"confirm"`
}

// ReviseContractHandler resubmits a revised contract: needs_changes goes back
// to pending and the buyer's change request is cleared. The compliance check
// is advisory; an unsatisfied verdict returns 409 unless the seller confirms,
// in which case the resubmission proceeds regardless.
func (c Contract) ReviseContractHandler(w http.ResponseWriter, r *http.Request) {
	contract, cID, ok := c.loadContract(w, r)
	if !ok {
		return
	}
	if contract.Details.Status.Terminal() {
		config.ErrorStatus("contract is finalized", http.StatusConflict, w,
			fmt.Errorf("no transitions allowed from status %s", contract.Details.Status))
		return
	}

	var req reviseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if req.ContractHTML == "" && req.SellerNote == "" {
		config.ErrorStatus("nothing to revise", http.StatusBadRequest, w, fmt.Errorf("empty revision"))
		return
	}

	// Note-only updates skip the compliance gate
	if req.ContractHTML != "" && !req.Confirm {
		verdict := c.AI.VerifyCompliance(r.Context(), contract.Details.ContractHTML, req.ContractHTML, contract.Details.ChangeRequestMessage)
		if !verdict.Satisfied {
			b, _ := json.Marshal(verdict)
			w.WriteHeader(http.StatusConflict)
			w.Write(b)
			return
		}
	}

	set := bson.M{
		"contract.status":               models.StatusPending,
		"contract.changeRequestMessage": "",
		"contract.updatedAt":            time.Now().UTC(),
	}
	if req.ContractHTML != "" {
		set["contract.contractHTML"] = req.ContractHTML
	}
	if req.SellerNote != "" {
		set["contract.sellerNote"] = req.SellerNote
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()
	if _, err := c.DB.UpdateOne(ctx, bson.M{"_id": cID}, bson.M{"$set": set}); err != nil {
		config.ErrorStatus("failed to update contract", http.StatusInternalServerError, w, err)
		return
	}

	c.notifyBuyer(ctx, contract, "Your contract has been revised",
		fmt.Sprintf("The seller has revised the contract for %s. Log in to review the updated terms.", contract.Details.VehicleName))

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(fmt.Sprintf(`{"status": "%s"}`, models.StatusPending)))
}

// signRequest identifies the signer for the receipt hash
type signRequest struct {
	SignerEmail string `json:"signerEmail"`
}

// SignContractHandler accepts a contract and attaches a signature receipt.
// Accepting is one-way; any further transition attempts get 409.
func (c Contract) SignContractHandler(w http.ResponseWriter, r *http.Request) {
	contract, cID, ok := c.loadContract(w, r)
	if !ok {
		return
	}
	if contract.Details.Status.Terminal() {
		config.ErrorStatus("contract is finalized", http.StatusConflict, w,
			fmt.Errorf("no transitions allowed from status %s", contract.Details.Status))
		return
	}

	var req signRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	receipt, err := c.Signer.Sign(contract.ID.Hex(), req.SignerEmail, contract.Details.VehicleID)
	if err != nil {
		config.ErrorStatus("failed to sign contract", http.StatusInternalServerError, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()
	_, err = c.DB.UpdateOne(ctx, bson.M{"_id": cID}, bson.M{"$set": bson.M{
		"contract.status":           models.StatusAccepted,
		"contract.signatureReceipt": receipt,
		"contract.updatedAt":        time.Now().UTC(),
	}})
	if err != nil {
		config.ErrorStatus("failed to update contract", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(receipt)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// RejectContractHandler moves a non-terminal contract to rejected
func (c Contract) RejectContractHandler(w http.ResponseWriter, r *http.Request) {
	c.setStatus(w, r, models.StatusRejected)
}

// ReviewContractHandler marks a contract as reviewed
func (c Contract) ReviewContractHandler(w http.ResponseWriter, r *http.Request) {
	c.setStatus(w, r, models.StatusReviewed)
}

func (c Contract) setStatus(w http.ResponseWriter, r *http.Request, status models.ContractStatus) {
	contract, cID, ok := c.loadContract(w, r)
	if !ok {
		return
	}
	if contract.Details.Status.Terminal() {
		config.ErrorStatus("contract is finalized", http.StatusConflict, w,
			fmt.Errorf("no transitions allowed from status %s", contract.Details.Status))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()
	_, err := c.DB.UpdateOne(ctx, bson.M{"_id": cID}, bson.M{"$set": bson.M{
		"contract.status":    status,
		"contract.updatedAt": time.Now().UTC(),
	}})
	if err != nil {
		config.ErrorStatus("failed to update contract", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(fmt.Sprintf(`{"status": "%s"}`, status)))
}

// assistantRequest is a buyer question about their contract
type assistantRequest struct {
	Question string `json:"question"`
}

// ContractAssistantHandler answers a buyer question about their contract
// with a citation the client can highlight
func (c Contract) ContractAssistantHandler(w http.ResponseWriter, r *http.Request) {
	contract, _, ok := c.loadContract(w, r)
	if !ok {
		return
	}

	var req assistantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if req.Question == "" {
		config.ErrorStatus("question is required", http.StatusBadRequest, w, fmt.Errorf("empty question"))
		return
	}

	answer := c.AI.ContractAssistant(r.Context(), req.Question, contract.Details.ContractHTML)

	b, err := json.Marshal(answer)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// loadContract resolves the contract_id path var. It writes the error
// response itself: 400 on a malformed id, 404 when no contract matches.
func (c Contract) loadContract(w http.ResponseWriter, r *http.Request) (*models.Contract, primitive.ObjectID, bool) {
	contractID := mux.Vars(r)["contract_id"]

	cID, err := primitive.ObjectIDFromHex(contractID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return nil, primitive.NilObjectID, false
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()
	contract, err := c.DB.FindOne(ctx, bson.M{"_id": cID})
	if err != nil {
		config.ErrorStatus("failed to get contract by ID", http.StatusNotFound, w, err)
		return nil, primitive.NilObjectID, false
	}
	return contract, cID, true
}

// notifyBuyer emails the buyer about a contract event, best effort
func (c Contract) notifyBuyer(ctx context.Context, contract *models.Contract, subject, body string) {
	if c.Mailer == nil || c.UDB == nil {
		return
	}
	bID, err := primitive.ObjectIDFromHex(contract.Details.BuyerID)
	if err != nil {
		zap.S().With(err).Warn("invalid buyer id on contract, skipping notification")
		return
	}
	buyer, err := c.UDB.FindOne(ctx, bson.M{"_id": bID})
	if err != nil {
		zap.S().With(err).Warn("failed to look up buyer for notification")
		return
	}
	if err := c.Mailer.Send(buyer.Details.Name, buyer.Details.Email, subject, body); err != nil {
		zap.S().With(err).Warn("failed to send buyer notification")
	}
}
