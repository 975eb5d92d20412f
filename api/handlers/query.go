package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/teckion/dealership-api/api"
	"github.com/teckion/dealership-api/config"
	"github.com/teckion/dealership-api/databases"
	"github.com/teckion/dealership-api/models"
)

// Query exported for testing purposes
type Query struct {
	DB databases.QueryDatabase
}

// CreateQueryHandler files a buyer question in the seller's CRM inbox
func (q Query) CreateQueryHandler(w http.ResponseWriter, r *http.Request) {
	var details models.QueryDetails
	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if details.Message == "" || details.SellerID == "" {
		config.ErrorStatus("message and sellerID are required", http.StatusBadRequest, w, fmt.Errorf("missing required fields"))
		return
	}
	now := time.Now().UTC()
	details.Status = models.QueryOpen
	details.Reply = ""
	details.CreatedAt = now
	details.UpdatedAt = now

	query := models.UserQuery{
		ID:      primitive.NewObjectID(),
		Details: details,
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()
	if _, err := q.DB.InsertOne(ctx, query); err != nil {
		config.ErrorStatus("failed to create query", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(query)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// QueriesBySellerIDHandler returns a seller's CRM inbox, optionally filtered
// by status via the status query param
func (q Query) QueriesBySellerIDHandler(w http.ResponseWriter, r *http.Request) {
	sellerID := mux.Vars(r)["seller_id"]

	filter := bson.M{"query.sellerID": sellerID}
	if status := r.URL.Query().Get("status"); status != "" {
		filter["query.status"] = status
	}

	q.queriesBy(w, r, filter, "failed to get queries by seller ID")
}

// QueriesByBuyerIDHandler returns the queries a buyer has filed
func (q Query) QueriesByBuyerIDHandler(w http.ResponseWriter, r *http.Request) {
	buyerID := mux.Vars(r)["buyer_id"]
	q.queriesBy(w, r, bson.M{"query.buyerID": buyerID}, "failed to get queries by buyer ID")
}

func (q Query) queriesBy(w http.ResponseWriter, r *http.Request, filter bson.M, errMsg string) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()
	dbResp, err := q.DB.Find(ctx, filter)
	if err != nil {
		config.ErrorStatus(errMsg, http.StatusNotFound, w, err)
		return
	}
	if len(dbResp) == 0 {
		dbResp = []models.UserQuery{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// replyRequest is the seller's answer to a buyer query
type replyRequest struct {
	Reply string `json:"reply"`
}

// ReplyQueryHandler records the seller's reply and closes the query
func (q Query) ReplyQueryHandler(w http.ResponseWriter, r *http.Request) {
	queryID := mux.Vars(r)["query_id"]

	qID, err := primitive.ObjectIDFromHex(queryID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	var req replyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if req.Reply == "" {
		config.ErrorStatus("reply is required", http.StatusBadRequest, w, fmt.Errorf("empty reply"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()
	res, err := q.DB.UpdateOne(ctx, bson.M{"_id": qID}, bson.M{"$set": bson.M{
		"query.reply":     req.Reply,
		"query.status":    models.QueryClosed,
		"query.updatedAt": time.Now().UTC(),
	}})
	if err != nil {
		config.ErrorStatus("failed to update query", http.StatusInternalServerError, w, err)
		return
	}
	if res.MatchedCount == 0 {
		config.ErrorStatus("query not found", http.StatusNotFound, w, fmt.Errorf("no query with id %s", queryID))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(fmt.Sprintf(`{"status": "%s"}`, models.QueryClosed)))
}
