package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// QueryStatus is the state of a buyer query in the seller's CRM inbox
type QueryStatus string

// Query states
const (
	QueryOpen   QueryStatus = "open"
	QueryClosed QueryStatus = "closed"
)

// UserQuery holds the structure for the query collection in mongo
type UserQuery struct {
	ID      primitive.ObjectID `json:"_id" bson:"_id"`
	Details QueryDetails       `json:"query" bson:"query"`
	Version int32              `json:"__v" bson:"__v"`
}

// QueryDetails holds the structure for the inner query structure as defined
// in the query collection in mongo. Created by a buyer, closed by a seller
// reply.
type QueryDetails struct {
	BuyerID     string      `json:"buyerID" bson:"buyerID"`
	BuyerName   string      `json:"buyerName" bson:"buyerName"`
	SellerID    string      `json:"sellerID" bson:"sellerID"`
	VehicleID   string      `json:"vehicleID" bson:"vehicleID"`
	VehicleName string      `json:"vehicleName" bson:"vehicleName"`
	Message     string      `json:"message" bson:"message"`
	Reply       string      `json:"reply" bson:"reply"`
	Status      QueryStatus `json:"status" bson:"status"`
	CreatedAt   interface{} `json:"createdAt" bson:"createdAt"`
	UpdatedAt   interface{} `json:"updatedAt" bson:"updatedAt"`
}
