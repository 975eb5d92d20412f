package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// SavedVisual holds the structure for the saved_visuals collection in mongo
type SavedVisual struct {
	ID      primitive.ObjectID `json:"_id" bson:"_id"`
	Details VisualDetails      `json:"visual" bson:"visual"`
	Version int32              `json:"__v" bson:"__v"`
}

// VisualDetails holds the structure for the inner visual structure as defined
// in the saved_visuals collection in mongo. ImageURL points at the hosted
// render, Prompt is the scene description the buyer asked for.
type VisualDetails struct {
	BuyerID     string      `json:"buyerID" bson:"buyerID"`
	VehicleID   string      `json:"vehicleID" bson:"vehicleID"`
	VehicleName string      `json:"vehicleName" bson:"vehicleName"`
	ImageURL    string      `json:"imageURL" bson:"imageURL"`
	Prompt      string      `json:"prompt" bson:"prompt"`
	CreatedAt   interface{} `json:"createdAt" bson:"createdAt"`
}
