package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Vehicle holds the structure for the vehicle collection in mongo
type Vehicle struct {
	ID      primitive.ObjectID `json:"_id" bson:"_id"`
	Details VehicleDetails     `json:"vehicle" bson:"vehicle"`
	Version int32              `json:"__v" bson:"__v"`
}

// VehicleDetails holds the structure for the inner vehicle structure as
// defined in the vehicle collection in mongo. PriceRange is a [low, high]
// pair in rupees; UseCases are the free-text tags sellers attach for matching.
type VehicleDetails struct {
	Name             string          `json:"name" bson:"name"`
	Trim             string          `json:"trim" bson:"trim"`
	Drive            string          `json:"drive" bson:"drive"`
	Seats            int             `json:"seats" bson:"seats"`
	PriceRange       [2]int64        `json:"priceRange" bson:"priceRange"`
	UseCases         []string        `json:"useCases" bson:"useCases"`
	FAndI            []string        `json:"fAndI" bson:"fAndI"`
	ImageURL         string          `json:"imageURL" bson:"imageURL"`
	VisualDesc       string          `json:"visualDesc" bson:"visualDesc"`
	ContractTemplate string          `json:"contractTemplate" bson:"contractTemplate"`
	InsuranceOptions []InsurancePlan `json:"insuranceOptions" bson:"insuranceOptions"`
	SellerID         string          `json:"sellerID" bson:"sellerID"`
	CreatedAt        interface{}     `json:"createdAt" bson:"createdAt"`
	UpdatedAt        interface{}     `json:"updatedAt" bson:"updatedAt"`
}

// InsurancePlan is one insurance option attached to a vehicle listing
type InsurancePlan struct {
	ID              string   `json:"id" bson:"id"`
	Provider        string   `json:"provider" bson:"provider"`
	Name            string   `json:"name" bson:"name"`
	Premium         int64    `json:"premium" bson:"premium"`
	Type            string   `json:"type" bson:"type"`
	Addons          []string `json:"addons" bson:"addons"`
	CoverageDetails string   `json:"coverageDetails" bson:"coverageDetails"`
}

// Insurance plan types
const (
	PlanComprehensive = "Comprehensive"
	PlanThirdParty    = "Third-Party"
	PlanZeroDep       = "Zero-Dep"
	PlanPayAsYouDrive = "Pay-As-You-Drive"
)

// ScoredVehicle is a vehicle annotated with a relevance score for one
// matching request. Never persisted, recomputed per request.
type ScoredVehicle struct {
	Vehicle `bson:",inline"`
	Score   int `json:"score" bson:"-"`
}
