package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// ContractStatus is the lifecycle state of a sales contract
type ContractStatus string

// Contract lifecycle states. Reviewed is a reachable but unvisited state kept
// for enum completeness; rejection is an explicit action with no automatic
// trigger.
const (
	StatusPending      ContractStatus = "pending"
	StatusReviewed     ContractStatus = "reviewed"
	StatusNeedsChanges ContractStatus = "needs_changes"
	StatusAccepted     ContractStatus = "accepted"
	StatusRejected     ContractStatus = "rejected"
)

// Terminal reports whether no further transitions are defined from s
func (s ContractStatus) Terminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

// Valid reports whether s is a known lifecycle state
func (s ContractStatus) Valid() bool {
	switch s {
	case StatusPending, StatusReviewed, StatusNeedsChanges, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// Contract holds the structure for the contract collection in mongo
type Contract struct {
	ID      primitive.ObjectID `json:"_id" bson:"_id"`
	Details ContractDetails    `json:"contract" bson:"contract"`
	Version int32              `json:"__v" bson:"__v"`
}

// ContractDetails holds the structure for the inner contract structure as
// defined in the contract collection in mongo. ChangeRequestMessage is only
// meaningful while status is needs_changes and is cleared when the seller
// resubmits a revision.
type ContractDetails struct {
	BuyerID              string             `json:"buyerID" bson:"buyerID"`
	SellerID             string             `json:"sellerID" bson:"sellerID"`
	VehicleID            string             `json:"vehicleID" bson:"vehicleID"`
	VehicleName          string             `json:"vehicleName" bson:"vehicleName"`
	ContractHTML         string             `json:"contractHTML" bson:"contractHTML"`
	ContractSummary      string             `json:"contractSummary" bson:"contractSummary"`
	Status               ContractStatus     `json:"status" bson:"status"`
	ChangeRequestMessage string             `json:"changeRequestMessage" bson:"changeRequestMessage"`
	SellerNote           string             `json:"sellerNote" bson:"sellerNote"`
	SignatureReceipt     *SignatureReceipt  `json:"signatureReceipt,omitempty" bson:"signatureReceipt,omitempty"`
	CreatedAt            interface{}        `json:"createdAt" bson:"createdAt"`
	UpdatedAt            interface{}        `json:"updatedAt" bson:"updatedAt"`
}

// SignatureReceipt is the opaque proof record attached once a contract is
// signed. The block and gas numbers are fabricated by the simulated signature
// service; this is not a distributed-ledger transaction.
type SignatureReceipt struct {
	TxHash          string `json:"txHash" bson:"txHash"`
	BlockNumber     int64  `json:"blockNumber" bson:"blockNumber"`
	Timestamp       string `json:"timestamp" bson:"timestamp"`
	GasUsed         int64  `json:"gasUsed" bson:"gasUsed"`
	ContractAddress string `json:"contractAddress" bson:"contractAddress"`
}
