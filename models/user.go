package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User roles
const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
	RoleAdmin  = "admin"
)

// User holds the structure for the user collection in mongo. Buyers, sellers
// and admins share the collection; the dealership fields are only set for
// sellers.
type User struct {
	ID      primitive.ObjectID `json:"_id" bson:"_id"`
	Details UserDetails        `json:"user" bson:"user"`
	Version int32              `json:"__v" bson:"__v"`
}

// UserDetails holds the structure for the inner user structure as defined in
// the user collection in mongo
type UserDetails struct {
	Email     string `json:"email" bson:"email"`
	Password  string `json:"password,omitempty" bson:"password"`
	Name      string `json:"name" bson:"name"`
	Role      string `json:"role" bson:"role"`
	Phone     string `json:"phone" bson:"phone"`
	Address   string `json:"address" bson:"address"`
	Interests string `json:"interests" bson:"interests"`

	// Seller-only profile fields
	DealershipName string `json:"dealershipName,omitempty" bson:"dealershipName,omitempty"`
	EmpID          string `json:"empID,omitempty" bson:"empID,omitempty"`
	Designation    string `json:"designation,omitempty" bson:"designation,omitempty"`

	CreatedAt interface{} `json:"createdAt" bson:"createdAt"`
	UpdatedAt interface{} `json:"updatedAt" bson:"updatedAt"`
}
