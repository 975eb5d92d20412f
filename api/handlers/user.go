package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/teckion/dealership-api/api"
	"github.com/teckion/dealership-api/config"
	"github.com/teckion/dealership-api/databases"
	"github.com/teckion/dealership-api/models"
)

// User exported for testing purposes
type User struct {
	DB databases.UserDatabase
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// userCreateRequest is the registration payload for buyers and sellers
type userCreateRequest struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	Name           string `json:"name"`
	Role           string `json:"role"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	Interests      string `json:"interests"`
	DealershipName string `json:"dealershipName"`
	EmpID          string `json:"empID"`
	Designation    string `json:"designation"`
}

func (req userCreateRequest) validate() error {
	if !emailPattern.MatchString(req.Email) {
		return fmt.Errorf("invalid email format")
	}
	if len(req.Password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	if req.Name == "" {
		return fmt.Errorf("name is required")
	}
	switch req.Role {
	case models.RoleBuyer:
	case models.RoleSeller:
		if len(req.DealershipName) <= 3 {
			return fmt.Errorf("dealership name must be longer than 3 characters")
		}
	default:
		return fmt.Errorf("role must be buyer or seller")
	}
	return nil
}

// UserCreateHandler registers a buyer or seller account
func (u User) UserCreateHandler(w http.ResponseWriter, r *http.Request) {
	var req userCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if err := req.validate(); err != nil {
		config.ErrorStatus("invalid registration", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()
	existing, err := u.DB.Find(ctx, bson.M{"user.email": req.Email})
	if err == nil && len(existing) > 0 {
		config.ErrorStatus("email already registered", http.StatusConflict, w, fmt.Errorf("duplicate email %s", req.Email))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		config.ErrorStatus("failed to hash password", http.StatusInternalServerError, w, err)
		return
	}

	now := time.Now().UTC()
	user := models.User{
		ID: primitive.NewObjectID(),
		Details: models.UserDetails{
			Email:          req.Email,
			Password:       string(hash),
			Name:           req.Name,
			Role:           req.Role,
			Phone:          req.Phone,
			Address:        req.Address,
			Interests:      req.Interests,
			DealershipName: req.DealershipName,
			EmpID:          req.EmpID,
			Designation:    req.Designation,
			CreatedAt:      now,
			UpdatedAt:      now,
		},
	}

	if _, err := u.DB.InsertOne(ctx, user); err != nil {
		config.ErrorStatus("failed to create user", http.StatusInternalServerError, w, err)
		return
	}

	user.Details.Password = ""
	b, err := json.Marshal(user)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// checkEmailRequest asks whether an email is already registered
type checkEmailRequest struct {
	Email string `json:"email"`
}

// UserCheckEmailHandler reports whether an email is taken so the signup form
// can validate before submitting
func (u User) UserCheckEmailHandler(w http.ResponseWriter, r *http.Request) {
	var req checkEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()
	existing, err := u.DB.Find(ctx, bson.M{"user.email": req.Email})
	if err != nil {
		config.ErrorStatus("failed to check email", http.StatusInternalServerError, w, err)
		return
	}

	b, _ := json.Marshal(map[string]bool{"exists": len(existing) > 0})
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// UserHandler returns a user profile by ID, without the password hash
func (u User) UserHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]

	uID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()
	user, err := u.DB.FindOne(ctx, bson.M{"_id": uID})
	if err != nil {
		config.ErrorStatus("failed to get user by ID", http.StatusNotFound, w, err)
		return
	}

	user.Details.Password = ""
	b, err := json.Marshal(user)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// userUpdateRequest carries the editable profile fields
type userUpdateRequest struct {
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	Interests      string `json:"interests"`
	DealershipName string `json:"dealershipName"`
	Designation    string `json:"designation"`
}

// UpdateUserByIDHandler updates the editable profile fields of a user
func (u User) UpdateUserByIDHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]

	uID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	var req userUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	set := bson.M{"user.updatedAt": time.Now().UTC()}
	if req.Name != "" {
		set["user.name"] = req.Name
	}
	if req.Phone != "" {
		set["user.phone"] = req.Phone
	}
	if req.Address != "" {
		set["user.address"] = req.Address
	}
	if req.Interests != "" {
		set["user.interests"] = req.Interests
	}
	if req.DealershipName != "" {
		set["user.dealershipName"] = req.DealershipName
	}
	if req.Designation != "" {
		set["user.designation"] = req.Designation
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()
	res, err := u.DB.UpdateOne(ctx, bson.M{"_id": uID}, bson.M{"$set": set})
	if err != nil {
		config.ErrorStatus("failed to update user", http.StatusInternalServerError, w, err)
		return
	}
	if res.MatchedCount == 0 {
		config.ErrorStatus("user not found", http.StatusNotFound, w, fmt.Errorf("no user with id %s", userID))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(fmt.Sprintf(`{"updated": "%s"}`, userID)))
}
