package handlers

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/teckion/dealership-api/api"
	"github.com/teckion/dealership-api/config"
	"github.com/teckion/dealership-api/databases"
	"github.com/teckion/dealership-api/gemini"
	"github.com/teckion/dealership-api/models"
)

// Uploader hosts generated renders and returns the public URL
type Uploader interface {
	Upload(ctx context.Context, image []byte) (string, error)
}

// CloudinaryUploader uploads renders to cloudinary
type CloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryUploader builds an uploader from the CLOUDINARY_URL env var
func NewCloudinaryUploader() (*CloudinaryUploader, error) {
	cld, err := cloudinary.New()
	if err != nil {
		return nil, err
	}
	return &CloudinaryUploader{cld: cld}, nil
}

// Upload pushes the image bytes and returns the secure URL
func (c *CloudinaryUploader) Upload(ctx context.Context, image []byte) (string, error) {
	resp, err := c.cld.Upload.Upload(ctx, bytes.NewReader(image), uploader.UploadParams{
		Folder: "vehicle_visuals",
	})
	if err != nil {
		return "", err
	}
	return resp.SecureURL, nil
}

// Visual exported for testing purposes
type Visual struct {
	DB       databases.VisualDatabase
	VDB      databases.VehicleDatabase
	AI       gemini.Service
	Uploader Uploader
}

// visualGenerateRequest asks for renders of a vehicle in a scene
type visualGenerateRequest struct {
	VehicleID    string `json:"vehicleID"`
	Context      string `json:"context"`
	Modification string `json:"modification"`
}

// generatedVisual is one hosted or inline render
type generatedVisual struct {
	ImageURL string `json:"imageURL,omitempty"`
	Image    string `json:"image,omitempty"`
}

// GenerateVisualsHandler renders the vehicle in the buyer's scene. Renders
// are uploaded when an uploader is configured, otherwise returned inline as
// base64 so the feature works without a cloudinary account.
func (v Visual) GenerateVisualsHandler(w http.ResponseWriter, r *http.Request) {
	var req visualGenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if req.Context == "" {
		config.ErrorStatus("context is required", http.StatusBadRequest, w, fmt.Errorf("empty context"))
		return
	}

	vID, err := primitive.ObjectIDFromHex(req.VehicleID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()
	vehicle, err := v.VDB.FindOne(ctx, bson.M{"_id": vID})
	if err != nil {
		config.ErrorStatus("failed to get vehicle by ID", http.StatusNotFound, w, err)
		return
	}

	images, err := v.AI.GenerateVehicleVisuals(r.Context(), vehicle.Details, req.Context, req.Modification)
	if err != nil {
		config.ErrorStatus("failed to generate visuals", http.StatusInternalServerError, w, err)
		return
	}

	visuals := make([]generatedVisual, 0, len(images))
	for _, img := range images {
		if v.Uploader != nil {
			url, err := v.Uploader.Upload(r.Context(), img)
			if err != nil {
				zap.S().With(err).Warn("failed to upload render, returning inline")
			} else {
				visuals = append(visuals, generatedVisual{ImageURL: url})
				continue
			}
		}
		visuals = append(visuals, generatedVisual{Image: base64.StdEncoding.EncodeToString(img)})
	}

	b, err := json.Marshal(visuals)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// SaveVisualHandler persists a render the buyer wants to keep
func (v Visual) SaveVisualHandler(w http.ResponseWriter, r *http.Request) {
	var details models.VisualDetails
	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if details.BuyerID == "" || details.ImageURL == "" {
		config.ErrorStatus("buyerID and imageURL are required", http.StatusBadRequest, w, fmt.Errorf("missing required fields"))
		return
	}
	details.CreatedAt = time.Now().UTC()

	visual := models.SavedVisual{
		ID:      primitive.NewObjectID(),
		Details: details,
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()
	if _, err := v.DB.InsertOne(ctx, visual); err != nil {
		config.ErrorStatus("failed to save visual", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(visual)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// VisualsByBuyerIDHandler returns a buyer's saved renders
func (v Visual) VisualsByBuyerIDHandler(w http.ResponseWriter, r *http.Request) {
	buyerID := mux.Vars(r)["buyer_id"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()
	dbResp, err := v.DB.Find(ctx, bson.M{"visual.buyerID": buyerID})
	if err != nil {
		config.ErrorStatus("failed to get visuals by buyer ID", http.StatusNotFound, w, err)
		return
	}
	if len(dbResp) == 0 {
		dbResp = []models.SavedVisual{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// DeleteVisualHandler removes a saved render
func (v Visual) DeleteVisualHandler(w http.ResponseWriter, r *http.Request) {
	visualID := mux.Vars(r)["visual_id"]

	vID, err := primitive.ObjectIDFromHex(visualID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()
	deleted, err := v.DB.DeleteOne(ctx, bson.M{"_id": vID})
	if err != nil {
		config.ErrorStatus("failed to delete visual", http.StatusInternalServerError, w, err)
		return
	}
	if deleted == 0 {
		config.ErrorStatus("visual not found", http.StatusNotFound, w, fmt.Errorf("no visual with id %s", visualID))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(fmt.Sprintf(`{"deleted": "%s"}`, visualID)))
}
