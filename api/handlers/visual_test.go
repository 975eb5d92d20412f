package handlers_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/teckion/dealership-api/api/handlers"
	"github.com/teckion/dealership-api/databases"
	"github.com/teckion/dealership-api/databases/mocks"
	geminimocks "github.com/teckion/dealership-api/gemini/mocks"
)

type stubUploader struct {
	url string
	err error
}

func (s stubUploader) Upload(_ context.Context, _ []byte) (string, error) {
	return s.url, s.err
}

func TestVisual_GenerateVisualsHandlerUploadsRenders(t *testing.T) {
	body := bytes.NewBufferString(`{"vehicleID": "608cafe595eb9dc05379b7f3", "context": "monsoon mountain pass"}`)
	req, err := http.NewRequest("POST", "/api/v1/visuals/generate", body)
	if err != nil {
		t.Fatal(err)
	}

	db := &MockDatabaseHelper{}
	vehicleWithPlans(db, nil)

	ai := geminimocks.NewService(t)
	ai.On("GenerateVehicleVisuals", mock.Anything, mock.Anything, "monsoon mountain pass", "").
		Return([][]byte{[]byte("png-bytes")}, nil)

	v := handlers.Visual{
		VDB:      databases.NewVehicleDatabase(db),
		AI:       ai,
		Uploader: stubUploader{url: "https://cdn.example.com/render-1.png"},
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(v.GenerateVisualsHandler)
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "https://cdn.example.com/render-1.png")
}

func TestVisual_GenerateVisualsHandlerInlineWithoutUploader(t *testing.T) {
	body := bytes.NewBufferString(`{"vehicleID": "608cafe595eb9dc05379b7f3", "context": "city street at dusk"}`)
	req, err := http.NewRequest("POST", "/api/v1/visuals/generate", body)
	if err != nil {
		t.Fatal(err)
	}

	db := &MockDatabaseHelper{}
	vehicleWithPlans(db, nil)

	ai := geminimocks.NewService(t)
	ai.On("GenerateVehicleVisuals", mock.Anything, mock.Anything, "city street at dusk", "").
		Return([][]byte{[]byte("png-bytes")}, nil)

	v := handlers.Visual{
		VDB: databases.NewVehicleDatabase(db),
		AI:  ai,
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(v.GenerateVisualsHandler)
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), base64.StdEncoding.EncodeToString([]byte("png-bytes")))
}

func TestVisual_GenerateVisualsHandlerMissingContext(t *testing.T) {
	body := bytes.NewBufferString(`{"vehicleID": "608cafe595eb9dc05379b7f3"}`)
	req, err := http.NewRequest("POST", "/api/v1/visuals/generate", body)
	if err != nil {
		t.Fatal(err)
	}

	db := &MockDatabaseHelper{}
	v := handlers.Visual{VDB: databases.NewVehicleDatabase(db)}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(v.GenerateVisualsHandler)
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestVisual_SaveVisualHandlerMissingFields(t *testing.T) {
	body := bytes.NewBufferString(`{"buyerID": "608cafe595eb9dc05379b7f1"}`)
	req, err := http.NewRequest("POST", "/api/v1/visual", body)
	if err != nil {
		t.Fatal(err)
	}

	db := &MockDatabaseHelper{}
	v := handlers.Visual{DB: databases.NewVisualDatabase(db)}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(v.SaveVisualHandler)
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestVisual_SaveVisualHandlerSuccess(t *testing.T) {
	body := bytes.NewBufferString(`{"buyerID": "608cafe595eb9dc05379b7f1", "vehicleID": "608cafe595eb9dc05379b7f3", "imageURL": "https://cdn.example.com/render-1.png"}`)
	req, err := http.NewRequest("POST", "/api/v1/visual", body)
	if err != nil {
		t.Fatal(err)
	}

	db := &MockDatabaseHelper{}
	conn := &mocks.CollectionHelper{}
	insertOneResultHelper := &mocks.InsertOneResultHelper{}

	conn.On("InsertOne", mock.Anything, mock.Anything).Return(insertOneResultHelper, nil)
	db.On("Collection", "saved_visuals").Return(conn)

	v := handlers.Visual{DB: databases.NewVisualDatabase(db)}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(v.SaveVisualHandler)
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), "render-1.png")
}

func TestVisual_VisualsByBuyerIDHandlerEmpty(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/visuals/buyer/608cafe595eb9dc05379b7f1", nil)
	if err != nil {
		t.Fatal(err)
	}

	db := &MockDatabaseHelper{}
	conn := &mocks.CollectionHelper{}
	cursorHelper := &mocks.CursorHelper{}

	cursorHelper.On("Decode", mock.Anything).Return(nil)
	conn.On("Find", mock.Anything, mock.Anything).Return(cursorHelper, nil)
	db.On("Collection", "saved_visuals").Return(conn)

	v := handlers.Visual{DB: databases.NewVisualDatabase(db)}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(v.VisualsByBuyerIDHandler)
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]", rr.Body.String())
}
