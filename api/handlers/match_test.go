package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/teckion/dealership-api/api/handlers"
	"github.com/teckion/dealership-api/databases"
	"github.com/teckion/dealership-api/databases/mocks"
	geminimocks "github.com/teckion/dealership-api/gemini/mocks"
	"github.com/teckion/dealership-api/models"
)

func TestMatch_MatchHandlerFallsBackToCatalogWhenInventoryUnavailable(t *testing.T) {
	body := bytes.NewBufferString(`{"people": "5 people", "terrain": "city roads", "primary_use": "daily commute", "budget": "around 20 lakhs"}`)
	req, err := http.NewRequest("POST", "/api/v1/match", body)
	if err != nil {
		t.Fatal(err)
	}

	db := &MockDatabaseHelper{}

	analyticsConn := &mocks.CollectionHelper{}
	analyticsConn.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&mongo.UpdateResult{MatchedCount: 1}, nil)
	db.On("Collection", "analytics").Return(analyticsConn)

	vehicleConn := &mocks.CollectionHelper{}
	vehicleConn.On("Find", mock.Anything, mock.Anything).Return(nil, errors.New("mocked-error"))
	db.On("Collection", "vehicles").Return(vehicleConn)

	ai := geminimocks.NewService(t)
	ai.On("AnalyzeIntent", mock.Anything, mock.Anything).Return(models.Intent{
		Category:          models.CategoryFamily,
		LifestylePatterns: []string{"Family"},
		DetectedBudget:    2000000,
		MinSeats:          5,
	})

	m := handlers.Match{
		VDB: databases.NewVehicleDatabase(db),
		ADB: databases.NewAnalyticsDatabase(db),
		AI:  ai,
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(m.MatchHandler)
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp handlers.MatchResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, models.CategoryFamily, resp.Intent.Category)
	assert.NotEmpty(t, resp.Matches)
}

func TestMatch_MatchHandlerAnalyticsFailureDoesNotBlock(t *testing.T) {
	body := bytes.NewBufferString(`{"people": "just me", "terrain": "city", "primary_use": "commute", "budget": "10 lakhs"}`)
	req, err := http.NewRequest("POST", "/api/v1/match", body)
	if err != nil {
		t.Fatal(err)
	}

	db := &MockDatabaseHelper{}

	analyticsConn := &mocks.CollectionHelper{}
	analyticsConn.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("mocked-error"))
	db.On("Collection", "analytics").Return(analyticsConn)

	vehicleConn := &mocks.CollectionHelper{}
	cursorHelper := &mocks.CursorHelper{}
	cursorHelper.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*[]models.Vehicle)
		*arg = []models.Vehicle{{Details: models.VehicleDetails{
			Name:       "Nimbus Hatch",
			Drive:      "FWD",
			Seats:      5,
			PriceRange: [2]int64{900000, 1100000},
			UseCases:   []string{"City Commute"},
		}}}
	})
	vehicleConn.On("Find", mock.Anything, mock.Anything).Return(cursorHelper, nil)
	db.On("Collection", "vehicles").Return(vehicleConn)

	ai := geminimocks.NewService(t)
	ai.On("AnalyzeIntent", mock.Anything, mock.Anything).Return(models.DefaultIntent())

	m := handlers.Match{
		VDB: databases.NewVehicleDatabase(db),
		ADB: databases.NewAnalyticsDatabase(db),
		AI:  ai,
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(m.MatchHandler)
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Nimbus Hatch")
}
