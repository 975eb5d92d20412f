package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/teckion/dealership-api/api/handlers"
	"github.com/teckion/dealership-api/databases"
	"github.com/teckion/dealership-api/databases/mocks"
	geminimocks "github.com/teckion/dealership-api/gemini/mocks"
	"github.com/teckion/dealership-api/models"
)

func vehicleWithPlans(db *MockDatabaseHelper, plans []models.InsurancePlan) {
	conn := &mocks.CollectionHelper{}
	singleResultHelper := &mocks.SingleResultHelper{}

	singleResultHelper.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(**models.Vehicle)
		(*arg).Details.Name = "Atlas Cruiser"
		(*arg).Details.InsuranceOptions = plans
	})
	conn.On("FindOne", mock.Anything, mock.Anything).Return(singleResultHelper)
	db.On("Collection", "vehicles").Return(conn)
}

func TestInsurance_RecommendPlanHandler(t *testing.T) {
	body := bytes.NewBufferString(`{"vehicleID": "608cafe595eb9dc05379b7f3", "intent": {"category": "Family"}}`)
	req, err := http.NewRequest("POST", "/api/v1/insurance/recommend", body)
	if err != nil {
		t.Fatal(err)
	}

	db := &MockDatabaseHelper{}
	plans := []models.InsurancePlan{
		{ID: "plan-1", Provider: "Acko", Name: "Comprehensive Plus", Type: models.PlanComprehensive},
		{ID: "plan-2", Provider: "Digit", Name: "Basic Third-Party", Type: models.PlanThirdParty},
	}
	vehicleWithPlans(db, plans)

	ai := geminimocks.NewService(t)
	ai.On("AnalyzeInsuranceNeeds", mock.Anything, mock.Anything, plans).
		Return(models.PlanRecommendation{RecommendedPlanID: "plan-1", Reason: "Family use favors comprehensive cover."})

	i := handlers.Insurance{VDB: databases.NewVehicleDatabase(db), AI: ai}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(i.RecommendPlanHandler)
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "plan-1")
}

func TestInsurance_RecommendPlanHandlerNoPlans(t *testing.T) {
	body := bytes.NewBufferString(`{"vehicleID": "608cafe595eb9dc05379b7f3", "intent": {"category": "Family"}}`)
	req, err := http.NewRequest("POST", "/api/v1/insurance/recommend", body)
	if err != nil {
		t.Fatal(err)
	}

	db := &MockDatabaseHelper{}
	vehicleWithPlans(db, nil)

	i := handlers.Insurance{VDB: databases.NewVehicleDatabase(db)}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(i.RecommendPlanHandler)
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "vehicle offers no insurance plans")
}

func TestInsurance_InsuranceAgentHandlerEmptyQuestion(t *testing.T) {
	body := bytes.NewBufferString(`{"vehicleID": "608cafe595eb9dc05379b7f3"}`)
	req, err := http.NewRequest("POST", "/api/v1/insurance/agent", body)
	if err != nil {
		t.Fatal(err)
	}

	db := &MockDatabaseHelper{}
	i := handlers.Insurance{VDB: databases.NewVehicleDatabase(db)}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(i.InsuranceAgentHandler)
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestInsurance_InsuranceAgentHandler(t *testing.T) {
	body := bytes.NewBufferString(`{"vehicleID": "608cafe595eb9dc05379b7f3", "question": "Is zero-dep worth it?"}`)
	req, err := http.NewRequest("POST", "/api/v1/insurance/agent", body)
	if err != nil {
		t.Fatal(err)
	}

	db := &MockDatabaseHelper{}
	vehicleWithPlans(db, []models.InsurancePlan{{ID: "plan-1", Type: models.PlanZeroDep}})

	ai := geminimocks.NewService(t)
	ai.On("QueryInsuranceAgent", mock.Anything, "Is zero-dep worth it?", mock.Anything).
		Return("Zero-dep avoids depreciation deductions on claims.")

	i := handlers.Insurance{VDB: databases.NewVehicleDatabase(db), AI: ai}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(i.InsuranceAgentHandler)
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "depreciation")
}
