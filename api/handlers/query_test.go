package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/teckion/dealership-api/api/handlers"
	"github.com/teckion/dealership-api/databases"
	"github.com/teckion/dealership-api/databases/mocks"
	"github.com/teckion/dealership-api/models"
)

func TestQuery_CreateQueryHandlerMissingFields(t *testing.T) {
	body := bytes.NewBufferString(`{"buyerID": "608cafe595eb9dc05379b7f1"}`)
	req, err := http.NewRequest("POST", "/api/v1/query", body)
	if err != nil {
		t.Fatal(err)
	}

	db := &MockDatabaseHelper{}
	q := handlers.Query{DB: databases.NewQueryDatabase(db)}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(q.CreateQueryHandler)
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "message and sellerID are required")
}

func TestQuery_CreateQueryHandlerOpensQuery(t *testing.T) {
	body := bytes.NewBufferString(`{"sellerID": "608cafe595eb9dc05379b7f2", "message": "Is the sunroof standard?", "reply": "sneaky", "status": "closed"}`)
	req, err := http.NewRequest("POST", "/api/v1/query", body)
	if err != nil {
		t.Fatal(err)
	}

	db := &MockDatabaseHelper{}
	conn := &mocks.CollectionHelper{}
	insertOneResultHelper := &mocks.InsertOneResultHelper{}

	conn.On("InsertOne", mock.Anything, mock.Anything).Return(insertOneResultHelper, nil)
	db.On("Collection", "queries").Return(conn)

	q := handlers.Query{DB: databases.NewQueryDatabase(db)}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(q.CreateQueryHandler)
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	// client-supplied reply and status are ignored on create
	assert.Contains(t, rr.Body.String(), `"status":"open"`)
	assert.NotContains(t, rr.Body.String(), "sneaky")
}

func TestQuery_QueriesBySellerIDHandlerStatusFilter(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/queries/seller/608cafe595eb9dc05379b7f2?status=open", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"seller_id": "608cafe595eb9dc05379b7f2"})

	db := &MockDatabaseHelper{}
	conn := &mocks.CollectionHelper{}
	cursorHelper := &mocks.CursorHelper{}

	cursorHelper.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*[]models.UserQuery)
		*arg = []models.UserQuery{{Details: models.QueryDetails{Message: "Is the sunroof standard?", Status: models.QueryOpen}}}
	})
	conn.On("Find", mock.Anything, mock.Anything).Return(cursorHelper, nil)
	db.On("Collection", "queries").Return(conn)

	q := handlers.Query{DB: databases.NewQueryDatabase(db)}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(q.QueriesBySellerIDHandler)
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Is the sunroof standard?")
}

func TestQuery_ReplyQueryHandlerClosesQuery(t *testing.T) {
	body := bytes.NewBufferString(`{"reply": "Yes, on the ZX trim."}`)
	req, err := http.NewRequest("PUT", "/api/v1/query/608cafe595eb9dc05379b7f4/reply", body)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"query_id": "608cafe595eb9dc05379b7f4"})

	db := &MockDatabaseHelper{}
	conn := &mocks.CollectionHelper{}

	conn.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).Return(&mongo.UpdateResult{MatchedCount: 1}, nil)
	db.On("Collection", "queries").Return(conn)

	q := handlers.Query{DB: databases.NewQueryDatabase(db)}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(q.ReplyQueryHandler)
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status": "closed"}`, rr.Body.String())
}

func TestQuery_ReplyQueryHandlerNotFound(t *testing.T) {
	body := bytes.NewBufferString(`{"reply": "Yes."}`)
	req, err := http.NewRequest("PUT", "/api/v1/query/608cafe595eb9dc05379b7f4/reply", body)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"query_id": "608cafe595eb9dc05379b7f4"})

	db := &MockDatabaseHelper{}
	conn := &mocks.CollectionHelper{}

	conn.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).Return(&mongo.UpdateResult{MatchedCount: 0}, nil)
	db.On("Collection", "queries").Return(conn)

	q := handlers.Query{DB: databases.NewQueryDatabase(db)}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(q.ReplyQueryHandler)
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestQuery_ReplyQueryHandlerEmptyReply(t *testing.T) {
	body := bytes.NewBufferString(`{}`)
	req, err := http.NewRequest("PUT", "/api/v1/query/608cafe595eb9dc05379b7f4/reply", body)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"query_id": "608cafe595eb9dc05379b7f4"})

	db := &MockDatabaseHelper{}
	q := handlers.Query{DB: databases.NewQueryDatabase(db)}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(q.ReplyQueryHandler)
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
