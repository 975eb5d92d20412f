package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/teckion/dealership-api/api"
	"github.com/teckion/dealership-api/config"
	"github.com/teckion/dealership-api/databases"
	"github.com/teckion/dealership-api/gemini"
	"github.com/teckion/dealership-api/models"
	"github.com/teckion/dealership-api/signature"
)

// Page denotes the starting page for pagination results
var Page = 0

// App stores the router, db connection and external services so they can be
// reused across handlers
type App struct {
	Router   *mux.Router
	Config   config.Config
	AI       gemini.Service
	Signer   signature.Service
	Mailer   Mailer
	Uploader Uploader
	dbHelper databases.DatabaseHelper
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	// setup go-guardian for middleware
	m := api.MiddlewareDB{DB: databases.NewUserDatabase(a.dbHelper)}
	m.SetupGoGuardian()

	r := mux.NewRouter()

	u := User{DB: databases.NewUserDatabase(a.dbHelper)}
	v := Vehicle{DB: databases.NewVehicleDatabase(a.dbHelper)}
	match := Match{
		VDB: databases.NewVehicleDatabase(a.dbHelper),
		ADB: databases.NewAnalyticsDatabase(a.dbHelper),
		AI:  a.AI,
	}
	contract := Contract{
		DB:     databases.NewContractDatabase(a.dbHelper),
		VDB:    databases.NewVehicleDatabase(a.dbHelper),
		QDB:    databases.NewQueryDatabase(a.dbHelper),
		UDB:    databases.NewUserDatabase(a.dbHelper),
		AI:     a.AI,
		Signer: a.Signer,
		Mailer: a.Mailer,
	}
	tmpl := Template{VDB: databases.NewVehicleDatabase(a.dbHelper), AI: a.AI}
	q := Query{DB: databases.NewQueryDatabase(a.dbHelper)}
	visual := Visual{
		DB:       databases.NewVisualDatabase(a.dbHelper),
		VDB:      databases.NewVehicleDatabase(a.dbHelper),
		AI:       a.AI,
		Uploader: a.Uploader,
	}
	ins := Insurance{VDB: databases.NewVehicleDatabase(a.dbHelper), AI: a.AI}
	analytics := Analytics{DB: databases.NewAnalyticsDatabase(a.dbHelper), AI: a.AI}
	admin := Admin{UDB: databases.NewUserDatabase(a.dbHelper), VDB: databases.NewVehicleDatabase(a.dbHelper)}

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)

	apiCreate := r.PathPrefix("/api/v1").Subrouter()

	apiCreate.Handle("/auth/token", api.Middleware(http.HandlerFunc(m.CreateToken))).Methods("POST")
	apiCreate.Handle("/auth/logout", api.Middleware(http.HandlerFunc(api.RevokeToken))).Methods("DELETE")

	apiCreate.Handle("/user/create-user", http.HandlerFunc(u.UserCreateHandler)).Methods("POST")
	apiCreate.Handle("/user/check-user", http.HandlerFunc(u.UserCheckEmailHandler)).Methods("POST")
	apiCreate.Handle("/user/{user_id}", api.Middleware(http.HandlerFunc(u.UserHandler))).Methods("GET")
	apiCreate.Handle("/user/{user_id}", api.Middleware(http.HandlerFunc(u.UpdateUserByIDHandler))).Methods("PUT")

	apiCreate.Handle("/vehicle/{vehicle_id}", api.Middleware(http.HandlerFunc(v.VehicleByIDHandler))).Methods("GET")
	apiCreate.Handle("/vehicle/{vehicle_id}", api.Middleware(http.HandlerFunc(v.UpdateVehicleHandler))).Methods("PUT")
	apiCreate.Handle("/vehicle/{vehicle_id}", api.Middleware(http.HandlerFunc(v.DeleteVehicleHandler))).Methods("DELETE")
	apiCreate.Handle("/vehicle", api.Middleware(http.HandlerFunc(v.CreateVehicleHandler))).Methods("POST")
	apiCreate.Handle("/vehicles", api.Middleware(http.HandlerFunc(v.VehicleHandler))).Methods("GET")
	apiCreate.Handle("/vehicles/seller/{seller_id}", api.Middleware(http.HandlerFunc(v.VehiclesBySellerIDHandler))).Methods("GET")
	apiCreate.Handle("/vehicles/search", api.Middleware(http.HandlerFunc(v.VehicleSearchHandler))).Methods("GET")

	apiCreate.Handle("/match", api.Middleware(http.HandlerFunc(match.MatchHandler))).Methods("POST")

	apiCreate.Handle("/contract", api.Middleware(http.HandlerFunc(contract.CreateContractHandler))).Methods("POST")
	apiCreate.Handle("/contract/{contract_id}", api.Middleware(http.HandlerFunc(contract.ContractByIDHandler))).Methods("GET")
	apiCreate.Handle("/contract/{contract_id}/request-changes", api.Middleware(http.HandlerFunc(contract.RequestChangesHandler))).Methods("PUT")
	apiCreate.Handle("/contract/{contract_id}/revise", api.Middleware(http.HandlerFunc(contract.ReviseContractHandler))).Methods("PUT")
	apiCreate.Handle("/contract/{contract_id}/sign", api.Middleware(http.HandlerFunc(contract.SignContractHandler))).Methods("PUT")
	apiCreate.Handle("/contract/{contract_id}/reject", api.Middleware(http.HandlerFunc(contract.RejectContractHandler))).Methods("PUT")
	apiCreate.Handle("/contract/{contract_id}/review", api.Middleware(http.HandlerFunc(contract.ReviewContractHandler))).Methods("PUT")
	apiCreate.Handle("/contract/{contract_id}/assistant", api.Middleware(http.HandlerFunc(contract.ContractAssistantHandler))).Methods("POST")
	apiCreate.Handle("/contracts/buyer/{buyer_id}", api.Middleware(http.HandlerFunc(contract.ContractsByBuyerIDHandler))).Methods("GET")
	apiCreate.Handle("/contracts/seller/{seller_id}", api.Middleware(http.HandlerFunc(contract.ContractsBySellerIDHandler))).Methods("GET")

	apiCreate.Handle("/contract-template/generate", api.Middleware(http.HandlerFunc(tmpl.GenerateTemplateHandler))).Methods("POST")
	apiCreate.Handle("/contract-template/refine", api.Middleware(http.HandlerFunc(tmpl.RefineTemplateHandler))).Methods("POST")
	apiCreate.Handle("/contract-template/fill-seller-fields", api.Middleware(http.HandlerFunc(tmpl.FillSellerFieldsHandler))).Methods("POST")
	apiCreate.Handle("/contract-template/buyer-fields", api.Middleware(http.HandlerFunc(tmpl.BuyerFieldsHandler))).Methods("POST")
	apiCreate.Handle("/contract-template/seller-fields", api.Middleware(http.HandlerFunc(tmpl.SellerFieldsHandler))).Methods("POST")

	apiCreate.Handle("/query", api.Middleware(http.HandlerFunc(q.CreateQueryHandler))).Methods("POST")
	apiCreate.Handle("/query/{query_id}/reply", api.Middleware(http.HandlerFunc(q.ReplyQueryHandler))).Methods("PUT")
	apiCreate.Handle("/queries/seller/{seller_id}", api.Middleware(http.HandlerFunc(q.QueriesBySellerIDHandler))).Methods("GET")
	apiCreate.Handle("/queries/buyer/{buyer_id}", api.Middleware(http.HandlerFunc(q.QueriesByBuyerIDHandler))).Methods("GET")

	apiCreate.Handle("/visuals/generate", api.Middleware(http.HandlerFunc(visual.GenerateVisualsHandler))).Methods("POST")
	apiCreate.Handle("/visual", api.Middleware(http.HandlerFunc(visual.SaveVisualHandler))).Methods("POST")
	apiCreate.Handle("/visual/{visual_id}", api.Middleware(http.HandlerFunc(visual.DeleteVisualHandler))).Methods("DELETE")
	apiCreate.Handle("/visuals/buyer/{buyer_id}", api.Middleware(http.HandlerFunc(visual.VisualsByBuyerIDHandler))).Methods("GET")

	apiCreate.Handle("/insurance/recommend", api.Middleware(http.HandlerFunc(ins.RecommendPlanHandler))).Methods("POST")
	apiCreate.Handle("/insurance/agent", api.Middleware(http.HandlerFunc(ins.InsuranceAgentHandler))).Methods("POST")

	apiCreate.Handle("/analytics", api.Middleware(http.HandlerFunc(analytics.AnalyticsHandler))).Methods("GET")
	apiCreate.Handle("/analytics/chatbot", api.Middleware(http.HandlerFunc(analytics.AnalyticsChatbotHandler))).Methods("POST")

	apiCreate.Handle("/admin/login", http.HandlerFunc(admin.AdminLoginHandler)).Methods("POST")
	apiCreate.Handle("/admin/seed-catalog", AdminMiddleware(http.HandlerFunc(admin.SeedCatalogHandler))).Methods("POST")

	// swagger docs hosted at "/"
	r.PathPrefix("/").Handler(http.StripPrefix("/", http.FileServer(http.Dir("./docs/"))))
	return r
}

// Initialize is invoked by main to connect with the database and create a router
func (a *App) Initialize() error {
	client, err := databases.NewClient(&a.Config)
	if err != nil {
		// if we fail to create a new database client, then kill the pod
		zap.S().With(err).Error("failed to create new client")
		return err
	}

	a.dbHelper = databases.NewDatabase(&a.Config, client)
	err = client.Connect()
	if err != nil {
		// if we fail to connect to the database, then kill the pod
		zap.S().With(err).Error("failed to connect to database")
		return err
	}
	zap.S().Info("dealership-api has connected to the database")

	ai, err := gemini.New(context.Background(), a.Config.GeminiAPIKey, a.Config.GeminiModel)
	if err != nil {
		zap.S().With(err).Error("failed to create gemini client")
		return err
	}
	a.AI = ai

	a.Signer = signature.NewSimulatedSigner()
	a.Mailer = NewSendgridMailer(a.Config.SenderEmail)

	uploader, err := NewCloudinaryUploader()
	if err != nil {
		// renders fall back to inline base64 when cloudinary is not configured
		zap.S().With(err).Warn("cloudinary not configured, visuals will be returned inline")
	} else {
		a.Uploader = uploader
	}

	// initialize api router
	a.initializeRoutes()
	return nil
}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

// DB exposes the database helper so main can hand collections to the scheduler
func (a *App) DB() databases.DatabaseHelper {
	return a.dbHelper
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}

func getPage(Page int, r *http.Request) int {
	if r.URL.Query().Get("page") == "" {
		zap.S().Warnf("page not set, using default of %v", Page)
	} else {
		var err error
		Page, err = strconv.Atoi(r.URL.Query().Get("page"))
		if err != nil {
			zap.S().Errorf(fmt.Sprintf("error parsing page number: %v", err))
		}
		if Page < 0 {
			zap.S().Warnf(fmt.Sprintf("cannot process page number less than 1. Got: %v", Page))
			return 0
		}
	}
	return Page
}
