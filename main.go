package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/teckion/dealership-api/api"
	"github.com/teckion/dealership-api/api/handlers"
	"github.com/teckion/dealership-api/api/scheduler"
	"github.com/teckion/dealership-api/config"
	"github.com/teckion/dealership-api/databases"
)

func main() {
	a := handlers.App{}
	a.Config = *config.New()

	if err := a.Initialize(); err != nil { //initialize database, services and router
		log.Fatal(err)
	}

	s := scheduler.New(
		databases.NewAnalyticsDatabase(a.DB()),
		databases.NewContractDatabase(a.DB()),
		databases.NewUserDatabase(a.DB()),
		a.Mailer,
	)
	s.Start()
	defer s.Stop()

	port := os.Getenv("PORT")
	baseURL := os.Getenv("BASE_URL")
	zap.S().Infow("dealership-api is up and running",
		"port", port,
		"url", baseURL,
	)
	handler := api.LoggingMiddleware(api.TimeoutMiddleware(30 * time.Second)(a.Router))
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%v", port), handler))
}
