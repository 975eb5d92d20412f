// Package docs Dealership API.
//
// Documentation of the Dealership API.
//
//     Schemes: https
//     BasePath: /
//     Version: 1.0.0
//     Host: https://dealership-api.teckion.io
//
//     Consumes:
//     - application/json
//
//     Produces:
//     - application/json
//
//     Security:
//     - basic
//
//    SecurityDefinitions:
//    basic:
//      type: basic
//
// swagger:meta
package docs

import (
	"github.com/teckion/dealership-api/models"
)

// swagger:route GET /health health healthEndpointID
// Lists the healthchex of the web service api.
// responses:
//   200: healthResponse

// Shows the current health of the api. true means it is alive, false means it is not.
// swagger:response healthResponse
type healthResponseWrapper struct {
	// in:body
	Body models.HealthCheckResponse
}

// swagger:route GET /api/v1/vehicle/{vehicle_id} vehicle vehicleByID
// Gets a single vehicle by ID.
// responses:
//   200: vehicleByIDResponse

// Shows a single vehicle by the given {ID}
// swagger:response vehicleByIDResponse
type vehicleByIDResponseWrapper struct {
	// in:body
	Body models.Vehicle
}

// swagger:route GET /api/v1/contract/{contract_id} contract contractByID
// Gets a single contract by ID.
// responses:
//   200: contractByIDResponse

// Shows a single contract by the given {ID}
// swagger:response contractByIDResponse
type contractByIDResponseWrapper struct {
	// in:body
	Body models.Contract
}
