package routes

import (
	"fmt"
	"net/http"

	"WattChat.influxDB/internal/controller"
	jwtmiddleware "github.com/auth0/go-jwt-middleware/v2"
	"github.com/gorilla/mux"
)

// SetupRouter defines all API routes. Everything except /health sits
// behind JWT validation.
func SetupRouter(auth *jwtmiddleware.JWTMiddleware, queryController *controller.QueryController, deviceController *controller.DeviceController) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	}).Methods("GET")

	router.Handle("/query", auth.CheckJWT(http.HandlerFunc(queryController.HandleQuery))).Methods("POST")

	router.Handle("/devices", auth.CheckJWT(http.HandlerFunc(deviceController.HandleRegister))).Methods("POST")
	router.Handle("/devices", auth.CheckJWT(http.HandlerFunc(deviceController.HandleList))).Methods("GET")
	router.Handle("/devices/{slug}", auth.CheckJWT(http.HandlerFunc(deviceController.HandleRename))).Methods("PUT")
	router.Handle("/devices/{slug}", auth.CheckJWT(http.HandlerFunc(deviceController.HandleDelete))).Methods("DELETE")
	router.Handle("/devices/{slug}/telemetry", auth.CheckJWT(http.HandlerFunc(deviceController.HandleRecordTelemetry))).Methods("POST")
	router.Handle("/devices/{slug}/telemetry", auth.CheckJWT(http.HandlerFunc(deviceController.HandleListTelemetry))).Methods("GET")
	router.Handle("/devices/{slug}/summary", auth.CheckJWT(http.HandlerFunc(deviceController.HandleSummary))).Methods("GET")

	return router
}
