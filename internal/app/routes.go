package app

import (
	"github.com/daywheel/daywheel/internal/config"
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// User management
	r.HandleFunc("/api/users", deps.UserHandler.CreateUser).Methods("POST")
	r.HandleFunc("/api/users/{nickname}", deps.UserHandler.GetUserByNickname).Methods("GET")
	r.HandleFunc("/api/user/{id:[0-9]+}", deps.UserHandler.GetUser).Methods("GET")

	// Categories
	r.HandleFunc("/api/users/{userId:[0-9]+}/categories", deps.CategoryHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/categories", deps.CategoryHandler.Create).Methods("POST")
	r.HandleFunc("/api/categories/{id:[0-9]+}", deps.CategoryHandler.Update).Methods("PUT")
	r.HandleFunc("/api/categories/{id:[0-9]+}", deps.CategoryHandler.Delete).Methods("DELETE")

	// Activities
	r.HandleFunc("/api/users/{userId:[0-9]+}/activities", deps.ActivityHandler.List).Methods("GET")
	r.HandleFunc("/api/activities", deps.ActivityHandler.Create).Methods("POST")
	r.HandleFunc("/api/activities/{id:[0-9]+}", deps.ActivityHandler.Update).Methods("PUT")
	r.HandleFunc("/api/activities/{id:[0-9]+}", deps.ActivityHandler.Delete).Methods("DELETE")

	// Summary and timeline
	r.HandleFunc("/api/users/{userId:[0-9]+}/summary", deps.SummaryHandler.GetSummary).Methods("GET")
	r.HandleFunc("/api/users/{userId:[0-9]+}/timeline", deps.SummaryHandler.GetTimeline).Methods("GET")
}
