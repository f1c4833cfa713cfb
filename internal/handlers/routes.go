package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func RegisterRoutes(r *chi.Mux, camperHandler *CamperHandler, activityHandler *ActivityHandler, signupHandler *SignupHandler) {
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Initialize Huma API
	config := huma.DefaultConfig("Camp Signup API", "1.0.0")
	api := humachi.New(r, config)

	// Liveness probe
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// Campers
	huma.Get(api, "/campers", camperHandler.HandleList)
	huma.Post(api, "/campers", camperHandler.HandleCreate, func(o *huma.Operation) {
		o.DefaultStatus = http.StatusCreated
	})
	huma.Get(api, "/campers/{id}", camperHandler.HandleGet)
	huma.Patch(api, "/campers/{id}", camperHandler.HandleUpdate, func(o *huma.Operation) {
		o.DefaultStatus = http.StatusAccepted
	})

	// Activities
	huma.Get(api, "/activities", activityHandler.HandleList)
	huma.Post(api, "/activities", activityHandler.HandleCreate, func(o *huma.Operation) {
		o.DefaultStatus = http.StatusCreated
	})
	huma.Patch(api, "/activities/{id}", activityHandler.HandleUpdate)
	huma.Delete(api, "/activities/{id}", activityHandler.HandleDelete, func(o *huma.Operation) {
		o.DefaultStatus = http.StatusNoContent
	})

	// Signups
	huma.Post(api, "/signups", signupHandler.HandleCreate, func(o *huma.Operation) {
		o.DefaultStatus = http.StatusCreated
	})
}
