// internal/app/features/sos/routes.go
package sos

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter serving the SOS endpoints. It expects to be
// mounted under a path that provides the {user_id} URL parameter.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Trigger)
	r.Get("/history", h.History)
	r.Post("/{alert_id}/resolve", h.Resolve)
	return r
}
