// internal/app/features/family/routes.go
package family

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter serving the family endpoints. It expects to be
// mounted under a path that provides the {user_id} URL parameter.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/add_family", h.Add)
	r.Get("/family", h.List)
	r.Post("/remove_family", h.Remove)
	return r
}
