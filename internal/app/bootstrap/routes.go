// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	authfeature "github.com/Ayush8123/sangamwebapp/internal/app/features/auth"
	familyfeature "github.com/Ayush8123/sangamwebapp/internal/app/features/family"
	healthfeature "github.com/Ayush8123/sangamwebapp/internal/app/features/health"
	sosfeature "github.com/Ayush8123/sangamwebapp/internal/app/features/sos"
	"github.com/Ayush8123/sangamwebapp/internal/app/system/notify"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connection, and schema setup have
// completed. The router mounts:
//
//	GET  /health                              connectivity check
//	/static/*                                 front-end assets
//	POST /register, POST /login               identity
//	POST /@{user_id}/add_family               relationships
//	GET  /@{user_id}/family
//	POST /@{user_id}/remove_family
//	POST /@{user_id}/sos                      alerts
//	GET  /@{user_id}/sos/history
//	POST /@{user_id}/sos/{alert_id}/resolve
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// The notifier is injected into the SOS handler; the shipped
	// implementation only writes a transcript to the log.
	notifier := notify.NewLogNotifier(logger, appCfg.NotifyTranscript)

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", appCfg.StaticDir))

	// Identity
	authHandler := authfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/", authfeature.Routes(authHandler))

	// Everything scoped to a user id: family links and SOS alerts
	familyHandler := familyfeature.NewHandler(deps.MongoDatabase, logger)
	sosHandler := sosfeature.NewHandler(deps.MongoDatabase, notifier, logger)
	r.Route("/@{user_id}", func(ur chi.Router) {
		ur.Mount("/sos", sosfeature.Routes(sosHandler))
		ur.Mount("/", familyfeature.Routes(familyHandler))
	})

	return r, nil
}
