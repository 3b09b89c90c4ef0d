// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (HTTP ports, TLS,
// logging level, CORS, body limits); AppConfig carries everything specific to
// this application. Values are loaded in LoadConfig from config files,
// SANGAM_* environment variables, or command-line flags.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g. mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// StaticDir is the directory served under /static for the front-end app.
	StaticDir string

	// NotifyTranscript controls whether the simulated notification dispatcher
	// logs the full human-readable fan-out transcript on each SOS trigger, or
	// just the structured summary line.
	NotifyTranscript bool
}
