// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	"github.com/Ayush8123/sangamwebapp/internal/app/system/indexes"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// EnsureSchema reconciles the indexes the app depends on: the unique email
// index backing registration conflicts and the owner/recency index backing
// alert history.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	return indexes.EnsureAll(ctx, deps.MongoDatabase)
}
