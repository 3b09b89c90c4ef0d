// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent.
We aggregate errors so any problem is visible and startup can fail fast.

The unique email index is what makes the registration duplicate check hold
under concurrent requests: two racing registrations with the same email both
pass the application-level check, but only one insert survives the index.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureUsers(ctx, db); err != nil {
		problems = append(problems, "users: "+err.Error())
	}
	if err := ensureAlerts(ctx, db); err != nil {
		problems = append(problems, "sos_alerts: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func ensureUsers(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("users"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("uniq_users_email").SetUnique(true),
		},
	})
}

func ensureAlerts(ctx context.Context, db *mongo.Database) error {
	// History reads are "all alerts for one user, newest first".
	return ensureIndexSet(ctx, db.Collection("sos_alerts"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "triggered_at", Value: -1}},
			Options: options.Index().SetName("idx_alerts_user_triggered"),
		},
	})
}

// ensureIndexSet creates the desired indexes one at a time so a failure on one
// does not hide the others. CreateOne is a no-op when an identical index
// already exists, which is what makes EnsureAll safe to run on every boot.
func ensureIndexSet(ctx context.Context, coll *mongo.Collection, models []mongo.IndexModel) error {
	var errs []string

	for _, m := range models {
		name := ""
		if m.Options != nil && m.Options.Name != nil {
			name = *m.Options.Name
		}
		zap.L().Info("ensuring index",
			zap.String("collection", coll.Name()),
			zap.String("name", name))

		if _, err := coll.Indexes().CreateOne(ctx, m); err != nil {
			// Mongo/DocDB may report IndexOptionsConflict when the same key
			// pattern already exists under a different name; treat that as
			// already-ensured rather than a boot failure.
			if strings.Contains(err.Error(), "IndexOptionsConflict") {
				zap.L().Warn("index exists with different options, leaving as-is",
					zap.String("collection", coll.Name()),
					zap.String("name", name),
					zap.Error(err))
				continue
			}
			errs = append(errs, name+": "+err.Error())
		}
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}
