// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/keerthivardhanm/cms-V2/internal/app/features/dashboard"
	"github.com/keerthivardhanm/cms-V2/internal/app/system/workers"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database/back-end dependencies for the app.
// Views is shared by the dashboard routes, the health check and the sweeper.
type DBDeps struct {
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database

	Views   *dashboard.Registry
	Sweeper *workers.ViewSweeper
}
