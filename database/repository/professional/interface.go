// File: database/repository/professional/interface.go
package professionalRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"crewbook/config"
	"crewbook/database"
	"crewbook/models"
)

// ProfessionalRepository is the read-only lookup for professionals and their
// vehicle assignment.
type ProfessionalRepository interface {
	// GetByID returns nil, nil when no professional exists with that id.
	GetByID(ctx context.Context, id string) (*models.Professional, error)
	// GetByIDs returns the professionals found for the given ids; ids with no
	// matching record are simply absent from the result.
	GetByIDs(ctx context.Context, ids []string) ([]models.Professional, error)
}

type mongoProfessionalRepo struct {
	coll *mongo.Collection
}

// NewMongoProfessionalRepo constructs a new MongoDB ProfessionalRepository.
func NewMongoProfessionalRepo() ProfessionalRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoProfessionalRepo{
		coll: db.Collection("professionals"),
	}
}
