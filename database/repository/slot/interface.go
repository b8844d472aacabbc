// File: database/repository/slot/interface.go
package slotRepo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"crewbook/config"
	"crewbook/database"
	"crewbook/models"
)

// ErrSlotNotFound is returned by UpdateStatus when no slot matched the id and
// expected status, i.e. the slot was mutated concurrently or never existed.
var ErrSlotNotFound = errors.New("slot not found or not in expected status")

// SlotRepository is the durable record of each professional's availability
// windows per date and their status.
type SlotRepository interface {
	GetByProfessionalAndDate(ctx context.Context, professionalID, date string) ([]models.Slot, error)
	// GetAvailableByDate returns every AVAILABLE slot on the date, across all
	// professionals.
	GetAvailableByDate(ctx context.Context, date string) ([]models.Slot, error)
	// UpdateStatus flips a slot from expected to next in one conditional write.
	UpdateStatus(ctx context.Context, slotID string, expected, next models.SlotStatus) error
	Save(ctx context.Context, slot models.Slot) error
}

type mongoSlotRepo struct {
	coll *mongo.Collection
}

// NewMongoSlotRepo constructs a new MongoDB SlotRepository.
func NewMongoSlotRepo() SlotRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoSlotRepo{
		coll: db.Collection("slots"),
	}
}
