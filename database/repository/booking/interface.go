// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"crewbook/config"
	"crewbook/database"
	"crewbook/models"
)

// BookingRepository is the durable ledger of bookings.
type BookingRepository interface {
	// GetByID returns nil, nil when no booking exists with that id.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	Create(ctx context.Context, booking *models.Booking) error
	Update(ctx context.Context, booking *models.Booking) error
	// Delete removes a booking row. It exists only so the orchestrator can
	// compensate a failed commit; the public API never deletes bookings.
	Delete(ctx context.Context, id string) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
