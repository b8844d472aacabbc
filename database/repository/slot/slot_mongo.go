// File: database/repository/slot/slot_mongo.go
package slotRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"crewbook/models"
)

func (r *mongoSlotRepo) GetByProfessionalAndDate(ctx context.Context, professionalID, date string) ([]models.Slot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"professional_id": professionalID, "date": date}
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "start", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("error fetching slots for professional %s on %s: %w", professionalID, date, err)
	}
	defer cursor.Close(ctx)

	var slots []models.Slot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("error decoding slots: %w", err)
	}
	return slots, nil
}

func (r *mongoSlotRepo) GetAvailableByDate(ctx context.Context, date string) ([]models.Slot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"date": date, "status": models.SlotAvailable}
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{
		{Key: "professional_id", Value: 1},
		{Key: "start", Value: 1},
	}))
	if err != nil {
		return nil, fmt.Errorf("error fetching available slots on %s: %w", date, err)
	}
	defer cursor.Close(ctx)

	var slots []models.Slot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("error decoding slots: %w", err)
	}
	return slots, nil
}

// UpdateStatus performs a conditional write: the status filter makes the flip
// a compare-and-set, so a concurrently mutated slot fails with ErrSlotNotFound
// instead of being silently overwritten.
func (r *mongoSlotRepo) UpdateStatus(ctx context.Context, slotID string, expected, next models.SlotStatus) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": slotID, "status": expected}
	update := bson.M{"$set": bson.M{"status": next}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error updating slot %s status: %w", slotID, err)
	}
	if res.MatchedCount == 0 {
		return ErrSlotNotFound
	}
	return nil
}

func (r *mongoSlotRepo) Save(ctx context.Context, slot models.Slot) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": slot.ID}
	_, err := r.coll.ReplaceOne(ctx, filter, slot, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("error saving slot %s: %w", slot.ID, err)
	}
	return nil
}
