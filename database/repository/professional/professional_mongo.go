// File: database/repository/professional/professional_mongo.go
package professionalRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"crewbook/models"
)

func (r *mongoProfessionalRepo) GetByID(ctx context.Context, id string) (*models.Professional, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var p models.Professional
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching professional %s: %w", id, err)
	}
	return &p, nil
}

func (r *mongoProfessionalRepo) GetByIDs(ctx context.Context, ids []string) ([]models.Professional, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("error fetching professionals: %w", err)
	}
	defer cursor.Close(ctx)

	var professionals []models.Professional
	if err := cursor.All(ctx, &professionals); err != nil {
		return nil, fmt.Errorf("error decoding professionals: %w", err)
	}
	return professionals, nil
}
