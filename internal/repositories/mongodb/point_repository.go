package mongodb

import (
	"context"
	"fmt"
	"time"

	"cycleroute/internal/models"
	"cycleroute/internal/repositories/interfaces"
	"cycleroute/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type customPointRepository struct {
	collection *mongo.Collection
}

func NewCustomPointRepository(db *mongo.Database) interfaces.CustomPointRepository {
	return &customPointRepository{
		collection: db.Collection(utils.CollectionCustomPoints),
	}
}

func (r *customPointRepository) Create(ctx context.Context, point *models.CustomPoint) error {
	point.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, point)
	if err != nil {
		return fmt.Errorf("failed to create custom point: %w", err)
	}

	return nil
}

func (r *customPointRepository) GetByID(ctx context.Context, pointID string) (*models.CustomPoint, error) {
	var point models.CustomPoint
	err := r.collection.FindOne(ctx, bson.M{"point_id": pointID}).Decode(&point)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, interfaces.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get custom point: %w", err)
	}

	return &point, nil
}

func (r *customPointRepository) GetByUserID(ctx context.Context, userID string) ([]*models.CustomPoint, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to find custom points: %w", err)
	}
	defer cursor.Close(ctx)

	var points []*models.CustomPoint
	for cursor.Next(ctx) {
		var point models.CustomPoint
		if err := cursor.Decode(&point); err != nil {
			return nil, fmt.Errorf("failed to decode custom point: %w", err)
		}
		points = append(points, &point)
	}

	return points, nil
}

func (r *customPointRepository) Delete(ctx context.Context, pointID, userID string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"point_id": pointID, "user_id": userID})
	if err != nil {
		return fmt.Errorf("failed to delete custom point: %w", err)
	}

	if result.DeletedCount == 0 {
		return interfaces.ErrNotFound
	}

	return nil
}
