package mongodb

import (
	"context"
	"fmt"
	"math"
	"time"

	"cycleroute/internal/models"
	"cycleroute/internal/repositories/interfaces"
	"cycleroute/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type reviewRepository struct {
	collection *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) interfaces.ReviewRepository {
	return &reviewRepository{
		collection: db.Collection(utils.CollectionReviews),
	}
}

func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	review.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, review)
	if err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}

	return nil
}

func (r *reviewRepository) GetByID(ctx context.Context, reviewID string) (*models.Review, error) {
	var review models.Review
	err := r.collection.FindOne(ctx, bson.M{"review_id": reviewID}).Decode(&review)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, interfaces.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	return &review, nil
}

func (r *reviewRepository) GetByRouteAndUser(ctx context.Context, routeID, userID string) (*models.Review, error) {
	var review models.Review
	err := r.collection.FindOne(ctx, bson.M{"route_id": routeID, "user_id": userID}).Decode(&review)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, interfaces.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get review by route and user: %w", err)
	}

	return &review, nil
}

func (r *reviewRepository) ListByRoute(ctx context.Context, routeID string, limit, skip int) ([]*models.Review, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{"route_id": routeID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find reviews: %w", err)
	}
	defer cursor.Close(ctx)

	var reviews []*models.Review
	for cursor.Next(ctx) {
		var review models.Review
		if err := cursor.Decode(&review); err != nil {
			return nil, fmt.Errorf("failed to decode review: %w", err)
		}
		reviews = append(reviews, &review)
	}

	return reviews, nil
}

func (r *reviewRepository) Overwrite(ctx context.Context, reviewID, content string, rating int) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"review_id": reviewID},
		bson.M{"$set": bson.M{
			"content":    content,
			"rating":     rating,
			"created_at": time.Now(),
		}},
	)
	if err != nil {
		return fmt.Errorf("failed to overwrite review: %w", err)
	}

	if result.MatchedCount == 0 {
		return interfaces.ErrNotFound
	}

	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, reviewID, userID string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"review_id": reviewID, "user_id": userID})
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}

	if result.DeletedCount == 0 {
		return interfaces.ErrNotFound
	}

	return nil
}

func (r *reviewRepository) AggregateRating(ctx context.Context, routeID string) (models.RatingStats, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"route_id": routeID}},
		{"$group": bson.M{
			"_id":          nil,
			"avg_rating":   bson.M{"$avg": "$rating"},
			"review_count": bson.M{"$sum": 1},
		}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return models.RatingStats{}, fmt.Errorf("failed to aggregate review ratings: %w", err)
	}
	defer cursor.Close(ctx)

	var result struct {
		AvgRating   float64 `bson:"avg_rating"`
		ReviewCount int     `bson:"review_count"`
	}
	if cursor.Next(ctx) {
		if err := cursor.Decode(&result); err != nil {
			return models.RatingStats{}, fmt.Errorf("failed to decode rating aggregation: %w", err)
		}
	}

	return models.RatingStats{
		AvgRating:   math.Round(result.AvgRating*10) / 10,
		ReviewCount: result.ReviewCount,
	}, nil
}
