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

type commentRepository struct {
	collection *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) interfaces.CommentRepository {
	return &commentRepository{
		collection: db.Collection(utils.CollectionComments),
	}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	comment.CreatedAt = time.Now()
	if comment.MediaURLs == nil {
		comment.MediaURLs = []string{}
	}

	_, err := r.collection.InsertOne(ctx, comment)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, commentID string) (*models.Comment, error) {
	var comment models.Comment
	err := r.collection.FindOne(ctx, bson.M{"comment_id": commentID}).Decode(&comment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, interfaces.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	return &comment, nil
}

func (r *commentRepository) ListByRoute(ctx context.Context, routeID string, parentID *string, limit, skip int) ([]*models.Comment, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, threadFilter(routeID, parentID), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find comments: %w", err)
	}
	defer cursor.Close(ctx)

	var comments []*models.Comment
	for cursor.Next(ctx) {
		var comment models.Comment
		if err := cursor.Decode(&comment); err != nil {
			return nil, fmt.Errorf("failed to decode comment: %w", err)
		}
		comments = append(comments, &comment)
	}

	return comments, nil
}

func (r *commentRepository) CountByRoute(ctx context.Context, routeID string, parentID *string) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, threadFilter(routeID, parentID))
	if err != nil {
		return 0, fmt.Errorf("failed to count comments: %w", err)
	}

	return count, nil
}

func (r *commentRepository) Delete(ctx context.Context, commentID, userID string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"comment_id": commentID, "user_id": userID})
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	if result.DeletedCount == 0 {
		return interfaces.ErrNotFound
	}

	return nil
}

func (r *commentRepository) DeleteReplies(ctx context.Context, parentID string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"parent_id": parentID})
	if err != nil {
		return fmt.Errorf("failed to delete replies: %w", err)
	}

	return nil
}

func (r *commentRepository) IncrementReplyCount(ctx context.Context, commentID string, delta int) error {
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"comment_id": commentID},
		bson.M{"$inc": bson.M{"reply_count": delta}},
	)
	if err != nil {
		return fmt.Errorf("failed to update reply count: %w", err)
	}

	return nil
}

func (r *commentRepository) AggregateRating(ctx context.Context, routeID string) (models.RatingStats, error) {
	pipeline := []bson.M{
		{"$match": bson.M{
			"route_id":  routeID,
			"parent_id": nil,
			"rating":    bson.M{"$gt": 0},
		}},
		{"$group": bson.M{
			"_id":          nil,
			"avg_rating":   bson.M{"$avg": "$rating"},
			"review_count": bson.M{"$sum": 1},
		}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return models.RatingStats{}, fmt.Errorf("failed to aggregate comment ratings: %w", err)
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

// threadFilter matches top-level comments when parentID is nil, otherwise the
// replies of *parentID.
func threadFilter(routeID string, parentID *string) bson.M {
	filter := bson.M{"route_id": routeID}
	if parentID == nil {
		filter["parent_id"] = nil
	} else {
		filter["parent_id"] = *parentID
	}

	return filter
}
