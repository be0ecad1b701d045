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

// Fields of the routes collection that public listings may sort on. Anything
// else falls back to vote_score.
var publicSortFields = map[string]bool{
	"vote_score":  true,
	"share_count": true,
	"avg_rating":  true,
	"created_at":  true,
}

type routeRepository struct {
	collection *mongo.Collection
}

func NewRouteRepository(db *mongo.Database) interfaces.RouteRepository {
	return &routeRepository{
		collection: db.Collection(utils.CollectionRoutes),
	}
}

func (r *routeRepository) Create(ctx context.Context, route *models.Route) error {
	route.CreatedAt = time.Now()
	if route.Locations == nil {
		route.Locations = []models.Location{}
	}

	_, err := r.collection.InsertOne(ctx, route)
	if err != nil {
		return fmt.Errorf("failed to create route: %w", err)
	}

	return nil
}

func (r *routeRepository) GetByID(ctx context.Context, routeID string) (*models.Route, error) {
	var route models.Route
	err := r.collection.FindOne(ctx, bson.M{"route_id": routeID}).Decode(&route)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, interfaces.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get route: %w", err)
	}

	return &route, nil
}

func (r *routeRepository) GetByUserID(ctx context.Context, userID string) ([]*models.Route, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to find routes by user: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeRoutes(ctx, cursor)
}

func (r *routeRepository) Delete(ctx context.Context, routeID, userID string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"route_id": routeID, "user_id": userID})
	if err != nil {
		return fmt.Errorf("failed to delete route: %w", err)
	}

	if result.DeletedCount == 0 {
		return interfaces.ErrNotFound
	}

	return nil
}

func (r *routeRepository) ListPublic(ctx context.Context, params *utils.PaginationParams) ([]*models.Route, error) {
	if !publicSortFields[params.Sort] {
		params.Sort = "vote_score"
	}

	cursor, err := r.collection.Find(ctx, bson.M{"is_public": true}, params.GetSortOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to find public routes: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeRoutes(ctx, cursor)
}

func (r *routeRepository) CountPublic(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"is_public": true})
	if err != nil {
		return 0, fmt.Errorf("failed to count public routes: %w", err)
	}

	return count, nil
}

func (r *routeRepository) IncrementShareCount(ctx context.Context, routeID string) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"route_id": routeID},
		bson.M{"$inc": bson.M{"share_count": 1}},
	)
	if err != nil {
		return fmt.Errorf("failed to increment share count: %w", err)
	}

	if result.MatchedCount == 0 {
		return interfaces.ErrNotFound
	}

	return nil
}

func (r *routeRepository) UpdateVisibility(ctx context.Context, routeID, userID string, isPublic bool) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"route_id": routeID, "user_id": userID},
		bson.M{"$set": bson.M{"is_public": isPublic}},
	)
	if err != nil {
		return fmt.Errorf("failed to update route visibility: %w", err)
	}

	if result.MatchedCount == 0 {
		return interfaces.ErrNotFound
	}

	return nil
}

func (r *routeRepository) UpdateRatingStats(ctx context.Context, routeID string, stats models.RatingStats) error {
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"route_id": routeID},
		bson.M{"$set": bson.M{
			"avg_rating":   stats.AvgRating,
			"review_count": stats.ReviewCount,
		}},
	)
	if err != nil {
		return fmt.Errorf("failed to update rating stats: %w", err)
	}

	return nil
}

func (r *routeRepository) UpdateVoteCounts(ctx context.Context, routeID string, counts models.VoteCounts) error {
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"route_id": routeID},
		bson.M{"$set": bson.M{
			"upvotes":    counts.Upvotes,
			"downvotes":  counts.Downvotes,
			"vote_score": counts.VoteScore,
		}},
	)
	if err != nil {
		return fmt.Errorf("failed to update vote counts: %w", err)
	}

	return nil
}

func decodeRoutes(ctx context.Context, cursor *mongo.Cursor) ([]*models.Route, error) {
	var routes []*models.Route
	for cursor.Next(ctx) {
		var route models.Route
		if err := cursor.Decode(&route); err != nil {
			return nil, fmt.Errorf("failed to decode route: %w", err)
		}
		routes = append(routes, &route)
	}

	return routes, nil
}
