package interfaces

import (
	"context"

	"cycleroute/internal/models"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	GetByID(ctx context.Context, reviewID string) (*models.Review, error)
	GetByRouteAndUser(ctx context.Context, routeID, userID string) (*models.Review, error)
	ListByRoute(ctx context.Context, routeID string, limit, skip int) ([]*models.Review, error)

	// Overwrite replaces content, rating and created_at of an existing review.
	Overwrite(ctx context.Context, reviewID, content string, rating int) error

	// Delete removes the review only when it is owned by userID.
	Delete(ctx context.Context, reviewID, userID string) error

	// AggregateRating averages all review ratings of a route. A route without
	// reviews yields a zeroed result.
	AggregateRating(ctx context.Context, routeID string) (models.RatingStats, error)
}
