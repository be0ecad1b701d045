package interfaces

import (
	"context"

	"cycleroute/internal/models"
	"cycleroute/internal/utils"
)

type RouteRepository interface {
	Create(ctx context.Context, route *models.Route) error
	GetByID(ctx context.Context, routeID string) (*models.Route, error)
	GetByUserID(ctx context.Context, userID string) ([]*models.Route, error)

	// Delete removes the route only when it is owned by userID.
	Delete(ctx context.Context, routeID, userID string) error

	ListPublic(ctx context.Context, params *utils.PaginationParams) ([]*models.Route, error)
	CountPublic(ctx context.Context) (int64, error)

	IncrementShareCount(ctx context.Context, routeID string) error
	UpdateVisibility(ctx context.Context, routeID, userID string, isPublic bool) error
	UpdateRatingStats(ctx context.Context, routeID string, stats models.RatingStats) error
	UpdateVoteCounts(ctx context.Context, routeID string, counts models.VoteCounts) error
}
