package interfaces

import (
	"context"

	"cycleroute/internal/models"
)

type VoteRepository interface {
	Create(ctx context.Context, vote *models.Vote) error
	GetByRouteAndUser(ctx context.Context, routeID, userID string) (*models.Vote, error)
	UpdateType(ctx context.Context, voteID string, voteType int) error
	Delete(ctx context.Context, voteID string) error

	// CountByType counts a route's votes of one type (+1 or -1).
	CountByType(ctx context.Context, routeID string, voteType int) (int64, error)
}
