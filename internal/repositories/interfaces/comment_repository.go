package interfaces

import (
	"context"

	"cycleroute/internal/models"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, commentID string) (*models.Comment, error)

	// ListByRoute returns top-level comments when parentID is nil, otherwise
	// the replies of *parentID. Ordered newest first.
	ListByRoute(ctx context.Context, routeID string, parentID *string, limit, skip int) ([]*models.Comment, error)
	CountByRoute(ctx context.Context, routeID string, parentID *string) (int64, error)

	// Delete removes the comment only when it is owned by userID.
	Delete(ctx context.Context, commentID, userID string) error

	// DeleteReplies removes every reply under a parent comment.
	DeleteReplies(ctx context.Context, parentID string) error

	IncrementReplyCount(ctx context.Context, commentID string, delta int) error

	// AggregateRating averages the ratings of a route's top-level comments.
	AggregateRating(ctx context.Context, routeID string) (models.RatingStats, error)
}
