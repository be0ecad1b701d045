package interfaces

import (
	"context"

	"cycleroute/internal/models"
)

type CustomPointRepository interface {
	Create(ctx context.Context, point *models.CustomPoint) error
	GetByID(ctx context.Context, pointID string) (*models.CustomPoint, error)
	GetByUserID(ctx context.Context, userID string) ([]*models.CustomPoint, error)

	// Delete removes the point only when it is owned by userID.
	Delete(ctx context.Context, pointID, userID string) error
}
