package services

import (
	"context"

	"cycleroute/internal/models"
	"cycleroute/internal/repositories/interfaces"
	"cycleroute/pkg/logger"

	"github.com/google/uuid"
)

type CustomPointService interface {
	CreatePoint(ctx context.Context, userID string, request *CreatePointRequest) (*models.CustomPoint, error)
	GetUserPoints(ctx context.Context, userID string) ([]*models.CustomPoint, error)
	DeletePoint(ctx context.Context, pointID, userID string) error
}

type customPointService struct {
	pointRepo interfaces.CustomPointRepository
	logger    *logger.Logger
}

type CreatePointRequest struct {
	Name     string          `json:"name" binding:"required"`
	Location models.Location `json:"location" binding:"required,coordinates"`
}

func NewCustomPointService(pointRepo interfaces.CustomPointRepository, log *logger.Logger) CustomPointService {
	return &customPointService{
		pointRepo: pointRepo,
		logger:    log,
	}
}

func (s *customPointService) CreatePoint(ctx context.Context, userID string, request *CreatePointRequest) (*models.CustomPoint, error) {
	point := &models.CustomPoint{
		PointID:  uuid.New().String(),
		Name:     request.Name,
		Location: request.Location,
		UserID:   userID,
		IsCustom: true,
	}

	if err := s.pointRepo.Create(ctx, point); err != nil {
		return nil, err
	}

	return point, nil
}

func (s *customPointService) GetUserPoints(ctx context.Context, userID string) ([]*models.CustomPoint, error) {
	points, err := s.pointRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if points == nil {
		points = []*models.CustomPoint{}
	}

	return points, nil
}

func (s *customPointService) DeletePoint(ctx context.Context, pointID, userID string) error {
	err := s.pointRepo.Delete(ctx, pointID, userID)
	if err == interfaces.ErrNotFound {
		return ErrNotFound
	}

	return err
}
