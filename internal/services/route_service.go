package services

import (
	"context"
	"fmt"
	"net/url"

	"cycleroute/internal/models"
	"cycleroute/internal/repositories/interfaces"
	"cycleroute/internal/utils"
	"cycleroute/pkg/logger"

	"github.com/google/uuid"
)

type RouteService interface {
	CreateRoute(ctx context.Context, userID string, request *CreateRouteRequest) (*models.Route, error)
	GetUserRoutes(ctx context.Context, userID string) ([]*models.Route, error)

	// GetRoute enforces private-route gating: callerID may be empty for
	// unauthenticated reads.
	GetRoute(ctx context.Context, routeID, callerID string) (*models.Route, error)
	DeleteRoute(ctx context.Context, routeID, userID string) error
	ListPublicRoutes(ctx context.Context, params *utils.PaginationParams) ([]*models.Route, int64, error)
	ShareRoute(ctx context.Context, routeID string) (*ShareResult, error)
	SetVisibility(ctx context.Context, routeID, userID string, isPublic bool) error
}

type routeService struct {
	routeRepo   interfaces.RouteRepository
	frontendURL string
	logger      *logger.Logger
}

type CreateRouteRequest struct {
	Name      string            `json:"name" binding:"required"`
	Locations []models.Location `json:"locations" binding:"required,min=1,dive,coordinates"`
	IsPublic  bool              `json:"is_public"`
	ImageURL  string            `json:"image_url"`
}

type ShareResult struct {
	ShareURL   string `json:"share_url"`
	ShareCount int    `json:"share_count"`
	Facebook   string `json:"facebook"`
	Twitter    string `json:"twitter"`
	WhatsApp   string `json:"whatsapp"`
}

func NewRouteService(routeRepo interfaces.RouteRepository, frontendURL string, log *logger.Logger) RouteService {
	return &routeService{
		routeRepo:   routeRepo,
		frontendURL: frontendURL,
		logger:      log,
	}
}

func (s *routeService) CreateRoute(ctx context.Context, userID string, request *CreateRouteRequest) (*models.Route, error) {
	route := &models.Route{
		RouteID:   uuid.New().String(),
		Name:      request.Name,
		Locations: request.Locations,
		UserID:    userID,
		IsPublic:  request.IsPublic,
		ImageURL:  request.ImageURL,
	}

	if err := s.routeRepo.Create(ctx, route); err != nil {
		return nil, err
	}

	s.logger.WithUserID(userID).WithRouteID(route.RouteID).Info("route created")

	return route, nil
}

func (s *routeService) GetUserRoutes(ctx context.Context, userID string) ([]*models.Route, error) {
	routes, err := s.routeRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if routes == nil {
		routes = []*models.Route{}
	}

	return routes, nil
}

func (s *routeService) GetRoute(ctx context.Context, routeID, callerID string) (*models.Route, error) {
	route, err := s.routeRepo.GetByID(ctx, routeID)
	if err != nil {
		if err == interfaces.ErrNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !route.IsPublic && route.UserID != callerID {
		return nil, ErrForbidden
	}

	return route, nil
}

func (s *routeService) DeleteRoute(ctx context.Context, routeID, userID string) error {
	err := s.routeRepo.Delete(ctx, routeID, userID)
	if err == interfaces.ErrNotFound {
		return ErrNotFound
	}

	return err
}

func (s *routeService) ListPublicRoutes(ctx context.Context, params *utils.PaginationParams) ([]*models.Route, int64, error) {
	routes, err := s.routeRepo.ListPublic(ctx, params)
	if err != nil {
		return nil, 0, err
	}
	if routes == nil {
		routes = []*models.Route{}
	}

	total, err := s.routeRepo.CountPublic(ctx)
	if err != nil {
		return nil, 0, err
	}

	return routes, total, nil
}

func (s *routeService) ShareRoute(ctx context.Context, routeID string) (*ShareResult, error) {
	route, err := s.routeRepo.GetByID(ctx, routeID)
	if err != nil {
		if err == interfaces.ErrNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := s.routeRepo.IncrementShareCount(ctx, routeID); err != nil {
		return nil, err
	}

	shareURL := fmt.Sprintf("%s/routes/%s", s.frontendURL, routeID)
	encoded := url.QueryEscape(shareURL)
	text := url.QueryEscape(fmt.Sprintf("Check out this cycling route: %s", route.Name))

	return &ShareResult{
		ShareURL:   shareURL,
		ShareCount: route.ShareCount + 1,
		Facebook:   fmt.Sprintf("https://www.facebook.com/sharer/sharer.php?u=%s", encoded),
		Twitter:    fmt.Sprintf("https://twitter.com/intent/tweet?url=%s&text=%s", encoded, text),
		WhatsApp:   fmt.Sprintf("https://wa.me/?text=%s%%20%s", text, encoded),
	}, nil
}

func (s *routeService) SetVisibility(ctx context.Context, routeID, userID string, isPublic bool) error {
	err := s.routeRepo.UpdateVisibility(ctx, routeID, userID, isPublic)
	if err == interfaces.ErrNotFound {
		return ErrNotFound
	}

	return err
}
