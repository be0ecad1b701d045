package services

import (
	"context"

	"cycleroute/internal/models"
	"cycleroute/internal/repositories/interfaces"
	"cycleroute/internal/utils"
	"cycleroute/pkg/logger"

	"github.com/google/uuid"
)

type ReviewService interface {
	// SubmitReview creates the caller's review of a route, or overwrites the
	// existing one. The bool reports whether an overwrite happened.
	SubmitReview(ctx context.Context, routeID, userID string, request *SubmitReviewRequest) (*models.Review, bool, error)
	ListReviews(ctx context.Context, routeID, callerID string, params *utils.PaginationParams) (*ReviewList, error)
	DeleteReview(ctx context.Context, routeID, reviewID, userID string) error
}

type reviewService struct {
	reviewRepo interfaces.ReviewRepository
	routeRepo  interfaces.RouteRepository
	userRepo   interfaces.UserRepository
	logger     *logger.Logger
}

type SubmitReviewRequest struct {
	Content string `json:"content" binding:"required"`
	Rating  int    `json:"rating" binding:"required"`
}

type ReviewList struct {
	Reviews     []*models.Review `json:"reviews"`
	Total       int64            `json:"total"`
	Page        int              `json:"page"`
	Limit       int              `json:"limit"`
	AvgRating   float64          `json:"avg_rating"`
	ReviewCount int              `json:"review_count"`
}

func NewReviewService(
	reviewRepo interfaces.ReviewRepository,
	routeRepo interfaces.RouteRepository,
	userRepo interfaces.UserRepository,
	log *logger.Logger,
) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		routeRepo:  routeRepo,
		userRepo:   userRepo,
		logger:     log,
	}
}

func (s *reviewService) SubmitReview(ctx context.Context, routeID, userID string, request *SubmitReviewRequest) (*models.Review, bool, error) {
	if _, err := s.routeRepo.GetByID(ctx, routeID); err != nil {
		if err == interfaces.ErrNotFound {
			return nil, false, ErrNotFound
		}
		return nil, false, err
	}

	rating := utils.ClampRating(request.Rating)

	existing, err := s.reviewRepo.GetByRouteAndUser(ctx, routeID, userID)
	if err != nil && err != interfaces.ErrNotFound {
		return nil, false, err
	}

	overwritten := false
	var review *models.Review
	if existing != nil {
		if err := s.reviewRepo.Overwrite(ctx, existing.ReviewID, request.Content, rating); err != nil {
			return nil, false, err
		}
		existing.Content = request.Content
		existing.Rating = rating
		review = existing
		overwritten = true
	} else {
		review = &models.Review{
			ReviewID: uuid.New().String(),
			RouteID:  routeID,
			UserID:   userID,
			Content:  request.Content,
			Rating:   rating,
		}
		if err := s.reviewRepo.Create(ctx, review); err != nil {
			return nil, false, err
		}
	}

	if err := s.recomputeRouteRating(ctx, routeID); err != nil {
		return nil, false, err
	}

	return review, overwritten, nil
}

func (s *reviewService) ListReviews(ctx context.Context, routeID, callerID string, params *utils.PaginationParams) (*ReviewList, error) {
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

	reviews, err := s.reviewRepo.ListByRoute(ctx, routeID, params.GetLimit(), params.GetSkip())
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []*models.Review{}
	}

	s.attachUsernames(ctx, reviews)

	stats, err := s.reviewRepo.AggregateRating(ctx, routeID)
	if err != nil {
		return nil, err
	}

	return &ReviewList{
		Reviews:     reviews,
		Total:       int64(stats.ReviewCount),
		Page:        params.Page,
		Limit:       params.Limit,
		AvgRating:   stats.AvgRating,
		ReviewCount: stats.ReviewCount,
	}, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, routeID, reviewID, userID string) error {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		if err == interfaces.ErrNotFound {
			return ErrNotFound
		}
		return err
	}

	if review.RouteID != routeID {
		return ErrNotFound
	}
	if review.UserID != userID {
		return ErrForbidden
	}

	if err := s.reviewRepo.Delete(ctx, reviewID, userID); err != nil {
		if err == interfaces.ErrNotFound {
			return ErrNotFound
		}
		return err
	}

	return s.recomputeRouteRating(ctx, routeID)
}

func (s *reviewService) recomputeRouteRating(ctx context.Context, routeID string) error {
	stats, err := s.reviewRepo.AggregateRating(ctx, routeID)
	if err != nil {
		return err
	}

	return s.routeRepo.UpdateRatingStats(ctx, routeID, stats)
}

// attachUsernames resolves author names for display. Lookup failures leave the
// field empty rather than failing the listing.
func (s *reviewService) attachUsernames(ctx context.Context, reviews []*models.Review) {
	names := make(map[string]string)
	for _, review := range reviews {
		name, ok := names[review.UserID]
		if !ok {
			if user, err := s.userRepo.GetByID(ctx, review.UserID); err == nil {
				name = user.Username
			}
			names[review.UserID] = name
		}
		review.Username = name
	}
}
