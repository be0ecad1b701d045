package services

import (
	"context"

	"cycleroute/internal/models"
	"cycleroute/internal/repositories/interfaces"
	"cycleroute/internal/utils"
	"cycleroute/pkg/logger"

	"github.com/google/uuid"
)

type CommentService interface {
	CreateComment(ctx context.Context, routeID, userID string, request *CreateCommentRequest) (*models.Comment, error)
	ListComments(ctx context.Context, routeID, callerID string, params *utils.PaginationParams) (*CommentList, error)
	ListReplies(ctx context.Context, routeID, commentID string, params *utils.PaginationParams) (*CommentList, error)
	DeleteComment(ctx context.Context, routeID, commentID, userID string) error
}

type commentService struct {
	commentRepo interfaces.CommentRepository
	routeRepo   interfaces.RouteRepository
	userRepo    interfaces.UserRepository
	logger      *logger.Logger
}

type CreateCommentRequest struct {
	Content   string   `json:"content" binding:"required"`
	Rating    int      `json:"rating"`
	MediaURLs []string `json:"media_urls"`
	ParentID  *string  `json:"parent_id"`
}

type CommentList struct {
	Comments    []*models.Comment `json:"comments"`
	Total       int64             `json:"total"`
	Page        int               `json:"page"`
	Limit       int               `json:"limit"`
	AvgRating   float64           `json:"avg_rating"`
	ReviewCount int               `json:"review_count"`
}

func NewCommentService(
	commentRepo interfaces.CommentRepository,
	routeRepo interfaces.RouteRepository,
	userRepo interfaces.UserRepository,
	log *logger.Logger,
) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		routeRepo:   routeRepo,
		userRepo:    userRepo,
		logger:      log,
	}
}

func (s *commentService) CreateComment(ctx context.Context, routeID, userID string, request *CreateCommentRequest) (*models.Comment, error) {
	if _, err := s.routeRepo.GetByID(ctx, routeID); err != nil {
		if err == interfaces.ErrNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if request.ParentID != nil {
		if len(request.MediaURLs) > 0 {
			return nil, ErrMediaInReply
		}

		parent, err := s.commentRepo.GetByID(ctx, *request.ParentID)
		if err != nil {
			if err == interfaces.ErrNotFound {
				return nil, ErrNotFound
			}
			return nil, err
		}
		if parent.RouteID != routeID {
			return nil, ErrNotFound
		}
	}

	rating := request.Rating
	if rating == 0 {
		rating = utils.MaxRating
	}
	rating = utils.ClampRating(rating)

	comment := &models.Comment{
		CommentID: uuid.New().String(),
		RouteID:   routeID,
		UserID:    userID,
		Content:   request.Content,
		Rating:    rating,
		MediaURLs: request.MediaURLs,
		ParentID:  request.ParentID,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	if comment.IsReply() {
		if err := s.commentRepo.IncrementReplyCount(ctx, *comment.ParentID, 1); err != nil {
			return nil, err
		}
	} else {
		if err := s.recomputeRouteRating(ctx, routeID); err != nil {
			return nil, err
		}
	}

	return comment, nil
}

func (s *commentService) ListComments(ctx context.Context, routeID, callerID string, params *utils.PaginationParams) (*CommentList, error) {
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

	comments, err := s.commentRepo.ListByRoute(ctx, routeID, nil, params.GetLimit(), params.GetSkip())
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []*models.Comment{}
	}

	s.attachUsernames(ctx, comments)

	total, err := s.commentRepo.CountByRoute(ctx, routeID, nil)
	if err != nil {
		return nil, err
	}

	stats, err := s.commentRepo.AggregateRating(ctx, routeID)
	if err != nil {
		return nil, err
	}

	return &CommentList{
		Comments:    comments,
		Total:       total,
		Page:        params.Page,
		Limit:       params.Limit,
		AvgRating:   stats.AvgRating,
		ReviewCount: stats.ReviewCount,
	}, nil
}

func (s *commentService) ListReplies(ctx context.Context, routeID, commentID string, params *utils.PaginationParams) (*CommentList, error) {
	parent, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		if err == interfaces.ErrNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if parent.RouteID != routeID {
		return nil, ErrNotFound
	}

	replies, err := s.commentRepo.ListByRoute(ctx, routeID, &commentID, params.GetLimit(), params.GetSkip())
	if err != nil {
		return nil, err
	}
	if replies == nil {
		replies = []*models.Comment{}
	}

	s.attachUsernames(ctx, replies)

	total, err := s.commentRepo.CountByRoute(ctx, routeID, &commentID)
	if err != nil {
		return nil, err
	}

	return &CommentList{
		Comments: replies,
		Total:    total,
		Page:     params.Page,
		Limit:    params.Limit,
	}, nil
}

func (s *commentService) DeleteComment(ctx context.Context, routeID, commentID, userID string) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		if err == interfaces.ErrNotFound {
			return ErrNotFound
		}
		return err
	}

	if comment.RouteID != routeID {
		return ErrNotFound
	}
	if comment.UserID != userID {
		return ErrForbidden
	}

	if err := s.commentRepo.Delete(ctx, commentID, userID); err != nil {
		if err == interfaces.ErrNotFound {
			return ErrNotFound
		}
		return err
	}

	if comment.IsReply() {
		return s.commentRepo.IncrementReplyCount(ctx, *comment.ParentID, -1)
	}

	if err := s.commentRepo.DeleteReplies(ctx, commentID); err != nil {
		return err
	}

	return s.recomputeRouteRating(ctx, routeID)
}

func (s *commentService) recomputeRouteRating(ctx context.Context, routeID string) error {
	stats, err := s.commentRepo.AggregateRating(ctx, routeID)
	if err != nil {
		return err
	}

	return s.routeRepo.UpdateRatingStats(ctx, routeID, stats)
}

func (s *commentService) attachUsernames(ctx context.Context, comments []*models.Comment) {
	names := make(map[string]string)
	for _, comment := range comments {
		name, ok := names[comment.UserID]
		if !ok {
			if user, err := s.userRepo.GetByID(ctx, comment.UserID); err == nil {
				name = user.Username
			}
			names[comment.UserID] = name
		}
		comment.Username = name
	}
}
