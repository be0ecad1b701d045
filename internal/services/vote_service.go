package services

import (
	"context"

	"cycleroute/internal/models"
	"cycleroute/internal/repositories/interfaces"
	"cycleroute/internal/utils"
	"cycleroute/pkg/logger"

	"github.com/google/uuid"
)

type VoteService interface {
	// CastVote applies toggle semantics: a repeated same-type vote removes it,
	// an opposite vote overwrites, otherwise a new vote is inserted.
	CastVote(ctx context.Context, routeID, userID string, voteType int) (*VoteResult, error)
	GetVotes(ctx context.Context, routeID, callerID string) (*VoteResult, error)
}

type voteService struct {
	voteRepo  interfaces.VoteRepository
	routeRepo interfaces.RouteRepository
	logger    *logger.Logger
}

// VoteResult carries the recomputed counters plus the caller's current vote,
// nil when the caller holds none.
type VoteResult struct {
	Upvotes   int  `json:"upvotes"`
	Downvotes int  `json:"downvotes"`
	VoteScore int  `json:"vote_score"`
	UserVote  *int `json:"user_vote"`
}

func NewVoteService(voteRepo interfaces.VoteRepository, routeRepo interfaces.RouteRepository, log *logger.Logger) VoteService {
	return &voteService{
		voteRepo:  voteRepo,
		routeRepo: routeRepo,
		logger:    log,
	}
}

func (s *voteService) CastVote(ctx context.Context, routeID, userID string, voteType int) (*VoteResult, error) {
	route, err := s.routeRepo.GetByID(ctx, routeID)
	if err != nil {
		if err == interfaces.ErrNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	// Private routes take no votes, not even from their owner.
	if !route.IsPublic {
		return nil, ErrForbidden
	}

	if voteType > 0 {
		voteType = utils.VoteUp
	} else {
		voteType = utils.VoteDown
	}

	var userVote *int

	existing, err := s.voteRepo.GetByRouteAndUser(ctx, routeID, userID)
	switch {
	case err == interfaces.ErrNotFound:
		vote := &models.Vote{
			VoteID:   uuid.New().String(),
			RouteID:  routeID,
			UserID:   userID,
			VoteType: voteType,
		}
		if err := s.voteRepo.Create(ctx, vote); err != nil {
			return nil, err
		}
		userVote = &voteType

	case err != nil:
		return nil, err

	case existing.VoteType == voteType:
		// Same vote again removes it.
		if err := s.voteRepo.Delete(ctx, existing.VoteID); err != nil {
			return nil, err
		}

	default:
		if err := s.voteRepo.UpdateType(ctx, existing.VoteID, voteType); err != nil {
			return nil, err
		}
		userVote = &voteType
	}

	counts, err := s.recomputeCounts(ctx, routeID)
	if err != nil {
		return nil, err
	}

	return &VoteResult{
		Upvotes:   counts.Upvotes,
		Downvotes: counts.Downvotes,
		VoteScore: counts.VoteScore,
		UserVote:  userVote,
	}, nil
}

func (s *voteService) GetVotes(ctx context.Context, routeID, callerID string) (*VoteResult, error) {
	route, err := s.routeRepo.GetByID(ctx, routeID)
	if err != nil {
		if err == interfaces.ErrNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !route.IsPublic {
		return nil, ErrForbidden
	}

	result := &VoteResult{
		Upvotes:   route.Upvotes,
		Downvotes: route.Downvotes,
		VoteScore: route.VoteScore,
	}

	if callerID != "" {
		if vote, err := s.voteRepo.GetByRouteAndUser(ctx, routeID, callerID); err == nil {
			result.UserVote = &vote.VoteType
		}
	}

	return result, nil
}

// recomputeCounts rebuilds the route's counters from the votes collection and
// stores them back on the route document.
func (s *voteService) recomputeCounts(ctx context.Context, routeID string) (models.VoteCounts, error) {
	upvotes, err := s.voteRepo.CountByType(ctx, routeID, utils.VoteUp)
	if err != nil {
		return models.VoteCounts{}, err
	}

	downvotes, err := s.voteRepo.CountByType(ctx, routeID, utils.VoteDown)
	if err != nil {
		return models.VoteCounts{}, err
	}

	counts := models.VoteCounts{
		Upvotes:   int(upvotes),
		Downvotes: int(downvotes),
		VoteScore: int(upvotes - downvotes),
	}

	if err := s.routeRepo.UpdateVoteCounts(ctx, routeID, counts); err != nil {
		return models.VoteCounts{}, err
	}

	return counts, nil
}
