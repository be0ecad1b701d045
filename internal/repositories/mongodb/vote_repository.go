package mongodb

import (
	"context"
	"fmt"
	"time"

	"cycleroute/internal/models"
	"cycleroute/internal/repositories/interfaces"
	"cycleroute/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type voteRepository struct {
	collection *mongo.Collection
}

func NewVoteRepository(db *mongo.Database) interfaces.VoteRepository {
	return &voteRepository{
		collection: db.Collection(utils.CollectionVotes),
	}
}

func (r *voteRepository) Create(ctx context.Context, vote *models.Vote) error {
	vote.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, vote)
	if err != nil {
		return fmt.Errorf("failed to create vote: %w", err)
	}

	return nil
}

func (r *voteRepository) GetByRouteAndUser(ctx context.Context, routeID, userID string) (*models.Vote, error) {
	var vote models.Vote
	err := r.collection.FindOne(ctx, bson.M{"route_id": routeID, "user_id": userID}).Decode(&vote)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, interfaces.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get vote: %w", err)
	}

	return &vote, nil
}

func (r *voteRepository) UpdateType(ctx context.Context, voteID string, voteType int) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"vote_id": voteID},
		bson.M{"$set": bson.M{"vote_type": voteType, "created_at": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("failed to update vote: %w", err)
	}

	if result.MatchedCount == 0 {
		return interfaces.ErrNotFound
	}

	return nil
}

func (r *voteRepository) Delete(ctx context.Context, voteID string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"vote_id": voteID})
	if err != nil {
		return fmt.Errorf("failed to delete vote: %w", err)
	}

	if result.DeletedCount == 0 {
		return interfaces.ErrNotFound
	}

	return nil
}

func (r *voteRepository) CountByType(ctx context.Context, routeID string, voteType int) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"route_id": routeID, "vote_type": voteType})
	if err != nil {
		return 0, fmt.Errorf("failed to count votes: %w", err)
	}

	return count, nil
}
