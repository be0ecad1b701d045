package services

import (
	"context"
	"errors"
	"io"
	"math"
	"sort"
	"sync"
	"time"

	"cycleroute/internal/models"
	"cycleroute/internal/repositories/interfaces"
	"cycleroute/internal/utils"
	"cycleroute/pkg/email"
	"cycleroute/pkg/logger"
	"cycleroute/pkg/places"
	"cycleroute/pkg/storage"
)

func testLogger(t interface{ Fatalf(string, ...interface{}) }) *logger.Logger {
	log, err := logger.NewLogger(&logger.Config{Level: logger.ErrorLevel, Format: "text"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return log
}

// fakeUserRepo keeps users in a map keyed by user id.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.CreatedAt = time.Now()
	clone := *user
	r.users[user.UserID] = &clone
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, userID string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[userID]; ok {
		clone := *user
		return &clone, nil
	}
	return nil, interfaces.ErrNotFound
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Username == username {
			clone := *user
			return &clone, nil
		}
	}
	return nil, interfaces.ErrNotFound
}

func (r *fakeUserRepo) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok {
		return interfaces.ErrNotFound
	}
	user.PasswordHash = passwordHash
	return nil
}

type fakeRouteRepo struct {
	mu     sync.Mutex
	routes map[string]*models.Route
}

func newFakeRouteRepo() *fakeRouteRepo {
	return &fakeRouteRepo{routes: make(map[string]*models.Route)}
}

func (r *fakeRouteRepo) Create(ctx context.Context, route *models.Route) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	route.CreatedAt = time.Now()
	clone := *route
	r.routes[route.RouteID] = &clone
	return nil
}

func (r *fakeRouteRepo) GetByID(ctx context.Context, routeID string) (*models.Route, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if route, ok := r.routes[routeID]; ok {
		clone := *route
		return &clone, nil
	}
	return nil, interfaces.ErrNotFound
}

func (r *fakeRouteRepo) GetByUserID(ctx context.Context, userID string) ([]*models.Route, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Route
	for _, route := range r.routes {
		if route.UserID == userID {
			clone := *route
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeRouteRepo) Delete(ctx context.Context, routeID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	route, ok := r.routes[routeID]
	if !ok || route.UserID != userID {
		return interfaces.ErrNotFound
	}
	delete(r.routes, routeID)
	return nil
}

func (r *fakeRouteRepo) ListPublic(ctx context.Context, params *utils.PaginationParams) ([]*models.Route, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Route
	for _, route := range r.routes {
		if route.IsPublic {
			clone := *route
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].VoteScore > out[j].VoteScore })
	return out, nil
}

func (r *fakeRouteRepo) CountPublic(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, route := range r.routes {
		if route.IsPublic {
			n++
		}
	}
	return n, nil
}

func (r *fakeRouteRepo) IncrementShareCount(ctx context.Context, routeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	route, ok := r.routes[routeID]
	if !ok {
		return interfaces.ErrNotFound
	}
	route.ShareCount++
	return nil
}

func (r *fakeRouteRepo) UpdateVisibility(ctx context.Context, routeID, userID string, isPublic bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	route, ok := r.routes[routeID]
	if !ok || route.UserID != userID {
		return interfaces.ErrNotFound
	}
	route.IsPublic = isPublic
	return nil
}

func (r *fakeRouteRepo) UpdateRatingStats(ctx context.Context, routeID string, stats models.RatingStats) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if route, ok := r.routes[routeID]; ok {
		route.AvgRating = stats.AvgRating
		route.ReviewCount = stats.ReviewCount
	}
	return nil
}

func (r *fakeRouteRepo) UpdateVoteCounts(ctx context.Context, routeID string, counts models.VoteCounts) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if route, ok := r.routes[routeID]; ok {
		route.Upvotes = counts.Upvotes
		route.Downvotes = counts.Downvotes
		route.VoteScore = counts.VoteScore
	}
	return nil
}

type fakePointRepo struct {
	mu     sync.Mutex
	points map[string]*models.CustomPoint
}

func newFakePointRepo() *fakePointRepo {
	return &fakePointRepo{points: make(map[string]*models.CustomPoint)}
}

func (r *fakePointRepo) Create(ctx context.Context, point *models.CustomPoint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	point.CreatedAt = time.Now()
	clone := *point
	r.points[point.PointID] = &clone
	return nil
}

func (r *fakePointRepo) GetByID(ctx context.Context, pointID string) (*models.CustomPoint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if point, ok := r.points[pointID]; ok {
		clone := *point
		return &clone, nil
	}
	return nil, interfaces.ErrNotFound
}

func (r *fakePointRepo) GetByUserID(ctx context.Context, userID string) ([]*models.CustomPoint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.CustomPoint
	for _, point := range r.points {
		if point.UserID == userID {
			clone := *point
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakePointRepo) Delete(ctx context.Context, pointID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	point, ok := r.points[pointID]
	if !ok || point.UserID != userID {
		return interfaces.ErrNotFound
	}
	delete(r.points, pointID)
	return nil
}

type fakeReviewRepo struct {
	mu      sync.Mutex
	reviews map[string]*models.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[string]*models.Review)}
}

func (r *fakeReviewRepo) Create(ctx context.Context, review *models.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	review.CreatedAt = time.Now()
	clone := *review
	r.reviews[review.ReviewID] = &clone
	return nil
}

func (r *fakeReviewRepo) GetByID(ctx context.Context, reviewID string) (*models.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if review, ok := r.reviews[reviewID]; ok {
		clone := *review
		return &clone, nil
	}
	return nil, interfaces.ErrNotFound
}

func (r *fakeReviewRepo) GetByRouteAndUser(ctx context.Context, routeID, userID string) (*models.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, review := range r.reviews {
		if review.RouteID == routeID && review.UserID == userID {
			clone := *review
			return &clone, nil
		}
	}
	return nil, interfaces.ErrNotFound
}

func (r *fakeReviewRepo) ListByRoute(ctx context.Context, routeID string, limit, skip int) ([]*models.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Review
	for _, review := range r.reviews {
		if review.RouteID == routeID {
			clone := *review
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if skip >= len(out) {
		return nil, nil
	}
	out = out[skip:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeReviewRepo) Overwrite(ctx context.Context, reviewID, content string, rating int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	review, ok := r.reviews[reviewID]
	if !ok {
		return interfaces.ErrNotFound
	}
	review.Content = content
	review.Rating = rating
	review.CreatedAt = time.Now()
	return nil
}

func (r *fakeReviewRepo) Delete(ctx context.Context, reviewID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	review, ok := r.reviews[reviewID]
	if !ok || review.UserID != userID {
		return interfaces.ErrNotFound
	}
	delete(r.reviews, reviewID)
	return nil
}

func (r *fakeReviewRepo) AggregateRating(ctx context.Context, routeID string) (models.RatingStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var sum, count int
	for _, review := range r.reviews {
		if review.RouteID == routeID {
			sum += review.Rating
			count++
		}
	}
	if count == 0 {
		return models.RatingStats{}, nil
	}
	avg := math.Round(float64(sum)/float64(count)*10) / 10
	return models.RatingStats{AvgRating: avg, ReviewCount: count}, nil
}

type fakeCommentRepo struct {
	mu       sync.Mutex
	comments map[string]*models.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[string]*models.Comment)}
}

func (r *fakeCommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	comment.CreatedAt = time.Now()
	clone := *comment
	r.comments[comment.CommentID] = &clone
	return nil
}

func (r *fakeCommentRepo) GetByID(ctx context.Context, commentID string) (*models.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if comment, ok := r.comments[commentID]; ok {
		clone := *comment
		return &clone, nil
	}
	return nil, interfaces.ErrNotFound
}

func matchThread(comment *models.Comment, routeID string, parentID *string) bool {
	if comment.RouteID != routeID {
		return false
	}
	if parentID == nil {
		return comment.ParentID == nil
	}
	return comment.ParentID != nil && *comment.ParentID == *parentID
}

func (r *fakeCommentRepo) ListByRoute(ctx context.Context, routeID string, parentID *string, limit, skip int) ([]*models.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Comment
	for _, comment := range r.comments {
		if matchThread(comment, routeID, parentID) {
			clone := *comment
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if skip >= len(out) {
		return nil, nil
	}
	out = out[skip:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeCommentRepo) CountByRoute(ctx context.Context, routeID string, parentID *string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, comment := range r.comments {
		if matchThread(comment, routeID, parentID) {
			n++
		}
	}
	return n, nil
}

func (r *fakeCommentRepo) Delete(ctx context.Context, commentID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	comment, ok := r.comments[commentID]
	if !ok || comment.UserID != userID {
		return interfaces.ErrNotFound
	}
	delete(r.comments, commentID)
	return nil
}

func (r *fakeCommentRepo) DeleteReplies(ctx context.Context, parentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, comment := range r.comments {
		if comment.ParentID != nil && *comment.ParentID == parentID {
			delete(r.comments, id)
		}
	}
	return nil
}

func (r *fakeCommentRepo) IncrementReplyCount(ctx context.Context, commentID string, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if comment, ok := r.comments[commentID]; ok {
		comment.ReplyCount += delta
	}
	return nil
}

func (r *fakeCommentRepo) AggregateRating(ctx context.Context, routeID string) (models.RatingStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var sum, count int
	for _, comment := range r.comments {
		if comment.RouteID == routeID && comment.ParentID == nil && comment.Rating > 0 {
			sum += comment.Rating
			count++
		}
	}
	if count == 0 {
		return models.RatingStats{}, nil
	}
	avg := math.Round(float64(sum)/float64(count)*10) / 10
	return models.RatingStats{AvgRating: avg, ReviewCount: count}, nil
}

type fakeVoteRepo struct {
	mu    sync.Mutex
	votes map[string]*models.Vote
}

func newFakeVoteRepo() *fakeVoteRepo {
	return &fakeVoteRepo{votes: make(map[string]*models.Vote)}
}

func (r *fakeVoteRepo) Create(ctx context.Context, vote *models.Vote) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	vote.CreatedAt = time.Now()
	clone := *vote
	r.votes[vote.VoteID] = &clone
	return nil
}

func (r *fakeVoteRepo) GetByRouteAndUser(ctx context.Context, routeID, userID string) (*models.Vote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, vote := range r.votes {
		if vote.RouteID == routeID && vote.UserID == userID {
			clone := *vote
			return &clone, nil
		}
	}
	return nil, interfaces.ErrNotFound
}

func (r *fakeVoteRepo) UpdateType(ctx context.Context, voteID string, voteType int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	vote, ok := r.votes[voteID]
	if !ok {
		return interfaces.ErrNotFound
	}
	vote.VoteType = voteType
	return nil
}

func (r *fakeVoteRepo) Delete(ctx context.Context, voteID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.votes[voteID]; !ok {
		return interfaces.ErrNotFound
	}
	delete(r.votes, voteID)
	return nil
}

func (r *fakeVoteRepo) CountByType(ctx context.Context, routeID string, voteType int) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, vote := range r.votes {
		if vote.RouteID == routeID && vote.VoteType == voteType {
			n++
		}
	}
	return n, nil
}

// fakeMailer records sent messages.
type fakeMailer struct {
	mu   sync.Mutex
	sent []*email.Message
	fail bool
}

func (m *fakeMailer) Send(ctx context.Context, msg *email.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return context.DeadlineExceeded
	}
	m.sent = append(m.sent, msg)
	return nil
}

// fakePlacesProvider answers every query with the configured places and
// counts provider calls.
type fakePlacesProvider struct {
	mu      sync.Mutex
	results []places.Place
	calls   int
}

func (p *fakePlacesProvider) NearbySearch(ctx context.Context, lat, lng float64, radius int, category string) ([]places.Place, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	return p.results, nil
}

// fakeStorage keeps uploaded objects in a map keyed by storage key.
type fakeStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
	fail    bool
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: make(map[string][]byte)}
}

func (f *fakeStorage) Upload(ctx context.Context, request *storage.UploadRequest) (*storage.UploadResponse, error) {
	if f.fail {
		return nil, errors.New("storage unavailable")
	}

	data, err := io.ReadAll(request.Reader)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	f.objects[request.Key] = data
	f.mu.Unlock()

	return &storage.UploadResponse{
		Key:  request.Key,
		URL:  "/uploads/" + request.Key,
		Size: int64(len(data)),
	}, nil
}

func (f *fakeStorage) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, key)
	return nil
}

func (f *fakeStorage) FileExists(ctx context.Context, key string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.objects[key]
	return ok, nil
}

func (f *fakeStorage) GetFileInfo(ctx context.Context, key string) (*storage.FileInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.objects[key]
	if !ok {
		return nil, errors.New("object not found")
	}
	return &storage.FileInfo{Key: key, Size: int64(len(data))}, nil
}
