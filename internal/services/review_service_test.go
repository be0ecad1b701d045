package services

import (
	"context"
	"testing"

	"cycleroute/internal/models"
	"cycleroute/internal/utils"
)

func newReviewFixture(t *testing.T) (ReviewService, *fakeRouteRepo, *fakeReviewRepo, *fakeUserRepo) {
	t.Helper()
	routeRepo := newFakeRouteRepo()
	reviewRepo := newFakeReviewRepo()
	userRepo := newFakeUserRepo()
	svc := NewReviewService(reviewRepo, routeRepo, userRepo, testLogger(t))
	return svc, routeRepo, reviewRepo, userRepo
}

func TestSubmitReviewCreateAndOverwrite(t *testing.T) {
	svc, routeRepo, _, _ := newReviewFixture(t)
	ctx := context.Background()
	seedRoute(t, routeRepo, "r1", "owner", true)

	review, overwritten, err := svc.SubmitReview(ctx, "r1", "alice", &SubmitReviewRequest{Content: "great climb", Rating: 4})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if overwritten {
		t.Fatalf("first submission reported as overwrite")
	}

	route, _ := routeRepo.GetByID(ctx, "r1")
	if route.AvgRating != 4.0 || route.ReviewCount != 1 {
		t.Fatalf("rating not recomputed: avg=%v count=%d", route.AvgRating, route.ReviewCount)
	}

	// Second submission by the same user overwrites in place.
	second, overwritten, err := svc.SubmitReview(ctx, "r1", "alice", &SubmitReviewRequest{Content: "changed my mind", Rating: 2})
	if err != nil {
		t.Fatalf("resubmit: %v", err)
	}
	if !overwritten {
		t.Fatalf("second submission did not overwrite")
	}
	if second.ReviewID != review.ReviewID {
		t.Fatalf("overwrite created a new review")
	}

	route, _ = routeRepo.GetByID(ctx, "r1")
	if route.AvgRating != 2.0 || route.ReviewCount != 1 {
		t.Fatalf("rating not recomputed after overwrite: avg=%v count=%d", route.AvgRating, route.ReviewCount)
	}
}

func TestSubmitReviewClampsRating(t *testing.T) {
	svc, routeRepo, _, _ := newReviewFixture(t)
	ctx := context.Background()
	seedRoute(t, routeRepo, "r1", "owner", true)

	review, _, err := svc.SubmitReview(ctx, "r1", "alice", &SubmitReviewRequest{Content: "x", Rating: 99})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if review.Rating != utils.MaxRating {
		t.Fatalf("rating not clamped: %d", review.Rating)
	}
}

func TestSubmitReviewUnknownRoute(t *testing.T) {
	svc, _, _, _ := newReviewFixture(t)

	_, _, err := svc.SubmitReview(context.Background(), "missing", "alice", &SubmitReviewRequest{Content: "x", Rating: 3})
	if err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteReviewRecomputesAndZeroes(t *testing.T) {
	svc, routeRepo, _, _ := newReviewFixture(t)
	ctx := context.Background()
	seedRoute(t, routeRepo, "r1", "owner", true)

	review, _, err := svc.SubmitReview(ctx, "r1", "alice", &SubmitReviewRequest{Content: "x", Rating: 5})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if err := svc.DeleteReview(ctx, "r1", review.ReviewID, "alice"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	route, _ := routeRepo.GetByID(ctx, "r1")
	if route.AvgRating != 0 || route.ReviewCount != 0 {
		t.Fatalf("rating not zeroed after last delete: avg=%v count=%d", route.AvgRating, route.ReviewCount)
	}
}

func TestDeleteReviewOwnership(t *testing.T) {
	svc, routeRepo, _, _ := newReviewFixture(t)
	ctx := context.Background()
	seedRoute(t, routeRepo, "r1", "owner", true)

	review, _, err := svc.SubmitReview(ctx, "r1", "alice", &SubmitReviewRequest{Content: "x", Rating: 3})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if err := svc.DeleteReview(ctx, "r1", review.ReviewID, "mallory"); err != ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := svc.DeleteReview(ctx, "r1", "missing", "alice"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListReviewsGatingAndUsernames(t *testing.T) {
	svc, routeRepo, _, userRepo := newReviewFixture(t)
	ctx := context.Background()
	seedRoute(t, routeRepo, "private", "owner", false)

	_ = userRepo.Create(ctx, &models.User{UserID: "owner", Username: "theowner"})

	if _, _, err := svc.SubmitReview(ctx, "private", "owner", &SubmitReviewRequest{Content: "solo", Rating: 5}); err != nil {
		t.Fatalf("submit: %v", err)
	}

	// Strangers are blocked from private routes.
	if _, err := svc.ListReviews(ctx, "private", "stranger", utils.DefaultPaginationParams()); err != ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	list, err := svc.ListReviews(ctx, "private", "owner", utils.DefaultPaginationParams())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list.Reviews) != 1 {
		t.Fatalf("expected 1 review, got %d", len(list.Reviews))
	}
	if list.Reviews[0].Username != "theowner" {
		t.Fatalf("username not attached: %q", list.Reviews[0].Username)
	}
	if list.AvgRating != 5.0 || list.ReviewCount != 1 {
		t.Fatalf("stats wrong: %+v", list)
	}
}
