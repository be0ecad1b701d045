package services

import (
	"context"
	"testing"

	"cycleroute/internal/repositories/interfaces"
	"cycleroute/internal/utils"
)

func newCommentFixture(t *testing.T) (CommentService, *fakeRouteRepo, *fakeCommentRepo) {
	t.Helper()
	routeRepo := newFakeRouteRepo()
	commentRepo := newFakeCommentRepo()
	userRepo := newFakeUserRepo()
	svc := NewCommentService(commentRepo, routeRepo, userRepo, testLogger(t))
	return svc, routeRepo, commentRepo
}

func TestCreateCommentRecomputesRating(t *testing.T) {
	svc, routeRepo, _ := newCommentFixture(t)
	ctx := context.Background()
	seedRoute(t, routeRepo, "r1", "owner", true)

	if _, err := svc.CreateComment(ctx, "r1", "alice", &CreateCommentRequest{Content: "nice", Rating: 4}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.CreateComment(ctx, "r1", "bob", &CreateCommentRequest{Content: "meh", Rating: 3}); err != nil {
		t.Fatalf("create: %v", err)
	}

	route, _ := routeRepo.GetByID(ctx, "r1")
	if route.AvgRating != 3.5 || route.ReviewCount != 2 {
		t.Fatalf("rating not recomputed: avg=%v count=%d", route.AvgRating, route.ReviewCount)
	}
}

func TestCreateCommentDefaultsRating(t *testing.T) {
	svc, routeRepo, _ := newCommentFixture(t)
	ctx := context.Background()
	seedRoute(t, routeRepo, "r1", "owner", true)

	comment, err := svc.CreateComment(ctx, "r1", "alice", &CreateCommentRequest{Content: "no rating given"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if comment.Rating != utils.MaxRating {
		t.Fatalf("expected default rating %d, got %d", utils.MaxRating, comment.Rating)
	}
}

func TestCreateReply(t *testing.T) {
	svc, routeRepo, commentRepo := newCommentFixture(t)
	ctx := context.Background()
	seedRoute(t, routeRepo, "r1", "owner", true)

	parent, err := svc.CreateComment(ctx, "r1", "alice", &CreateCommentRequest{Content: "parent", Rating: 5})
	if err != nil {
		t.Fatalf("create parent: %v", err)
	}

	reply, err := svc.CreateComment(ctx, "r1", "bob", &CreateCommentRequest{Content: "reply", ParentID: &parent.CommentID})
	if err != nil {
		t.Fatalf("create reply: %v", err)
	}
	if !reply.IsReply() {
		t.Fatalf("reply not marked as reply")
	}

	stored, _ := commentRepo.GetByID(ctx, parent.CommentID)
	if stored.ReplyCount != 1 {
		t.Fatalf("parent reply_count not bumped: %d", stored.ReplyCount)
	}
}

func TestCreateReplyRejectsMedia(t *testing.T) {
	svc, routeRepo, _ := newCommentFixture(t)
	ctx := context.Background()
	seedRoute(t, routeRepo, "r1", "owner", true)

	parent, err := svc.CreateComment(ctx, "r1", "alice", &CreateCommentRequest{Content: "parent"})
	if err != nil {
		t.Fatalf("create parent: %v", err)
	}

	_, err = svc.CreateComment(ctx, "r1", "bob", &CreateCommentRequest{
		Content:   "with media",
		ParentID:  &parent.CommentID,
		MediaURLs: []string{"http://example.com/a.jpg"},
	})
	if err != ErrMediaInReply {
		t.Fatalf("expected ErrMediaInReply, got %v", err)
	}
}

func TestCreateReplyUnknownParent(t *testing.T) {
	svc, routeRepo, _ := newCommentFixture(t)
	ctx := context.Background()
	seedRoute(t, routeRepo, "r1", "owner", true)

	missing := "no-such-comment"
	_, err := svc.CreateComment(ctx, "r1", "bob", &CreateCommentRequest{Content: "orphan", ParentID: &missing})
	if err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteCommentCascadesReplies(t *testing.T) {
	svc, routeRepo, commentRepo := newCommentFixture(t)
	ctx := context.Background()
	seedRoute(t, routeRepo, "r1", "owner", true)

	parent, _ := svc.CreateComment(ctx, "r1", "alice", &CreateCommentRequest{Content: "parent", Rating: 4})
	reply, _ := svc.CreateComment(ctx, "r1", "bob", &CreateCommentRequest{Content: "reply", ParentID: &parent.CommentID})

	if err := svc.DeleteComment(ctx, "r1", parent.CommentID, "alice"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := commentRepo.GetByID(ctx, reply.CommentID); err != interfaces.ErrNotFound {
		t.Fatalf("reply not cascaded: %v", err)
	}

	route, _ := routeRepo.GetByID(ctx, "r1")
	if route.AvgRating != 0 || route.ReviewCount != 0 {
		t.Fatalf("rating not zeroed: avg=%v count=%d", route.AvgRating, route.ReviewCount)
	}
}

func TestDeleteReplyDecrementsParent(t *testing.T) {
	svc, routeRepo, commentRepo := newCommentFixture(t)
	ctx := context.Background()
	seedRoute(t, routeRepo, "r1", "owner", true)

	parent, _ := svc.CreateComment(ctx, "r1", "alice", &CreateCommentRequest{Content: "parent"})
	reply, _ := svc.CreateComment(ctx, "r1", "bob", &CreateCommentRequest{Content: "reply", ParentID: &parent.CommentID})

	if err := svc.DeleteComment(ctx, "r1", reply.CommentID, "bob"); err != nil {
		t.Fatalf("delete reply: %v", err)
	}

	stored, _ := commentRepo.GetByID(ctx, parent.CommentID)
	if stored.ReplyCount != 0 {
		t.Fatalf("parent reply_count not decremented: %d", stored.ReplyCount)
	}
}

func TestDeleteCommentOwnership(t *testing.T) {
	svc, routeRepo, _ := newCommentFixture(t)
	ctx := context.Background()
	seedRoute(t, routeRepo, "r1", "owner", true)

	comment, _ := svc.CreateComment(ctx, "r1", "alice", &CreateCommentRequest{Content: "mine"})

	if err := svc.DeleteComment(ctx, "r1", comment.CommentID, "mallory"); err != ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := svc.DeleteComment(ctx, "wrong-route", comment.CommentID, "alice"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for mismatched route, got %v", err)
	}
}

func TestListCommentsTopLevelOnly(t *testing.T) {
	svc, routeRepo, _ := newCommentFixture(t)
	ctx := context.Background()
	seedRoute(t, routeRepo, "r1", "owner", true)

	parent, _ := svc.CreateComment(ctx, "r1", "alice", &CreateCommentRequest{Content: "parent", Rating: 4})
	_, _ = svc.CreateComment(ctx, "r1", "bob", &CreateCommentRequest{Content: "reply", ParentID: &parent.CommentID})

	list, err := svc.ListComments(ctx, "r1", "", utils.DefaultPaginationParams())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list.Comments) != 1 || list.Total != 1 {
		t.Fatalf("expected only the top-level comment, got %d (total %d)", len(list.Comments), list.Total)
	}

	replies, err := svc.ListReplies(ctx, "r1", parent.CommentID, utils.DefaultPaginationParams())
	if err != nil {
		t.Fatalf("list replies: %v", err)
	}
	if len(replies.Comments) != 1 || replies.Total != 1 {
		t.Fatalf("expected 1 reply, got %d", len(replies.Comments))
	}
}

func TestListCommentsPrivateRouteGating(t *testing.T) {
	svc, routeRepo, _ := newCommentFixture(t)
	ctx := context.Background()
	seedRoute(t, routeRepo, "private", "owner", false)

	if _, err := svc.CreateComment(ctx, "private", "owner", &CreateCommentRequest{Content: "owner note", Rating: 4}); err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.ListComments(ctx, "private", "stranger", utils.DefaultPaginationParams()); err != ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := svc.ListComments(ctx, "private", "", utils.DefaultPaginationParams()); err != ErrForbidden {
		t.Fatalf("expected ErrForbidden for anonymous caller, got %v", err)
	}

	list, err := svc.ListComments(ctx, "private", "owner", utils.DefaultPaginationParams())
	if err != nil {
		t.Fatalf("owner list: %v", err)
	}
	if len(list.Comments) != 1 {
		t.Fatalf("expected 1 comment for owner, got %d", len(list.Comments))
	}
}
