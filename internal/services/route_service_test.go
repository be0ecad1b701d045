package services

import (
	"context"
	"strings"
	"testing"

	"cycleroute/internal/models"
	"cycleroute/internal/utils"
)

func newRouteFixture(t *testing.T) (RouteService, *fakeRouteRepo) {
	t.Helper()
	routeRepo := newFakeRouteRepo()
	svc := NewRouteService(routeRepo, "http://app.example.com", testLogger(t))
	return svc, routeRepo
}

func TestCreateAndGetRoute(t *testing.T) {
	svc, _ := newRouteFixture(t)
	ctx := context.Background()

	route, err := svc.CreateRoute(ctx, "alice", &CreateRouteRequest{
		Name: "morning loop",
		Locations: []models.Location{
			{Lat: 52.37, Lng: 4.89},
			{Lat: 52.38, Lng: 4.90},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if route.RouteID == "" {
		t.Fatalf("route id not assigned")
	}

	got, err := svc.GetRoute(ctx, route.RouteID, "alice")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "morning loop" || len(got.Locations) != 2 {
		t.Fatalf("unexpected route: %+v", got)
	}
}

func TestGetRouteGating(t *testing.T) {
	svc, routeRepo := newRouteFixture(t)
	ctx := context.Background()
	seedRoute(t, routeRepo, "private", "owner", false)
	seedRoute(t, routeRepo, "public", "owner", true)

	if _, err := svc.GetRoute(ctx, "private", "stranger"); err != ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := svc.GetRoute(ctx, "private", ""); err != ErrForbidden {
		t.Fatalf("expected ErrForbidden for anonymous, got %v", err)
	}
	if _, err := svc.GetRoute(ctx, "private", "owner"); err != nil {
		t.Fatalf("owner read: %v", err)
	}
	if _, err := svc.GetRoute(ctx, "public", ""); err != nil {
		t.Fatalf("public read: %v", err)
	}
	if _, err := svc.GetRoute(ctx, "missing", ""); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteRouteOwnership(t *testing.T) {
	svc, routeRepo := newRouteFixture(t)
	ctx := context.Background()
	seedRoute(t, routeRepo, "r1", "owner", true)

	if err := svc.DeleteRoute(ctx, "r1", "stranger"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for non-owner, got %v", err)
	}
	if err := svc.DeleteRoute(ctx, "r1", "owner"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.DeleteRoute(ctx, "r1", "owner"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestShareRoute(t *testing.T) {
	svc, routeRepo := newRouteFixture(t)
	ctx := context.Background()
	seedRoute(t, routeRepo, "r1", "owner", true)

	result, err := svc.ShareRoute(ctx, "r1")
	if err != nil {
		t.Fatalf("share: %v", err)
	}
	if result.ShareCount != 1 {
		t.Fatalf("share count not incremented: %d", result.ShareCount)
	}
	if !strings.HasPrefix(result.ShareURL, "http://app.example.com/routes/") {
		t.Fatalf("unexpected share url: %s", result.ShareURL)
	}
	if !strings.Contains(result.Facebook, "facebook.com") ||
		!strings.Contains(result.Twitter, "twitter.com") ||
		!strings.Contains(result.WhatsApp, "wa.me") {
		t.Fatalf("missing social links: %+v", result)
	}

	route, _ := routeRepo.GetByID(ctx, "r1")
	if route.ShareCount != 1 {
		t.Fatalf("share count not persisted: %d", route.ShareCount)
	}
}

func TestSetVisibility(t *testing.T) {
	svc, routeRepo := newRouteFixture(t)
	ctx := context.Background()
	seedRoute(t, routeRepo, "r1", "owner", false)

	if err := svc.SetVisibility(ctx, "r1", "stranger", true); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for non-owner, got %v", err)
	}
	if err := svc.SetVisibility(ctx, "r1", "owner", true); err != nil {
		t.Fatalf("set visibility: %v", err)
	}

	route, _ := routeRepo.GetByID(ctx, "r1")
	if !route.IsPublic {
		t.Fatalf("visibility not updated")
	}
}

func TestListPublicRoutes(t *testing.T) {
	svc, routeRepo := newRouteFixture(t)
	ctx := context.Background()
	seedRoute(t, routeRepo, "pub1", "owner", true)
	seedRoute(t, routeRepo, "pub2", "owner", true)
	seedRoute(t, routeRepo, "priv", "owner", false)

	routes, total, err := svc.ListPublicRoutes(ctx, utils.DefaultPaginationParams())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 2 || len(routes) != 2 {
		t.Fatalf("expected 2 public routes, got %d (total %d)", len(routes), total)
	}
}
