package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"cycleroute/internal/models"
	"cycleroute/internal/utils"
	"cycleroute/pkg/cache"
	"cycleroute/pkg/logger"
	"cycleroute/pkg/places"
)

type POIService interface {
	GetCategories() []CategoryGroup
	FindNearRoute(ctx context.Context, request *NearRouteRequest) ([]places.Place, error)
}

type poiService struct {
	provider      places.Provider
	cache         cache.Cache
	defaultRadius int
	logger        *logger.Logger
}

type NearRouteRequest struct {
	Points     []models.Location `json:"points" binding:"required,min=2,dive,coordinates"`
	Categories []string          `json:"categories" binding:"required,min=1"`
	Radius     int               `json:"radius"`
}

type CategoryGroup struct {
	Group      string   `json:"group"`
	Categories []string `json:"categories"`
}

// categoryCatalogue follows the places provider's type vocabulary.
var categoryCatalogue = []CategoryGroup{
	{Group: "food & drink", Categories: []string{"cafe", "restaurant", "bakery", "bar"}},
	{Group: "leisure & outdoor", Categories: []string{"park", "tourist_attraction", "museum", "campground"}},
	{Group: "services", Categories: []string{"bicycle_store", "pharmacy", "atm", "gas_station"}},
	{Group: "facilities", Categories: []string{"parking", "convenience_store", "supermarket", "hospital"}},
}

func NewPOIService(provider places.Provider, cacheStore cache.Cache, defaultRadius int, log *logger.Logger) POIService {
	if defaultRadius <= 0 {
		defaultRadius = utils.DefaultPOIRadius
	}
	return &poiService{
		provider:      provider,
		cache:         cacheStore,
		defaultRadius: defaultRadius,
		logger:        log,
	}
}

func (s *poiService) GetCategories() []CategoryGroup {
	return categoryCatalogue
}

func (s *poiService) FindNearRoute(ctx context.Context, request *NearRouteRequest) ([]places.Place, error) {
	if len(request.Points) < 2 {
		return nil, ErrInvalidInput
	}
	if s.provider == nil {
		return nil, fmt.Errorf("places provider not configured")
	}

	radius := request.Radius
	if radius <= 0 {
		radius = s.defaultRadius
	}
	if radius > utils.MaxPOIRadius {
		radius = utils.MaxPOIRadius
	}

	categories := append([]string(nil), request.Categories...)
	sort.Strings(categories)

	samples := sampleRoutePoints(request.Points, utils.MaxPOISamples)

	seen := make(map[string]bool)
	results := []places.Place{}
	for _, point := range samples {
		found, err := s.searchPoint(ctx, point, radius, categories)
		if err != nil {
			return nil, err
		}
		for _, place := range found {
			if seen[place.PlaceID] {
				continue
			}
			seen[place.PlaceID] = true
			results = append(results, place)
		}
	}

	return results, nil
}

// searchPoint queries the provider for every category at one sample point,
// caching the combined result for a day.
func (s *poiService) searchPoint(ctx context.Context, point models.Location, radius int, categories []string) ([]places.Place, error) {
	key := fmt.Sprintf("%s%.5f:%.5f:%d:%s",
		utils.CachePOIPrefix, point.Lat, point.Lng, radius, strings.Join(categories, ","))

	var cached []places.Place
	if err := s.cache.Get(ctx, key, &cached); err == nil {
		return cached, nil
	}

	var found []places.Place
	for _, category := range categories {
		placesForCategory, err := s.provider.NearbySearch(ctx, point.Lat, point.Lng, radius, category)
		if err != nil {
			return nil, err
		}
		found = append(found, placesForCategory...)
	}

	if err := s.cache.Set(ctx, key, found, utils.POICacheTTL); err != nil {
		s.logger.WithError(err).Warn("failed to cache POI results")
	}

	return found, nil
}

// sampleRoutePoints picks at most max points along the route, always keeping
// the first and last.
func sampleRoutePoints(points []models.Location, max int) []models.Location {
	if len(points) <= max {
		return points
	}

	samples := make([]models.Location, 0, max)
	step := float64(len(points)-1) / float64(max-1)
	for i := 0; i < max; i++ {
		idx := int(math.Round(float64(i) * step))
		samples = append(samples, points[idx])
	}

	return samples
}
