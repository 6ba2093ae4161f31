package service

import (
	"context"
	"sort"

	"gramin/internal/config"
	"gramin/internal/geo"
	"gramin/internal/models"
	"gramin/internal/util"
)

// PlacesClient looks up raw nearby places from a geodata provider
type PlacesClient interface {
	FindNearby(ctx context.Context, lat, lon float64, category string, radiusMeters int) ([]models.Place, error)
}

// PlacesService wraps a PlacesClient with the lookup policy: fixed radius,
// optional nearest-first ordering, at most util.MaxPlaces results, and no
// errors surfaced to the caller.
type PlacesService struct {
	client         PlacesClient
	radiusMeters   int
	sortByDistance bool
	logger         *util.Logger
}

// NewPlacesService creates a new places service
func NewPlacesService(cfg *config.Config, client PlacesClient) *PlacesService {
	return &PlacesService{
		client:         client,
		radiusMeters:   cfg.NearbyRadiusMeters,
		sortByDistance: cfg.NearbySortByDistance,
		logger:         util.NewLogger("PlacesService"),
	}
}

// FindNearby returns up to util.MaxPlaces places of the category around the
// point. Lookup failures are logged and yield an empty, non-nil slice.
func (ps *PlacesService) FindNearby(ctx context.Context, lat, lon float64, category string) []models.Place {
	places, err := ps.client.FindNearby(ctx, lat, lon, category, ps.radiusMeters)
	if err != nil {
		ps.logger.Error("Nearby places lookup failed", err, "category", category, "lat", lat, "lon", lon)
		return []models.Place{}
	}
	if places == nil {
		places = []models.Place{}
	}

	if ps.sortByDistance {
		sortByDistance(places, lat, lon)
	}

	if len(places) > util.MaxPlaces {
		places = places[:util.MaxPlaces]
	}

	ps.logger.KeyValue("nearby places found", "category", category, "count", len(places))
	return places
}

func sortByDistance(places []models.Place, lat, lon float64) {
	origin := geo.NewPoint(lat, lon)

	type ranked struct {
		place    models.Place
		distance float64
	}
	rs := make([]ranked, len(places))
	for i, p := range places {
		rs[i] = ranked{place: p, distance: geo.DistanceMeters(origin, geo.NewPoint(p.Lat, p.Lon))}
	}
	sort.SliceStable(rs, func(a, b int) bool { return rs[a].distance < rs[b].distance })

	for i, r := range rs {
		places[i] = r.place
	}
}
