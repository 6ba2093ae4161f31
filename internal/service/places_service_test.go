package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gramin/internal/config"
	"gramin/internal/models"
)

type fakePlacesClient struct {
	places []models.Place
	err    error
	radius int
}

func (f *fakePlacesClient) FindNearby(_ context.Context, _, _ float64, _ string, radiusMeters int) ([]models.Place, error) {
	f.radius = radiusMeters
	return f.places, f.err
}

func manyPlaces(n int) []models.Place {
	places := make([]models.Place, 0, n)
	for i := 0; i < n; i++ {
		// each one further north than the previous
		places = append(places, models.Place{Name: fmt.Sprintf("P%d", i), Lat: float64(i) * 0.01, Lon: 0})
	}
	return places
}

func TestPlacesService_TruncatesToSix(t *testing.T) {
	client := &fakePlacesClient{places: manyPlaces(10)}
	svc := NewPlacesService(&config.Config{NearbyRadiusMeters: 10000}, client)

	got := svc.FindNearby(context.Background(), 0, 0, "hospital")

	require.Len(t, got, 6)
	assert.Equal(t, "P0", got[0].Name)
	assert.Equal(t, "P5", got[5].Name)
	assert.Equal(t, 10000, client.radius)
}

func TestPlacesService_ClientErrorYieldsEmpty(t *testing.T) {
	client := &fakePlacesClient{err: errors.New("connection refused")}
	svc := NewPlacesService(&config.Config{NearbyRadiusMeters: 10000}, client)

	got := svc.FindNearby(context.Background(), 28.6, 77.2, "hospital")

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestPlacesService_NilBecomesEmpty(t *testing.T) {
	svc := NewPlacesService(&config.Config{NearbyRadiusMeters: 10000}, &fakePlacesClient{})

	got := svc.FindNearby(context.Background(), 28.6, 77.2, "hospital")

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestPlacesService_SortByDistance(t *testing.T) {
	// provider order is furthest first
	places := manyPlaces(8)
	for i, j := 0, len(places)-1; i < j; i, j = i+1, j-1 {
		places[i], places[j] = places[j], places[i]
	}

	svc := NewPlacesService(&config.Config{NearbyRadiusMeters: 10000, NearbySortByDistance: true}, &fakePlacesClient{places: places})

	got := svc.FindNearby(context.Background(), 0, 0, "hospital")

	require.Len(t, got, 6)
	for i := range got {
		assert.Equal(t, fmt.Sprintf("P%d", i), got[i].Name)
	}
}
