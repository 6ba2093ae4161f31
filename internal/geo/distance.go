// Package geo holds the small amount of geometry the places lookup needs.
package geo

import (
	"math"

	"github.com/twpayne/go-geom"
)

const earthRadiusMeters = 6371008.8

// NewPoint builds a WGS84 point. go-geom orders coordinates X (lon), Y (lat).
func NewPoint(lat, lon float64) *geom.Point {
	return geom.NewPointFlat(geom.XY, []float64{lon, lat})
}

// DistanceMeters returns the great-circle (haversine) distance between two points.
func DistanceMeters(a, b *geom.Point) float64 {
	lat1, lat2 := radians(a.Y()), radians(b.Y())
	dLat := lat2 - lat1
	dLon := radians(b.X() - a.X())

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusMeters * math.Asin(math.Min(1, math.Sqrt(h)))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
