// Package geo implements the two-phase radius filter used by session
// discovery: a cheap rectangular pre-filter pushed into SQL and a precise
// great-circle check applied to the survivors.
package geo

import "math"

const earthRadiusKm = 6371.0

type Point struct {
	Lat float64
	Lng float64
}

// BoundingBox is an axis-aligned lat/lng rectangle.
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

// NewBoundingBox returns a box approximating the radius around center.
// It is over-inclusive: every point within radiusKm of center lies inside
// the box, so the precise filter only ever shrinks the candidate set.
func NewBoundingBox(center Point, radiusKm float64) BoundingBox {
	if radiusKm < 0 {
		radiusKm = 0
	}

	latDelta := radiusKm / 111.0 // ~111km per degree of latitude

	// Longitude degrees shrink with latitude. Near the poles cos(lat)
	// approaches zero; clamp to the full longitude range rather than divide
	// toward infinity, keeping the box over-inclusive.
	cosLat := math.Cos(center.Lat * math.Pi / 180.0)
	var lngDelta float64
	if cosLat < 0.01 {
		lngDelta = 180.0
	} else {
		lngDelta = radiusKm / (111.0 * cosLat)
	}

	return BoundingBox{
		MinLat: center.Lat - latDelta,
		MaxLat: center.Lat + latDelta,
		MinLng: center.Lng - lngDelta,
		MaxLng: center.Lng + lngDelta,
	}
}

func (b BoundingBox) Contains(p Point) bool {
	return p.Lat >= b.MinLat && p.Lat <= b.MaxLat &&
		p.Lng >= b.MinLng && p.Lng <= b.MaxLng
}

// DistanceKm computes the haversine great-circle distance between two points.
// It is symmetric: DistanceKm(a, b) == DistanceKm(b, a).
func DistanceKm(a, b Point) float64 {
	lat1 := a.Lat * math.Pi / 180.0
	lat2 := b.Lat * math.Pi / 180.0
	dLat := (b.Lat - a.Lat) * math.Pi / 180.0
	dLng := (b.Lng - a.Lng) * math.Pi / 180.0

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLng*sinLng

	return 2 * earthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h)))
}

// WithinRadius reports whether p lies within radiusKm of center.
func WithinRadius(center, p Point, radiusKm float64) bool {
	return DistanceKm(center, p) <= radiusKm
}
