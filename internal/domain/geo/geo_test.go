//go:build unit

package geo_test

import (
	"math"
	"testing"

	"classbook/internal/domain/geo"

	"github.com/stretchr/testify/assert"
)

var (
	london = geo.Point{Lat: 51.5074, Lng: -0.1278}
	paris  = geo.Point{Lat: 48.8566, Lng: 2.3522}
	sydney = geo.Point{Lat: -33.8688, Lng: 151.2093}
)

func TestDistanceKm(t *testing.T) {
	t.Run("zero distance to itself", func(t *testing.T) {
		assert.Equal(t, 0.0, geo.DistanceKm(london, london))
	})

	t.Run("symmetric", func(t *testing.T) {
		assert.InDelta(t, geo.DistanceKm(london, paris), geo.DistanceKm(paris, london), 1e-9)
	})

	t.Run("known distances", func(t *testing.T) {
		// London to Paris is roughly 344km great-circle.
		assert.InDelta(t, 344, geo.DistanceKm(london, paris), 5)
		// London to Sydney is roughly 16990km.
		assert.InDelta(t, 16990, geo.DistanceKm(london, sydney), 50)
	})

	t.Run("one degree of latitude", func(t *testing.T) {
		a := geo.Point{Lat: 0, Lng: 0}
		b := geo.Point{Lat: 1, Lng: 0}
		assert.InDelta(t, 111.2, geo.DistanceKm(a, b), 1)
	})
}

func TestWithinRadius(t *testing.T) {
	assert.True(t, geo.WithinRadius(london, paris, 400))
	assert.False(t, geo.WithinRadius(london, paris, 300))
	assert.True(t, geo.WithinRadius(london, london, 0))
}

func TestNewBoundingBox(t *testing.T) {
	t.Run("box contains every point within the radius", func(t *testing.T) {
		center := london
		radius := 50.0
		box := geo.NewBoundingBox(center, radius)

		// Probe points around the circle boundary and interior.
		for deg := 0; deg < 360; deg += 15 {
			rad := float64(deg) * math.Pi / 180.0
			for _, frac := range []float64{0.25, 0.9, 0.999} {
				d := radius * frac
				p := geo.Point{
					Lat: center.Lat + (d/111.0)*math.Cos(rad),
					Lng: center.Lng + (d/(111.0*math.Cos(center.Lat*math.Pi/180.0)))*math.Sin(rad),
				}
				if geo.WithinRadius(center, p, radius) {
					assert.True(t, box.Contains(p), "point at bearing %d frac %v escaped the box", deg, frac)
				}
			}
		}
	})

	t.Run("negative radius collapses to the center", func(t *testing.T) {
		box := geo.NewBoundingBox(london, -10)
		assert.True(t, box.Contains(london))
		assert.False(t, box.Contains(paris))
	})

	t.Run("near the poles the longitude span opens fully", func(t *testing.T) {
		box := geo.NewBoundingBox(geo.Point{Lat: 89.9, Lng: 0}, 10)
		assert.True(t, box.Contains(geo.Point{Lat: 89.9, Lng: 179}))
		assert.True(t, box.Contains(geo.Point{Lat: 89.9, Lng: -179}))
	})
}

func TestBoundingBoxContains(t *testing.T) {
	box := geo.BoundingBox{MinLat: 0, MaxLat: 10, MinLng: 0, MaxLng: 10}

	assert.True(t, box.Contains(geo.Point{Lat: 5, Lng: 5}))
	assert.True(t, box.Contains(geo.Point{Lat: 0, Lng: 0}))
	assert.True(t, box.Contains(geo.Point{Lat: 10, Lng: 10}))
	assert.False(t, box.Contains(geo.Point{Lat: -0.1, Lng: 5}))
	assert.False(t, box.Contains(geo.Point{Lat: 5, Lng: 10.1}))
}
