package request

import (
	"classbook/internal/domain/geo"
	"classbook/internal/usecase/queries"
)

// ListSessionsQuery carries the discovery filters. Lat/Lng/Radius form one
// optional unit: radius without a center (or vice versa) is a validation error
// handled by the handler.
type ListSessionsQuery struct {
	Lat      *float64 `form:"lat" binding:"omitempty,min=-90,max=90"`
	Lng      *float64 `form:"lng" binding:"omitempty,min=-180,max=180"`
	RadiusKm *float64 `form:"radius_km" binding:"omitempty,gt=0,max=500"`
	Category *string  `form:"category" binding:"omitempty,max=100"`
	Tier     *string  `form:"tier" binding:"omitempty,oneof=none basic performance champion"`
}

func (q *ListSessionsQuery) HasPartialGeo() bool {
	set := 0
	if q.Lat != nil {
		set++
	}
	if q.Lng != nil {
		set++
	}
	if q.RadiusKm != nil {
		set++
	}
	return set != 0 && set != 3
}

func (q *ListSessionsQuery) ToFilter() queries.SessionFilter {
	filter := queries.SessionFilter{
		CategorySlug: q.Category,
		TierLevel:    q.Tier,
	}
	if q.Lat != nil && q.Lng != nil && q.RadiusKm != nil {
		filter.Near = &geo.Point{Lat: *q.Lat, Lng: *q.Lng}
		filter.RadiusKm = *q.RadiusKm
	}
	return filter
}
