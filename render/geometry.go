package render

import "math"

// TileAttribution is the fixed attribution text required by the tile
// provider contract.
const TileAttribution = "© OpenStreetMap contributors"

// BoundsOf returns the smallest box containing both points.
func BoundsOf(a, b Point) Bounds {
	return Bounds{
		MinLat: math.Min(a.Latitude, b.Latitude),
		MinLon: math.Min(a.Longitude, b.Longitude),
		MaxLat: math.Max(a.Latitude, b.Latitude),
		MaxLon: math.Max(a.Longitude, b.Longitude),
	}
}

// Center returns the midpoint of the bounds.
func (b Bounds) Center() Point {
	return Point{
		Latitude:  (b.MinLat + b.MaxLat) / 2,
		Longitude: (b.MinLon + b.MaxLon) / 2,
	}
}

// Contains reports whether the point lies inside the bounds.
func (b Bounds) Contains(p Point) bool {
	return p.Latitude >= b.MinLat && p.Latitude <= b.MaxLat &&
		p.Longitude >= b.MinLon && p.Longitude <= b.MaxLon
}

// HaversineKM returns the great-circle distance between two points in
// kilometers.
func HaversineKM(a, b Point) float64 {
	const R = 6371.0
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180
	la1 := a.Latitude * math.Pi / 180
	la2 := b.Latitude * math.Pi / 180
	h := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(la1)*math.Cos(la2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return R * c
}
