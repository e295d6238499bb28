// Package projection maps caller coordinates into the unit square
// [0,1]x[0,1] that the clustering index is built over, and back.
//
// Two coordinate systems are supported: LatLng (Web-Mercator, latitude
// clamped near the poles) and Cartesian (linear normalization over a
// caller-supplied range). Both are stateless, side-effect-free
// transformations.
package projection

import "math"

// System projects caller coordinates into the unit square and back.
type System interface {
	// Project maps a caller (x, y) — (lon, lat) for LatLng — into [0,1]x[0,1].
	Project(x, y float64) (ux, uy float64)
	// Unproject is the inverse of Project.
	Unproject(ux, uy float64) (x, y float64)
}

// LatLng is a Web-Mercator projection. Longitude is expected in
// [-180, 180] and latitude in [-90, 90]. Latitude is clamped to the unit
// square near the poles; longitude is not, so a caller passing values
// outside [-180, 180] gets a (ux, uy) outside the unit square in x.
type LatLng struct{}

// Project converts (lon, lat) in degrees to unit-square coordinates.
func (LatLng) Project(lon, lat float64) (ux, uy float64) {
	ux = lon/360 + 0.5

	if lat > 90 {
		lat = 90
	} else if lat < -90 {
		lat = -90
	}

	sinLat := math.Sin(lat * math.Pi / 180)
	uy = 0.5 - 0.25*math.Log((1+sinLat)/(1-sinLat))/math.Pi

	if uy < 0 {
		uy = 0
	} else if uy > 1 {
		uy = 1
	}
	return ux, uy
}

// Unproject converts unit-square coordinates back to (lon, lat) in degrees.
func (LatLng) Unproject(ux, uy float64) (lon, lat float64) {
	lon = (ux - 0.5) * 360
	y2 := (180 - uy*360) * math.Pi / 180
	lat = 360*math.Atan(math.Exp(y2))/math.Pi - 90
	return lon, lat
}

// Cartesian is a linear normalization over a caller-supplied bounding box.
// MinX must be < MaxX and MinY must be < MaxY.
type Cartesian struct {
	MinX, MinY, MaxX, MaxY float64
}

// Project linearly maps (x, y) from the configured range to [0,1]x[0,1].
// Points outside the configured range project outside [0,1]; the caller is
// responsible for keeping inputs inside range if tile queries should reach
// them.
func (c Cartesian) Project(x, y float64) (ux, uy float64) {
	ux = (x - c.MinX) / (c.MaxX - c.MinX)
	uy = (y - c.MinY) / (c.MaxY - c.MinY)
	return ux, uy
}

// Unproject is the inverse of Project.
func (c Cartesian) Unproject(ux, uy float64) (x, y float64) {
	x = c.MinX + ux*(c.MaxX-c.MinX)
	y = c.MinY + uy*(c.MaxY-c.MinY)
	return x, y
}
