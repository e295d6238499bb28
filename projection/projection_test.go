package projection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLatLngOrigin(t *testing.T) {
	x, y := LatLng{}.Project(0, 0)
	assert.InDelta(t, 0.5, x, 1e-12)
	assert.InDelta(t, 0.5, y, 1e-12)
}

func TestLatLngRoundTrip(t *testing.T) {
	cases := [][2]float64{
		{0, 0}, {179.9, 45}, {-179.9, -45}, {45, 0}, {0, 60},
	}
	for _, c := range cases {
		ux, uy := LatLng{}.Project(c[0], c[1])
		lon, lat := LatLng{}.Unproject(ux, uy)
		assert.InDelta(t, c[0], lon, 1e-6)
		assert.InDelta(t, c[1], lat, 1e-6)
	}
}

func TestLatLngPoleClamp(t *testing.T) {
	_, yNorth := LatLng{}.Project(0, 90)
	assert.Equal(t, 0.0, yNorth)

	_, ySouth := LatLng{}.Project(0, -90)
	assert.Equal(t, 1.0, ySouth)

	_, yBeyondNorth := LatLng{}.Project(0, 120)
	assert.Equal(t, 0.0, yBeyondNorth)

	_, yBeyondSouth := LatLng{}.Project(0, -120)
	assert.Equal(t, 1.0, yBeyondSouth)
}

func TestCartesianRoundTrip(t *testing.T) {
	c := Cartesian{MinX: -100, MinY: -50, MaxX: 100, MaxY: 50}
	ux, uy := c.Project(0, 0)
	assert.InDelta(t, 0.5, ux, 1e-12)
	assert.InDelta(t, 0.5, uy, 1e-12)

	x, y := c.Unproject(ux, uy)
	assert.InDelta(t, 0.0, x, 1e-9)
	assert.InDelta(t, 0.0, y, 1e-9)
}

func TestCartesianOutsideRangeStillProjects(t *testing.T) {
	c := Cartesian{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}
	ux, uy := c.Project(20, -5)
	assert.Greater(t, ux, 1.0)
	assert.Less(t, uy, 0.0)
}
