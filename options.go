package supercluster

import (
	"fmt"

	"supercluster/projection"
)

// MaxSupportedZoom is the hard ceiling on MaxZoom enforced by
// Options.Validate. It sits below the limit of the cluster id packing
// scheme (5 low bits for zoom+1, which fits zooms up to 30; see clusterID
// in level.go).
const MaxSupportedZoom = 24

// Options configures a Supercluster index. The zero value is not usable;
// build one with DefaultOptions or NewOptions and the With* functional
// options, then call Validate (Load calls it for you).
type Options struct {
	// MinZoom is the coarsest zoom level the pyramid is built down to.
	MinZoom uint8
	// MaxZoom is the finest zoom level clusters are computed for; points
	// are indexed unclustered at MaxZoom+1.
	MaxZoom uint8
	// MinPoints is the minimum combined weight (including the seed point)
	// required for a cluster to form at a given zoom.
	MinPoints uint16
	// Radius is the clustering radius in extent pixels at each zoom level.
	Radius float64
	// Extent is the tile edge length in pixels used to scale Radius.
	Extent float64
	// NodeSize is the k-d tree leaf fan-out used by the static index.
	NodeSize uint16
	// Coordinates selects the projection: projection.LatLng{} (the
	// default) or a projection.Cartesian{...} range.
	Coordinates projection.System
}

// DefaultOptions returns the library defaults:
// MinZoom 0, MaxZoom 16, MinPoints 2, Radius 40, Extent 512, NodeSize 64,
// LatLng coordinates.
func DefaultOptions() Options {
	return Options{
		MinZoom:     0,
		MaxZoom:     16,
		MinPoints:   2,
		Radius:      40.0,
		Extent:      512.0,
		NodeSize:    64,
		Coordinates: projection.LatLng{},
	}
}

// Option mutates an Options value under construction.
type Option func(*Options)

// NewOptions builds an Options from DefaultOptions with the given
// functional options applied on top.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithZoomRange sets MinZoom and MaxZoom.
func WithZoomRange(minZoom, maxZoom uint8) Option {
	return func(o *Options) {
		o.MinZoom = minZoom
		o.MaxZoom = maxZoom
	}
}

// WithMinPoints sets MinPoints.
func WithMinPoints(minPoints uint16) Option {
	return func(o *Options) { o.MinPoints = minPoints }
}

// WithRadius sets Radius.
func WithRadius(radius float64) Option {
	return func(o *Options) { o.Radius = radius }
}

// WithExtent sets Extent.
func WithExtent(extent float64) Option {
	return func(o *Options) { o.Extent = extent }
}

// WithNodeSize sets NodeSize.
func WithNodeSize(nodeSize uint16) Option {
	return func(o *Options) { o.NodeSize = nodeSize }
}

// WithCoordinates sets the coordinate system.
func WithCoordinates(system projection.System) Option {
	return func(o *Options) { o.Coordinates = system }
}

// Validate checks that the options satisfy the documented invariants:
// 0 <= MinZoom <= MaxZoom <= 24, MinPoints >= 1, Radius > 0, Extent > 0,
// NodeSize >= 1, and (for Cartesian coordinates) Min < Max on each axis.
func (o Options) Validate() error {
	if o.MinZoom > o.MaxZoom {
		return fmt.Errorf("supercluster: min_zoom (%d) must be <= max_zoom (%d)", o.MinZoom, o.MaxZoom)
	}
	if o.MaxZoom > MaxSupportedZoom {
		return fmt.Errorf("supercluster: max_zoom (%d) exceeds the supported maximum (%d)", o.MaxZoom, MaxSupportedZoom)
	}
	if o.MinPoints < 1 {
		return fmt.Errorf("supercluster: min_points must be >= 1, got %d", o.MinPoints)
	}
	if o.Radius <= 0 {
		return fmt.Errorf("supercluster: radius must be > 0, got %f", o.Radius)
	}
	if o.Extent <= 0 {
		return fmt.Errorf("supercluster: extent must be > 0, got %f", o.Extent)
	}
	if o.NodeSize < 1 {
		return fmt.Errorf("supercluster: node_size must be >= 1, got %d", o.NodeSize)
	}
	if c, ok := o.Coordinates.(projection.Cartesian); ok {
		if c.MinX >= c.MaxX {
			return fmt.Errorf("supercluster: cartesian min_x (%f) must be < max_x (%f)", c.MinX, c.MaxX)
		}
		if c.MinY >= c.MaxY {
			return fmt.Errorf("supercluster: cartesian min_y (%f) must be < max_y (%f)", c.MinY, c.MaxY)
		}
	}
	return nil
}

func (o Options) coordinates() projection.System {
	if o.Coordinates == nil {
		return projection.LatLng{}
	}
	return o.Coordinates
}
