package supercluster

// Descriptor is one entry returned by GetClusters, GetChildren, or
// GetLeaves: either a cluster (Weight > 1) or an original input point
// (Weight == 1), with coordinates unprojected into the caller's
// coordinate system.
type Descriptor struct {
	Cluster bool
	X, Y    float64
	Weight  uint32
	// ID is the cluster id, valid when Cluster is true.
	ID uint32
	// Payload is the index into the slice passed to Load, valid when
	// Cluster is false.
	Payload uint32
}

// IsCluster reports whether this descriptor represents a cluster rather
// than a single original point.
func (d Descriptor) IsCluster() bool { return d.Cluster }

// NumPoints returns the number of original input points this descriptor
// represents: 1 for a raw point, the cluster's combined weight otherwise.
func (d Descriptor) NumPoints() uint32 { return d.Weight }

// TileFeature is one entry returned by GetTile, with coordinates quantized
// to tile-local integer pixels. Entries inside the tile fall in
// [0, extent]; entries in the radius-wide buffer around it fall up to
// radius pixels outside that range.
type TileFeature struct {
	Cluster bool
	X, Y    int
	Weight  uint32
	ID      uint32
	Payload uint32
}

// IsCluster reports whether this feature represents a cluster rather than
// a single original point.
func (f TileFeature) IsCluster() bool { return f.Cluster }

// NumPoints returns the number of original input points this feature
// represents: 1 for a raw point, the cluster's combined weight otherwise.
func (f TileFeature) NumPoints() uint32 { return f.Weight }
