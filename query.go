package supercluster

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"supercluster/projection"
)

// BBox is an axis-aligned bounding box in the caller's coordinate system:
// (MinX, MinY) to (MaxX, MaxY), i.e. (west, south) to (east, north) in
// LatLng mode.
type BBox struct {
	MinX, MinY, MaxX, MaxY float64
}

// GetClusters returns the clusters and points visible inside bbox at zoom,
// unprojected into the caller's coordinate system. zoom is clamped to
// [MinZoom, MaxZoom+1]. In LatLng mode, a bbox with MinX > MaxX is treated
// as spanning the antimeridian and is answered as the union of the two
// halves either side of it.
func (s *Supercluster) GetClusters(bbox BBox, zoom int) []Descriptor {
	z := s.clampZoom(zoom)
	lv, ok := s.levelAt(z)
	if !ok {
		return nil
	}
	proj := s.opts.coordinates()

	if bbox.MinX > bbox.MaxX {
		if _, isLatLng := proj.(projection.LatLng); isLatLng {
			west := BBox{MinX: bbox.MinX, MinY: bbox.MinY, MaxX: 180, MaxY: bbox.MaxY}
			east := BBox{MinX: -180, MinY: bbox.MinY, MaxX: bbox.MaxX, MaxY: bbox.MaxY}
			out := queryClusters(lv, proj, west)
			out = append(out, queryClusters(lv, proj, east)...)
			return out
		}
	}
	return queryClusters(lv, proj, bbox)
}

func queryClusters(lv *level, proj projection.System, bbox BBox) []Descriptor {
	minY, maxY := bbox.MinY, bbox.MaxY
	if _, isLatLng := proj.(projection.LatLng); isLatLng {
		minY = clampF(minY, -90, 90)
		maxY = clampF(maxY, -90, 90)
	}

	minUX, maxUY := unitPoint(proj, bbox.MinX, minY)
	maxUX, minUY := unitPoint(proj, bbox.MaxX, maxY)
	if minUX > maxUX {
		minUX, maxUX = maxUX, minUX
	}
	if minUY > maxUY {
		minUY, maxUY = maxUY, minUY
	}

	positions := lv.index.Range(minUX, minUY, maxUX, maxUY, nil)
	out := make([]Descriptor, 0, len(positions))
	for _, pos := range positions {
		out = append(out, descriptorFromLevel(lv, pos, proj))
	}
	return out
}

// unitPoint projects a single (x, y) pair into unit-square coordinates.
// Named for clarity at call sites that deliberately mix corners.
func unitPoint(proj projection.System, x, y float64) (ux, uy float64) {
	return proj.Project(x, y)
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func descriptorFromLevel(lv *level, pos int, proj projection.System) Descriptor {
	ux, uy := lv.at(pos)
	x, y := proj.Unproject(ux, uy)
	weight := lv.numPoints[pos]
	if weight > 1 {
		return Descriptor{Cluster: true, X: x, Y: y, Weight: weight, ID: lv.id[pos]}
	}
	return Descriptor{Cluster: false, X: x, Y: y, Weight: 1, Payload: lv.payload[pos]}
}

// GetTile returns the cluster/point features visible inside map tile
// (z, x, y) and within Radius pixels of its edges, in tile-local integer
// pixel coordinates (quantized by floor): [0, Extent] inside the tile,
// down to -Radius and up to Extent+Radius in the buffer around it.
// z, x, y follow the standard XYZ tile scheme: the
// world at zoom z is divided into 2^z by 2^z tiles. It returns
// ErrOutOfRange if x or y fall outside the tile grid at z.
func (s *Supercluster) GetTile(z uint8, x, y int) ([]TileFeature, error) {
	z2 := math.Pow(2, float64(z))
	if x < 0 || y < 0 || float64(x) >= z2 || float64(y) >= z2 {
		return nil, fmt.Errorf("supercluster: get_tile(%d,%d,%d): %w", z, x, y, ErrOutOfRange)
	}

	lv, ok := s.levelAt(s.clampZoom(int(z)))
	if !ok {
		return nil, nil
	}

	p := s.opts.Radius / s.opts.Extent
	left := (float64(x) - p) / z2
	right := (float64(x) + 1 + p) / z2
	top := (float64(y) - p) / z2
	bottom := (float64(y) + 1 + p) / z2

	positions := lv.index.Range(left, top, right, bottom, nil)
	out := make([]TileFeature, 0, len(positions))
	for _, pos := range positions {
		ux, uy := lv.at(pos)
		tx := int(math.Floor(s.opts.Extent * (ux*z2 - float64(x))))
		ty := int(math.Floor(s.opts.Extent * (uy*z2 - float64(y))))
		weight := lv.numPoints[pos]
		if weight > 1 {
			out = append(out, TileFeature{Cluster: true, X: tx, Y: ty, Weight: weight, ID: lv.id[pos]})
		} else {
			out = append(out, TileFeature{Cluster: false, X: tx, Y: ty, Weight: 1, Payload: lv.payload[pos]})
		}
	}
	return out, nil
}

// GetChildren returns the direct children of the cluster with the given
// id: the entries at the next-finer zoom whose parent_id resolved to it.
// It returns ErrClusterNotFound if id does not resolve to a cluster, or no
// children are found (a cluster with zero surviving children is itself a
// pyramid-corruption bug, not a valid state).
func (s *Supercluster) GetChildren(id uint32) ([]Descriptor, error) {
	lv, pos, ok := s.resolve(id)
	if !ok {
		return nil, fmt.Errorf("supercluster: get_children(%d): %w", id, ErrClusterNotFound)
	}
	z, _ := decodeClusterID(id)
	childLevel, ok := s.levelAt(z + 1)
	if !ok {
		return nil, fmt.Errorf("supercluster: get_children(%d): %w", id, ErrClusterNotFound)
	}

	cx, cy := lv.origin(pos)
	r := s.opts.Radius / (s.opts.Extent * math.Pow(2, float64(z)))
	positions := childLevel.index.Within(cx, cy, r, nil)
	sort.Ints(positions)

	proj := s.opts.coordinates()
	var out []Descriptor
	for _, p := range positions {
		if childLevel.parentID[p] == id {
			out = append(out, descriptorFromLevel(childLevel, p, proj))
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("supercluster: get_children(%d): %w", id, ErrClusterNotFound)
	}
	return out, nil
}

// GetLeaves returns up to limit original points contained in the cluster
// with the given id, skipping the first offset of them, in a deterministic
// (build-permutation) traversal order. It returns ErrClusterNotFound if id
// does not resolve to a cluster.
func (s *Supercluster) GetLeaves(id uint32, limit, offset int) ([]Descriptor, error) {
	lv, pos, ok := s.resolve(id)
	if !ok {
		return nil, fmt.Errorf("supercluster: get_leaves(%d): %w", id, ErrClusterNotFound)
	}
	if limit <= 0 {
		return nil, nil
	}

	proj := s.opts.coordinates()
	var out []Descriptor
	skipped := 0

	var walk func(lv *level, pos int) (stop bool)
	walk = func(lv *level, pos int) bool {
		if lv.numPoints[pos] == 1 {
			if skipped < offset {
				skipped++
				return false
			}
			out = append(out, descriptorFromLevel(lv, pos, proj))
			return len(out) >= limit
		}

		id := lv.id[pos]
		z, _ := decodeClusterID(id)
		childLevel, ok := s.levelAt(z + 1)
		if !ok {
			return false
		}
		cx, cy := lv.origin(pos)
		r := s.opts.Radius / (s.opts.Extent * math.Pow(2, float64(z)))
		positions := childLevel.index.Within(cx, cy, r, nil)
		sort.Ints(positions)
		for _, p := range positions {
			if childLevel.parentID[p] != id {
				continue
			}
			if walk(childLevel, p) {
				return true
			}
		}
		return false
	}
	walk(lv, pos)
	return out, nil
}

// GetClusterExpansionZoom returns the zoom at which the given cluster
// first breaks into more than one visible entity (or into a single raw
// point), by repeatedly descending through single-child clusters. It
// returns ErrClusterNotFound if id does not resolve to a cluster.
func (s *Supercluster) GetClusterExpansionZoom(id uint32) (uint8, error) {
	if _, _, ok := s.resolve(id); !ok {
		return 0, fmt.Errorf("supercluster: get_cluster_expansion_zoom(%d): %w", id, ErrClusterNotFound)
	}

	z, _ := decodeClusterID(id)
	for {
		children, err := s.GetChildren(id)
		if err != nil {
			if errors.Is(err, ErrClusterNotFound) {
				return z + 1, nil
			}
			return 0, err
		}
		if len(children) != 1 || !children[0].Cluster {
			return z + 1, nil
		}
		id = children[0].ID
		z, _ = decodeClusterID(id)
	}
}

func (s *Supercluster) resolve(id uint32) (*level, int, bool) {
	z, _ := decodeClusterID(id)
	lv, ok := s.levelAt(z)
	if !ok {
		return nil, 0, false
	}
	pos, ok := lv.posForID(id)
	return lv, pos, ok
}
