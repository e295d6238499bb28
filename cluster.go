// Package supercluster organizes a static collection of 2D points into a
// hierarchy of clusters that can be queried efficiently at any map zoom
// level. It pre-computes one indexed level per zoom so that bounding-box,
// tile, and tree-walk queries run in sub-linear time against each level.
//
// The index is built once by Load and is read-only afterward: queries
// return fresh result slices and touch no shared mutable state, so a built
// index is safe to share across goroutines for reading. Load itself is not
// safe to call concurrently with queries on the same index.
package supercluster

import (
	"fmt"
	"math"
)

// Point is a single input to Load: caller coordinates plus the implicit
// payload handle (its position in the slice passed to Load).
//
// In LatLng mode X is longitude in [-180, 180] and Y is latitude in
// [-90, 90]; out-of-range values are clamped by projection, not rejected.
// In Cartesian mode X and Y should lie within the configured range for
// tile and bbox queries to reach them reliably.
type Point struct {
	X, Y float64
}

// Supercluster is a built pyramid of cluster levels, one per zoom from
// MinZoom to MaxZoom+1 (the raw, unclustered points). It is immutable and
// safe to query concurrently once Load returns.
type Supercluster struct {
	opts   Options
	total  uint32
	levels map[uint8]*level
}

// Load projects and indexes points, then builds the cluster pyramid from
// MaxZoom+1 down to MinZoom. It returns ErrInvalidInput if opts fails
// Validate or a point projects to a non-finite coordinate.
func Load(opts Options, points []Point) (*Supercluster, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("supercluster: load: %w: %w", ErrInvalidInput, err)
	}

	n := len(points)
	xs := make([]float64, n)
	ys := make([]float64, n)
	zoomArr := make([]uint8, n)
	idArr := make([]uint32, n)
	parentArr := make([]uint32, n)
	numPointsArr := make([]uint32, n)
	payloadArr := make([]uint32, n)

	proj := opts.coordinates()
	rawZoom := opts.MaxZoom + 1

	for i, p := range points {
		ux, uy := proj.Project(p.X, p.Y)
		if math.IsNaN(ux) || math.IsNaN(uy) || math.IsInf(ux, 0) || math.IsInf(uy, 0) {
			return nil, fmt.Errorf("supercluster: load: point %d: %w", i, ErrInvalidInput)
		}
		xs[i] = ux
		ys[i] = uy
		zoomArr[i] = rawZoom
		idArr[i] = uint32(i)
		parentArr[i] = noParent
		numPointsArr[i] = 1
		payloadArr[i] = uint32(i)
	}

	sc := &Supercluster{
		opts:   opts,
		total:  uint32(n),
		levels: make(map[uint8]*level, int(opts.MaxZoom-opts.MinZoom)+2),
	}

	rawLevel := buildLevel(xs, ys, zoomArr, idArr, parentArr, numPointsArr, payloadArr, int(opts.NodeSize))
	sc.levels[rawZoom] = rawLevel

	prev := rawLevel
	for z := int(opts.MaxZoom); z >= int(opts.MinZoom); z-- {
		next := clusterLevel(prev, uint8(z), opts)
		sc.levels[uint8(z)] = next
		prev = next
	}

	return sc, nil
}

// clusterLevel derives the level at zoom z by merging every unclaimed
// point of prev with its neighbors within the zoom-dependent pixel radius.
// It mutates prev.zoom and prev.parentID in place; prev must not have been
// exposed to any query yet when this runs (see the package doc).
func clusterLevel(prev *level, z uint8, opts Options) *level {
	r := opts.Radius / (opts.Extent * math.Pow(2, float64(z)))
	n := prev.len()

	var xs, ys []float64
	var originXs, originYs []float64
	var zoomArr []uint8
	var idArr, parentArr, numPointsArr, payloadArr []uint32

	var seq uint32
	var neighbors []int

	for pos := 0; pos < n; pos++ {
		if prev.zoom[pos] <= z {
			continue
		}
		prev.zoom[pos] = z

		ex, ey := prev.at(pos)
		neighbors = prev.index.Within(ex, ey, r, neighbors[:0])

		wSelf := prev.numPoints[pos]
		wTotal := wSelf

		survivors := neighbors[:0:0]
		for _, np := range neighbors {
			if prev.zoom[np] > z {
				survivors = append(survivors, np)
				wTotal += prev.numPoints[np]
			}
		}

		if wTotal < uint32(opts.MinPoints) {
			xs = append(xs, ex)
			ys = append(ys, ey)
			originXs = append(originXs, ex)
			originYs = append(originYs, ey)
			zoomArr = append(zoomArr, z)
			idArr = append(idArr, prev.id[pos])
			parentArr = append(parentArr, noParent)
			numPointsArr = append(numPointsArr, wSelf)
			payloadArr = append(payloadArr, prev.payload[pos])
			continue
		}

		wx := ex * float64(wSelf)
		wy := ey * float64(wSelf)
		for _, np := range survivors {
			nx, ny := prev.at(np)
			w := float64(prev.numPoints[np])
			wx += nx * w
			wy += ny * w
		}

		id := clusterID(z, seq)
		seq++

		xs = append(xs, wx/float64(wTotal))
		ys = append(ys, wy/float64(wTotal))
		originXs = append(originXs, ex)
		originYs = append(originYs, ey)
		zoomArr = append(zoomArr, z)
		idArr = append(idArr, id)
		parentArr = append(parentArr, noParent)
		numPointsArr = append(numPointsArr, wTotal)
		payloadArr = append(payloadArr, 0)

		prev.parentID[pos] = id
		for _, np := range survivors {
			prev.parentID[np] = id
			prev.zoom[np] = z
		}
	}

	return buildLevelWithOrigin(xs, ys, originXs, originYs, zoomArr, idArr, parentArr, numPointsArr, payloadArr, int(opts.NodeSize))
}

// Len returns the number of points passed to Load.
func (s *Supercluster) Len() int { return int(s.total) }

// Options returns the options the index was built with.
func (s *Supercluster) Options() Options { return s.opts }

// LevelStats reports, per zoom from MinZoom to MaxZoom+1, how many entries
// (points and clusters combined) that level's index holds. It is a
// diagnostic accessor with no bearing on query semantics.
func (s *Supercluster) LevelStats() map[uint8]int {
	out := make(map[uint8]int, len(s.levels))
	for z, lv := range s.levels {
		out[z] = lv.len()
	}
	return out
}

func (s *Supercluster) levelAt(z uint8) (*level, bool) {
	lv, ok := s.levels[z]
	return lv, ok
}

func (s *Supercluster) clampZoom(z int) uint8 {
	if z < int(s.opts.MinZoom) {
		return s.opts.MinZoom
	}
	if z > int(s.opts.MaxZoom)+1 {
		return s.opts.MaxZoom + 1
	}
	return uint8(z)
}
