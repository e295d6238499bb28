package supercluster

import "supercluster/kdbush"

// noParent marks an entry whose parent_id has not yet been assigned: either
// it hasn't been absorbed into a coarser cluster yet, or (at MinZoom) it
// never will be.
const noParent uint32 = 1<<32 - 1

// level is one zoom's worth of the cluster pyramid: a k-d index plus the
// parallel struct-of-arrays attributes for every entry at that zoom, from
// MaxZoom+1 (raw points) down to MinZoom (coarsest). All slices are kept in
// the index's build permutation.
type level struct {
	index *kdbush.KDBush

	zoom      []uint8
	id        []uint32
	parentID  []uint32
	numPoints []uint32
	payload   []uint32

	// originX, originY hold the coordinates each entry was queried around
	// when it was formed: its own projected position for a raw point or a
	// carried-over singleton, or the seed's position for a cluster (which
	// differs from the cluster's own, weighted-centroid x/y). GetChildren
	// and GetLeaves must re-query around the origin, not the centroid: a
	// centroid can drift outside radius r of a member that was within r of
	// the seed, which would otherwise silently drop that member.
	originX, originY []float64

	// idToPos resolves a cluster id to its position in the build
	// permutation, since the k-d sort does not preserve generation order.
	// Only cluster entries (numPoints > 1) are registered: a raw point's id
	// is its original index, which can equal a packed cluster id.
	idToPos map[uint32]int
}

// buildLevel indexes the given unordered attribute arrays and reorders
// them into the resulting build permutation.
func buildLevel(xs, ys []float64, zoom []uint8, id, parentID, numPoints, payload []uint32, nodeSize int) *level {
	return buildLevelWithOrigin(xs, ys, xs, ys, zoom, id, parentID, numPoints, payload, nodeSize)
}

// buildLevelWithOrigin is buildLevel with explicit origin coordinates,
// distinct from (x, y) for newly-formed clusters (see level.originX).
func buildLevelWithOrigin(xs, ys, originXs, originYs []float64, zoom []uint8, id, parentID, numPoints, payload []uint32, nodeSize int) *level {
	idx := kdbush.Build(xs, ys, nodeSize)
	n := idx.Len()

	lv := &level{
		index:     idx,
		zoom:      make([]uint8, n),
		id:        make([]uint32, n),
		parentID:  make([]uint32, n),
		numPoints: make([]uint32, n),
		payload:   make([]uint32, n),
		originX:   make([]float64, n),
		originY:   make([]float64, n),
		idToPos:   make(map[uint32]int, n),
	}
	for pos := 0; pos < n; pos++ {
		orig := idx.OriginalIndex(pos)
		lv.zoom[pos] = zoom[orig]
		lv.id[pos] = id[orig]
		lv.parentID[pos] = parentID[orig]
		lv.numPoints[pos] = numPoints[orig]
		lv.payload[pos] = payload[orig]
		lv.originX[pos] = originXs[orig]
		lv.originY[pos] = originYs[orig]
		if numPoints[orig] > 1 {
			lv.idToPos[id[orig]] = pos
		}
	}
	return lv
}

func (l *level) len() int { return l.index.Len() }

func (l *level) at(pos int) (x, y float64) { return l.index.At(pos) }

// origin returns the coordinates the entry at pos was queried around when
// it was formed (see level.originX).
func (l *level) origin(pos int) (x, y float64) { return l.originX[pos], l.originY[pos] }

// posForID returns the build position of the entry with the given id, and
// whether it was found.
func (l *level) posForID(id uint32) (int, bool) {
	pos, ok := l.idToPos[id]
	return pos, ok
}

// clusterID packs the zoom that produced a cluster and its within-level
// sequence number into a single id: cluster_id = (seq << 5) | (z + 1).
func clusterID(z uint8, seq uint32) uint32 {
	return (seq << 5) | (uint32(z) + 1)
}

// decodeClusterID splits an id back into the zoom of the level to look
// into and the entry's sequence number within that level.
func decodeClusterID(id uint32) (z uint8, seq uint32) {
	z = uint8((id & 31) - 1)
	seq = id >> 5
	return z, seq
}
