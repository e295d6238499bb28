// Package feature is the thin adapter boundary between the clustering
// core and a caller's own feature representation (e.g. GeoJSON). The core
// itself never parses or emits features: it consumes (x, y) pairs plus an
// opaque payload handle, and produces flat cluster/point descriptors. This
// package deliberately stays thin — no GeoJSON parsing, no builder façade —
// just the interfaces callers adapt their own feature types through.
package feature

import "supercluster"

// Source exposes a caller's feature collection as an ordered sequence of
// coordinates. Position i becomes payload handle i in the resulting
// Descriptor/TileFeature output.
type Source interface {
	Len() int
	Coordinates(i int) (x, y float64)
}

// Points converts a Source into the Point slice Load expects.
func Points(src Source) []supercluster.Point {
	n := src.Len()
	out := make([]supercluster.Point, n)
	for i := 0; i < n; i++ {
		x, y := src.Coordinates(i)
		out[i] = supercluster.Point{X: x, Y: y}
	}
	return out
}

// Sink resolves a query result's payload handle back to the caller's own
// feature representation.
type Sink[T any] interface {
	Feature(payload uint32) T
}

// Resolve maps a slice of descriptors back to caller features via sink,
// leaving clusters as their zero value of T since they carry no payload.
// Callers that need to distinguish clusters from points should inspect
// Descriptor.IsCluster before calling Resolve.
func Resolve[T any](sink Sink[T], descriptors []supercluster.Descriptor) []T {
	out := make([]T, len(descriptors))
	for i, d := range descriptors {
		if d.IsCluster() {
			continue
		}
		out[i] = sink.Feature(d.Payload)
	}
	return out
}
