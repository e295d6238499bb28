package kdbush

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomPoints(n int, seed int64) (xs, ys []float64) {
	r := rand.New(rand.NewSource(seed))
	xs = make([]float64, n)
	ys = make([]float64, n)
	for i := range xs {
		xs[i] = r.Float64()
		ys[i] = r.Float64()
	}
	return xs, ys
}

func bruteRange(xs, ys []float64, minX, minY, maxX, maxY float64) map[int]bool {
	out := map[int]bool{}
	for i := range xs {
		if xs[i] >= minX && xs[i] <= maxX && ys[i] >= minY && ys[i] <= maxY {
			out[i] = true
		}
	}
	return out
}

func bruteWithin(xs, ys []float64, qx, qy, r float64) map[int]bool {
	out := map[int]bool{}
	r2 := r * r
	for i := range xs {
		if sqDist(xs[i], ys[i], qx, qy) <= r2 {
			out[i] = true
		}
	}
	return out
}

func toOriginalSet(b *KDBush, positions []int) map[int]bool {
	out := map[int]bool{}
	for _, p := range positions {
		out[b.OriginalIndex(p)] = true
	}
	return out
}

func TestBuildEmpty(t *testing.T) {
	b := Build(nil, nil, 64)
	require.Equal(t, 0, b.Len())
	assert.Empty(t, b.Range(0, 0, 1, 1, nil))
	assert.Empty(t, b.Within(0, 0, 1, nil))
}

func TestRangeMatchesBruteForce(t *testing.T) {
	for _, n := range []int{0, 1, 2, 10, 137, 2000} {
		xs, ys := randomPoints(n, int64(n)+1)
		for _, nodeSize := range []int{1, 8, 64} {
			b := Build(xs, ys, nodeSize)
			boxes := [][4]float64{
				{0, 0, 1, 1},
				{0.25, 0.25, 0.75, 0.75},
				{0.1, 0.6, 0.2, 0.9},
				{-1, -1, 2, 2},
				{0.5, 0.5, 0.5, 0.5},
			}
			for _, box := range boxes {
				got := toOriginalSet(b, b.Range(box[0], box[1], box[2], box[3], nil))
				want := bruteRange(xs, ys, box[0], box[1], box[2], box[3])
				assert.Equal(t, want, got, "n=%d nodeSize=%d box=%v", n, nodeSize, box)
			}
		}
	}
}

func TestWithinMatchesBruteForce(t *testing.T) {
	for _, n := range []int{0, 1, 2, 10, 137, 2000} {
		xs, ys := randomPoints(n, int64(n)+1000)
		for _, nodeSize := range []int{1, 8, 64} {
			b := Build(xs, ys, nodeSize)
			queries := [][3]float64{
				{0.5, 0.5, 0.1},
				{0.0, 0.0, 0.3},
				{1.0, 1.0, 0.05},
				{0.5, 0.5, 2.0},
			}
			for _, q := range queries {
				got := toOriginalSet(b, b.Within(q[0], q[1], q[2], nil))
				want := bruteWithin(xs, ys, q[0], q[1], q[2])
				assert.Equal(t, want, got, "n=%d nodeSize=%d query=%v", n, nodeSize, q)
			}
		}
	}
}

func TestBuildPreservesAllPoints(t *testing.T) {
	xs, ys := randomPoints(500, 42)
	b := Build(xs, ys, 16)
	seen := map[int]bool{}
	for i := 0; i < b.Len(); i++ {
		seen[b.OriginalIndex(i)] = true
	}
	require.Len(t, seen, 500)
	for i := 0; i < b.Len(); i++ {
		x, y := b.At(i)
		orig := b.OriginalIndex(i)
		assert.Equal(t, xs[orig], x)
		assert.Equal(t, ys[orig], y)
	}
}
