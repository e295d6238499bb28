package feature

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"supercluster"
)

type stringFeatures []string

func (s stringFeatures) Len() int { return len(s) }
func (s stringFeatures) Coordinates(i int) (float64, float64) {
	return float64(i), float64(i) * 2
}

func TestPointsPreservesOrderAsPayload(t *testing.T) {
	src := stringFeatures{"a", "b", "c"}
	pts := Points(src)
	require.Len(t, pts, 3)
	for i, p := range pts {
		assert.Equal(t, float64(i), p.X)
		assert.Equal(t, float64(i)*2, p.Y)
	}
}

type sinkFeatures []string

func (s sinkFeatures) Feature(payload uint32) string { return s[payload] }

func TestResolveSkipsClusters(t *testing.T) {
	sink := sinkFeatures{"a", "b", "c"}
	descriptors := []supercluster.Descriptor{
		{Cluster: false, Payload: 1},
		{Cluster: true, ID: 42, Weight: 2},
		{Cluster: false, Payload: 0},
	}
	out := Resolve[string](sink, descriptors)
	require.Len(t, out, 3)
	assert.Equal(t, "b", out[0])
	assert.Equal(t, "", out[1])
	assert.Equal(t, "a", out[2])
}
