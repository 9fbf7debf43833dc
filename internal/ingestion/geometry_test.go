package ingestion

import (
	"testing"

	shp "github.com/jonas-p/go-shp"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Winding follows the shapefile convention: outer rings clockwise, holes
// counter-clockwise.
var (
	outerCW  = []shp.Point{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}, {X: 0, Y: 0}}
	holeCCW  = []shp.Point{{X: 2, Y: 2}, {X: 8, Y: 2}, {X: 8, Y: 8}, {X: 2, Y: 8}, {X: 2, Y: 2}}
	secondCW = []shp.Point{{X: 20, Y: 20}, {X: 20, Y: 30}, {X: 30, Y: 30}, {X: 30, Y: 20}, {X: 20, Y: 20}}
)

func ringPoints(pts []shp.Point) orb.Ring {
	ring := make(orb.Ring, 0, len(pts))
	for _, p := range pts {
		ring = append(ring, orb.Point{p.X, p.Y})
	}
	return ring
}

func polygonShape(rings ...[]shp.Point) *shp.Polygon {
	var points []shp.Point
	var parts []int32
	for _, r := range rings {
		parts = append(parts, int32(len(points)))
		points = append(points, r...)
	}
	return &shp.Polygon{
		NumParts:  int32(len(parts)),
		NumPoints: int32(len(points)),
		Parts:     parts,
		Points:    points,
	}
}

func TestShapeGeometry_SingleRing(t *testing.T) {
	g, err := shapeGeometry(polygonShape(outerCW))
	require.NoError(t, err)

	poly, ok := g.(orb.Polygon)
	require.True(t, ok, "expected a polygon, got %T", g)
	require.Len(t, poly, 1)
	assert.Equal(t, ringPoints(outerCW), poly[0])
}

func TestShapeGeometry_PolygonWithHole(t *testing.T) {
	g, err := shapeGeometry(polygonShape(outerCW, holeCCW))
	require.NoError(t, err)

	poly, ok := g.(orb.Polygon)
	require.True(t, ok, "expected a polygon, got %T", g)
	require.Len(t, poly, 2)
	assert.Equal(t, ringPoints(outerCW), poly[0])
	assert.Equal(t, ringPoints(holeCCW), poly[1])
}

func TestShapeGeometry_TwoOuterRings(t *testing.T) {
	g, err := shapeGeometry(polygonShape(outerCW, secondCW))
	require.NoError(t, err)

	mp, ok := g.(orb.MultiPolygon)
	require.True(t, ok, "expected a multi-polygon, got %T", g)
	require.Len(t, mp, 2)
	assert.Equal(t, ringPoints(outerCW), mp[0][0])
	assert.Equal(t, ringPoints(secondCW), mp[1][0])
}

func TestShapeGeometry_Null(t *testing.T) {
	g, err := shapeGeometry(&shp.Null{})
	require.NoError(t, err)
	assert.Nil(t, g)
}

func TestShapeGeometry_EmptyPolygon(t *testing.T) {
	g, err := shapeGeometry(&shp.Polygon{})
	require.NoError(t, err)
	assert.Nil(t, g)
}

func TestShapeGeometry_UnsupportedShape(t *testing.T) {
	_, err := shapeGeometry(&shp.MultiPatch{})
	assert.ErrorIs(t, err, ErrUnsupportedGeometry)
}

func TestTransformGeometry(t *testing.T) {
	outer := orb.Polygon{ringPoints(outerCW)}

	t.Run("polygon promoted to multi-polygon", func(t *testing.T) {
		mp, err := transformGeometry(outer)
		require.NoError(t, err)
		assert.Equal(t, orb.MultiPolygon{outer}, mp)
	})

	t.Run("multi-polygon unchanged", func(t *testing.T) {
		in := orb.MultiPolygon{outer, {ringPoints(secondCW)}}
		mp, err := transformGeometry(in)
		require.NoError(t, err)
		assert.Equal(t, in, mp)
	})

	t.Run("point rejected", func(t *testing.T) {
		_, err := transformGeometry(orb.Point{1, 2})
		assert.ErrorIs(t, err, ErrUnsupportedGeometry)
	})

	t.Run("line rejected", func(t *testing.T) {
		_, err := transformGeometry(orb.LineString{{0, 0}, {1, 1}})
		assert.ErrorIs(t, err, ErrUnsupportedGeometry)
	})

	t.Run("nil rejected", func(t *testing.T) {
		_, err := transformGeometry(nil)
		assert.ErrorIs(t, err, ErrUnsupportedGeometry)
	})
}
