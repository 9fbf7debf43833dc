package ingestion

import (
	"fmt"

	shp "github.com/jonas-p/go-shp"
	"github.com/paulmach/orb"
)

// shapeGeometry decodes one shapefile record into a structural geometry.
// Null and empty shapes decode to nil, which the ingest loop skips. Shape
// kinds the pipeline cannot represent are an error.
func shapeGeometry(s shp.Shape) (orb.Geometry, error) {
	switch v := s.(type) {
	case nil, *shp.Null:
		return nil, nil
	case *shp.Polygon:
		return polygonGeometry(v.Points, v.Parts), nil
	case *shp.PolygonZ:
		return polygonGeometry(v.Points, v.Parts), nil
	case *shp.PolygonM:
		return polygonGeometry(v.Points, v.Parts), nil
	case *shp.Point:
		return orb.Point{v.X, v.Y}, nil
	case *shp.PolyLine:
		return lineGeometry(v.Points, v.Parts), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedGeometry, s)
	}
}

// polygonGeometry splits the flat point array on the part offsets and
// groups rings into polygons. Shapefiles wind outer rings clockwise and
// holes counter-clockwise, so a clockwise ring opens a new polygon and
// following counter-clockwise rings are its holes.
func polygonGeometry(points []shp.Point, parts []int32) orb.Geometry {
	var polys []orb.Polygon
	for _, ring := range splitRings(points, parts) {
		if len(polys) > 0 && ring.Orientation() == orb.CCW {
			polys[len(polys)-1] = append(polys[len(polys)-1], ring)
			continue
		}
		polys = append(polys, orb.Polygon{ring})
	}
	switch len(polys) {
	case 0:
		return nil
	case 1:
		return polys[0]
	}
	return orb.MultiPolygon(polys)
}

func lineGeometry(points []shp.Point, parts []int32) orb.Geometry {
	rings := splitRings(points, parts)
	lines := make(orb.MultiLineString, 0, len(rings))
	for _, ring := range rings {
		lines = append(lines, orb.LineString(ring))
	}
	switch len(lines) {
	case 0:
		return nil
	case 1:
		return lines[0]
	}
	return lines
}

func splitRings(points []shp.Point, parts []int32) []orb.Ring {
	if len(parts) == 0 && len(points) > 0 {
		parts = []int32{0}
	}
	rings := make([]orb.Ring, 0, len(parts))
	for i, start := range parts {
		end := len(points)
		if i+1 < len(parts) && int(parts[i+1]) < end {
			end = int(parts[i+1])
		}
		if int(start) >= end || int(start) < 0 {
			continue
		}
		ring := make(orb.Ring, 0, end-int(start))
		for _, p := range points[start:end] {
			ring = append(ring, orb.Point{p.X, p.Y})
		}
		rings = append(rings, ring)
	}
	return rings
}

// transformGeometry shapes a decoded geometry into the stored form, a
// multi-polygon in the target spatial reference. Single polygons are
// promoted to a one-element multi-polygon; anything else is rejected.
func transformGeometry(g orb.Geometry) (orb.MultiPolygon, error) {
	switch v := g.(type) {
	case orb.Polygon:
		return orb.MultiPolygon{v}, nil
	case orb.MultiPolygon:
		return v, nil
	case nil:
		return nil, fmt.Errorf("%w: empty geometry", ErrUnsupportedGeometry)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedGeometry, g.GeoJSONType())
	}
}
