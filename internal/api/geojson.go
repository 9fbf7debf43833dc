package api

import (
	"github.com/paulmach/orb/geojson"

	"github.com/mr1hm/go-hazard-maps/internal/models"
)

// toFeatureCollection maps stored features onto a GeoJSON feature
// collection. Liquefaction sheets carry no shape measures, so their
// properties omit shape_area.
func toFeatureCollection(features []models.SusceptibilityFeature, t models.DatasetType) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for _, f := range features {
		feature := geojson.NewFeature(f.Geometry)
		feature.Properties = geojson.Properties{
			"susceptibility": f.Code,
			"original_code":  f.OriginalCode,
			"dataset_id":     f.DatasetID,
		}
		if t != models.DatasetTypeLiquefaction {
			feature.Properties["shape_area"] = f.ShapeArea
		}
		fc.Append(feature)
	}

	return fc
}
