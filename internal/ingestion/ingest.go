package ingestion

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mr1hm/go-hazard-maps/internal/models"
)

// extractFunc pulls the dataset-type-specific attributes off one feature.
type extractFunc func(src featureSource, row int) attributes

// attributes carries the raw classification plus the optional measures a
// dataset type persists.
type attributes struct {
	code        string
	shapeLength *float64
	shapeArea   *float64
	origFID     *int64
}

// ingestFeatures walks the source feature by feature: skip null
// geometries, normalize the classification, shape the geometry, persist.
// A failing feature is recorded and skipped so one bad record never takes
// down the batch. A reader error aborts the run; rows already written
// stay written.
func (p *Pipeline) ingestFeatures(ctx context.Context, src featureSource, dataset *models.HazardDataset, extract extractFunc) (int, []FeatureError, error) {
	created := 0
	var errs []FeatureError

	fail := func(idx int, err error) {
		slog.Warn("skipping feature", "dataset", dataset.ID, "feature", idx, "error", err)
		p.metrics.FeatureErrors.WithLabelValues(string(dataset.Type)).Inc()
		errs = append(errs, FeatureError{Index: idx, Message: err.Error()})
	}

	for src.Next() {
		idx, shape := src.Shape()

		geom, err := shapeGeometry(shape)
		if err != nil {
			fail(idx, err)
			continue
		}
		if geom == nil {
			slog.Debug("feature has no geometry", "dataset", dataset.ID, "feature", idx)
			p.metrics.FeaturesSkipped.WithLabelValues(string(dataset.Type)).Inc()
			continue
		}

		mp, err := transformGeometry(geom)
		if err != nil {
			fail(idx, err)
			continue
		}

		attrs := extract(src, idx)
		feature := &models.SusceptibilityFeature{
			DatasetID:    dataset.ID,
			DatasetType:  dataset.Type,
			Code:         NormalizeCode(attrs.code, dataset.Type),
			OriginalCode: attrs.code,
			ShapeLength:  attrs.shapeLength,
			ShapeArea:    attrs.shapeArea,
			OrigFID:      attrs.origFID,
			SRID:         models.TargetSRID,
			Geometry:     mp,
		}
		if err := p.features.AddFeature(ctx, feature); err != nil {
			fail(idx, err)
			continue
		}
		created++
	}
	if err := src.Err(); err != nil {
		return created, errs, fmt.Errorf("error reading shapefile: %w", err)
	}
	return created, errs, nil
}
