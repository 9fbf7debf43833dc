package repository

import (
	"context"

	"github.com/mr1hm/go-hazard-maps/internal/models"
)

// DatasetRepository writes and lists dataset records. AddDataset assigns
// the store's id to the passed record.
type DatasetRepository interface {
	AddDataset(ctx context.Context, d *models.HazardDataset) error
	ListDatasets(ctx context.Context) ([]models.HazardDataset, error)
}

// FeatureRepository writes and lists susceptibility features. The store
// keeps one table per dataset type; ListFeatures scans the matching table
// in insertion order.
type FeatureRepository interface {
	AddFeature(ctx context.Context, f *models.SusceptibilityFeature) error
	ListFeatures(ctx context.Context, t models.DatasetType) ([]models.SusceptibilityFeature, error)
}
