package ingestion

import (
	"errors"
	"fmt"
)

// Run-level failures. Anything wrapping one of these aborts the whole
// upload; per-feature problems are collected as FeatureError values
// instead.
var (
	ErrNoShapefile            = errors.New("no .shp file found in the uploaded zip")
	ErrUnsupportedDatasetType = errors.New("unsupported dataset type")
	ErrUnsupportedGeometry    = errors.New("unsupported geometry type")
)

// FeatureError records a single feature that failed mid-run without
// aborting the batch. Index is the feature's position in the source file.
type FeatureError struct {
	Index   int    `json:"index"`
	Message string `json:"message"`
}

func (e FeatureError) Error() string {
	return fmt.Sprintf("feature %d: %s", e.Index, e.Message)
}
