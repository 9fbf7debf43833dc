package models

import "time"

// DatasetType identifies which susceptibility schema an uploaded
// shapefile follows.
type DatasetType string

const (
	DatasetTypeFlood        DatasetType = "flood"
	DatasetTypeLandslide    DatasetType = "landslide"
	DatasetTypeLiquefaction DatasetType = "liquefaction"
)

// ParseDatasetType validates a raw dataset type label. Matching is exact
// and case sensitive, so "Flood" is not a recognized type.
func ParseDatasetType(s string) (DatasetType, bool) {
	switch DatasetType(s) {
	case DatasetTypeFlood, DatasetTypeLandslide, DatasetTypeLiquefaction:
		return DatasetType(s), true
	}
	return "", false
}

// DisplayName returns the capitalized form used in generated dataset names.
func (t DatasetType) DisplayName() string {
	switch t {
	case DatasetTypeFlood:
		return "Flood"
	case DatasetTypeLandslide:
		return "Landslide"
	case DatasetTypeLiquefaction:
		return "Liquefaction"
	}
	return string(t)
}

// HazardDataset groups every feature that arrived in one upload.
type HazardDataset struct {
	ID         int64       `json:"id"`
	Name       string      `json:"name"`
	Type       DatasetType `json:"dataset_type"`
	FileName   string      `json:"file_name"`
	UploadedAt time.Time   `json:"upload_date"`
}
