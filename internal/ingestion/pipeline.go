package ingestion

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/mr1hm/go-hazard-maps/internal/models"
	"github.com/mr1hm/go-hazard-maps/internal/observability"
	"github.com/mr1hm/go-hazard-maps/internal/repository"
)

// Result reports a completed run. Per-feature errors ride along for
// visibility; they do not make the run a failure.
type Result struct {
	DatasetID      int64
	RecordsCreated int
	Errors         []FeatureError
}

// Pipeline owns the upload lifecycle: workspace allocation, archive
// extraction, dataset creation, feature ingestion and cleanup. Runs are
// synchronous; callers that want concurrency serialize above it.
type Pipeline struct {
	datasets repository.DatasetRepository
	features repository.FeatureRepository
	metrics  *observability.Metrics
	clock    clockwork.Clock

	// workDir is the parent for per-upload workspaces. Empty means the
	// system temp dir.
	workDir string
}

func NewPipeline(datasets repository.DatasetRepository, features repository.FeatureRepository, metrics *observability.Metrics, workDir string) *Pipeline {
	return &Pipeline{
		datasets: datasets,
		features: features,
		metrics:  metrics,
		clock:    clockwork.NewRealClock(),
		workDir:  workDir,
	}
}

// Process runs one archive through the full pipeline. A non-nil error
// marks a failed run; a non-nil Result may still carry per-feature errors.
func (p *Pipeline) Process(ctx context.Context, archive io.Reader, fileName, datasetType string) (*Result, error) {
	dsType, ok := models.ParseDatasetType(datasetType)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDatasetType, datasetType)
	}

	result, err := p.run(ctx, archive, fileName, dsType)
	if err != nil {
		slog.Error("shapefile processing failed", "dataset_type", dsType, "file", fileName, "error", err)
		p.metrics.UploadsTotal.WithLabelValues(string(dsType), "failure").Inc()
		return nil, err
	}
	p.metrics.UploadsTotal.WithLabelValues(string(dsType), "success").Inc()
	return result, nil
}

func (p *Pipeline) run(ctx context.Context, archive io.Reader, fileName string, dsType models.DatasetType) (*Result, error) {
	start := time.Now()

	workspace, err := os.MkdirTemp(p.workDir, "hazard-upload-")
	if err != nil {
		return nil, fmt.Errorf("error creating workspace: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(workspace); err != nil {
			slog.Warn("workspace cleanup failed", "workspace", workspace, "error", err)
		}
	}()

	slog.Info("extracting archive", "dataset_type", dsType, "file", fileName)
	shpPath, err := extractArchive(workspace, archive)
	if err != nil {
		return nil, err
	}

	dataset := &models.HazardDataset{
		Name:       fmt.Sprintf("Uploaded %s Data", dsType.DisplayName()),
		Type:       dsType,
		FileName:   fileName,
		UploadedAt: p.clock.Now(),
	}
	if err := p.datasets.AddDataset(ctx, dataset); err != nil {
		return nil, fmt.Errorf("error creating dataset record: %w", err)
	}
	slog.Info("dataset created", "dataset", dataset.ID, "name", dataset.Name)

	src, err := openShapefile(shpPath)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	var extract extractFunc
	switch dsType {
	case models.DatasetTypeFlood:
		extract = extractFlood
	case models.DatasetTypeLandslide:
		extract = extractLandslide
	case models.DatasetTypeLiquefaction:
		extract = extractLiquefaction
	}

	created, featureErrs, err := p.ingestFeatures(ctx, src, dataset, extract)
	if err != nil {
		return nil, err
	}

	p.metrics.FeaturesCreated.WithLabelValues(string(dsType)).Add(float64(created))
	p.metrics.IngestDuration.Observe(time.Since(start).Seconds())
	slog.Info("processing complete", "dataset", dataset.ID, "records", created, "feature_errors", len(featureErrs))

	return &Result{DatasetID: dataset.ID, RecordsCreated: created, Errors: featureErrs}, nil
}
