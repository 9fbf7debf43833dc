package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mr1hm/go-hazard-maps/internal/ingestion"
	"github.com/mr1hm/go-hazard-maps/internal/models"
	"github.com/mr1hm/go-hazard-maps/internal/repository"
)

type Handler struct {
	datasets repository.DatasetRepository
	features repository.FeatureRepository
	pipeline *ingestion.Pipeline

	// maxUploadBytes caps an upload body; zero disables the cap.
	maxUploadBytes int64
}

func NewHandler(datasets repository.DatasetRepository, features repository.FeatureRepository, pipeline *ingestion.Pipeline, maxUploadBytes int64) *Handler {
	return &Handler{
		datasets:       datasets,
		features:       features,
		pipeline:       pipeline,
		maxUploadBytes: maxUploadBytes,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/api/upload", h.uploadShapefile)
	r.GET("/api/flood", h.getFloodData)
	r.GET("/api/landslide", h.getLandslideData)
	r.GET("/api/liquefaction", h.getLiquefactionData)
	r.GET("/api/datasets", h.getDatasets)
	r.GET("/health", h.health)
}

func (h *Handler) uploadShapefile(c *gin.Context) {
	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	}

	header, err := c.FormFile("shapefile")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{
				"error": fmt.Sprintf("upload exceeds %d bytes", tooLarge.Limit),
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "no shapefile provided"})
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable upload"})
		return
	}
	defer file.Close()

	datasetType := c.PostForm("dataset_type")
	if datasetType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dataset type not specified"})
		return
	}
	if _, ok := models.ParseDatasetType(datasetType); !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("invalid dataset type %q, must be one of: flood, landslide, liquefaction", datasetType),
		})
		return
	}

	result, err := h.pipeline.Process(c.Request.Context(), file, header.Filename, datasetType)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ingestion.ErrNoShapefile) || errors.Is(err, ingestion.ErrUnsupportedDatasetType) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	featureErrs := result.Errors
	if featureErrs == nil {
		featureErrs = []ingestion.FeatureError{}
	}
	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"dataset_id":      result.DatasetID,
		"records_created": result.RecordsCreated,
		"message":         fmt.Sprintf("Successfully processed %d records", result.RecordsCreated),
		"errors":          featureErrs,
	})
}

func (h *Handler) getFloodData(c *gin.Context) {
	h.serveFeatures(c, models.DatasetTypeFlood)
}

func (h *Handler) getLandslideData(c *gin.Context) {
	h.serveFeatures(c, models.DatasetTypeLandslide)
}

func (h *Handler) getLiquefactionData(c *gin.Context) {
	h.serveFeatures(c, models.DatasetTypeLiquefaction)
}

func (h *Handler) serveFeatures(c *gin.Context, t models.DatasetType) {
	features, err := h.features.ListFeatures(c.Request.Context(), t)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": fmt.Sprintf("failed to fetch %s data", t),
		})
		return
	}

	fc := toFeatureCollection(features, t)
	c.Header("Content-Type", "application/geo+json")
	c.JSON(http.StatusOK, fc)
}

func (h *Handler) getDatasets(c *gin.Context) {
	datasets, err := h.datasets.ListDatasets(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to fetch datasets",
		})
		return
	}

	if datasets == nil {
		datasets = []models.HazardDataset{}
	}
	c.JSON(http.StatusOK, datasets)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
