package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/mr1hm/go-hazard-maps/internal/models"

	_ "modernc.org/sqlite"
)

type SQLiteDB struct {
	db *sql.DB
}

func NewSQLiteDB(path string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error while pinging database: %w", err)
	}

	s := &SQLiteDB{
		db: db,
	}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("error while migrating to database: %w", err)
	}

	return s, nil
}

func (s *SQLiteDB) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS hazard_datasets (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			dataset_type TEXT NOT NULL,
			file_name TEXT NOT NULL,
			uploaded_at TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS flood_susceptibility (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			dataset_id INTEGER NOT NULL,
			susceptibility TEXT NOT NULL,
			original_code TEXT,
			shape_length REAL,
			shape_area REAL,
			orig_fid INTEGER,
			srid INTEGER NOT NULL,
			geometry TEXT NOT NULL,
			FOREIGN KEY (dataset_id) REFERENCES hazard_datasets(id)
		);

		CREATE TABLE IF NOT EXISTS landslide_susceptibility (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			dataset_id INTEGER NOT NULL,
			susceptibility TEXT NOT NULL,
			original_code TEXT,
			shape_length REAL,
			shape_area REAL,
			orig_fid INTEGER,
			srid INTEGER NOT NULL,
			geometry TEXT NOT NULL,
			FOREIGN KEY (dataset_id) REFERENCES hazard_datasets(id)
		);

		CREATE TABLE IF NOT EXISTS liquefaction_susceptibility (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			dataset_id INTEGER NOT NULL,
			susceptibility TEXT NOT NULL,
			original_code TEXT,
			srid INTEGER NOT NULL,
			geometry TEXT NOT NULL,
			FOREIGN KEY (dataset_id) REFERENCES hazard_datasets(id)
		);

		CREATE INDEX IF NOT EXISTS idx_datasets_type ON hazard_datasets(dataset_type);
		CREATE INDEX IF NOT EXISTS idx_flood_dataset_id ON flood_susceptibility(dataset_id);
		CREATE INDEX IF NOT EXISTS idx_landslide_dataset_id ON landslide_susceptibility(dataset_id);
		CREATE INDEX IF NOT EXISTS idx_liquefaction_dataset_id ON liquefaction_susceptibility(dataset_id);
  	`

	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteDB) Close() error {
	return s.db.Close()
}

func (s *SQLiteDB) AddDataset(ctx context.Context, d *models.HazardDataset) error {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO hazard_datasets (name, dataset_type, file_name, uploaded_at)
		VALUES (?, ?, ?, ?)`,
		d.Name, string(d.Type), d.FileName, d.UploadedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("error inserting dataset: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("error reading dataset id: %w", err)
	}
	d.ID = id
	return nil
}

func (s *SQLiteDB) ListDatasets(ctx context.Context) ([]models.HazardDataset, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, dataset_type, file_name, uploaded_at
		FROM hazard_datasets
		ORDER BY uploaded_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("error querying datasets: %w", err)
	}
	defer rows.Close()

	var datasets []models.HazardDataset
	for rows.Next() {
		var (
			d          models.HazardDataset
			dsType     string
			uploadedAt string
		)
		if err := rows.Scan(&d.ID, &d.Name, &dsType, &d.FileName, &uploadedAt); err != nil {
			return nil, fmt.Errorf("error scanning dataset: %w", err)
		}
		d.Type = models.DatasetType(dsType)
		if d.UploadedAt, err = time.Parse(time.RFC3339Nano, uploadedAt); err != nil {
			return nil, fmt.Errorf("error parsing dataset upload date: %w", err)
		}
		datasets = append(datasets, d)
	}
	return datasets, rows.Err()
}

func (s *SQLiteDB) AddFeature(ctx context.Context, f *models.SusceptibilityFeature) error {
	geometry, err := encodeGeometry(f.Geometry)
	if err != nil {
		return err
	}

	var res sql.Result
	switch f.DatasetType {
	case models.DatasetTypeFlood, models.DatasetTypeLandslide:
		table, _ := featureTable(f.DatasetType)
		res, err = s.db.ExecContext(ctx, fmt.Sprintf(`
			INSERT INTO %s (dataset_id, susceptibility, original_code, shape_length, shape_area, orig_fid, srid, geometry)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`, table),
			f.DatasetID, f.Code, f.OriginalCode, f.ShapeLength, f.ShapeArea, f.OrigFID, f.SRID, geometry,
		)
	case models.DatasetTypeLiquefaction:
		res, err = s.db.ExecContext(ctx, `
			INSERT INTO liquefaction_susceptibility (dataset_id, susceptibility, original_code, srid, geometry)
			VALUES (?, ?, ?, ?, ?)`,
			f.DatasetID, f.Code, f.OriginalCode, f.SRID, geometry,
		)
	default:
		return fmt.Errorf("unknown dataset type: %s", f.DatasetType)
	}
	if err != nil {
		return fmt.Errorf("error inserting feature: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("error reading feature id: %w", err)
	}
	f.ID = id
	return nil
}

func (s *SQLiteDB) ListFeatures(ctx context.Context, t models.DatasetType) ([]models.SusceptibilityFeature, error) {
	table, err := featureTable(t)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT id, dataset_id, susceptibility, original_code, shape_length, shape_area, orig_fid, srid, geometry
		FROM %s
		ORDER BY id`, table)
	if t == models.DatasetTypeLiquefaction {
		query = `
			SELECT id, dataset_id, susceptibility, original_code, srid, geometry
			FROM liquefaction_susceptibility
			ORDER BY id`
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying features: %w", err)
	}
	defer rows.Close()

	var features []models.SusceptibilityFeature
	for rows.Next() {
		f := models.SusceptibilityFeature{DatasetType: t}
		var geometry string
		if t == models.DatasetTypeLiquefaction {
			err = rows.Scan(&f.ID, &f.DatasetID, &f.Code, &f.OriginalCode, &f.SRID, &geometry)
		} else {
			err = rows.Scan(&f.ID, &f.DatasetID, &f.Code, &f.OriginalCode, &f.ShapeLength, &f.ShapeArea, &f.OrigFID, &f.SRID, &geometry)
		}
		if err != nil {
			return nil, fmt.Errorf("error scanning feature: %w", err)
		}
		if f.Geometry, err = decodeGeometry(geometry); err != nil {
			return nil, err
		}
		features = append(features, f)
	}
	return features, rows.Err()
}

func featureTable(t models.DatasetType) (string, error) {
	switch t {
	case models.DatasetTypeFlood:
		return "flood_susceptibility", nil
	case models.DatasetTypeLandslide:
		return "landslide_susceptibility", nil
	case models.DatasetTypeLiquefaction:
		return "liquefaction_susceptibility", nil
	}
	return "", fmt.Errorf("unknown dataset type: %s", t)
}

// Geometries are stored as GeoJSON text so the API can serve them without
// a spatial extension.
func encodeGeometry(mp orb.MultiPolygon) (string, error) {
	data, err := json.Marshal(geojson.NewGeometry(mp))
	if err != nil {
		return "", fmt.Errorf("error encoding geometry: %w", err)
	}
	return string(data), nil
}

func decodeGeometry(raw string) (orb.MultiPolygon, error) {
	g, err := geojson.UnmarshalGeometry([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("error decoding geometry: %w", err)
	}
	mp, ok := g.Geometry().(orb.MultiPolygon)
	if !ok {
		return nil, fmt.Errorf("stored geometry is %s, want MultiPolygon", g.Type)
	}
	return mp, nil
}
