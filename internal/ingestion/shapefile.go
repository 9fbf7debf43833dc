package ingestion

import (
	"fmt"
	"strconv"
	"strings"

	shp "github.com/jonas-p/go-shp"
)

// featureSource is the reader-side contract the ingest loop consumes. It
// is satisfied by shapeSource and by test fakes.
type featureSource interface {
	Next() bool
	Shape() (int, shp.Shape)
	Attribute(row int, name string) string
	Err() error
}

// shapeSource wraps a go-shp reader with name-based attribute access.
type shapeSource struct {
	r      *shp.Reader
	fields map[string]int
}

// openShapefile opens the vector file and indexes its attribute schema.
// Failures here are fatal to the whole run.
func openShapefile(path string) (*shapeSource, error) {
	r, err := shp.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening shapefile: %w", err)
	}
	fields := make(map[string]int)
	for i, f := range r.Fields() {
		fields[f.String()] = i
	}
	return &shapeSource{r: r, fields: fields}, nil
}

func (s *shapeSource) Next() bool              { return s.r.Next() }
func (s *shapeSource) Shape() (int, shp.Shape) { return s.r.Shape() }
func (s *shapeSource) Err() error              { return s.r.Err() }
func (s *shapeSource) Close() error            { return s.r.Close() }

// Attribute returns the named DBF column for a row, stripped of the
// space and NUL padding DBF storage adds. Columns the schema does not
// carry read as empty.
func (s *shapeSource) Attribute(row int, name string) string {
	idx, ok := s.fields[name]
	if !ok {
		return ""
	}
	return strings.Trim(s.r.ReadAttribute(row, idx), " \x00")
}

// attrFloat parses a numeric attribute, nil when blank or unparseable.
func attrFloat(src featureSource, row int, name string) *float64 {
	raw := strings.TrimSpace(src.Attribute(row, name))
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

// attrInt parses an integer attribute. DBF numeric columns sometimes
// carry a decimal point even for id-like fields, so it falls back to a
// float parse.
func attrInt(src featureSource, row int, name string) *int64 {
	raw := strings.TrimSpace(src.Attribute(row, name))
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil {
			return nil
		}
		v = int64(f)
	}
	return &v
}
