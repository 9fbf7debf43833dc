package ingestion

// DBF schema of the flood sheets. The measure columns are shared with the
// landslide sheets.
const (
	fieldFloodSusc   = "FloodSusc"
	fieldShapeLength = "SHAPE_Leng"
	fieldShapeArea   = "SHAPE_Area"
	fieldOrigFID     = "ORIG_FID"
)

func extractFlood(src featureSource, row int) attributes {
	return attributes{
		code:        src.Attribute(row, fieldFloodSusc),
		shapeLength: attrFloat(src, row, fieldShapeLength),
		shapeArea:   attrFloat(src, row, fieldShapeArea),
		origFID:     attrInt(src, row, fieldOrigFID),
	}
}
