package ingestion

// Landslide sheets ship under two column names depending on the issuing
// agency; the long form wins when both are present.
const (
	fieldLandslideSusc    = "LndslideSu"
	fieldLandslideSuscAlt = "LndSu"
)

func extractLandslide(src featureSource, row int) attributes {
	code := src.Attribute(row, fieldLandslideSusc)
	if code == "" {
		code = src.Attribute(row, fieldLandslideSuscAlt)
	}
	return attributes{
		code:        code,
		shapeLength: attrFloat(src, row, fieldShapeLength),
		shapeArea:   attrFloat(src, row, fieldShapeArea),
		origFID:     attrInt(src, row, fieldOrigFID),
	}
}
