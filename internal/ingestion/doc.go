// Package ingestion turns zipped shapefile uploads into susceptibility
// records.
//
// An upload is a zip archive holding one ESRI shapefile bundle (.shp plus
// its .dbf and .shx sidecars). The pipeline unpacks the archive into a
// private workspace, locates the .shp member, creates a dataset record and
// then walks the features one by one: decode the geometry, normalize the
// agency's classification code onto the L/M/H/VH scale and persist the
// result tagged with the target spatial reference.
//
// Attribute names follow the agencies' DBF schemas, which truncate column
// names to ten bytes (LndslideSu, Susceptibi). Flood and landslide sheets
// abbreviate classes as codes (LF, VHL); liquefaction sheets spell them out
// as phrases ("Low Susceptibility").
//
// Features without geometry are skipped silently. A feature that fails to
// decode or persist is recorded and skipped; only archive, schema and
// dataset-level failures abort a run. Records written before an abort are
// kept.
package ingestion
