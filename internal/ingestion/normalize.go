package ingestion

import (
	"strings"

	"github.com/mr1hm/go-hazard-maps/internal/models"
)

// Standardization tables from the agency data dictionaries. Flood and
// landslide sheets abbreviate classes as codes; liquefaction sheets spell
// them out as phrases.
var floodCodes = map[string]string{
	"LF":  models.SusceptibilityLow,
	"MF":  models.SusceptibilityModerate,
	"HF":  models.SusceptibilityHigh,
	"VHF": models.SusceptibilityVeryHigh,
}

var landslideCodes = map[string]string{
	"LL":  models.SusceptibilityLow,
	"ML":  models.SusceptibilityModerate,
	"HL":  models.SusceptibilityHigh,
	"VHL": models.SusceptibilityVeryHigh,
	"DF":  models.SusceptibilityDebris,
}

var liquefactionPhrases = map[string]string{
	"low susceptibility":      models.SusceptibilityLow,
	"moderate susceptibility": models.SusceptibilityModerate,
	"high susceptibility":     models.SusceptibilityHigh,
}

// NormalizeCode maps a raw agency classification onto the canonical
// susceptibility scale. Flood and landslide codes match exactly and pass
// through unchanged when unrecognized. Liquefaction phrases match case
// insensitively after trimming and default to low susceptibility when
// unrecognized. Codes of an unknown dataset type pass through untouched.
func NormalizeCode(raw string, t models.DatasetType) string {
	switch t {
	case models.DatasetTypeFlood:
		if code, ok := floodCodes[raw]; ok {
			return code
		}
	case models.DatasetTypeLandslide:
		if code, ok := landslideCodes[raw]; ok {
			return code
		}
	case models.DatasetTypeLiquefaction:
		if code, ok := liquefactionPhrases[strings.ToLower(strings.TrimSpace(raw))]; ok {
			return code
		}
		return models.SusceptibilityLow
	}
	return raw
}
