package ingestion

import "strings"

// Liquefaction sheets spell the class as a phrase ("Low Susceptibility")
// and are the only type without shape measures.
const fieldLiquefactionSusc = "Susceptibi"

func extractLiquefaction(src featureSource, row int) attributes {
	return attributes{
		code: strings.TrimSpace(src.Attribute(row, fieldLiquefactionSusc)),
	}
}
