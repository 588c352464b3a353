// Package ica maps Interbank Card Association identifiers to the region and
// country used for geographic aggregation.
package ica

// Location is the geographic attribution for a card scheme.
type Location struct {
	Region  string
	Country string
}

// DefaultLocation is returned for identifiers the table does not know about.
var DefaultLocation = Location{Region: "Global", Country: "International"}

// The table keys on the scheme identifiers present in invoice feeds. The
// attribution is a coarse proxy (scheme home market), not a transaction
// geography.
var locations = map[string]Location{
	"VISA": {Region: "North America", Country: "United States"},
	"MAST": {Region: "Europe", Country: "Belgium"},
	"AMEX": {Region: "North America", Country: "United States"},
	"DISC": {Region: "North America", Country: "United States"},
	"DINE": {Region: "North America", Country: "United States"},
	"JCB":  {Region: "Asia Pacific", Country: "Japan"},
	"UNIO": {Region: "Asia Pacific", Country: "China"},
	"RUPY": {Region: "Asia Pacific", Country: "India"},
	"ELO":  {Region: "Latin America", Country: "Brazil"},
	"VERV": {Region: "Africa", Country: "Nigeria"},
}

// Lookup resolves an ICA identifier to its region and country, falling back
// to DefaultLocation for unknown identifiers.
func Lookup(invoiceICA string) Location {
	if loc, ok := locations[invoiceICA]; ok {
		return loc
	}
	return DefaultLocation
}
