// Package vendors resolves seller identifiers to shop locations for fee
// computation.
package vendors

import "marketfees/internal/modules/geo"

// Vendor is a marketplace seller's directory record. Location may be partial
// or absent; Address may be empty.
type Vendor struct {
	ID       string
	Name     string
	Address  string
	Location geo.Coordinate
}
