// Package geo contains the geographic value types and pure distance math used
// by the fee modules.
package geo

// Point is a fully specified coordinate pair in decimal degrees.
type Point struct {
	Lat float64
	Lng float64
}

// Coordinate is a possibly partial coordinate pair. A nil component means the
// location is unknown, which is distinct from a value outside the valid range.
type Coordinate struct {
	Lat *float64
	Lng *float64
}

// At builds a complete Coordinate from literal components.
func At(lat, lng float64) Coordinate {
	return Coordinate{Lat: &lat, Lng: &lng}
}

// Complete reports whether both components are present.
func (c Coordinate) Complete() bool {
	return c.Lat != nil && c.Lng != nil
}

// Point returns the underlying point when both components are present.
func (c Coordinate) Point() (Point, bool) {
	if !c.Complete() {
		return Point{}, false
	}
	return Point{Lat: *c.Lat, Lng: *c.Lng}, true
}

// Valid reports whether the coordinate is complete and inside the valid
// ranges: latitude in [-90, 90] and longitude in [-180, 180]. Callers are
// expected to validate externally supplied geodata with this before trusting
// it; the distance math itself does not re-check.
func (c Coordinate) Valid() bool {
	if !c.Complete() {
		return false
	}
	if *c.Lat < -90 || *c.Lat > 90 {
		return false
	}
	return *c.Lng >= -180 && *c.Lng <= 180
}
