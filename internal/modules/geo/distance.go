package geo

import "math"

const earthRadiusKm = 6371.0

// Distance returns the great-circle distance in kilometres between two
// points, computed with the haversine formula and rounded to 2 decimal
// places. The rounding is part of the contract: fee computation multiplies by
// this value and must reproduce identically everywhere.
func Distance(a, b Point) float64 {
	dLat := degreesToRadians(b.Lat - a.Lat)
	dLng := degreesToRadians(b.Lng - a.Lng)

	rLat1 := degreesToRadians(a.Lat)
	rLat2 := degreesToRadians(b.Lat)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return math.Round(earthRadiusKm*c*100) / 100
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
