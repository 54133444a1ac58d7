// Package geo provides the great-circle distance math used to match
// executors against request locations.
package geo

import "math"

// earthRadiusKm is the mean Earth radius, in kilometers, used by the
// haversine formula.
const earthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance in kilometers between two
// WGS84 coordinate pairs, computed with the haversine formula.
//
// The function is pure: symmetric in its arguments and exactly zero for
// identical points. Inputs are degrees.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := radians(lat1)
	p2 := radians(lat2)
	dPhi := radians(lat2 - lat1)
	dLambda := radians(lon2 - lon1)

	sinPhi := math.Sin(dPhi / 2)
	sinLambda := math.Sin(dLambda / 2)
	a := sinPhi*sinPhi + math.Cos(p1)*math.Cos(p2)*sinLambda*sinLambda
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
