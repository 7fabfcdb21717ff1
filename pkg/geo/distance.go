// Package geo provides great-circle distance math for the check-in geofence
// and the nearby-gyms search.
package geo

import "math"

// EarthRadiusKM is the Earth's mean radius in kilometers.
const EarthRadiusKM = 6371.0

// Coordinate is a position in signed decimal degrees.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// Distance returns the great-circle distance between two coordinates in
// kilometers, computed with the Haversine formula.
func Distance(from, to Coordinate) float64 {
	lat1 := radians(from.Latitude)
	lat2 := radians(to.Latitude)
	dLat := radians(to.Latitude - from.Latitude)
	dLon := radians(to.Longitude - from.Longitude)

	a := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(dLon/2), 2)

	return 2 * EarthRadiusKM * math.Asin(math.Sqrt(a))
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
