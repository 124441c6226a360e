package geo

import (
	"math"

	"github.com/jkoick/gpx-to-svg/pkg/datastructure"
)

const (
	earthRadiusKM = 6371.0
)

func havFunction(angleRad float64) float64 {
	return (1 - math.Cos(angleRad)) / 2.0
}

func degreeToRadians(angle float64) float64 {
	return angle * (math.Pi / 180.0)
}

func CalculateHaversineDistance(latOne, longOne, latTwo, longTwo float64) float64 {
	latOne = degreeToRadians(latOne)
	longOne = degreeToRadians(longOne)
	latTwo = degreeToRadians(latTwo)
	longTwo = degreeToRadians(longTwo)

	a := havFunction(latOne-latTwo) + math.Cos(latOne)*math.Cos(latTwo)*havFunction(longOne-longTwo)
	c := 2.0 * math.Asin(math.Sqrt(a))
	return earthRadiusKM * c
}

// TrackDistanceKm is the summed haversine length of the track in kilometers.
func TrackDistanceKm(points []datastructure.GeoPoint) float64 {
	var total float64
	for i := 1; i < len(points); i++ {
		total += CalculateHaversineDistance(points[i-1].Lat, points[i-1].Lon,
			points[i].Lat, points[i].Lon)
	}
	return total
}
