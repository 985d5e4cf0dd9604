package kernel

import (
	"errors"
	"fmt"
	"math"

	"pathorder/internal/pkg/errs"
	"pathorder/internal/pkg/guard"
)

const (
	// MinLatitude is the southernmost valid latitude in degrees.
	MinLatitude float64 = -90
	// MaxLatitude is the northernmost valid latitude in degrees.
	MaxLatitude float64 = 90
	// MinLongitude is the westernmost valid longitude in degrees.
	MinLongitude float64 = -180
	// MaxLongitude is the easternmost valid longitude in degrees.
	MaxLongitude float64 = 180

	// earthRadiusMeters is the mean Earth radius used by the great-circle
	// distance calculation.
	earthRadiusMeters = 6371000
)

// ErrGeoPointIsNotConstructed is returned when attempting to use an improperly
// initialized GeoPoint. GeoPoints must be created using the NewGeoPoint
// constructor to ensure the coordinates are valid.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint represents a geographic position with validated WGS84 coordinates.
// GeoPoint is an immutable value object; the zero value is invalid and will
// fail validation - use the constructor to create instances.
//
// Example:
//
//	point, err := kernel.NewGeoPoint(37.4981, 127.0276)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("Position: %s", point) // Output: GeoPoint(37.498100,127.027600)
type GeoPoint struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewGeoPoint creates a new GeoPoint with the specified coordinates.
// Latitude must be within [MinLatitude..MaxLatitude] and longitude within
// [MinLongitude..MaxLongitude]. Returns an error if either coordinate is
// outside the valid bounds.
func NewGeoPoint(latitude float64, longitude float64) (GeoPoint, error) {
	point := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(point.setLatitude(latitude), point.setLongitude(longitude)); err != nil {
		return GeoPoint{}, err
	}

	return point, nil
}

// Validate checks if the GeoPoint was properly constructed using the constructor.
// The zero value of GeoPoint is invalid and will fail this validation.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Latitude returns the latitude in degrees.
func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

// Longitude returns the longitude in degrees.
func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

// String returns a human-readable representation of the GeoPoint.
// This method implements the fmt.Stringer interface.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%f,%f)", p.latitude, p.longitude)
}

// IsEqual compares two geo points for equality.
// Both points must be properly constructed for the comparison to succeed.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.latitude == other.latitude && p.longitude == other.longitude, nil
}

// DistanceTo calculates the great-circle distance between two geo points
// using the haversine formula, rounded to whole meters.
//
// The calculation is deterministic and symmetric: p.DistanceTo(q) equals
// q.DistanceTo(p), and the distance of a point to itself is 0. Both points
// must be properly constructed for the calculation to succeed.
//
// Example:
//
//	seoul, _ := kernel.NewGeoPoint(37.5665, 126.9780)
//	busan, _ := kernel.NewGeoPoint(35.1796, 129.0756)
//
//	meters, err := seoul.DistanceTo(busan)
//	// meters ≈ 325000
func (p GeoPoint) DistanceTo(other GeoPoint) (int, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	lat1 := degreesToRadians(p.latitude)
	lat2 := degreesToRadians(other.latitude)
	deltaLat := degreesToRadians(other.latitude - p.latitude)
	deltaLon := degreesToRadians(other.longitude - p.longitude)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return int(math.Round(earthRadiusMeters * c)), nil
}

// setLatitude sets the latitude with validation.
// Note: We intentionally use a pointer receiver here while other methods use value receivers.
// Although mixing receiver types is generally not recommended, in this case we use pointer
// receivers for these private setters to enable self-encapsulated validation of business
// requirements during object construction.
func (p *GeoPoint) setLatitude(latitude float64) error {
	if latitude < MinLatitude || latitude > MaxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, MinLatitude, MaxLatitude)
	}

	p.latitude = latitude
	return nil
}

// setLongitude sets the longitude with validation.
// Note: We intentionally use a pointer receiver here while other methods use value receivers.
// Although mixing receiver types is generally not recommended, in this case we use pointer
// receivers for these private setters to enable self-encapsulated validation of business
// requirements during object construction.
func (p *GeoPoint) setLongitude(longitude float64) error {
	if longitude < MinLongitude || longitude > MaxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, MinLongitude, MaxLongitude)
	}

	p.longitude = longitude
	return nil
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
