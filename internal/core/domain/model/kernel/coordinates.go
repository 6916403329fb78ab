package kernel

import (
	"errors"
	"fmt"

	"paquexpress/internal/pkg/errs"
	"paquexpress/internal/pkg/guard"
)

const (
	// LatitudeMin is the minimum valid latitude in decimal degrees.
	LatitudeMin float64 = -90
	// LatitudeMax is the maximum valid latitude in decimal degrees.
	LatitudeMax float64 = 90
	// LongitudeMin is the minimum valid longitude in decimal degrees.
	LongitudeMin float64 = -180
	// LongitudeMax is the maximum valid longitude in decimal degrees.
	LongitudeMax float64 = 180
)

// ErrCoordinatesAreNotConstructed is returned when attempting to use an improperly
// initialized Coordinates value. Coordinates must be created via NewCoordinates
// to guarantee the latitude and longitude are within valid bounds.
var ErrCoordinatesAreNotConstructed = errs.NewValueIsRequiredError(
	"coordinates must be created via NewCoordinates constructor")

// Coordinates represents a GPS position with validated latitude and longitude.
// Coordinates is an immutable value object that ensures both components are always
// within valid bounds: latitude in [-90, 90] and longitude in [-180, 180].
// The zero value of Coordinates is invalid and will fail validation - use the
// constructor to create instances.
//
// Example:
//
//	coords, err := kernel.NewCoordinates(19.43, -99.13)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("Drop-off at %s", coords) // Output: Coordinates(19.430000,-99.130000)
type Coordinates struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewCoordinates creates a new Coordinates value with the specified position.
// Latitude must be within [LatitudeMin, LatitudeMax] and longitude within
// [LongitudeMin, LongitudeMax]. Returns an error if either component is
// outside its valid bounds; both violations are reported together.
func NewCoordinates(latitude float64, longitude float64) (Coordinates, error) {
	coords := Coordinates{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(coords.setLatitude(latitude), coords.setLongitude(longitude)); err != nil {
		return Coordinates{}, err
	}

	return coords, nil
}

// Validate checks if the Coordinates were properly constructed using the constructor.
// The zero value of Coordinates is invalid and will fail this validation.
func (c Coordinates) Validate() error {
	return c.guard.Validate(ErrCoordinatesAreNotConstructed)
}

// Latitude returns the latitude in decimal degrees.
// Guaranteed to be within [LatitudeMin, LatitudeMax] for properly constructed values.
func (c Coordinates) Latitude() float64 {
	return c.latitude
}

// Longitude returns the longitude in decimal degrees.
// Guaranteed to be within [LongitudeMin, LongitudeMax] for properly constructed values.
func (c Coordinates) Longitude() float64 {
	return c.longitude
}

// String returns a human-readable string representation of the Coordinates.
// The format is "Coordinates(latitude,longitude)" which is useful for debugging and logging.
// This method implements the fmt.Stringer interface.
func (c Coordinates) String() string {
	return fmt.Sprintf("Coordinates(%f,%f)", c.latitude, c.longitude)
}

// IsEqual compares two coordinate pairs for equality.
// Both values must be properly constructed (pass validation) for the comparison to succeed.
func (c Coordinates) IsEqual(other Coordinates) (bool, error) {
	if err := errors.Join(c.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return c == other, nil
}

// setLatitude sets the latitude with validation.
// Note: We intentionally use a pointer receiver here while other methods use value
// receivers, to enable self-encapsulated validation during object construction.
func (c *Coordinates) setLatitude(latitude float64) error {
	if latitude < LatitudeMin || latitude > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, LatitudeMin, LatitudeMax)
	}

	c.latitude = latitude
	return nil
}

// setLongitude sets the longitude with validation.
// Note: We intentionally use a pointer receiver here while other methods use value
// receivers, to enable self-encapsulated validation during object construction.
func (c *Coordinates) setLongitude(longitude float64) error {
	if longitude < LongitudeMin || longitude > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, LongitudeMin, LongitudeMax)
	}

	c.longitude = longitude
	return nil
}
