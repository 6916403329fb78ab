// Package kernel provides shared value objects used across the parcel delivery domain.
//
// The package includes:
//   - UUID: An immutable identifier value object wrapping github.com/google/uuid
//   - Coordinates: A validated GPS position (latitude/longitude) value object
//
// All value objects follow the constructor-guard pattern: the zero value is invalid
// and instances must be created through the provided constructor functions, which
// enforce validation rules at construction time.
package kernel
