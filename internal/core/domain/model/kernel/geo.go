package kernel

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

const (
	// LongitudeMin is the minimum valid longitude in degrees.
	LongitudeMin = -180.0
	// LongitudeMax is the maximum valid longitude in degrees.
	LongitudeMax = 180.0
	// LatitudeMin is the minimum valid latitude in degrees.
	LatitudeMin = -90.0
	// LatitudeMax is the maximum valid latitude in degrees.
	LatitudeMax = 90.0

	// earthRadiusKm is the mean Earth radius used by the haversine formula.
	earthRadiusKm = 6371.0

	geoJSONPointType = "Point"
)

// ErrGeoPointIsNotConstructed is returned when attempting to use an improperly
// initialized GeoPoint. Points must be created via NewGeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint is an immutable value object representing a geographic coordinate.
// On the wire and in persistence it follows the GeoJSON Point convention:
// coordinates are ordered [longitude, latitude].
//
// Example:
//
//	point, err := kernel.NewGeoPoint(77.5946, 12.9716)
//	if err != nil {
//	    // longitude or latitude out of range
//	}
type GeoPoint struct { //nolint:recvcheck //value receivers except for JSON decoding
	lng   float64
	lat   float64
	guard guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint after validating that longitude is within
// [-180, 180] and latitude within [-90, 90] degrees.
func NewGeoPoint(lng float64, lat float64) (GeoPoint, error) {
	point := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(point.setLongitude(lng), point.setLatitude(lat)); err != nil {
		return GeoPoint{}, err
	}

	return point, nil
}

// Validate checks that the point was created through NewGeoPoint.
// The zero value fails validation.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Longitude returns the longitude in degrees.
func (p GeoPoint) Longitude() float64 {
	return p.lng
}

// Latitude returns the latitude in degrees.
func (p GeoPoint) Latitude() float64 {
	return p.lat
}

// IsEqual compares two points for coordinate equality.
// Both points must be properly constructed.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}
	return p.lng == other.lng && p.lat == other.lat, nil
}

// DistanceTo returns the great-circle (haversine) distance to the other point
// in kilometers.
func (p GeoPoint) DistanceTo(other GeoPoint) (float64, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	lat1 := p.lat * math.Pi / 180
	lat2 := other.lat * math.Pi / 180
	dLat := (other.lat - p.lat) * math.Pi / 180
	dLng := (other.lng - p.lng) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a)), nil
}

// String implements fmt.Stringer as "Point(lng,lat)".
func (p GeoPoint) String() string {
	return fmt.Sprintf("Point(%g,%g)", p.lng, p.lat)
}

// geoJSONPoint is the wire form: {"type":"Point","coordinates":[lng,lat]}.
type geoJSONPoint struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

// MarshalJSON encodes the point as a GeoJSON Point.
func (p GeoPoint) MarshalJSON() ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(geoJSONPoint{
		Type:        geoJSONPointType,
		Coordinates: [2]float64{p.lng, p.lat},
	})
}

// UnmarshalJSON decodes a GeoJSON Point, rejecting non-Point types and
// out-of-range coordinates.
func (p *GeoPoint) UnmarshalJSON(data []byte) error {
	var raw geoJSONPoint
	if err := json.Unmarshal(data, &raw); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("geo point", err)
	}

	if raw.Type != geoJSONPointType {
		return errs.NewValueIsInvalidErrorWithCause("geo point",
			fmt.Errorf("%q is not a GeoJSON Point", raw.Type))
	}

	point, err := NewGeoPoint(raw.Coordinates[0], raw.Coordinates[1])
	if err != nil {
		return err
	}

	*p = point
	return nil
}

func (p *GeoPoint) setLongitude(lng float64) error {
	if lng < LongitudeMin || lng > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", lng, LongitudeMin, LongitudeMax)
	}
	p.lng = lng
	return nil
}

func (p *GeoPoint) setLatitude(lat float64) error {
	if lat < LatitudeMin || lat > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", lat, LatitudeMin, LatitudeMax)
	}
	p.lat = lat
	return nil
}
