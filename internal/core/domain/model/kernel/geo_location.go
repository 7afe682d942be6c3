package kernel

import (
	"errors"
	"fmt"
	"math"

	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

const (
	// EarthRadiusKm is the mean Earth radius used by the Haversine formula.
	EarthRadiusKm = 6371.0
	// EarthRadiusMeters is EarthRadiusKm expressed in meters.
	EarthRadiusMeters = EarthRadiusKm * 1000

	LatitudeMin  = -90.0
	LatitudeMax  = 90.0
	LongitudeMin = -180.0
	LongitudeMax = 180.0

	// ApproximationPrecision is the number of decimals kept by Approximate.
	// Two decimals hide a position within roughly one kilometer.
	ApproximationPrecision = 2
)

// ErrGeoLocationIsNotConstructed is returned when a zero-value GeoLocation is used.
var ErrGeoLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"geo location must be created via NewGeoLocation")

// GeoLocation is an immutable WGS84 point in decimal degrees.
//
// Example:
//
//	brno, _ := kernel.NewGeoLocation(49.1951, 16.6068)
//	prague, _ := kernel.NewGeoLocation(50.0755, 14.4378)
//	km, _ := brno.DistanceKm(prague) // ~184.3
type GeoLocation struct { //nolint:recvcheck //using for validation
	lat   float64
	lon   float64
	guard guard.ConstructorGuard
}

// NewGeoLocation validates latitude in [-90, 90] and longitude in [-180, 180].
func NewGeoLocation(lat float64, lon float64) (GeoLocation, error) {
	loc := GeoLocation{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setLat(lat), loc.setLon(lon)); err != nil {
		return GeoLocation{}, err
	}

	return loc, nil
}

// MustGeoLocation is NewGeoLocation for literals known to be valid. It panics otherwise.
func MustGeoLocation(lat float64, lon float64) GeoLocation {
	loc, err := NewGeoLocation(lat, lon)
	if err != nil {
		panic(err)
	}
	return loc
}

func (l GeoLocation) Validate() error {
	return l.guard.Validate(ErrGeoLocationIsNotConstructed)
}

func (l GeoLocation) Lat() float64 {
	return l.lat
}

func (l GeoLocation) Lon() float64 {
	return l.lon
}

func (l GeoLocation) String() string {
	return fmt.Sprintf("GeoLocation(%.6f,%.6f)", l.lat, l.lon)
}

func (l GeoLocation) IsEqual(other GeoLocation) bool {
	return l.lat == other.lat && l.lon == other.lon
}

// DistanceKm returns the great-circle distance to other in kilometers.
func (l GeoLocation) DistanceKm(other GeoLocation) (float64, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return 0, err
	}
	return HaversineKm(l.lat, l.lon, other.lat, other.lon), nil
}

// DistanceMeters returns the great-circle distance to other in meters.
func (l GeoLocation) DistanceMeters(other GeoLocation) (float64, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return 0, err
	}
	return HaversineMeters(l.lat, l.lon, other.lat, other.lon), nil
}

// Approximate rounds both coordinates to ApproximationPrecision decimals.
func (l GeoLocation) Approximate() GeoLocation {
	return GeoLocation{
		lat:   roundTo(l.lat, ApproximationPrecision),
		lon:   roundTo(l.lon, ApproximationPrecision),
		guard: l.guard,
	}
}

// HaversineKm is the great-circle distance between two points given in decimal degrees.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	return EarthRadiusKm * centralAngle(lat1, lon1, lat2, lon2)
}

// HaversineMeters is HaversineKm in meters.
func HaversineMeters(lat1, lon1, lat2, lon2 float64) float64 {
	return EarthRadiusMeters * centralAngle(lat1, lon1, lat2, lon2)
}

func centralAngle(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)

	// rounding can push a slightly above 1 for antipodal points
	a = math.Min(1, math.Max(0, a))
	return 2 * math.Asin(math.Sqrt(a))
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

func (l *GeoLocation) setLat(lat float64) error {
	if math.IsNaN(lat) || lat < LatitudeMin || lat > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("lat", lat, LatitudeMin, LatitudeMax)
	}

	l.lat = lat
	return nil
}

func (l *GeoLocation) setLon(lon float64) error {
	if math.IsNaN(lon) || lon < LongitudeMin || lon > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("lon", lon, LongitudeMin, LongitudeMax)
	}

	l.lon = lon
	return nil
}
