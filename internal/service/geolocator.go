package service

import (
	"context"

	"github.com/Nisand-KB/FRESH-MART/internal/domain"
)

// GeolocatorFunc adapts a plain function to the Geolocator interface
type GeolocatorFunc func(ctx context.Context) (domain.Location, error)

func (f GeolocatorFunc) Locate(ctx context.Context) (domain.Location, error) {
	return f(ctx)
}

// FixedGeolocator always reports the given coordinates. Deployments
// without a real sensor pin the store's service area this way.
func FixedGeolocator(loc domain.Location) Geolocator {
	return GeolocatorFunc(func(context.Context) (domain.Location, error) {
		return loc, nil
	})
}

// UnavailableGeolocator reports that no sensor is present
func UnavailableGeolocator() Geolocator {
	return GeolocatorFunc(func(context.Context) (domain.Location, error) {
		return domain.Location{}, ErrLocationUnavailable
	})
}
