package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Nisand-KB/FRESH-MART/internal/domain"
	"github.com/Nisand-KB/FRESH-MART/internal/i18n"
)

// location failure reasons surfaced as non-fatal, user-correctable notices
var (
	ErrPermissionDenied    = errors.New("location permission denied")
	ErrLocationUnavailable = errors.New("location unavailable")
	ErrLocationTimeout     = errors.New("location timeout")
	// ErrLocationBusy rejects a request while another is in flight
	ErrLocationBusy = errors.New("location request already in flight")
)

// Geolocator is the device location sensor boundary: one request yields
// either a coordinate pair or a failure reason. The core never retries.
type Geolocator interface {
	Locate(ctx context.Context) (domain.Location, error)
}

// LocationService runs the idle -> requesting -> idle state machine
// around a Geolocator. A second request while one is outstanding is
// rejected rather than raced or cancelled.
type LocationService struct {
	geo Geolocator

	// sem holds one token while a capture is in flight; it doubles as
	// the busy flag and the double-dispatch guard
	sem chan struct{}
}

func NewLocationService(geo Geolocator) *LocationService {
	return &LocationService{geo: geo, sem: make(chan struct{}, 1)}
}

// Requesting reports whether a capture is in flight
func (s *LocationService) Requesting() bool {
	return len(s.sem) == 1
}

// Capture requests device coordinates and merges a successful result into
// the given details: the location is attached, and the locale placeholder
// is substituted into the address only when the address was empty. On
// failure the details are returned unchanged together with the reason;
// the busy flag is cleared either way.
func (s *LocationService) Capture(ctx context.Context, details domain.CustomerDetails, lang domain.Language) (domain.CustomerDetails, error) {
	select {
	case s.sem <- struct{}{}:
	default:
		return details, ErrLocationBusy
	}
	defer func() { <-s.sem }()

	loc, err := s.geo.Locate(ctx)
	if err != nil {
		slog.Info("location capture failed", "reason", err)
		return details, err
	}
	details.Location = &loc
	if details.Address == "" {
		details.Address = i18n.Label(lang, i18n.KeyAddressPlaceholder)
	}
	return details, nil
}
