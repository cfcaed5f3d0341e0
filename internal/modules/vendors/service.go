package vendors

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"marketfees/internal/modules/geo"
)

// ErrNotFound means the directory has no record for the seller.
var ErrNotFound = errors.New("vendor not found")

// Directory resolves a seller identifier to its stored vendor record.
type Directory interface {
	Lookup(ctx context.Context, sellerID string) (Vendor, error)
}

// Geocoder resolves a street address to a point.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (geo.Point, error)
}

// Service resolves seller coordinates ahead of fee computation. Resolution is
// a single synchronous pass with no retries and no cache; every failure
// degrades to an absent coordinate so the fee calculators apply their
// fallback instead of surfacing an error to checkout.
type Service struct {
	directory Directory
	geocoder  Geocoder // optional
	log       *zap.Logger
}

func NewService(directory Directory, geocoder Geocoder, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{directory: directory, geocoder: geocoder, log: log}
}

// Locate returns the seller's coordinate, or an absent coordinate when the
// seller is unknown, the stored geodata is invalid, or a lookup fails.
func (s *Service) Locate(ctx context.Context, sellerID string) geo.Coordinate {
	v, err := s.directory.Lookup(ctx, sellerID)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.Warn("vendor lookup failed",
				zap.String("seller_id", sellerID), zap.Error(err))
		}
		return geo.Coordinate{}
	}

	// Stored geodata is only trusted after range validation.
	if v.Location.Valid() {
		return v.Location
	}

	if s.geocoder == nil || v.Address == "" {
		return geo.Coordinate{}
	}
	p, err := s.geocoder.Geocode(ctx, v.Address)
	if err != nil {
		s.log.Warn("vendor geocode failed",
			zap.String("seller_id", sellerID), zap.Error(err))
		return geo.Coordinate{}
	}
	return geo.At(p.Lat, p.Lng)
}
