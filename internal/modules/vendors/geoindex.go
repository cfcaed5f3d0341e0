package vendors

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"marketfees/internal/modules/geo"
)

const vendorGeoKey = "vendors:locations"

// GeoIndex is a vendor directory backed by a Redis GEO set. It holds shop
// positions only; names and addresses stay with the relational store, so
// lookups through the index never take the geocoding path.
type GeoIndex struct {
	redis *redis.Client
}

func NewGeoIndex(redis *redis.Client) *GeoIndex {
	return &GeoIndex{redis: redis}
}

// SetLocation registers or moves a vendor's shop position.
func (g *GeoIndex) SetLocation(ctx context.Context, sellerID string, p geo.Point) error {
	return g.redis.GeoAdd(ctx, vendorGeoKey, &redis.GeoLocation{
		Name:      sellerID,
		Longitude: p.Lng,
		Latitude:  p.Lat,
	}).Err()
}

// Remove drops a vendor from the index.
func (g *GeoIndex) Remove(ctx context.Context, sellerID string) error {
	return g.redis.ZRem(ctx, vendorGeoKey, sellerID).Err()
}

func (g *GeoIndex) Lookup(ctx context.Context, sellerID string) (Vendor, error) {
	pos, err := g.redis.GeoPos(ctx, vendorGeoKey, sellerID).Result()
	if err != nil {
		return Vendor{}, fmt.Errorf("geo position for vendor %s: %w", sellerID, err)
	}
	if len(pos) == 0 || pos[0] == nil {
		return Vendor{}, ErrNotFound
	}
	return Vendor{
		ID:       sellerID,
		Location: geo.At(pos[0].Latitude, pos[0].Longitude),
	}, nil
}
