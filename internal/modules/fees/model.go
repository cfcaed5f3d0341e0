// Package fees computes marketplace delivery fees: a fee decision per seller
// shipment and a per-order breakdown across a multi-seller cart.
package fees

import (
	"github.com/shopspring/decimal"

	"marketfees/internal/modules/geo"
)

// FallbackReason tags which degraded path produced a fee, so callers and
// tests can tell a computed fee from a defaulted one without a failure
// channel. An empty reason means the fee was computed from real distance (or
// the shipment was free).
type FallbackReason string

const (
	FallbackNone               FallbackReason = ""
	FallbackMissingCoordinates FallbackReason = "missing_coordinates"
	FallbackComputationFailure FallbackReason = "computation_failure"
)

// FeeDecision is the delivery fee outcome for one seller shipment.
// DistanceKm is nil when the fee is a fallback.
type FeeDecision struct {
	Fee          decimal.Decimal
	DistanceKm   *float64
	FreeDelivery bool
	Fallback     FallbackReason
}

// CartLineItem is one cart entry as supplied by the caller. It is consumed
// read-only. A nil FreeDelivery means true; a nil coordinate component means
// the vendor location is unknown.
type CartLineItem struct {
	SellerID     string   `json:"seller_id"`
	SellerName   string   `json:"seller_name,omitempty"`
	FreeDelivery *bool    `json:"free_delivery,omitempty"`
	VendorLat    *float64 `json:"vendor_latitude,omitempty"`
	VendorLng    *float64 `json:"vendor_longitude,omitempty"`
}

// Vendor returns the item's vendor coordinate, possibly partial.
func (it CartLineItem) Vendor() geo.Coordinate {
	return geo.Coordinate{Lat: it.VendorLat, Lng: it.VendorLng}
}

func (it CartLineItem) freeDelivery() bool {
	return it.FreeDelivery == nil || *it.FreeDelivery
}

func (it CartLineItem) sellerName() string {
	if it.SellerName == "" {
		return "Unknown Seller"
	}
	return it.SellerName
}

// SellerBreakdown is one seller's slice of an order quote: the fee charged
// once for the seller plus every cart item fulfilled by them.
type SellerBreakdown struct {
	SellerID     string          `json:"seller_id"`
	SellerName   string          `json:"seller_name"`
	Fee          decimal.Decimal `json:"delivery_fee"`
	DistanceKm   *float64        `json:"distance_km"`
	FreeDelivery bool            `json:"free_delivery"`
	Fallback     FallbackReason  `json:"fallback,omitempty"`
	Items        []CartLineItem  `json:"items"`
}

// OrderQuote is the delivery fee breakdown for a whole cart. Sellers are kept
// in first-seen cart order. TotalFee always equals the exact sum of the
// per-seller fees, each already rounded to 2 decimals.
type OrderQuote struct {
	TotalFee decimal.Decimal   `json:"total_delivery_fee"`
	Currency string            `json:"currency"`
	Sellers  []SellerBreakdown `json:"sellers_breakdown"`
}

// Seller looks up a seller's breakdown by id.
func (q OrderQuote) Seller(id string) (SellerBreakdown, bool) {
	for _, s := range q.Sellers {
		if s.SellerID == id {
			return s, true
		}
	}
	return SellerBreakdown{}, false
}
