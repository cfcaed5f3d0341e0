package fees

import (
	"fmt"

	"github.com/shopspring/decimal"

	"marketfees/internal/modules/geo"
)

// Fee schedule. The fallback fee models an assumed ~2 km trip at the standard
// per-kilometre rate and is charged whenever a distance cannot be computed,
// so checkout never blocks on missing geodata.
var (
	ratePerKm   = decimal.NewFromInt(20)
	fallbackFee = decimal.NewFromInt(40)
)

// Events receives fee diagnostics as a side channel. Implementations must not
// fail; the calculators treat the sink as fire-and-forget.
type Events interface {
	FallbackApplied(sellerID string, reason FallbackReason, err error)
}

// NopEvents discards all diagnostics.
type NopEvents struct{}

func (NopEvents) FallbackApplied(string, FallbackReason, error) {}

// Service computes delivery fees in a single currency.
type Service struct {
	currency string
	events   Events
}

func NewService(currency string, events Events) *Service {
	if events == nil {
		events = NopEvents{}
	}
	return &Service{currency: currency, events: events}
}

// ProductFee decides the delivery fee for a single seller shipment.
//
// Free delivery short-circuits to a zero fee without inspecting coordinates.
// When any of the four coordinate components is absent, or the distance math
// faults, the fallback fee is charged instead; the decision's Fallback field
// records which path ran. This function never fails.
func (s *Service) ProductFee(freeDelivery bool, vendor, customer geo.Coordinate) FeeDecision {
	return s.productFee("", freeDelivery, vendor, customer)
}

func (s *Service) productFee(sellerID string, freeDelivery bool, vendor, customer geo.Coordinate) (d FeeDecision) {
	if freeDelivery {
		zero := 0.0
		return FeeDecision{Fee: decimal.Zero, DistanceKm: &zero, FreeDelivery: true}
	}

	defer func() {
		if r := recover(); r != nil {
			s.events.FallbackApplied(sellerID, FallbackComputationFailure, fmt.Errorf("distance fee: %v", r))
			d = FeeDecision{Fee: fallbackFee, Fallback: FallbackComputationFailure}
		}
	}()

	vp, vendorOK := vendor.Point()
	cp, customerOK := customer.Point()
	if !vendorOK || !customerOK {
		s.events.FallbackApplied(sellerID, FallbackMissingCoordinates, nil)
		return FeeDecision{Fee: fallbackFee, Fallback: FallbackMissingCoordinates}
	}

	km := geo.Distance(vp, cp)
	fee := decimal.NewFromFloat(km).Mul(ratePerKm).Round(2)
	return FeeDecision{Fee: fee, DistanceKm: &km}
}

// QuoteOrder groups the cart by seller and charges each seller's delivery fee
// once, from the first line item seen for that seller. Later items for the
// same seller only join the breakdown's item list, even when their
// free-delivery flag differs: first-seller-wins is a long-standing billing
// rule, not a shortcut. The total accumulates with exact decimal addition
// over the already-rounded per-seller fees.
func (s *Service) QuoteOrder(items []CartLineItem, customer geo.Coordinate) OrderQuote {
	quote := OrderQuote{TotalFee: decimal.Zero, Currency: s.currency}
	index := make(map[string]int, len(items))

	for _, item := range items {
		if i, seen := index[item.SellerID]; seen {
			quote.Sellers[i].Items = append(quote.Sellers[i].Items, item)
			continue
		}

		decision := s.productFee(item.SellerID, item.freeDelivery(), item.Vendor(), customer)
		index[item.SellerID] = len(quote.Sellers)
		quote.Sellers = append(quote.Sellers, SellerBreakdown{
			SellerID:     item.SellerID,
			SellerName:   item.sellerName(),
			Fee:          decision.Fee,
			DistanceKm:   decision.DistanceKm,
			FreeDelivery: decision.FreeDelivery,
			Fallback:     decision.Fallback,
			Items:        []CartLineItem{item},
		})
		quote.TotalFee = quote.TotalFee.Add(decision.Fee)
	}

	return quote
}
