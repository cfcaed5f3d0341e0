package courier

import (
	"github.com/shopspring/decimal"

	"marketfees/internal/types"
)

// Courier fee schedule. The unknown-distance component mirrors the checkout
// fallback policy but on this schedule's own constants; the two fee tables
// serve different ledgers and are tuned independently.
var (
	baseFee            = decimal.NewFromInt(10)
	perKm              = decimal.NewFromInt(2)
	unknownDistanceFee = decimal.NewFromInt(20)

	courierShare  = decimal.RequireFromString("0.70")
	platformShare = decimal.RequireFromString("0.30")
)

func multiplier(p Priority) decimal.Decimal {
	switch p {
	case PriorityExpress:
		return decimal.RequireFromString("1.5")
	case PriorityUrgent:
		return decimal.NewFromInt(2)
	default:
		// Unrecognized priorities charge the standard rate.
		return decimal.NewFromInt(1)
	}
}

// Service computes courier-facing delivery fees in a single currency.
type Service struct {
	currency string
}

func NewService(currency string) *Service {
	return &Service{currency: currency}
}

// FeeFromDistance prices a courier delivery from trip distance. A nil
// distance charges the fixed unknown-distance component instead. The result
// is rounded half-up to 2 decimals after the priority multiplier.
func (s *Service) FeeFromDistance(distanceKm *float64, p Priority) types.Money {
	component := unknownDistanceFee
	if distanceKm != nil {
		component = decimal.NewFromFloat(*distanceKm).Mul(perKm)
	}
	return types.NewMoney(baseFee.Add(component).Mul(multiplier(p)), s.currency)
}

// Split divides a delivery fee 70/30 between the courier and the platform.
// Each leg is rounded on its own, not derived by subtraction, so the legs
// can sum to one minor unit off the fee. Existing ledger rows were written
// this way; the residue is preserved, not corrected.
func (s *Service) Split(deliveryFee types.Money) Split {
	return Split{
		DeliveryFee: deliveryFee,
		CourierFee:  types.NewMoney(deliveryFee.Amount.Mul(courierShare), deliveryFee.Currency),
		PlatformFee: types.NewMoney(deliveryFee.Amount.Mul(platformShare), deliveryFee.Currency),
	}
}
