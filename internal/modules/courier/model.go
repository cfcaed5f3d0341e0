// Package courier prices courier-fulfilled deliveries and divides the fee
// between the courier and the platform for the ledger.
package courier

import "marketfees/internal/types"

// Priority selects the courier fee multiplier for a delivery.
type Priority string

const (
	PriorityStandard Priority = "STANDARD"
	PriorityExpress  Priority = "EXPRESS"
	PriorityUrgent   Priority = "URGENT"
)

// Split is the courier/platform division of a delivery fee. The two legs are
// rounded independently and may sum to one minor unit off the fee; see
// Service.Split.
type Split struct {
	DeliveryFee types.Money `json:"delivery_fee"`
	CourierFee  types.Money `json:"courier_fee"`
	PlatformFee types.Money `json:"platform_fee"`
}
