package courier

import (
	"testing"

	"github.com/shopspring/decimal"

	"marketfees/internal/types"
)

func ghs(s string) types.Money {
	return types.Money{Amount: decimal.RequireFromString(s), Currency: "GHS"}
}

func TestFeeFromDistance(t *testing.T) {
	km := func(v float64) *float64 { return &v }

	tests := []struct {
		name       string
		distanceKm *float64
		priority   Priority
		want       string
	}{
		{"standard", km(5), PriorityStandard, "20.00"},
		{"express", km(5), PriorityExpress, "30.00"},
		{"urgent", km(5), PriorityUrgent, "40.00"},
		{"fractional distance", km(2.57), PriorityExpress, "22.71"},
		{"unknown distance standard", nil, PriorityStandard, "30.00"},
		{"unknown distance urgent", nil, PriorityUrgent, "60.00"},
		{"unrecognized priority charges standard", km(5), Priority("RUSH"), "20.00"},
		{"zero distance", km(0), PriorityStandard, "10.00"},
	}

	svc := NewService("GHS")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.FeeFromDistance(tt.distanceKm, tt.priority)
			if want := decimal.RequireFromString(tt.want); !got.Amount.Equal(want) {
				t.Errorf("FeeFromDistance() = %s, want %s", got.Amount, want)
			}
			if got.Currency != "GHS" {
				t.Errorf("Currency = %q, want GHS", got.Currency)
			}
		})
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name          string
		fee           string
		wantCourier   string
		wantPlatform  string
		sumEqualsFee  bool
	}{
		{"even hundred", "100.00", "70.00", "30.00", true},
		{"even ten", "10.00", "7.00", "3.00", true},
		{"small fee with rounding residue", "0.05", "0.04", "0.02", false},
	}

	svc := NewService("GHS")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Split(ghs(tt.fee))

			if want := decimal.RequireFromString(tt.wantCourier); !got.CourierFee.Amount.Equal(want) {
				t.Errorf("CourierFee = %s, want %s", got.CourierFee.Amount, want)
			}
			if want := decimal.RequireFromString(tt.wantPlatform); !got.PlatformFee.Amount.Equal(want) {
				t.Errorf("PlatformFee = %s, want %s", got.PlatformFee.Amount, want)
			}
			if !got.DeliveryFee.Amount.Equal(decimal.RequireFromString(tt.fee)) {
				t.Errorf("DeliveryFee = %s, want %s", got.DeliveryFee.Amount, tt.fee)
			}

			// The legs are rounded independently; whether their sum matches
			// the fee is part of the contract either way.
			sum := got.CourierFee.Amount.Add(got.PlatformFee.Amount)
			if tt.sumEqualsFee != sum.Equal(got.DeliveryFee.Amount) {
				t.Errorf("legs sum to %s against fee %s, want match=%v",
					sum, got.DeliveryFee.Amount, tt.sumEqualsFee)
			}
		})
	}
}

// The one-pesewa residue from independent rounding is preserved, never
// redistributed; ledger rows written by earlier versions depend on it.
func TestSplit_ResidueNotCorrected(t *testing.T) {
	got := NewService("GHS").Split(ghs("0.05"))
	sum := got.CourierFee.Amount.Add(got.PlatformFee.Amount)
	if diff := sum.Sub(got.DeliveryFee.Amount); !diff.Equal(decimal.RequireFromString("0.01")) {
		t.Errorf("residue = %s, want 0.01", diff)
	}
}
