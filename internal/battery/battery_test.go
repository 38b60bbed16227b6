package battery

import (
	"math"
	"testing"

	"github.com/distatus/battery"
)

func TestStatusFromStateMapping(t *testing.T) {
	tests := []struct {
		state        battery.State
		wantState    string
		wantCharging bool
	}{
		{battery.Charging, "charging", true},
		{battery.Discharging, "discharging", false},
		{battery.Full, "full", false},
		{battery.Empty, "unknown", false},
		{battery.Unknown, "unknown", false},
	}

	for _, tt := range tests {
		info := statusFrom(&battery.Battery{State: tt.state, Current: 40, Full: 50, Design: 60})

		if info.State != tt.wantState {
			t.Errorf("state %v: State = %q, want %q", tt.state, info.State, tt.wantState)
		}
		if info.IsCharging != tt.wantCharging {
			t.Errorf("state %v: IsCharging = %v, want %v", tt.state, info.IsCharging, tt.wantCharging)
		}
	}
}

func TestStatusFromScalesRatios(t *testing.T) {
	info := statusFrom(&battery.Battery{
		State:   battery.Discharging,
		Current: 40,
		Full:    50,
		Design:  80,
	})

	if math.Abs(info.Percentage-80) > 1e-9 {
		t.Errorf("Percentage = %v, want 80", info.Percentage)
	}
	if math.Abs(info.HealthPercent-62.5) > 1e-9 {
		t.Errorf("HealthPercent = %v, want 62.5", info.HealthPercent)
	}
}

func TestStatusFromRemainingTime(t *testing.T) {
	// Discharging at 10W with 40Wh left: 4 hours to empty.
	info := statusFrom(&battery.Battery{
		State:      battery.Discharging,
		Current:    40,
		Full:       50,
		Design:     50,
		ChargeRate: 10,
	})
	if info.TimeToEmptyMinutes == nil || math.Abs(*info.TimeToEmptyMinutes-240) > 1e-9 {
		t.Errorf("TimeToEmptyMinutes = %v, want 240", info.TimeToEmptyMinutes)
	}
	if info.TimeToFullMinutes != nil {
		t.Errorf("TimeToFullMinutes should be absent while discharging")
	}

	// Charging at 20W with 10Wh missing: 30 minutes to full.
	info = statusFrom(&battery.Battery{
		State:      battery.Charging,
		Current:    40,
		Full:       50,
		Design:     50,
		ChargeRate: 20,
	})
	if info.TimeToFullMinutes == nil || math.Abs(*info.TimeToFullMinutes-30) > 1e-9 {
		t.Errorf("TimeToFullMinutes = %v, want 30", info.TimeToFullMinutes)
	}
	if info.TimeToEmptyMinutes != nil {
		t.Errorf("TimeToEmptyMinutes should be absent while charging")
	}
}

func TestStatusFromNoChargeRate(t *testing.T) {
	info := statusFrom(&battery.Battery{
		State:   battery.Discharging,
		Current: 40,
		Full:    50,
		Design:  50,
	})
	if info.TimeToEmptyMinutes != nil || info.TimeToFullMinutes != nil {
		t.Errorf("remaining time should be absent without a charge rate: %+v", info)
	}
}

func TestStatusFromZeroCapacity(t *testing.T) {
	info := statusFrom(&battery.Battery{State: battery.Unknown})
	if info.Percentage != 0 || info.HealthPercent != 0 {
		t.Errorf("zero capacity should yield zero percentages, got %+v", info)
	}
}
