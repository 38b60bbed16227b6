// Package battery reads the first available power source. Most desktops
// have none, so absence is a normal outcome rather than an error.
package battery

import (
	"github.com/distatus/battery"

	"sysglance/internal/model"
)

// Read returns the status of the first battery, or nil when no battery
// hardware is present or the power manager cannot enumerate one. The two
// cases are deliberately indistinguishable.
func Read() *model.BatteryInfo {
	batteries, err := battery.GetAll()
	if err != nil || len(batteries) == 0 || batteries[0] == nil {
		return nil
	}
	return statusFrom(batteries[0])
}

// statusFrom maps the provider record onto the presentation entity.
func statusFrom(b *battery.Battery) *model.BatteryInfo {
	var state string
	switch b.State {
	case battery.Charging:
		state = "charging"
	case battery.Discharging:
		state = "discharging"
	case battery.Full:
		state = "full"
	default:
		state = "unknown"
	}

	info := &model.BatteryInfo{
		Percentage: percent(b.Current, b.Full),
		// Computed against the provider state on purpose, not derived
		// from the label above.
		IsCharging:    b.State == battery.Charging,
		State:         state,
		HealthPercent: percent(b.Full, b.Design),
	}

	// Remaining time only makes sense while energy actually flows in the
	// matching direction. ChargeRate is watts, Current/Full watt-hours.
	if b.ChargeRate > 0 {
		switch b.State {
		case battery.Discharging:
			mins := b.Current / b.ChargeRate * 60
			info.TimeToEmptyMinutes = &mins
		case battery.Charging:
			mins := (b.Full - b.Current) / b.ChargeRate * 60
			info.TimeToFullMinutes = &mins
		}
	}

	return info
}

func percent(part, whole float64) float64 {
	if whole <= 0 {
		return 0
	}
	return part / whole * 100
}
