package collector

import (
	"github.com/shirou/gopsutil/v3/host"

	"sysglance/internal/model"
)

func collectTemperatures() []model.TempInfo {
	// SensorsTemperatures can return partial results alongside an error;
	// whatever was read is still usable.
	readings, _ := host.SensorsTemperatures()
	return filterTemperatures(readings)
}

// filterTemperatures drops sensors without a strictly positive reading.
// Zero means "no data" on every platform gopsutil covers, not a cold sensor.
func filterTemperatures(readings []host.TemperatureStat) []model.TempInfo {
	temps := make([]model.TempInfo, 0, len(readings))
	for _, r := range readings {
		if r.Temperature <= 0 {
			continue
		}
		temps = append(temps, model.TempInfo{
			Label:              r.SensorKey,
			TemperatureCelsius: r.Temperature,
		})
	}
	return temps
}
