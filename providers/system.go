// Package providers supplies the content sources the panel widgets
// consume: host metrics, network identity, and service status. The
// core never calls the OS directly; it sees only these capabilities.
package providers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"oledpanel/container"
)

var errNoSample = errors.New("providers: no sample")

// CPUPercent returns a source reading total CPU utilization since the
// previous call.
func CPUPercent() container.MetricSource {
	return func() (float64, error) {
		vals, err := cpu.Percent(0, false)
		if err != nil {
			return 0, err
		}
		if len(vals) == 0 {
			return 0, errNoSample
		}
		return vals[0], nil
	}
}

// MemoryPercent returns a source reading used physical memory.
func MemoryPercent() container.MetricSource {
	return func() (float64, error) {
		vm, err := mem.VirtualMemory()
		if err != nil {
			return 0, err
		}
		return vm.UsedPercent, nil
	}
}

// CPUTemperature returns a source reading the CPU temperature sensor.
// Sensor naming differs per platform; the first sensor key containing
// one of the usual CPU markers wins.
func CPUTemperature() container.MetricSource {
	return func() (float64, error) {
		sensors, err := host.SensorsTemperatures()
		if err != nil {
			return 0, err
		}
		for _, s := range sensors {
			key := strings.ToLower(s.SensorKey)
			if strings.Contains(key, "cpu_thermal") ||
				strings.Contains(key, "coretemp") ||
				strings.Contains(key, "k10temp") ||
				strings.Contains(key, "cpu-thermal") {
				return s.Temperature, nil
			}
		}
		return 0, fmt.Errorf("%w: no cpu temperature sensor", errNoSample)
	}
}

// Uptime returns a source formatting system uptime as "1d 2h 3m".
func Uptime() container.TextSource {
	return func() (string, error) {
		secs, err := host.Uptime()
		if err != nil {
			return "", err
		}
		return formatUptime(secs), nil
	}
}

func formatUptime(secs uint64) string {
	days := secs / 86400
	hours := secs % 86400 / 3600
	mins := secs % 3600 / 60
	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm", days, hours, mins)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
	return fmt.Sprintf("%dm", mins)
}
