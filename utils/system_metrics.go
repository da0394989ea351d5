package utils

import (
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
	"go.uber.org/zap"
)

type SystemStats struct {
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryPercent float64 `json:"memory_percent"`
}

// GetCPUUsage samples CPU usage over interval and returns a percentage
func GetCPUUsage(interval time.Duration) float64 {
	percentage, err := cpu.Percent(interval, false)
	if err != nil {
		L().Warn("Error getting CPU usage", zap.Error(err))
		return 0
	}
	if len(percentage) > 0 {
		return percentage[0]
	}
	return 0
}

func GetSystemStats(interval time.Duration) SystemStats {
	stats := SystemStats{CPUPercent: GetCPUUsage(interval)}
	if vm, err := mem.VirtualMemory(); err == nil {
		stats.MemoryPercent = vm.UsedPercent
	} else {
		L().Warn("Error getting memory usage", zap.Error(err))
	}
	SystemCPUUsage.Set(stats.CPUPercent)
	return stats
}
