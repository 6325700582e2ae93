// Package handlers provides the server-level HTTP handlers that do not
// belong to any module.
package handlers

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"

	apperrors "github.com/mantonx/streambase/internal/errors"
)

var startTime = time.Now()

// Health handles GET /api/health
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"uptime": time.Since(startTime).String(),
	})
}

// SystemStatus handles GET /api/system/status with host-level resource
// numbers for the admin dashboard.
func SystemStatus(c *gin.Context) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		apperrors.HandleInternalError(c, "Failed to read system status", err)
		return
	}

	// Sampling interval 0 returns utilization since the previous call,
	// which is good enough for a dashboard poll.
	cpuPercents, err := cpu.Percent(0, false)
	if err != nil {
		apperrors.HandleInternalError(c, "Failed to read system status", err)
		return
	}
	cpuPercent := 0.0
	if len(cpuPercents) > 0 {
		cpuPercent = cpuPercents[0]
	}

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	c.JSON(http.StatusOK, gin.H{
		"uptime":     time.Since(startTime).String(),
		"goroutines": runtime.NumGoroutine(),
		"cpu": gin.H{
			"count":   runtime.NumCPU(),
			"percent": cpuPercent,
		},
		"memory": gin.H{
			"total":        vm.Total,
			"used":         vm.Used,
			"used_percent": vm.UsedPercent,
			"heap_alloc":   ms.HeapAlloc,
		},
	})
}
