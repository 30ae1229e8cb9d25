package handlers

import (
	"context"
	"time"

	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/response"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

type HealthStatus struct {
	Message        string  `json:"message"`
	Timestamp      string  `json:"timestamp"`
	CpuPercent     float64 `json:"cpuPercent"`
	MemUsedPercent float64 `json:"memUsedPercent"`
}

// Healthcheck needs no token; host stats are best effort.
func Healthcheck(ctx context.Context, c *app.RequestContext) {
	status := &HealthStatus{
		Message:   "Server is running",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if percents, err := cpu.Percent(0, false); err != nil {
		hlog.CtxWarnf(ctx, "read cpu usage failed: %v", err)
	} else if len(percents) > 0 {
		status.CpuPercent = percents[0]
	}
	if vm, err := mem.VirtualMemory(); err != nil {
		hlog.CtxWarnf(ctx, "read memory usage failed: %v", err)
	} else {
		status.MemUsedPercent = vm.UsedPercent
	}
	response.SendResponse(c, errno.SuccessCode, status, "OK")
}
