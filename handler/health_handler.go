package handler

import (
	"context"
	"time"

	"carediary/dto"
	"carediary/usecase"
	"carediary/utils"

	"github.com/gin-gonic/gin"
)

// Pinger is satisfied by repository.DailyLogRepo
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	store   Pinger
	backend string
	diary   *usecase.Diary
}

func NewHealthHandler(store Pinger, backend string, diary *usecase.Diary) *HealthHandler {
	return &HealthHandler{store: store, backend: backend, diary: diary}
}

func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	stats := utils.GetSystemStats(0)
	resp := dto.HealthResponse{
		Status:        "ok",
		Backend:       h.backend,
		ActiveDate:    h.diary.ActiveDate(),
		CPUPercent:    stats.CPUPercent,
		MemoryPercent: stats.MemoryPercent,
	}

	if err := h.store.Ping(ctx); err != nil {
		utils.TrackError("storage", "ping_failed")
		resp.Status = "degraded"
		resp.Error = err.Error()
		utils.ServiceUnavailable(c, "Storage unavailable", resp)
		return
	}
	utils.Success(c, resp)
}
