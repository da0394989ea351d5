package handler

import (
	"errors"

	"carediary/usecase"
	"carediary/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondOutcome answers a diary transition. A notice still answers 200.
func respondOutcome(c *gin.Context, outcome usecase.Outcome) {
	if outcome.Notice != "" {
		utils.SuccessWithNotice(c, outcome.View, outcome.Notice)
		return
	}
	utils.Success(c, outcome.View)
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidDate):
		utils.TrackError("validation", "invalid_date")
		utils.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
	case errors.Is(err, usecase.ErrUnknownTask):
		utils.TrackError("validation", "unknown_task")
		utils.NotFound(c, "Task not found")
	case errors.Is(err, usecase.ErrTaskNotScheduled):
		utils.TrackError("validation", "task_not_scheduled")
		utils.Conflict(c, "Medication is not due on this day")
	case errors.Is(err, usecase.ErrUnknownCounter):
		utils.TrackError("validation", "unknown_counter")
		utils.NotFound(c, "Counter not found, use urine or stool")
	default:
		utils.TrackError("storage", "unavailable")
		utils.L().Error("Request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err))
		utils.ServiceUnavailable(c, "Storage unavailable", nil)
	}
}
