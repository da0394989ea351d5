package handler

import (
	"carediary/dto"
	"carediary/model"
	"carediary/usecase"
	"carediary/utils"

	"github.com/gin-gonic/gin"
)

type taskGroup struct {
	Category model.TaskCategory `json:"category"`
	Tasks    []model.Task       `json:"tasks"`
}

// GetTasksHandler lists the whole catalog grouped by category, including the
// medication task regardless of the day.
func GetTasksHandler(c *gin.Context) {
	groups := make([]taskGroup, 0, len(model.Categories))
	for _, category := range model.Categories {
		if tasks := model.TasksByCategory(category); len(tasks) > 0 {
			groups = append(groups, taskGroup{Category: category, Tasks: tasks})
		}
	}
	utils.Success(c, groups)
}

func GetMedicationHandler(c *gin.Context, schedule usecase.MedicationSchedule) {
	dateKey := c.Param("date")
	date, err := model.ParseDateKey(dateKey, schedule.Location)
	if err != nil {
		utils.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	utils.Success(c, dto.MedicationResponse{
		Date:          dateKey,
		DosingDay:     schedule.IsDosingDay(date),
		NextDosingDay: model.FormatDateKey(schedule.NextDosingDay(date)),
		StartDate:     model.FormatDateKey(schedule.Start),
		IntervalDays:  usecase.DosingIntervalDays,
		TaskID:        schedule.TaskID,
	})
}
