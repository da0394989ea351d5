package handler

import (
	"carediary/dto"
	"carediary/usecase"
	"carediary/utils"

	"github.com/gin-gonic/gin"
)

func GetDiaryHandler(c *gin.Context, diary *usecase.Diary) {
	utils.Success(c, diary.Snapshot())
}

func SelectDateHandler(c *gin.Context, diary *usecase.Diary) {
	var req dto.SelectDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.TrackError("validation", "select_date")
		utils.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	outcome, err := diary.SelectDate(c.Request.Context(), req.Date)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOutcome(c, outcome)
}

func ShiftDateHandler(c *gin.Context, diary *usecase.Diary) {
	var req dto.ShiftDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.TrackError("validation", "shift_date")
		utils.BadRequest(c, "Invalid request body")
		return
	}

	outcome, err := diary.ShiftDate(c.Request.Context(), *req.Days)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOutcome(c, outcome)
}

func ToggleTaskHandler(c *gin.Context, diary *usecase.Diary) {
	outcome, err := diary.ToggleTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOutcome(c, outcome)
}

func AdjustCounterHandler(c *gin.Context, diary *usecase.Diary) {
	var req dto.CounterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.TrackError("validation", "adjust_counter")
		utils.BadRequest(c, "Invalid request body")
		return
	}

	outcome, err := diary.AdjustCounter(c.Request.Context(), usecase.Counter(c.Param("counter")), *req.Delta)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOutcome(c, outcome)
}

func SetNotesHandler(c *gin.Context, diary *usecase.Diary) {
	var req dto.NotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.TrackError("validation", "set_notes")
		utils.BadRequest(c, "Invalid request body")
		return
	}

	respondOutcome(c, diary.SetNotes(c.Request.Context(), *req.Notes))
}

// GetDayHandler reads any stored day without changing the active date
func GetDayHandler(c *gin.Context, diary *usecase.Diary) {
	view, err := diary.LoadDay(c.Request.Context(), c.Param("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, view)
}
