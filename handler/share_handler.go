package handler

import (
	"net/http"

	"carediary/dto"
	"carediary/middleware"
	"carediary/services"
	"carediary/usecase"
	"carediary/utils"

	"github.com/gin-gonic/gin"
)

func GetSummaryHandler(c *gin.Context, diary *usecase.Diary) {
	utils.Success(c, dto.SummaryResponse{
		Date:    diary.ActiveDate(),
		Summary: diary.Summary(),
	})
}

// ShareHandler sends the active day's summary through the configured channel,
// or hands the text back for the clipboard.
func ShareHandler(c *gin.Context, diary *usecase.Diary, share *services.ShareService) {
	result := share.Share(c.Request.Context(), diary.PetName()+" Diary Update", diary.Summary())
	utils.TrackDiaryAction("share")
	utils.Message(c, result.Message, result)
}

func CreateShareLinkHandler(c *gin.Context, diary *usecase.Diary, tokens *services.TokenService) {
	var req dto.ShareLinkRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.TrackError("validation", "share_link")
			utils.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
			return
		}
	}
	if req.Date == "" {
		req.Date = diary.ActiveDate()
	}

	token, expiresAt, err := tokens.GenerateShareLink(req.Date)
	if err != nil {
		utils.TrackError("auth", "share_link_generation")
		utils.InternalError(c, "Failed to create share link")
		return
	}
	utils.TrackDiaryAction("share_link")
	utils.Success(c, dto.ToShareLinkResponse(req.Date, token, expiresAt))
}

// SharedSummaryHandler serves a signed link. Browsers get plain text, JSON
// clients the usual envelope.
func SharedSummaryHandler(c *gin.Context, diary *usecase.Diary, tokens *services.TokenService) {
	date, err := tokens.ValidateShareLink(c.Param("token"))
	if err != nil {
		middleware.TrackAuthAttempt("failure", "share_link")
		utils.Unauthorized(c, "Invalid or expired link")
		return
	}
	middleware.TrackAuthAttempt("success", "share_link")

	summary, err := diary.SummaryFor(c.Request.Context(), date)
	if err != nil {
		respondError(c, err)
		return
	}

	switch c.NegotiateFormat(gin.MIMEPlain, gin.MIMEJSON) {
	case gin.MIMEJSON:
		utils.Success(c, dto.SummaryResponse{Date: date, Summary: summary})
	default:
		c.String(http.StatusOK, summary)
	}
}
