package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"carediary/dto"
	"carediary/services"
	"carediary/usecase"
	"carediary/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AddPhotoHandler accepts a multipart "photo" file or a JSON data URL. The
// photo is attached to the day that is active once decoding has finished.
func AddPhotoHandler(c *gin.Context, diary *usecase.Diary, encoder *services.PhotoEncoder) {
	var (
		encoded string
		err     error
	)

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		file, ferr := c.FormFile("photo")
		if ferr != nil {
			var maxErr *http.MaxBytesError
			if errors.As(ferr, &maxErr) {
				utils.TrackError("photo", "too_large")
				utils.UnprocessableEntity(c, "Photo is too large", diary.Snapshot())
				return
			}
			utils.TrackError("validation", "photo_missing")
			utils.BadRequest(c, "Missing photo file")
			return
		}
		f, ferr := file.Open()
		if ferr != nil {
			utils.TrackError("photo", "open_failed")
			utils.BadRequest(c, "Could not read photo file")
			return
		}
		defer f.Close()
		encoded, err = encoder.Encode(f)
	} else {
		var req dto.PhotoRequest
		if berr := c.ShouldBindJSON(&req); berr != nil {
			utils.TrackError("validation", "photo_body")
			utils.BadRequest(c, "Invalid request body")
			return
		}
		encoded, err = encoder.EncodeDataURL(req.DataURL)
	}

	if err != nil {
		utils.TrackError("photo", "decode_failed")
		utils.L().Info("Photo rejected", zap.Error(err))
		utils.UnprocessableEntity(c, photoErrorMessage(err), diary.Snapshot())
		return
	}

	respondOutcome(c, diary.AddPhoto(c.Request.Context(), encoded))
}

// RemovePhotoHandler ignores indexes outside the photo list
func RemovePhotoHandler(c *gin.Context, diary *usecase.Diary) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.BadRequest(c, "Photo index must be a number")
		return
	}
	respondOutcome(c, diary.RemovePhoto(c.Request.Context(), index))
}

func photoErrorMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrPhotoTooLarge):
		return "Photo is too large"
	case errors.Is(err, services.ErrEmptyPhoto):
		return "Photo is empty"
	default:
		return "Photo could not be read as an image"
	}
}
