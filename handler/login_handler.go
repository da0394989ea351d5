package handler

import (
	"carediary/dto"
	"carediary/middleware"
	"carediary/services"
	"carediary/utils"

	"github.com/gin-gonic/gin"
)

// LoginHandler exchanges the access PIN for a bearer token. Without a
// configured PIN hash there is nothing to log in to.
func LoginHandler(c *gin.Context, pinHash string, tokens *services.TokenService) {
	if pinHash == "" {
		utils.Message(c, "Authentication is disabled", gin.H{"auth_enabled": false})
		return
	}

	var loginReq dto.LoginRequest
	if err := c.ShouldBindJSON(&loginReq); err != nil {
		utils.TrackError("auth", "invalid_request")
		middleware.TrackAuthAttempt("failure", "validation")
		utils.BadRequest(c, "Invalid Request")
		return
	}

	ok, err := services.VerifyPin(pinHash, loginReq.Pin)
	if err != nil {
		utils.TrackError("auth", "pin_verification")
		middleware.TrackAuthAttempt("failure", "pin_verification_error")
		utils.InternalError(c, "Failed to verify PIN")
		return
	}
	if !ok {
		middleware.TrackAuthAttempt("failure", "invalid_pin")
		utils.Unauthorized(c, "Incorrect PIN")
		return
	}

	token, expiresAt, err := tokens.GenerateAccessToken()
	if err != nil {
		utils.TrackError("auth", "token_generation")
		utils.InternalError(c, "Failed to generate token")
		return
	}

	middleware.TrackAuthAttempt("success", "login")
	utils.Message(c, "Login successful", dto.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
	})
}
