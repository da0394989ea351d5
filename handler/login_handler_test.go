package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"carediary/services"

	"github.com/gin-gonic/gin"
)

func TestLoginHandler(t *testing.T) {
	tokens := services.NewTokenService("test_secret_key", time.Hour, time.Hour)
	pinHash, err := services.HashPin("2468")
	if err != nil {
		t.Fatalf("Failed to hash PIN: %v", err)
	}

	tests := []struct {
		name           string
		pinHash        string
		body           string
		expectedStatus int
		expectToken    bool
	}{
		{"Correct PIN", pinHash, `{"pin":"2468"}`, http.StatusOK, true},
		{"Wrong PIN", pinHash, `{"pin":"1111"}`, http.StatusUnauthorized, false},
		{"Missing PIN", pinHash, `{}`, http.StatusBadRequest, false},
		{"Auth disabled", "", `{"pin":"2468"}`, http.StatusOK, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.POST("/login", func(c *gin.Context) {
				LoginHandler(c, tt.pinHash, tokens)
			})

			req, _ := http.NewRequest(http.MethodPost, "/login", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("Expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			var response struct {
				Data struct {
					AccessToken string `json:"access_token"`
				} `json:"data"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
				t.Fatalf("Failed to parse response: %v", err)
			}
			if tt.expectToken {
				if err := tokens.ValidateAccessToken(response.Data.AccessToken); err != nil {
					t.Errorf("Expected a valid access token: %v", err)
				}
			} else if response.Data.AccessToken != "" {
				t.Error("Did not expect a token")
			}
		})
	}
}
