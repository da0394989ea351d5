package dto

import "time"

type Link struct {
	Href   string `json:"href"`
	Method string `json:"method,omitempty"` // Optional: GET, POST, PUT, DELETE
}

type LoginRequest struct {
	Pin string `json:"pin" binding:"required"`
}

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type SelectDateRequest struct {
	Date string `json:"date" binding:"required,datekey"`
}

type ShiftDateRequest struct {
	Days *int `json:"days" binding:"required,min=-3660,max=3660"`
}

type CounterRequest struct {
	Delta *int `json:"delta" binding:"required,min=-1000,max=1000"`
}

type NotesRequest struct {
	Notes *string `json:"notes" binding:"required"`
}

type PhotoRequest struct {
	DataURL string `json:"data_url" binding:"required"`
}

// ShareLinkRequest defaults to the active date when Date is empty
type ShareLinkRequest struct {
	Date string `json:"date" binding:"omitempty,datekey"`
}

type ShareLinkResponse struct {
	Date      string          `json:"date"`
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	Links     map[string]Link `json:"_links"`
}

func ToShareLinkResponse(date, token string, expiresAt time.Time) ShareLinkResponse {
	return ShareLinkResponse{
		Date:      date,
		Token:     token,
		ExpiresAt: expiresAt,
		Links: map[string]Link{
			"self": {Href: "/shared/" + token, Method: "GET"},
		},
	}
}

type MedicationResponse struct {
	Date          string `json:"date"`
	DosingDay     bool   `json:"dosing_day"`
	NextDosingDay string `json:"next_dosing_day"`
	StartDate     string `json:"start_date"`
	IntervalDays  int    `json:"interval_days"`
	TaskID        string `json:"task_id"`
}

type SummaryResponse struct {
	Date    string `json:"date"`
	Summary string `json:"summary"`
}

type HealthResponse struct {
	Status        string  `json:"status"`
	Backend       string  `json:"backend"`
	ActiveDate    string  `json:"active_date"`
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryPercent float64 `json:"memory_percent"`
	Error         string  `json:"error,omitempty"`
}
