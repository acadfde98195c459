package model

import "time"

// SurveyResponse captures the investment preference survey a user fills in
// after registration.
type SurveyResponse struct {
	Name        string    `json:"name"`
	Age         string    `json:"age"`
	Experience  string    `json:"experience"`
	Goal        string    `json:"goal"`
	Risk        string    `json:"risk"`
	Industries  []string  `json:"industries"`
	SubmittedAt time.Time `json:"submittedAt"`
}
