package dto

type SurveyRequest struct {
	Name       string   `json:"name" validate:"required,min=2"`
	Age        string   `json:"age" validate:"required"`
	Experience string   `json:"experience" validate:"required"`
	Goal       string   `json:"goal" validate:"required"`
	Risk       string   `json:"risk" validate:"required"`
	Industries []string `json:"industries" validate:"required,min=1"`
}
