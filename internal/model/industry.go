package model

// Industry is a sector of the stock catalog. Industries are created once at
// catalog initialization and never mutated afterwards.
type Industry struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description,omitempty"`
}
