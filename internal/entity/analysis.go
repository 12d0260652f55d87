package entity

import "time"

// Skin type labels the classification service can return.
const (
	SkinTypeNormal      = "Normal"
	SkinTypeOily        = "Oily"
	SkinTypeDry         = "Dry"
	SkinTypeCombination = "Combination"
	SkinTypeSensitive   = "Sensitive"
)

// Analysis is one completed skin analysis, owned by the remote service.
// The client only ever holds read-only copies.
//
// Recommendations arrives as a JSON-encoded array of strings and must be
// decoded before rendering (see service.RecordService).
type Analysis struct {
	Id              int       `json:"id"`
	UserId          int       `json:"user_id"`
	ImagePath       string    `json:"image_path"`
	SkinType        string    `json:"skin_type"`
	Confidence      float64   `json:"confidence"`
	Recommendations string    `json:"recommendations"`
	CreatedAt       time.Time `json:"created_at"`
}
