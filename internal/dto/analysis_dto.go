package dto

import "lumera-client/internal/entity"

// AnalysisResponse wraps a single analysis (/analysis/upload, /analysis/result/{id}).
type AnalysisResponse struct {
	Message  string          `json:"message,omitempty"`
	Analysis entity.Analysis `json:"analysis"`
}

// HistoryResponse is /analysis/history: the user's analyses, newest first.
type HistoryResponse struct {
	Analyses []entity.Analysis `json:"analyses"`
}

// APIErrorBody is the error envelope the Lumera API uses on non-2xx responses.
type APIErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
