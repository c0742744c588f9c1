package dto

// GenerateRequest тело POST /api/generate.
type GenerateRequest struct {
	Prompt string `json:"prompt"`
}
