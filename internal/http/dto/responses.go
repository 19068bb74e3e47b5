package dto

import "github.com/campaign-desk/backend/internal/validation"

type AuthResponse struct {
	Token string `json:"token"`
}

type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

type SuccessResponse struct {
	OK   bool `json:"ok"`
	Data any  `json:"data,omitempty"`
}

// ValidationFailedResponse mirrors the pipeline result for rejected drafts:
// each error names the origin field (or "general") so the caller can map it
// back onto the right input control.
type ValidationFailedResponse struct {
	OK     bool               `json:"ok"`
	Errors []validation.Error `json:"errors"`
}

// PreflightResponse reports the advisory pass. OK here never implies the
// authoritative create or update will accept.
type PreflightResponse struct {
	OK     bool               `json:"ok"`
	Errors []validation.Error `json:"errors,omitempty"`
}
