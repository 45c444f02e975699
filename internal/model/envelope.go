package model

import "time"

// Error codes forwarded verbatim through every surface (CLI, HTTP, MCP).
const (
	CodeLocationNotFound    = "LOCATION_NOT_FOUND"
	CodeUnknownBusinessType = "UNKNOWN_BUSINESS_TYPE"
	CodeAnalysisFailed      = "ANALYSIS_FAILED"
	CodeNoValidLocations    = "NO_VALID_LOCATIONS"
	CodeSearchFailed        = "SEARCH_FAILED"
	CodeCostFailed          = "COST_FAILED"
	CodeBreakevenFailed     = "BREAKEVEN_FAILED"
	CodeSimulationFailed    = "SIMULATION_FAILED"
	CodeRentFailed          = "RENT_FAILED"
	CodeFundFailed          = "FUND_FAILED"
	CodeFacilityFailed      = "FACILITY_FAILED"
	CodeTrendFailed         = "TREND_FAILED"
	CodeChecklistFailed     = "CHECKLIST_FAILED"
	CodeAPIKeyMissing       = "API_KEY_MISSING"
)

// ErrorInfo carries a stable machine code plus a human suggestion.
type ErrorInfo struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// Meta describes where a result came from.
type Meta struct {
	Source    string    `json:"source"`
	Timestamp time.Time `json:"timestamp"`
	Cached    bool      `json:"cached,omitempty"`
	DataNote  string    `json:"dataNote,omitempty"`
}

// Result is the success/error envelope every analysis operation returns.
type Result[T any] struct {
	Success bool       `json:"success"`
	Data    *T         `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
	Meta    *Meta      `json:"meta,omitempty"`
}

// OK wraps data in a successful envelope.
func OK[T any](data T, meta *Meta) Result[T] {
	return Result[T]{Success: true, Data: &data, Meta: meta}
}

// Fail builds an error envelope with a stable code.
func Fail[T any](code, message, suggestion string) Result[T] {
	return Result[T]{Success: false, Error: &ErrorInfo{Code: code, Message: message, Suggestion: suggestion}}
}

// NewMeta stamps a source with the current time.
func NewMeta(source string) *Meta {
	return &Meta{Source: source, Timestamp: time.Now().UTC()}
}
