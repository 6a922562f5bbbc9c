package models

import "encoding/json"

// ProjectionRequest represents the request body for running a projection.
// Params is a partial parameter object; absent fields take the Wrangell
// defaults. A nil Params runs the default case.
type ProjectionRequest struct {
	Params  json.RawMessage   `json:"params,omitempty"`
	Options ProjectionOptions `json:"options,omitempty"`
}

// ProjectionOptions contains optional projection parameters.
type ProjectionOptions struct {
	IncludeTables bool `json:"include_tables,omitempty"` // default: false
	// SavingsFromYear overrides the start of the household-savings window.
	// 0 means "from the expansion year".
	SavingsFromYear int `json:"savings_from_year,omitempty"`
}

// CompareRequest represents a request to compare parameter variations.
// Each variation is a partial parameter object overlaid on the base.
type CompareRequest struct {
	Base       json.RawMessage   `json:"base,omitempty"`
	Variations []Variation       `json:"variations" binding:"required"`
	Options    ProjectionOptions `json:"options,omitempty"`
}

// Variation defines one named parameter overlay to evaluate.
type Variation struct {
	Name   string          `json:"name" binding:"required"`
	Params json.RawMessage `json:"params,omitempty"`
}

// ReportRequest asks for the text briefing for a parameter set.
type ReportRequest struct {
	Params json.RawMessage `json:"params,omitempty"`
}
