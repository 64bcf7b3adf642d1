package diagnostics

import "fmt"

type Severity string

const (
	Info Severity = "info"
	Warn Severity = "warning"
	Err  Severity = "error"
)

// Codes raised by the frame loop.
const (
	AssetLoadFailed = "ASSET.LOAD_FAILED"
	AssetBound      = "ASSET.BOUND"
	ClockRegression = "CLOCK.REGRESSION"
	SubmitFailed    = "RENDER.SUBMIT_FAILED"
)

type Diagnostic struct {
	Severity       Severity       `json:"severity"`
	Code           string         `json:"code"`
	Summary        string         `json:"summary"`
	Detail         string         `json:"detail,omitempty"`
	LikelyCauses   []string       `json:"likely_causes,omitempty"`
	SuggestedFixes []string       `json:"suggested_fixes,omitempty"`
	Evidence       map[string]any `json:"evidence,omitempty"`
}

// Sink receives diagnostics. A nil Sink drops them.
type Sink func(Diagnostic)

func (s Sink) Push(d Diagnostic) {
	if s != nil {
		s(d)
	}
}

func LoadFailed(slot int, err error) Diagnostic {
	return Diagnostic{
		Severity:       Err,
		Code:           AssetLoadFailed,
		Summary:        fmt.Sprintf("ghost model for slot %d failed to load", slot),
		Detail:         err.Error(),
		LikelyCauses:   []string{"model path wrong", "unsupported glTF version"},
		SuggestedFixes: []string{"check model_path in config.yaml"},
		Evidence:       map[string]any{"slot": slot},
	}
}

func Regression(backSeconds float64) Diagnostic {
	return Diagnostic{
		Severity:     Warn,
		Code:         ClockRegression,
		Summary:      "host clock moved backwards; frame delta clamped to zero",
		LikelyCauses: []string{"resume from suspend", "wall clock adjusted"},
		Evidence:     map[string]any{"back_s": backSeconds},
	}
}
