package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ScoreLabel is the tri-state classification produced by every scorer.
type ScoreLabel string

const (
	LabelRelevant    ScoreLabel = "relevant"
	LabelRecommended ScoreLabel = "recommended"
	LabelNotRelevant ScoreLabel = "not_relevant"
)

func (l ScoreLabel) IsValid() bool {
	switch l {
	case LabelRelevant, LabelRecommended, LabelNotRelevant:
		return true
	}
	return false
}

type ConfidenceLevel string

const (
	ConfidenceHigh   ConfidenceLevel = "high"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceLow    ConfidenceLevel = "low"
)

// ConfidenceForLabel maps a score label to its confidence level.
func ConfidenceForLabel(label ScoreLabel) ConfidenceLevel {
	switch label {
	case LabelRelevant:
		return ConfidenceHigh
	case LabelRecommended:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// Breakdown dimension keys. These are stable API keys consumed by downstream
// clients; renaming one is a breaking change.
const (
	DimExperience = "experience"
	DimSkills     = "skills"
	DimSalary     = "salary"
	DimLocation   = "location"
	DimWorkType   = "work_type"
	DimWorkMode   = "work_mode"
)

// DimensionScore is one "earned / max" entry of a score breakdown.
type DimensionScore struct {
	Earned float64
	Max    float64
}

func (d DimensionScore) String() string {
	return fmt.Sprintf("%s / %s", formatScore(d.Earned), formatScore(d.Max))
}

func (d DimensionScore) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *DimensionScore) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("breakdown entry is not a string: %w", err)
	}

	parts := strings.SplitN(raw, "/", 2)
	if len(parts) != 2 {
		return fmt.Errorf("breakdown entry %q is not in \"earned / max\" form", raw)
	}

	earned, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return fmt.Errorf("invalid earned value in %q: %w", raw, err)
	}

	max, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return fmt.Errorf("invalid max value in %q: %w", raw, err)
	}

	d.Earned = earned
	d.Max = max
	return nil
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Breakdown holds per-dimension sub-scores keyed by dimension name.
type Breakdown map[string]DimensionScore

// ZeroBreakdown returns a breakdown with zero earned points for the given
// dimension maxima, used for worst-case fallback results.
func ZeroBreakdown(maxima map[string]float64) Breakdown {
	b := make(Breakdown, len(maxima))
	for dim, max := range maxima {
		b[dim] = DimensionScore{Earned: 0, Max: max}
	}
	return b
}

// MatchResult is the output of any scorer. The JSON keys are part of the
// public API contract.
type MatchResult struct {
	Success         bool            `json:"success"`
	ScoreLabel      ScoreLabel      `json:"scoreLabel"`
	ConfidenceLevel ConfidenceLevel `json:"confidenceLevel"`
	MatchPercentage int             `json:"matchPercentage"`
	Breakdown       Breakdown       `json:"breakdown"`
	RedFlags        []string        `json:"redFlags,omitempty"`
	Error           string          `json:"error,omitempty"`
}
