package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDimensionScore_String(t *testing.T) {
	assert.Equal(t, "17.5 / 35", DimensionScore{Earned: 17.5, Max: 35}.String())
	assert.Equal(t, "0 / 20", DimensionScore{Earned: 0, Max: 20}.String())
}

func TestDimensionScore_UnmarshalRoundTrip(t *testing.T) {
	var score DimensionScore
	require.NoError(t, json.Unmarshal([]byte(`"17.5 / 35"`), &score))

	assert.Equal(t, DimensionScore{Earned: 17.5, Max: 35}, score)
}

func TestDimensionScore_UnmarshalRejectsMalformedEntries(t *testing.T) {
	var score DimensionScore

	err := json.Unmarshal([]byte(`"fifty points"`), &score)
	assert.ErrorContains(t, err, "earned / max")

	err = json.Unmarshal([]byte(`"abc / 35"`), &score)
	assert.ErrorContains(t, err, "invalid earned value")

	err = json.Unmarshal([]byte(`42`), &score)
	assert.ErrorContains(t, err, "not a string")
}

func TestConfidenceForLabel(t *testing.T) {
	assert.Equal(t, ConfidenceHigh, ConfidenceForLabel(LabelRelevant))
	assert.Equal(t, ConfidenceMedium, ConfidenceForLabel(LabelRecommended))
	assert.Equal(t, ConfidenceLow, ConfidenceForLabel(LabelNotRelevant))
}

func TestMatchResult_JSONContract(t *testing.T) {
	result := MatchResult{
		Success:         true,
		ScoreLabel:      LabelRecommended,
		ConfidenceLevel: ConfidenceMedium,
		MatchPercentage: 65,
		Breakdown: Breakdown{
			DimSkills:   {Earned: 17.5, Max: 35},
			DimWorkType: {Earned: 15, Max: 15},
		},
	}

	data, err := json.Marshal(result)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, true, decoded["success"])
	assert.Equal(t, "recommended", decoded["scoreLabel"])
	assert.Equal(t, "medium", decoded["confidenceLevel"])
	assert.Equal(t, float64(65), decoded["matchPercentage"])
	assert.Equal(t, map[string]any{
		"skills":    "17.5 / 35",
		"work_type": "15 / 15",
	}, decoded["breakdown"])

	// Omitted optional fields must stay off the wire.
	assert.NotContains(t, decoded, "redFlags")
	assert.NotContains(t, decoded, "error")
}

func TestZeroBreakdown(t *testing.T) {
	b := ZeroBreakdown(map[string]float64{DimExperience: 35, DimSkills: 25})

	assert.Equal(t, Breakdown{
		DimExperience: {Earned: 0, Max: 35},
		DimSkills:     {Earned: 0, Max: 25},
	}, b)
}
