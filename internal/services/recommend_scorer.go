package services

import (
	"math"
	"strings"

	"talenthub/matching-service/internal/models"
)

// RecommendationScorer scores a job against a seeker's preferences for feed
// ranking. A dimension only counts when both sides carry data: absence
// excludes it from the numerator and the denominator, so incomplete profiles
// are never penalized for silence.
type RecommendationScorer struct{}

func NewRecommendationScorer() *RecommendationScorer {
	return &RecommendationScorer{}
}

func (s *RecommendationScorer) Score(job *models.Job, prefs *models.SeekerPreferences) *models.MatchResult {
	var earned, max float64
	breakdown := make(models.Breakdown)

	if len(job.Skills) > 0 && len(prefs.Skills) > 0 {
		overlap := overlapCount(job.Skills, prefs.Skills)
		points := float64(overlap) / float64(len(job.Skills)) * recommendSkillsMax
		breakdown[models.DimSkills] = models.DimensionScore{Earned: points, Max: recommendSkillsMax}
		earned += points
		max += recommendSkillsMax
	}

	if job.Location != "" && len(prefs.PreferredLocations) > 0 {
		points := 0.0
		for _, loc := range prefs.PreferredLocations {
			if locationOverlaps(loc, job.Location) {
				points = recommendLocationMax
				break
			}
		}
		breakdown[models.DimLocation] = models.DimensionScore{Earned: points, Max: recommendLocationMax}
		earned += points
		max += recommendLocationMax
	}

	if job.WorkType != "" && len(prefs.PreferredWorkTypes) > 0 {
		points := 0.0
		if containsFold(prefs.PreferredWorkTypes, job.WorkType) {
			points = recommendWorkTypeMax
		}
		breakdown[models.DimWorkType] = models.DimensionScore{Earned: points, Max: recommendWorkTypeMax}
		earned += points
		max += recommendWorkTypeMax
	}

	if job.WorkMode != "" && len(prefs.PreferredWorkModes) > 0 {
		points := 0.0
		if containsFold(prefs.PreferredWorkModes, job.WorkMode) {
			points = recommendWorkModeMax
		}
		breakdown[models.DimWorkMode] = models.DimensionScore{Earned: points, Max: recommendWorkModeMax}
		earned += points
		max += recommendWorkModeMax
	}

	if job.SalaryComparable() && prefs.ExpectedSalaryMin != nil {
		points := 0.0
		if job.AdvertisedSalary() >= *prefs.ExpectedSalaryMin {
			points = recommendSalaryMax
		}
		breakdown[models.DimSalary] = models.DimensionScore{Earned: points, Max: recommendSalaryMax}
		earned += points
		max += recommendSalaryMax
	}

	percentage := 0
	if max > 0 {
		percentage = int(math.Round(earned / max * 100))
	}

	label := labelForPercentage(percentage)

	return &models.MatchResult{
		Success:         true,
		ScoreLabel:      label,
		ConfidenceLevel: models.ConfidenceForLabel(label),
		MatchPercentage: percentage,
		Breakdown:       breakdown,
	}
}

func labelForPercentage(percentage int) models.ScoreLabel {
	switch {
	case percentage >= recommendRelevantPct:
		return models.LabelRelevant
	case percentage >= recommendRecommendedPct:
		return models.LabelRecommended
	default:
		return models.LabelNotRelevant
	}
}

// overlapCount counts how many entries of required are present in available,
// compared case-insensitively.
func overlapCount(required, available []string) int {
	have := make(map[string]struct{}, len(available))
	for _, s := range available {
		have[strings.ToLower(strings.TrimSpace(s))] = struct{}{}
	}

	count := 0
	for _, s := range required {
		if _, ok := have[strings.ToLower(strings.TrimSpace(s))]; ok {
			count++
		}
	}
	return count
}

func containsFold(list []string, target string) bool {
	for _, s := range list {
		if strings.EqualFold(strings.TrimSpace(s), strings.TrimSpace(target)) {
			return true
		}
	}
	return false
}

// locationOverlaps reports whether one location string contains the other,
// case-insensitively, so "Berlin" matches "Berlin, Germany" in either order.
func locationOverlaps(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}
