package services

import (
	"context"
	"fmt"
	"math"
	"strings"

	"talenthub/matching-service/internal/models"
)

// KeywordScorer scores an applicant's resume text against a job's keyword
// buckets and structured fields.
type KeywordScorer struct {
	fetcher ResumeFetcher
}

func NewKeywordScorer(fetcher ResumeFetcher) *KeywordScorer {
	return &KeywordScorer{fetcher: fetcher}
}

type bucketMatch struct {
	total   int
	matched int
	terms   []string
}

// Score fetches the candidate's resume, classifies it against the job's
// keyword buckets, and computes the weighted numeric score. Fetch and extract
// failures propagate as errors; callers that need a batch-safe result use
// ScoreApplication instead.
func (s *KeywordScorer) Score(ctx context.Context, job *models.Job, candidate *models.Candidate) (*models.MatchResult, error) {
	if job == nil {
		return nil, fmt.Errorf("job is required")
	}
	if candidate == nil {
		return nil, fmt.Errorf("candidate is required")
	}
	if candidate.ResumeURL == "" {
		return nil, fmt.Errorf("candidate has no resume reference")
	}

	text, err := s.fetcher.FetchText(ctx, candidate.ResumeURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch resume: %w", err)
	}

	return s.scoreText(job, candidate, text), nil
}

// ScoreApplication wraps Score, converting resume failures into the safe
// worst-case result so a batch run proceeds instead of aborting.
func (s *KeywordScorer) ScoreApplication(ctx context.Context, job *models.Job, candidate *models.Candidate) *models.MatchResult {
	result, err := s.Score(ctx, job, candidate)
	if err != nil {
		return FallbackResult(err)
	}
	return result
}

// FallbackResult is the worst-case result reported when a resume cannot be
// fetched or parsed: not relevant, zero score, with the failure carried in the
// error field.
func FallbackResult(err error) *models.MatchResult {
	return &models.MatchResult{
		Success:         false,
		ScoreLabel:      models.LabelNotRelevant,
		ConfidenceLevel: models.ConfidenceLow,
		MatchPercentage: 0,
		Breakdown:       models.ZeroBreakdown(applicantMaxima()),
		Error:           err.Error(),
	}
}

func (s *KeywordScorer) scoreText(job *models.Job, candidate *models.Candidate, resumeText string) *models.MatchResult {
	resumeTokens := NormalizeText(resumeText)

	must := matchBucket(job.MustHave, resumeTokens)
	nice := matchBucket(job.NiceToHave, resumeTokens)
	bonus := matchBucket(job.Bonus, resumeTokens)
	red := matchBucket(job.RedFlags, resumeTokens)

	mustRatio := matchRatio(must.matched, must.total)
	niceBonusRatio := matchRatio(nice.matched+bonus.matched, nice.total+bonus.total)
	bonusRatio := matchRatio(bonus.matched, bonus.total)
	redFlagRatio := matchRatio(red.matched, red.total)

	label := classify(mustRatio, niceBonusRatio, bonusRatio, redFlagRatio)
	breakdown, percentage := s.numericScore(job, candidate)

	return &models.MatchResult{
		Success:         true,
		ScoreLabel:      label,
		ConfidenceLevel: models.ConfidenceForLabel(label),
		MatchPercentage: percentage,
		Breakdown:       breakdown,
		RedFlags:        red.terms,
	}
}

// classify applies the classification policy in strict precedence order; the
// first matching rule wins. The red-flag disqualification always runs first.
func classify(mustRatio, niceBonusRatio, bonusRatio, redFlagRatio float64) models.ScoreLabel {
	switch {
	case redFlagRatio >= redFlagDisqualifyRatio:
		return models.LabelNotRelevant
	case mustRatio >= mustHaveStrongRatio && (niceBonusRatio >= niceBonusStrongRatio || bonusRatio >= bonusStrongRatio):
		return models.LabelRelevant
	case mustRatio >= mustHaveModerateRatio || niceBonusRatio >= niceBonusStrongRatio:
		return models.LabelRecommended
	case (niceBonusRatio >= niceBonusWeakRatio || bonusRatio >= bonusStrongRatio) && redFlagRatio < redFlagTolerableRatio:
		return models.LabelRecommended
	default:
		return models.LabelRelevant
	}
}

// numericScore computes the four-dimension weighted score against the
// candidate's structured fields. Dimensions without evidence on both sides are
// excluded from the numerator and the denominator.
func (s *KeywordScorer) numericScore(job *models.Job, candidate *models.Candidate) (models.Breakdown, int) {
	var earned, max float64
	breakdown := make(models.Breakdown)

	if job.ExperienceMin != nil && candidate.ExperienceYears != nil {
		ratio := 1.0
		if *job.ExperienceMin > 0 {
			ratio = math.Min(*candidate.ExperienceYears / *job.ExperienceMin, 1)
		}
		points := ratio * applicantExperienceMax
		breakdown[models.DimExperience] = models.DimensionScore{Earned: points, Max: applicantExperienceMax}
		earned += points
		max += applicantExperienceMax
	}

	if len(job.Skills) > 0 && len(candidate.Skills) > 0 {
		overlap := overlapCount(job.Skills, candidate.Skills)
		points := float64(overlap) / float64(len(job.Skills)) * applicantSkillsMax
		breakdown[models.DimSkills] = models.DimensionScore{Earned: points, Max: applicantSkillsMax}
		earned += points
		max += applicantSkillsMax
	}

	if !job.SalaryConfidential && job.SalaryMin != nil && candidate.CurrentSalary != nil {
		points := 0.0
		switch {
		case *candidate.CurrentSalary < *job.SalaryMin:
			points = applicantSalaryMax
		case *candidate.CurrentSalary == *job.SalaryMin:
			points = applicantSalaryEqualPoints
		}
		breakdown[models.DimSalary] = models.DimensionScore{Earned: points, Max: applicantSalaryMax}
		earned += points
		max += applicantSalaryMax
	}

	// Location is always applicable: a job with no location requirement
	// awards full credit.
	locationPoints := 0.0
	switch {
	case job.Location == "":
		locationPoints = applicantLocationMax
	case strings.EqualFold(strings.TrimSpace(candidate.CurrentLocation), strings.TrimSpace(job.Location)):
		locationPoints = applicantLocationMax
	case candidate.OpenToRelocate:
		locationPoints = applicantRelocatePoints
	}
	breakdown[models.DimLocation] = models.DimensionScore{Earned: locationPoints, Max: applicantLocationMax}
	earned += locationPoints
	max += applicantLocationMax

	percentage := 0
	if max > 0 {
		percentage = int(math.Round(earned / max * 100))
	}
	return breakdown, percentage
}

// matchBucket checks every keyword of a bucket against the resume token set.
// A multi-word keyword matches only when all of its tokens are present.
// Keywords with no alphabetic run of length >= 2 ("C++", "C#", "R") tokenize
// to nothing and are excluded from the bucket total rather than counted as
// unmatched.
func matchBucket(bucket []string, resumeTokens TokenSet) bucketMatch {
	var result bucketMatch
	for _, term := range bucket {
		tokens := PhraseTokens(term)
		if len(tokens) == 0 {
			continue
		}
		result.total++

		all := true
		for _, token := range tokens {
			if !resumeTokens.Contains(token) {
				all = false
				break
			}
		}
		if all {
			result.matched++
			result.terms = append(result.terms, term)
		}
	}
	return result
}

func matchRatio(matched, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(matched) / float64(total)
}
