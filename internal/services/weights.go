package services

import "talenthub/matching-service/internal/models"

// All scoring weights and thresholds live here so the scorer variants cannot
// drift apart.

// Recommendation scorer (job ⇄ seeker preferences).
const (
	recommendSkillsMax   = 35.0
	recommendLocationMax = 25.0
	recommendWorkTypeMax = 15.0
	recommendWorkModeMax = 15.0
	recommendSalaryMax   = 10.0
)

// Application scorer (resume ⇄ job). The LLM rubric quotes the same numbers.
const (
	applicantExperienceMax = 35.0
	applicantSkillsMax     = 25.0
	applicantSalaryMax     = 20.0
	applicantLocationMax   = 20.0

	applicantSalaryEqualPoints = 10.0
	applicantRelocatePoints    = 10.0
)

// Keyword classification thresholds, evaluated in precedence order.
const (
	redFlagDisqualifyRatio = 0.75
	mustHaveStrongRatio    = 0.7
	mustHaveModerateRatio  = 0.4
	niceBonusStrongRatio   = 0.3
	niceBonusWeakRatio     = 0.2
	bonusStrongRatio       = 0.3
	redFlagTolerableRatio  = 0.3
)

// Pool pipeline soft-score weights.
const (
	poolSkillMatchMax       = 50.0
	poolTopCompaniesBonus   = 10.0
	poolTopInstitutesBonus  = 10.0
	poolConsultingBonus     = 8.0
	poolNamedCompanyBonus   = 5.0
	poolNamedInstituteBonus = 5.0
	poolLocationBonus       = 3.0
)

// Percentage thresholds used to derive labels for the recommendation scorer,
// which has no keyword buckets to classify on.
const (
	recommendRelevantPct    = 70
	recommendRecommendedPct = 40
)

// applicantMaxima lists the application scorer's dimension maxima, used to
// build zeroed breakdowns for worst-case fallback results.
func applicantMaxima() map[string]float64 {
	return map[string]float64{
		models.DimExperience: applicantExperienceMax,
		models.DimSkills:     applicantSkillsMax,
		models.DimSalary:     applicantSalaryMax,
		models.DimLocation:   applicantLocationMax,
	}
}
