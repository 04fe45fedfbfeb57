package services

import (
	"fmt"
	"strings"

	"talenthub/matching-service/internal/models"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildMatchEvaluationPrompt creates the evaluation prompt for the LLM match
// scorer: a narrative restatement of the job, the candidate's metadata, the
// resume text, and the exact scoring rubric with the required JSON shape.
func (pb *PromptBuilder) BuildMatchEvaluationPrompt(job *models.Job, resumeText string, candidate *models.Candidate) string {
	return fmt.Sprintf(`You are an expert technical recruiter evaluating one candidate against one job description.

JOB DESCRIPTION:
%s

CANDIDATE PROFILE:
%s

CANDIDATE RESUME:
%s

STRICT RELEVANCE RULE:
Score ONLY how well the candidate fits THIS job description. General candidate
quality must not earn credit: a candidate who is excellent in an unrelated
domain is NOT a match. Evidence must come from the resume or profile above.

CLASSIFICATION:
- "relevant": the expected outcome for a solid match to this job.
- "recommended": reserved for rare, exceptional fit only. Use sparingly.
- "not_relevant": the candidate does not fit this job.

SCORING RUBRIC (follow these formulas exactly):
1. Experience (max %.0f): (candidate years / job minimum years, capped at 1) x %.0f. Award the full %.0f when the job states no minimum.
2. Skills (max %.0f): (matched required skills / total required skills) x %.0f.
3. Salary (max %.0f): candidate salary below the job minimum = %.0f, equal = %.0f, above = 0. Award 0 when either side is unknown or the salary is confidential.
4. Location (max %.0f): exact location match = %.0f, willing to relocate = %.0f, otherwise 0. Award the full %.0f when the job has no location requirement.

matchPercentage = round(sum of earned points / sum of applicable max points x 100).

Respond with ONLY a JSON object in exactly this form, no other text:
{
  "scoreLabel": "relevant" | "recommended" | "not_relevant",
  "confidenceLevel": "high" | "medium" | "low",
  "matchPercentage": <integer 0-100>,
  "breakdown": {
    "experience": "<earned> / %.0f",
    "skills": "<earned> / %.0f",
    "salary": "<earned> / %.0f",
    "location": "<earned> / %.0f"
  }
}`,
		pb.describeJob(job),
		pb.describeCandidate(candidate),
		strings.TrimSpace(resumeText),
		applicantExperienceMax, applicantExperienceMax, applicantExperienceMax,
		applicantSkillsMax, applicantSkillsMax,
		applicantSalaryMax, applicantSalaryMax, applicantSalaryEqualPoints,
		applicantLocationMax, applicantLocationMax, applicantRelocatePoints, applicantLocationMax,
		applicantExperienceMax, applicantSkillsMax, applicantSalaryMax, applicantLocationMax,
	)
}

// describeJob restates the job spec as a narrative summary.
func (pb *PromptBuilder) describeJob(job *models.Job) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Title: %s\n", job.Title)

	if job.Location != "" {
		fmt.Fprintf(&b, "Location: %s\n", job.Location)
	} else {
		b.WriteString("Location: no location requirement\n")
	}

	if job.WorkType != "" {
		fmt.Fprintf(&b, "Work type: %s\n", job.WorkType)
	}
	if job.WorkMode != "" {
		fmt.Fprintf(&b, "Work mode: %s\n", job.WorkMode)
	}

	if job.SalaryConfidential {
		b.WriteString("Salary: confidential (must not be used in scoring)\n")
	} else if job.SalaryMin != nil || job.SalaryMax != nil {
		fmt.Fprintf(&b, "Salary band: %s\n", describeRange(job.SalaryMin, job.SalaryMax))
	}

	if job.ExperienceMin != nil || job.ExperienceMax != nil {
		fmt.Fprintf(&b, "Experience band (years): %s\n", describeRange(job.ExperienceMin, job.ExperienceMax))
	}

	if len(job.Skills) > 0 {
		fmt.Fprintf(&b, "Required skills: %s\n", strings.Join(job.Skills, ", "))
	}
	if len(job.Qualifications) > 0 {
		fmt.Fprintf(&b, "Qualifications: %s\n", strings.Join(job.Qualifications, ", "))
	}

	if len(job.ScreeningQuestions) > 0 {
		fmt.Fprintf(&b, "The job has %d screening questions.\n", len(job.ScreeningQuestions))
	} else {
		b.WriteString("The job has no screening questions.\n")
	}

	return strings.TrimSpace(b.String())
}

// describeCandidate renders the structured candidate metadata, spelling out
// missing fields so the evaluator never guesses.
func (pb *PromptBuilder) describeCandidate(candidate *models.Candidate) string {
	var b strings.Builder

	if len(candidate.Skills) > 0 {
		fmt.Fprintf(&b, "Skills: %s\n", strings.Join(candidate.Skills, ", "))
	} else {
		b.WriteString("Skills: not provided\n")
	}

	if candidate.ExperienceYears != nil {
		fmt.Fprintf(&b, "Experience: %.1f years\n", *candidate.ExperienceYears)
	} else {
		b.WriteString("Experience: not provided\n")
	}

	if candidate.CurrentSalary != nil {
		fmt.Fprintf(&b, "Current salary: %.0f\n", *candidate.CurrentSalary)
	} else {
		b.WriteString("Current salary: not provided\n")
	}

	if candidate.CurrentLocation != "" {
		fmt.Fprintf(&b, "Current location: %s\n", candidate.CurrentLocation)
	} else {
		b.WriteString("Current location: not provided\n")
	}

	fmt.Fprintf(&b, "Open to relocate: %t\n", candidate.OpenToRelocate)

	return strings.TrimSpace(b.String())
}

func describeRange(min, max *float64) string {
	switch {
	case min != nil && max != nil:
		return fmt.Sprintf("%.0f - %.0f", *min, *max)
	case min != nil:
		return fmt.Sprintf("from %.0f", *min)
	case max != nil:
		return fmt.Sprintf("up to %.0f", *max)
	default:
		return "not stated"
	}
}
