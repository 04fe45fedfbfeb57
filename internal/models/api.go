package models

type CreateJobRequest struct {
	Title    string `json:"title" validate:"required"`
	Location string `json:"location"`
	WorkType string `json:"work_type"`
	WorkMode string `json:"work_mode"`

	SalaryMin          *float64 `json:"salary_min"`
	SalaryMax          *float64 `json:"salary_max"`
	SalaryConfidential bool     `json:"salary_confidential"`

	ExperienceMin *float64 `json:"experience_min" validate:"omitempty,gte=0"`
	ExperienceMax *float64 `json:"experience_max" validate:"omitempty,gte=0"`

	Skills             []string `json:"skills"`
	Qualifications     []string `json:"qualifications"`
	ScreeningQuestions []string `json:"screening_questions"`

	MustHave   []string `json:"must_have"`
	NiceToHave []string `json:"nice_to_have"`
	Bonus      []string `json:"bonus"`
	RedFlags   []string `json:"red_flags"`
}

type CreateCandidateRequest struct {
	Name            string   `json:"name" validate:"required"`
	Skills          []string `json:"skills"`
	ExperienceYears *float64 `json:"experience_years" validate:"omitempty,gte=0"`
	CurrentSalary   *float64 `json:"current_salary" validate:"omitempty,gte=0"`
	CurrentLocation string   `json:"current_location"`
	OpenToRelocate  bool     `json:"open_to_relocate"`
	ResumeURL       string   `json:"resume_url" validate:"omitempty,url"`

	Companies  []string `json:"companies"`
	Institutes []string `json:"institutes"`

	TopCompanies            *bool `json:"top_companies"`
	TopInstitutes           *bool `json:"top_institutes"`
	HasConsultingBackground *bool `json:"has_consulting_background"`
}

type RecommendationScoreRequest struct {
	JobID       string            `json:"job_id" validate:"required,uuid"`
	Preferences SeekerPreferences `json:"preferences"`
}

type EvaluateMatchRequest struct {
	JobID       string `json:"job_id" validate:"required,uuid"`
	CandidateID string `json:"candidate_id" validate:"required,uuid"`
	Method      string `json:"method" validate:"required,oneof=deterministic llm"`
}

type EvaluateMatchResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type MatchResultResponse struct {
	ID           string       `json:"id"`
	Status       string       `json:"status"`
	Result       *MatchResult `json:"result,omitempty"`
	ErrorMessage *string      `json:"error_message,omitempty"`
}

// PoolFilter holds the hard requirements of a pool search. Any failed hard
// requirement excludes the candidate entirely.
type PoolFilter struct {
	MinExperienceYears    *float64 `json:"min_experience_years" validate:"omitempty,gte=0"`
	TopCompaniesRequired  bool     `json:"top_companies_required"`
	TopInstitutesRequired bool     `json:"top_institutes_required"`
	ConsultingRequired    bool     `json:"consulting_required"`
	RequiredLocation      string   `json:"required_location"`
	RequiredCompanies     []string `json:"required_companies"`
	RequiredInstitutes    []string `json:"required_institutes"`
}

type PoolSearchRequest struct {
	Filter         PoolFilter `json:"filter"`
	RelevantSkills []string   `json:"relevant_skills"`
}

type PoolSearchResponse struct {
	Total      int         `json:"total"`
	Candidates []Candidate `json:"candidates"`
}
