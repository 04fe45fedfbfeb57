package models

import (
	"time"

	"github.com/google/uuid"
)

// Candidate is an applicant or resume-pool member. Numeric and boolean fields
// are pointers so that "no data" stays distinguishable from a real zero/false.
type Candidate struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name string    `gorm:"type:text" json:"name"`

	Skills          []string `gorm:"serializer:json" json:"skills"`
	ExperienceYears *float64 `gorm:"type:numeric" json:"experience_years,omitempty"`
	CurrentSalary   *float64 `gorm:"type:numeric" json:"current_salary,omitempty"`
	CurrentLocation string   `gorm:"type:text" json:"current_location"`
	OpenToRelocate  bool     `gorm:"default:false" json:"open_to_relocate"`
	ResumeURL       string   `gorm:"type:text" json:"resume_url"`

	// Work and education history, used for the pool pipeline's per-match
	// company/institute bonuses.
	Companies  []string `gorm:"serializer:json" json:"companies"`
	Institutes []string `gorm:"serializer:json" json:"institutes"`

	// Derived flags computed upstream at ingestion time; only present on
	// pool records.
	TopCompanies            *bool `json:"top_companies,omitempty"`
	TopInstitutes           *bool `json:"top_institutes,omitempty"`
	HasConsultingBackground *bool `json:"has_consulting_background,omitempty"`

	CreatedAt time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (Candidate) TableName() string {
	return "candidates"
}

// SeekerPreferences is the job-seeker side of the recommendation scorer.
type SeekerPreferences struct {
	Skills             []string `json:"skills"`
	PreferredLocations []string `json:"preferred_locations"`
	PreferredWorkTypes []string `json:"preferred_work_types"`
	PreferredWorkModes []string `json:"preferred_work_modes"`
	ExpectedSalaryMin  *float64 `json:"expected_salary_min,omitempty"`
}
