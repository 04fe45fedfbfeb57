package models

import (
	"time"

	"github.com/google/uuid"
)

type Job struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title    string    `gorm:"type:text;not null" json:"title"`
	Location string    `gorm:"type:text" json:"location"`
	WorkType string    `gorm:"type:text" json:"work_type"`
	WorkMode string    `gorm:"type:text" json:"work_mode"`

	SalaryMin          *float64 `gorm:"type:numeric" json:"salary_min,omitempty"`
	SalaryMax          *float64 `gorm:"type:numeric" json:"salary_max,omitempty"`
	SalaryConfidential bool     `gorm:"default:false" json:"salary_confidential"`

	ExperienceMin *float64 `gorm:"type:numeric" json:"experience_min,omitempty"`
	ExperienceMax *float64 `gorm:"type:numeric" json:"experience_max,omitempty"`

	Skills             []string `gorm:"serializer:json" json:"skills"`
	Qualifications     []string `gorm:"serializer:json" json:"qualifications"`
	ScreeningQuestions []string `gorm:"serializer:json" json:"screening_questions"`

	// Keyword buckets consumed only by the keyword scorer variant.
	MustHave   []string `gorm:"serializer:json" json:"must_have"`
	NiceToHave []string `gorm:"serializer:json" json:"nice_to_have"`
	Bonus      []string `gorm:"serializer:json" json:"bonus"`
	RedFlags   []string `gorm:"serializer:json" json:"red_flags"`

	CreatedAt time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (Job) TableName() string {
	return "jobs"
}

// SalaryComparable reports whether the job's salary band may be used in
// scoring. Confidential salaries are never compared.
func (j *Job) SalaryComparable() bool {
	return !j.SalaryConfidential && (j.SalaryMin != nil || j.SalaryMax != nil)
}

// AdvertisedSalary returns the upper bound of the band when present, else the
// lower bound. Callers must check SalaryComparable first.
func (j *Job) AdvertisedSalary() float64 {
	if j.SalaryMax != nil {
		return *j.SalaryMax
	}
	if j.SalaryMin != nil {
		return *j.SalaryMin
	}
	return 0
}
