package models

import (
	"time"

	"github.com/google/uuid"
)

type EvaluationStatus string

const (
	StatusQueued     EvaluationStatus = "queued"
	StatusProcessing EvaluationStatus = "processing"
	StatusCompleted  EvaluationStatus = "completed"
	StatusFailed     EvaluationStatus = "failed"
)

type EvaluationMethod string

const (
	MethodDeterministic EvaluationMethod = "deterministic"
	MethodLLM           EvaluationMethod = "llm"
)

func (m EvaluationMethod) IsValid() bool {
	return m == MethodDeterministic || m == MethodLLM
}

// MatchEvaluation is one persisted (job, candidate) scoring request processed
// asynchronously by the worker.
type MatchEvaluation struct {
	ID          uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	JobID       uuid.UUID        `gorm:"type:uuid;not null" json:"job_id"`
	CandidateID uuid.UUID        `gorm:"type:uuid;not null" json:"candidate_id"`
	Method      EvaluationMethod `gorm:"type:text;not null" json:"method"`
	Status      EvaluationStatus `gorm:"not null;default:'queued'" json:"status"`

	ScoreLabel      *ScoreLabel      `gorm:"type:text" json:"score_label,omitempty"`
	ConfidenceLevel *ConfidenceLevel `gorm:"type:text" json:"confidence_level,omitempty"`
	MatchPercentage *int             `json:"match_percentage,omitempty"`
	Breakdown       Breakdown        `gorm:"serializer:json" json:"breakdown,omitempty"`
	RedFlags        []string         `gorm:"serializer:json" json:"red_flags,omitempty"`
	ErrorMessage    *string          `gorm:"type:text" json:"error_message,omitempty"`

	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relations
	Job       Job       `gorm:"foreignKey:JobID" json:"-"`
	Candidate Candidate `gorm:"foreignKey:CandidateID" json:"-"`
}

func (MatchEvaluation) TableName() string {
	return "match_evaluations"
}
