package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"talenthub/matching-service/internal/models"
	"talenthub/matching-service/internal/repositories"
)

// EvaluatorService executes one persisted match evaluation end to end.
type EvaluatorService interface {
	EvaluateMatch(ctx context.Context, evalID uuid.UUID) error
}

type evaluatorService struct {
	evalRepo      repositories.EvaluationRepository
	jobRepo       repositories.JobRepository
	candidateRepo repositories.CandidateRepository
	keywordScorer *KeywordScorer
	llmScorer     *LLMScorer
}

func NewEvaluatorService(
	evalRepo repositories.EvaluationRepository,
	jobRepo repositories.JobRepository,
	candidateRepo repositories.CandidateRepository,
	keywordScorer *KeywordScorer,
	llmScorer *LLMScorer,
) EvaluatorService {
	return &evaluatorService{
		evalRepo:      evalRepo,
		jobRepo:       jobRepo,
		candidateRepo: candidateRepo,
		keywordScorer: keywordScorer,
		llmScorer:     llmScorer,
	}
}

// EvaluateMatch loads the evaluation's job and candidate, runs the requested
// scorer, and persists the outcome. The deterministic path persists the safe
// worst-case result on resume failure; the LLM path has no fallback and marks
// the record failed instead.
func (e *evaluatorService) EvaluateMatch(ctx context.Context, evalID uuid.UUID) error {
	if err := e.evalRepo.UpdateStatus(evalID, models.StatusProcessing); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	log.Printf("🔄 Starting evaluation %s\n", evalID)

	evaluation, err := e.evalRepo.FindByID(evalID)
	if err != nil {
		e.evalRepo.UpdateError(evalID, err.Error())
		return fmt.Errorf("failed to get evaluation: %w", err)
	}

	job, err := e.jobRepo.FindByID(evaluation.JobID)
	if err != nil {
		e.evalRepo.UpdateError(evalID, fmt.Sprintf("Job not found: %v", err))
		return fmt.Errorf("failed to get job: %w", err)
	}

	candidate, err := e.candidateRepo.FindByID(evaluation.CandidateID)
	if err != nil {
		e.evalRepo.UpdateError(evalID, fmt.Sprintf("Candidate not found: %v", err))
		return fmt.Errorf("failed to get candidate: %w", err)
	}

	var result *models.MatchResult

	switch evaluation.Method {
	case models.MethodLLM:
		result, err = e.llmScorer.Score(ctx, job, candidate)
		if err != nil {
			e.evalRepo.UpdateError(evalID, fmt.Sprintf("LLM scoring failed: %v", err))
			return fmt.Errorf("llm scoring failed: %w", err)
		}
	case models.MethodDeterministic:
		result = e.keywordScorer.ScoreApplication(ctx, job, candidate)
	default:
		msg := fmt.Sprintf("unknown evaluation method %q", evaluation.Method)
		e.evalRepo.UpdateError(evalID, msg)
		return fmt.Errorf("%s", msg)
	}

	if err := e.evalRepo.UpdateResult(evalID, result); err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	log.Printf("✅ Evaluation %s completed: %s (%d%%)\n", evalID, result.ScoreLabel, result.MatchPercentage)
	return nil
}
