package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talenthub/matching-service/internal/models"
)

// stubEvalRepo records the status transitions and persisted outcome of one
// evaluation.
type stubEvalRepo struct {
	eval *models.MatchEvaluation

	statuses []models.EvaluationStatus
	result   *models.MatchResult
	errorMsg string
}

func (r *stubEvalRepo) Create(eval *models.MatchEvaluation) error { return nil }

func (r *stubEvalRepo) FindByID(id uuid.UUID) (*models.MatchEvaluation, error) {
	if r.eval == nil || r.eval.ID != id {
		return nil, fmt.Errorf("evaluation not found")
	}
	return r.eval, nil
}

func (r *stubEvalRepo) UpdateStatus(id uuid.UUID, status models.EvaluationStatus) error {
	r.statuses = append(r.statuses, status)
	return nil
}

func (r *stubEvalRepo) UpdateResult(id uuid.UUID, result *models.MatchResult) error {
	r.statuses = append(r.statuses, models.StatusCompleted)
	r.result = result
	return nil
}

func (r *stubEvalRepo) UpdateError(id uuid.UUID, errorMsg string) error {
	r.statuses = append(r.statuses, models.StatusFailed)
	r.errorMsg = errorMsg
	return nil
}

func (r *stubEvalRepo) FindPendingJobs(limit int) ([]models.MatchEvaluation, error) {
	return nil, nil
}

type stubJobRepo struct {
	job *models.Job
}

func (r *stubJobRepo) Create(job *models.Job) error { return nil }

func (r *stubJobRepo) FindByID(id uuid.UUID) (*models.Job, error) {
	if r.job == nil || r.job.ID != id {
		return nil, fmt.Errorf("job not found")
	}
	return r.job, nil
}

type evaluatorFixture struct {
	evalRepo  *stubEvalRepo
	evaluator EvaluatorService
}

func newEvaluatorFixture(method models.EvaluationMethod, fetcher ResumeFetcher, generator textGenerator) (*evaluatorFixture, uuid.UUID) {
	job := &models.Job{
		ID:       uuid.New(),
		Title:    "Backend Engineer",
		MustHave: []string{"go"},
	}
	candidate := &models.Candidate{
		ID:        uuid.New(),
		ResumeURL: "http://x/cv.pdf",
	}
	eval := &models.MatchEvaluation{
		ID:          uuid.New(),
		JobID:       job.ID,
		CandidateID: candidate.ID,
		Method:      method,
		Status:      models.StatusQueued,
	}

	evalRepo := &stubEvalRepo{eval: eval}
	evaluator := NewEvaluatorService(
		evalRepo,
		&stubJobRepo{job: job},
		&stubCandidateRepo{pool: []models.Candidate{*candidate}},
		NewKeywordScorer(fetcher),
		NewLLMScorer(generator, fetcher, nil, 3),
	)

	return &evaluatorFixture{evalRepo: evalRepo, evaluator: evaluator}, eval.ID
}

func TestEvaluator_DeterministicMethodPersistsResult(t *testing.T) {
	fixture, evalID := newEvaluatorFixture(models.MethodDeterministic,
		&stubFetcher{text: "Go developer."}, &stubGenerator{})

	err := fixture.evaluator.EvaluateMatch(context.Background(), evalID)
	require.NoError(t, err)

	assert.Equal(t, []models.EvaluationStatus{models.StatusProcessing, models.StatusCompleted},
		fixture.evalRepo.statuses)
	require.NotNil(t, fixture.evalRepo.result)
	assert.True(t, fixture.evalRepo.result.Success)
	assert.Equal(t, models.LabelRecommended, fixture.evalRepo.result.ScoreLabel)
}

func TestEvaluator_DeterministicFetchFailurePersistsFallback(t *testing.T) {
	// The deterministic path converts resume failures into the worst-case
	// result and still completes the record.
	fixture, evalID := newEvaluatorFixture(models.MethodDeterministic,
		&stubFetcher{err: fmt.Errorf("unexpected status 404")}, &stubGenerator{})

	err := fixture.evaluator.EvaluateMatch(context.Background(), evalID)
	require.NoError(t, err)

	require.NotNil(t, fixture.evalRepo.result)
	assert.False(t, fixture.evalRepo.result.Success)
	assert.Equal(t, models.LabelNotRelevant, fixture.evalRepo.result.ScoreLabel)
	assert.Equal(t, 0, fixture.evalRepo.result.MatchPercentage)
	assert.Contains(t, fixture.evalRepo.result.Error, "404")
}

func TestEvaluator_LLMMethodPersistsParsedResult(t *testing.T) {
	fixture, evalID := newEvaluatorFixture(models.MethodLLM,
		&stubFetcher{text: "Go developer."}, &stubGenerator{response: fencedReply})

	err := fixture.evaluator.EvaluateMatch(context.Background(), evalID)
	require.NoError(t, err)

	require.NotNil(t, fixture.evalRepo.result)
	assert.Equal(t, models.LabelRecommended, fixture.evalRepo.result.ScoreLabel)
	assert.Equal(t, 72, fixture.evalRepo.result.MatchPercentage)
}

func TestEvaluator_LLMFailureMarksRecordFailed(t *testing.T) {
	// The LLM path has no fallback: the record is marked failed, nothing is
	// persisted as a result.
	fixture, evalID := newEvaluatorFixture(models.MethodLLM,
		&stubFetcher{text: "Go developer."}, &stubGenerator{err: fmt.Errorf("quota exceeded")})

	err := fixture.evaluator.EvaluateMatch(context.Background(), evalID)
	require.Error(t, err)

	assert.Nil(t, fixture.evalRepo.result)
	assert.Contains(t, fixture.evalRepo.errorMsg, "quota exceeded")
	assert.Contains(t, fixture.evalRepo.statuses, models.StatusFailed)
}

func TestEvaluator_UnknownEvaluationIsFailed(t *testing.T) {
	fixture, _ := newEvaluatorFixture(models.MethodDeterministic,
		&stubFetcher{text: "Resume."}, &stubGenerator{})

	err := fixture.evaluator.EvaluateMatch(context.Background(), uuid.New())
	require.Error(t, err)
	assert.NotContains(t, fixture.evalRepo.statuses, models.StatusCompleted)
}
