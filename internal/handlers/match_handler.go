package handlers

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"talenthub/matching-service/internal/models"
	"talenthub/matching-service/internal/repositories"
	"talenthub/matching-service/internal/services"
)

type MatchHandler struct {
	evalRepo      repositories.EvaluationRepository
	jobRepo       repositories.JobRepository
	candidateRepo repositories.CandidateRepository
	recommender   *services.RecommendationScorer
	worker        services.Worker
	validate      *validator.Validate
}

func NewMatchHandler(
	evalRepo repositories.EvaluationRepository,
	jobRepo repositories.JobRepository,
	candidateRepo repositories.CandidateRepository,
	recommender *services.RecommendationScorer,
	worker services.Worker,
) *MatchHandler {
	return &MatchHandler{
		evalRepo:      evalRepo,
		jobRepo:       jobRepo,
		candidateRepo: candidateRepo,
		recommender:   recommender,
		worker:        worker,
		validate:      validator.New(),
	}
}

// HandleRecommendationScore handles POST /match/recommendation. This is the
// synchronous feed-ranking scorer: pure computation, no resume fetch.
func (h *MatchHandler) HandleRecommendationScore(c *fiber.Ctx) error {
	var req models.RecommendationScoreRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid job_id format",
		})
	}

	job, err := h.jobRepo.FindByID(jobID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Job not found",
		})
	}

	return c.JSON(h.recommender.Score(job, &req.Preferences))
}

// HandleEvaluate handles POST /match/evaluate: creates a queued evaluation
// and returns its ID immediately.
func (h *MatchHandler) HandleEvaluate(c *fiber.Ctx) error {
	var req models.EvaluateMatchRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid job_id format",
		})
	}

	candidateID, err := uuid.Parse(req.CandidateID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid candidate_id format",
		})
	}

	if _, err := h.jobRepo.FindByID(jobID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Job not found",
		})
	}

	candidate, err := h.candidateRepo.FindByID(candidateID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Candidate not found",
		})
	}

	if candidate.ResumeURL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Candidate has no resume reference",
		})
	}

	evaluation := &models.MatchEvaluation{
		ID:          uuid.New(),
		JobID:       jobID,
		CandidateID: candidateID,
		Method:      models.EvaluationMethod(req.Method),
		Status:      models.StatusQueued,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := h.evalRepo.Create(evaluation); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create evaluation",
		})
	}

	h.worker.EnqueueJob(evaluation.ID)

	return c.Status(fiber.StatusAccepted).JSON(models.EvaluateMatchResponse{
		ID:     evaluation.ID.String(),
		Status: string(models.StatusQueued),
	})
}

// HandleGetResult handles GET /match/result/:id
func (h *MatchHandler) HandleGetResult(c *fiber.Ctx) error {
	evalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid evaluation ID format",
		})
	}

	evaluation, err := h.evalRepo.FindByID(evalID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Evaluation not found",
		})
	}

	response := models.MatchResultResponse{
		ID:     evaluation.ID.String(),
		Status: string(evaluation.Status),
	}

	if evaluation.Status == models.StatusCompleted && evaluation.ScoreLabel != nil {
		result := &models.MatchResult{
			Success:         evaluation.ErrorMessage == nil,
			ScoreLabel:      *evaluation.ScoreLabel,
			MatchPercentage: 0,
			Breakdown:       evaluation.Breakdown,
			RedFlags:        evaluation.RedFlags,
		}
		if evaluation.ConfidenceLevel != nil {
			result.ConfidenceLevel = *evaluation.ConfidenceLevel
		}
		if evaluation.MatchPercentage != nil {
			result.MatchPercentage = *evaluation.MatchPercentage
		}
		if evaluation.ErrorMessage != nil {
			result.Error = *evaluation.ErrorMessage
		}
		response.Result = result
	}

	if evaluation.Status == models.StatusFailed {
		response.ErrorMessage = evaluation.ErrorMessage
	}

	return c.JSON(response)
}
