package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"talenthub/matching-service/internal/models"
	"talenthub/matching-service/internal/repositories"
)

type JobHandler struct {
	jobRepo  repositories.JobRepository
	validate *validator.Validate
}

func NewJobHandler(jobRepo repositories.JobRepository) *JobHandler {
	return &JobHandler{
		jobRepo:  jobRepo,
		validate: validator.New(),
	}
}

// HandleCreate handles POST /jobs
func (h *JobHandler) HandleCreate(c *fiber.Ctx) error {
	var req models.CreateJobRequest

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

	job := &models.Job{
		ID:                 uuid.New(),
		Title:              req.Title,
		Location:           req.Location,
		WorkType:           req.WorkType,
		WorkMode:           req.WorkMode,
		SalaryMin:          req.SalaryMin,
		SalaryMax:          req.SalaryMax,
		SalaryConfidential: req.SalaryConfidential,
		ExperienceMin:      req.ExperienceMin,
		ExperienceMax:      req.ExperienceMax,
		Skills:             req.Skills,
		Qualifications:     req.Qualifications,
		ScreeningQuestions: req.ScreeningQuestions,
		MustHave:           req.MustHave,
		NiceToHave:         req.NiceToHave,
		Bonus:              req.Bonus,
		RedFlags:           req.RedFlags,
	}

	if err := h.jobRepo.Create(job); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create job",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(job)
}

// HandleGet handles GET /jobs/:id
func (h *JobHandler) HandleGet(c *fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid job ID format",
		})
	}

	job, err := h.jobRepo.FindByID(jobID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Job not found",
		})
	}

	return c.JSON(job)
}
