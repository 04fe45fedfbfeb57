package handlers

import (
	"context"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"talenthub/matching-service/internal/models"
	"talenthub/matching-service/internal/repositories"
	"talenthub/matching-service/internal/services"
)

type CandidateHandler struct {
	candidateRepo repositories.CandidateRepository
	fetcher       services.ResumeFetcher
	vectorStore   services.ResumeVectorStore
	validate      *validator.Validate
}

func NewCandidateHandler(
	candidateRepo repositories.CandidateRepository,
	fetcher services.ResumeFetcher,
	vectorStore services.ResumeVectorStore,
) *CandidateHandler {
	return &CandidateHandler{
		candidateRepo: candidateRepo,
		fetcher:       fetcher,
		vectorStore:   vectorStore,
		validate:      validator.New(),
	}
}

// HandleCreate handles POST /candidates. When a resume URL is supplied, the
// resume text is indexed into the vector store in the background; indexing
// failures are logged, not surfaced; the profile itself is already stored.
func (h *CandidateHandler) HandleCreate(c *fiber.Ctx) error {
	var req models.CreateCandidateRequest

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

	candidate := &models.Candidate{
		ID:                      uuid.New(),
		Name:                    req.Name,
		Skills:                  req.Skills,
		ExperienceYears:         req.ExperienceYears,
		CurrentSalary:           req.CurrentSalary,
		CurrentLocation:         req.CurrentLocation,
		OpenToRelocate:          req.OpenToRelocate,
		ResumeURL:               req.ResumeURL,
		Companies:               req.Companies,
		Institutes:              req.Institutes,
		TopCompanies:            req.TopCompanies,
		TopInstitutes:           req.TopInstitutes,
		HasConsultingBackground: req.HasConsultingBackground,
	}

	if err := h.candidateRepo.Create(candidate); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create candidate",
		})
	}

	if candidate.ResumeURL != "" && h.vectorStore != nil {
		go h.indexResume(candidate.ID.String(), candidate.ResumeURL)
	}

	return c.Status(fiber.StatusCreated).JSON(candidate)
}

// HandleGet handles GET /candidates/:id
func (h *CandidateHandler) HandleGet(c *fiber.Ctx) error {
	candidateID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid candidate ID format",
		})
	}

	candidate, err := h.candidateRepo.FindByID(candidateID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Candidate not found",
		})
	}

	return c.JSON(candidate)
}

func (h *CandidateHandler) indexResume(candidateID, resumeURL string) {
	ctx := context.Background()

	text, err := h.fetcher.FetchText(ctx, resumeURL)
	if err != nil {
		log.Printf("⚠️  Failed to fetch resume for indexing (candidate %s): %v\n", candidateID, err)
		return
	}

	if err := h.vectorStore.IndexResume(ctx, candidateID, text); err != nil {
		log.Printf("⚠️  Failed to index resume (candidate %s): %v\n", candidateID, err)
		return
	}

	log.Printf("✅ Resume indexed for candidate %s\n", candidateID)
}
