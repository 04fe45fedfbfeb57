package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"talenthub/matching-service/internal/models"
	"talenthub/matching-service/internal/services"
)

type PoolHandler struct {
	pipeline *services.PoolPipeline
	validate *validator.Validate
}

func NewPoolHandler(pipeline *services.PoolPipeline) *PoolHandler {
	return &PoolHandler{
		pipeline: pipeline,
		validate: validator.New(),
	}
}

// HandleSearch handles POST /pool/search: hard-filter and rank the full
// candidate pool.
func (h *PoolHandler) HandleSearch(c *fiber.Ctx) error {
	var req models.PoolSearchRequest

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

	ranked, err := h.pipeline.Search(c.Context(), req.Filter, req.RelevantSkills)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Pool search failed",
		})
	}

	return c.JSON(models.PoolSearchResponse{
		Total:      len(ranked),
		Candidates: ranked,
	})
}
