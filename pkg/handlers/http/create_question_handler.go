package http

import (
	appQuestion "github.com/askroom/askroom/pkg/app/question"
	"github.com/askroom/askroom/pkg/domain"
	"github.com/askroom/askroom/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type createQuestionHandler struct {
	logger  *logrus.Logger
	creator appQuestion.Creator
}

// NewCreateQuestionHandler @Summary Ask a question in a room
// @Description Embeds the question, retrieves similar transcript chunks and generates a grounded answer when any matched
// @Tags Questions
// @Accept json
// @Produce json
// @Param roomId path string true "Room ID"
// @Param question body request.CreateQuestionRequest true "Question request body"
// @Success 201 {object} map[string]interface{} "Question created"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 502 {object} map[string]interface{} "Upstream AI dependency failed"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /rooms/{roomId}/questions [post]
func NewCreateQuestionHandler(logger *logrus.Logger, creator appQuestion.Creator) Handler {
	return &createQuestionHandler{
		logger:  logger,
		creator: creator,
	}
}

func (s *createQuestionHandler) Handle(c *fiber.Ctx) error {
	roomID, err := uuid.Parse(c.Params("roomId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid room ID"})
	}

	var req request.CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := s.creator.Create(c.Context(), roomID, req.Question)
	if err != nil {
		switch {
		case domain.IsUpstreamError(err):
			s.logger.WithError(err).Error("upstream dependency failed")
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "upstream dependency failed"})
		case domain.IsPersistenceError(err):
			s.logger.WithError(err).Error("failed to persist question")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create question"})
		default:
			s.logger.WithError(err).Error("failed to create question")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create question"})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"questionId": result.QuestionID,
		"answer":     result.Answer,
	})
}
