package http

import (
	"github.com/askroom/askroom/pkg/domain/question"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type listQuestionsHandler struct {
	logger *logrus.Logger
	repo   question.Repository
}

// NewListQuestionsHandler @Summary List Questions of a Room
// @Description Lists the questions asked in a room with their answers, newest first
// @Tags Questions
// @Produce json
// @Param roomId path string true "Room ID"
// @Success 200 {array} question.Question "Questions"
// @Failure 400 {object} map[string]interface{} "Invalid room ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /rooms/{roomId}/questions [get]
func NewListQuestionsHandler(logger *logrus.Logger, repo question.Repository) Handler {
	return &listQuestionsHandler{
		logger: logger,
		repo:   repo,
	}
}

func (s *listQuestionsHandler) Handle(c *fiber.Ctx) error {
	roomID, err := uuid.Parse(c.Params("roomId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid room ID"})
	}

	questions, err := s.repo.ListByRoom(c.Context(), roomID)
	if err != nil {
		s.logger.WithError(err).Error("failed to list questions")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list questions"})
	}
	if questions == nil {
		questions = []question.Question{}
	}
	return c.Status(fiber.StatusOK).JSON(questions)
}
