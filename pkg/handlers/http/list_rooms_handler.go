package http

import (
	"github.com/askroom/askroom/pkg/domain/room"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type listRoomsHandler struct {
	logger *logrus.Logger
	repo   room.Repository
}

// NewListRoomsHandler @Summary List Rooms
// @Description Lists rooms with their question counts, newest first
// @Tags Rooms
// @Produce json
// @Success 200 {array} room.WithQuestionCount "Rooms"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /rooms [get]
func NewListRoomsHandler(logger *logrus.Logger, repo room.Repository) Handler {
	return &listRoomsHandler{
		logger: logger,
		repo:   repo,
	}
}

func (s *listRoomsHandler) Handle(c *fiber.Ctx) error {
	rooms, err := s.repo.List(c.Context())
	if err != nil {
		s.logger.WithError(err).Error("failed to list rooms")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list rooms"})
	}
	if rooms == nil {
		rooms = []room.WithQuestionCount{}
	}
	return c.Status(fiber.StatusOK).JSON(rooms)
}
