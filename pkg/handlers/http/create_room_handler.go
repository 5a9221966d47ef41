package http

import (
	"github.com/askroom/askroom/pkg/domain/room"
	"github.com/askroom/askroom/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type createRoomHandler struct {
	logger *logrus.Logger
	repo   room.Repository
}

// NewCreateRoomHandler @Summary Create a new Room
// @Description Creates a room to hold audio transcriptions and questions
// @Tags Rooms
// @Accept json
// @Produce json
// @Param room body request.CreateRoomRequest true "Room request body"
// @Success 201 {object} map[string]interface{} "Room created"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /rooms [post]
func NewCreateRoomHandler(logger *logrus.Logger, repo room.Repository) Handler {
	return &createRoomHandler{
		logger: logger,
		repo:   repo,
	}
}

func (s *createRoomHandler) Handle(c *fiber.Ctx) error {
	var req request.CreateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	entity := room.Room{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.repo.Create(c.Context(), &entity); err != nil {
		s.logger.WithError(err).Error("failed to create room")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create room"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"roomId": entity.ID,
	})
}
