package http

import (
	"io"

	appAudio "github.com/askroom/askroom/pkg/app/audio"
	"github.com/askroom/askroom/pkg/domain"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const defaultAudioMimeType = "audio/webm"

type uploadAudioHandler struct {
	logger   *logrus.Logger
	ingestor appAudio.Ingestor
}

// NewUploadAudioHandler @Summary Upload a room audio recording
// @Description Transcribes the uploaded audio, embeds the transcription and stores it as a retrievable chunk
// @Tags Audio
// @Accept multipart/form-data
// @Produce json
// @Param roomId path string true "Room ID"
// @Param file formData file true "Audio file"
// @Success 201 {object} map[string]interface{} "Chunk created"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Room not found"
// @Failure 502 {object} map[string]interface{} "Upstream AI dependency failed"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /rooms/{roomId}/audio [post]
func NewUploadAudioHandler(logger *logrus.Logger, ingestor appAudio.Ingestor) Handler {
	return &uploadAudioHandler{
		logger:   logger,
		ingestor: ingestor,
	}
}

func (s *uploadAudioHandler) Handle(c *fiber.Ctx) error {
	roomID, err := uuid.Parse(c.Params("roomId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid room ID"})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "audio file is required"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		s.logger.WithError(err).Error("failed to open uploaded file")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to read audio file"})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.logger.WithError(err).Error("failed to read uploaded file")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to read audio file"})
	}
	if len(data) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "audio file is empty"})
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = defaultAudioMimeType
	}

	result, err := s.ingestor.Ingest(c.Context(), roomID, mimeType, data)
	if err != nil {
		switch {
		case domain.IsNotFoundError(err):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "room not found"})
		case domain.IsUpstreamError(err):
			s.logger.WithError(err).Error("upstream dependency failed")
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "upstream dependency failed"})
		default:
			s.logger.WithError(err).Error("failed to ingest audio")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to ingest audio"})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"chunkId": result.ChunkID,
	})
}
