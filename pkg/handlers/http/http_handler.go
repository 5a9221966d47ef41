package http

import (
	"github.com/gofiber/fiber/v2"
)

const ErrInvalidJsonPayload = "invalid JSON payload"

type Handler interface {
	Handle(ctx *fiber.Ctx) error
}

type HandlerTransport struct {
	// Rooms
	CreateRoomHandler Handler
	ListRoomsHandler  Handler

	// Questions
	CreateQuestionHandler Handler
	ListQuestionsHandler  Handler

	// Audio ingestion
	UploadAudioHandler Handler

	// Service
	GetVersionHandler Handler
}
