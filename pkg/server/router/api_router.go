package router

import (
	"errors"

	handlers "github.com/askroom/askroom/pkg/handlers/http"
	"github.com/askroom/askroom/pkg/middleware"
	"github.com/gofiber/fiber/v2"
)

var ErrMissingHandler = errors.New("handler transport is missing a handler")

type ServerRouter interface {
	BuildRoutes(router *fiber.App) error
}

type apiRouter struct {
	middlewareTransport middleware.Transport
	handlerTransport    handlers.HandlerTransport
}

func NewAPIRouter(
	middlewareTransport middleware.Transport,
	handlerTransport handlers.HandlerTransport,
) ServerRouter {
	return &apiRouter{
		middlewareTransport: middlewareTransport,
		handlerTransport:    handlerTransport,
	}
}

func (r *apiRouter) BuildRoutes(router *fiber.App) error {
	t := r.handlerTransport
	if t.CreateRoomHandler == nil || t.ListRoomsHandler == nil ||
		t.CreateQuestionHandler == nil || t.ListQuestionsHandler == nil ||
		t.UploadAudioHandler == nil || t.GetVersionHandler == nil {
		return ErrMissingHandler
	}

	if r.middlewareTransport.MetricsMiddleware != nil {
		router.Use(r.middlewareTransport.MetricsMiddleware.Handler())
	}

	router.Get("/version", t.GetVersionHandler.Handle)

	rooms := router.Group("/rooms")
	{
		rooms.Post("", t.CreateRoomHandler.Handle)
		rooms.Get("", t.ListRoomsHandler.Handle)
		rooms.Post("/:roomId/questions", t.CreateQuestionHandler.Handle)
		rooms.Get("/:roomId/questions", t.ListQuestionsHandler.Handle)
		rooms.Post("/:roomId/audio", t.UploadAudioHandler.Handle)
	}

	return nil
}
