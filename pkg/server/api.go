package server

import (
	"fmt"

	"github.com/askroom/askroom/pkg/config"
	handlers "github.com/askroom/askroom/pkg/handlers/http"
	"github.com/askroom/askroom/pkg/middleware"
	"github.com/askroom/askroom/pkg/server/router"
	"github.com/sirupsen/logrus"
)

type (
	APIServerDI struct {
		MiddlewareTransport middleware.Transport
		HandlerTransport    handlers.HandlerTransport
		Config              *config.Config
		Logger              *logrus.Logger
	}
	APIServer struct {
		*BaseServer
		middlewareTransport middleware.Transport
		handlerTransport    handlers.HandlerTransport
	}
)

func NewAPIServer(di APIServerDI) *APIServer {
	return &APIServer{
		BaseServer:          NewBaseServer(di.Config, di.Logger),
		middlewareTransport: di.MiddlewareTransport,
		handlerTransport:    di.HandlerTransport,
	}
}

func (s *APIServer) Run() error {
	apiRouter := router.NewAPIRouter(s.middlewareTransport, s.handlerTransport)
	if err := apiRouter.BuildRoutes(s.Router); err != nil {
		return fmt.Errorf("failed to build routes: %w", err)
	}
	s.setupHealthCheck()
	s.setupMetricsEndpoint()

	addr := fmt.Sprintf("%s:%d", s.Config.Server.Host, s.Config.Server.Port)
	s.Logger.WithField("addr", addr).Info("starting api server")
	return s.Router.Listen(addr)
}
