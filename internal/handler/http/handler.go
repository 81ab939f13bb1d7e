package http

import (
	"net/http"

	"github.com/MKhiriev/go-auth-form/internal/logger"
	"github.com/MKhiriev/go-auth-form/internal/service"
	"github.com/gorilla/websocket"
)

type Handler struct {
	services *service.Services
	upgrader websocket.Upgrader

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The terminal client sends no Origin header.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		logger: logger,
	}
}
