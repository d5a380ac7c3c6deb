package http

import (
	"dashportal/internal/logger"
	"dashportal/internal/probe"
	"dashportal/internal/service"
)

type Handler struct {
	services *service.Services
	checker  *probe.Checker

	logger *logger.Logger
}

func NewHandler(services *service.Services, checker *probe.Checker, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		checker:  checker,
		logger:   logger,
	}
}
