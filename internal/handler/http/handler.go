// Package http implements the HTTP transport layer of the configuration
// store. It provides middleware, route handlers, and request/response
// utilities for the REST API. Authentication, CORS, logging, and tracing
// concerns are all handled at this layer before requests are forwarded to
// the service layer.
package http

import (
	"github.com/siteforge-io/siteforge/internal/config"
	"github.com/siteforge-io/siteforge/internal/logger"
	"github.com/siteforge-io/siteforge/internal/service"
)

type Handler struct {
	service service.ConfigService
	auth    config.Auth
	cors    config.CORS

	logger *logger.Logger
}

func NewHandler(svc service.ConfigService, cfg config.StoreConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		service: svc,
		auth:    cfg.Auth,
		cors:    cfg.CORS,
		logger:  logger,
	}
}
