package http

import (
	"github.com/MKhiriev/go-blog-keeper/internal/config"
	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/internal/service"
)

type Handler struct {
	services *service.Services
	limiter  *rateLimiter

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		limiter:  newRateLimiter(cfg.RateLimitMax, cfg.RateLimitWindow),
		logger:   logger,
	}
}
