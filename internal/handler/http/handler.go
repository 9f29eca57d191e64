package http

import (
	"github.com/MKhiriev/go-feed-sync/internal/logger"
	"github.com/MKhiriev/go-feed-sync/internal/metrics"
	"github.com/MKhiriev/go-feed-sync/internal/service"
	"github.com/MKhiriev/go-feed-sync/internal/utils"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.Collector
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, collector *metrics.Collector, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		metrics:  collector,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}
