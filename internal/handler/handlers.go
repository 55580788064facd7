// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/go-stash-journal/internal/config"
	"github.com/MKhiriev/go-stash-journal/internal/handler/http"
	"github.com/MKhiriev/go-stash-journal/internal/logger"
	"github.com/MKhiriev/go-stash-journal/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger, opts ...http.Option) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		if cfg.RequestTimeout > 0 {
			opts = append(opts, http.WithRequestTimeout(cfg.RequestTimeout))
		}
		handlers.HTTP = http.NewHandler(services, logger, opts...)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
