package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/paylens/fee-insights/pkg/handlers/dashboard"
	"github.com/paylens/fee-insights/pkg/services/datasource"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	feeinsightsmiddleware "github.com/paylens/fee-insights/pkg/server/middleware"
	"github.com/rs/zerolog"
)

type Dependencies struct {
	Provider datasource.Provider
	Logger   zerolog.Logger
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

// ConfigureRouter wires every API route with logging and panic recovery.
func ConfigureRouter(config Config) *chi.Mux {
	handler := dashboard.NewHandler(config.Dependencies.Provider)

	router := chi.NewRouter()

	router.Use(feeinsightsmiddleware.Logger(&config.Dependencies.Logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Mount("/dashboard", handler.Routes())
	})

	return router
}

type WebAPI struct {
	router *chi.Mux
	logger *zerolog.Logger
	server *http.Server
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	config.Dependencies.Logger = logger
	router := ConfigureRouter(config)

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
	}
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
