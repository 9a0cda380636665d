package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"currencybot/internal/api"
	"currencybot/internal/api/middleware"
)

func (app *App) initHTTP() {
	r := chi.NewRouter()
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.RequestLoggingMiddleware(app.logger))
	r.Use(chimiddleware.Recoverer)

	r.Post("/v1/messages", api.HandleMessage(app.dispatcher))
	r.Get("/v1/rates/status", api.HandleRatesStatus(app.store))
	r.Get("/healthz", api.HandleHealthz())
	r.Get("/readyz", api.HandleReadyz())

	app.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Server.Port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
