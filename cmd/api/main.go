package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"briefgen/internal/brief"
	"briefgen/internal/client"
	"briefgen/internal/config"
	httphandler "briefgen/internal/http"
	"briefgen/internal/provider"
)

func main() {
	var (
		seedProfiles = flag.Bool("seed", false, "Create sample client profiles and exit")
		port         = flag.String("port", "", "Port to run the server on (overrides PORT)")
	)
	flag.Parse()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	if *port == "" {
		*port = cfg.Server.Port
	}

	store, err := client.NewStore(cfg.Storage.ClientsDir)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open client store")
	}

	if *seedProfiles {
		if err := client.Seed(store); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed client profiles")
		}
		log.Info().Msg("Sample client profiles created")
		return
	}

	registry, err := provider.NewRegistry(providerConfigs(cfg), provider.ID(cfg.Providers.Default), cfg.Providers.RequestTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build provider registry")
	}
	if available := registry.Available(); len(available) == 0 {
		log.Warn().Msg("No AI provider API keys configured; brief generation will be unavailable")
	} else {
		log.Info().Interface("providers", available).Msg("AI providers configured")
	}

	briefService := brief.NewService(registry, cfg.Brief.RetryBackoff)

	router := httphandler.NewRouter(cfg.Server.WriteTimeout)
	router.RegisterBriefRoutes(httphandler.NewBriefHandler(briefService, store, registry))
	router.RegisterHealthRoutes()

	server := &http.Server{
		Addr:         ":" + *port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info().Str("port", *port).Msg("Starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
	}

	log.Info().Msg("Server stopped")
}

func providerConfigs(cfg *config.Config) []provider.Config {
	p := cfg.Providers
	return []provider.Config{
		{ID: provider.OpenAI, APIKey: p.OpenAI.APIKey, Model: p.OpenAI.Model, Endpoint: p.OpenAI.Endpoint},
		{ID: provider.Claude, APIKey: p.Claude.APIKey, Model: p.Claude.Model, Endpoint: p.Claude.Endpoint},
		{ID: provider.Perplexity, APIKey: p.Perplexity.APIKey, Model: p.Perplexity.Model, Endpoint: p.Perplexity.Endpoint},
		{ID: provider.Mistral, APIKey: p.Mistral.APIKey, Model: p.Mistral.Model, Endpoint: p.Mistral.Endpoint},
	}
}
