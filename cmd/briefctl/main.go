// briefctl is the command-line front-end for generating content briefs
// and managing client profiles.
package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"briefgen/internal/brief"
	"briefgen/internal/client"
	"briefgen/internal/config"
	"briefgen/internal/provider"
	"briefgen/internal/render"
)

type cli struct {
	Clients   clientsCmd   `cmd:"" help:"Manage client profiles."`
	Providers providersCmd `cmd:"" help:"List configured AI providers."`
	Generate  generateCmd  `cmd:"" help:"Generate a content brief."`

	Verbose bool `short:"v" help:"Enable debug logging."`
}

// deps carries the wired application services into command Run methods.
type deps struct {
	Store    *client.Store
	Registry *provider.Registry
	Briefs   *brief.Service
	Writer   *render.Writer
}

func main() {
	var c cli
	kctx := kong.Parse(&c,
		kong.Name("briefctl"),
		kong.Description("Generate structured content briefs from client profiles."),
		kong.UsageOnError(),
	)

	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if c.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		kctx.FatalIfErrorf(err)
	}

	store, err := client.NewStore(cfg.Storage.ClientsDir)
	kctx.FatalIfErrorf(err)

	registry, err := provider.NewRegistry(providerConfigs(cfg), provider.ID(cfg.Providers.Default), cfg.Providers.RequestTimeout)
	kctx.FatalIfErrorf(err)

	writer, err := render.NewWriter(cfg.Storage.OutputDir)
	kctx.FatalIfErrorf(err)

	kctx.FatalIfErrorf(kctx.Run(&deps{
		Store:    store,
		Registry: registry,
		Briefs:   brief.NewService(registry, cfg.Brief.RetryBackoff),
		Writer:   writer,
	}))
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
