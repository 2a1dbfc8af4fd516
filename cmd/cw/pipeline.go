package main

import (
	"github.com/rs/zerolog"

	"github.com/matsen/citeweight/internal/config"
	"github.com/matsen/citeweight/internal/metadata"
	"github.com/matsen/citeweight/internal/reweight"
	"github.com/matsen/citeweight/internal/weight"
)

// pipeline holds the lookup tables and scorer shared by the weighting commands.
type pipeline struct {
	cfg    *config.Config
	ctx    *weight.Context
	model  *weight.Model
	scorer weight.Scorer
	logger *zerolog.Logger
}

// loadPipeline reads the year, authorship and community files named in cfg.
func loadPipeline(cfg *config.Config, logger *zerolog.Logger) (*pipeline, error) {
	years, err := metadata.LoadYears(cfg.Inputs.Years)
	if err != nil {
		return nil, err
	}
	authors, err := metadata.LoadAuthorship(cfg.Inputs.Authors)
	if err != nil {
		return nil, err
	}
	communities, err := metadata.LoadCommunities(cfg.Inputs.Communities)
	if err != nil {
		return nil, err
	}

	ctx := weight.NewContext(years, authors, communities)
	logger.Info().
		Int("papers_with_year", len(years)).
		Int("papers_with_authors", len(authors)).
		Int("authors_with_community", len(communities)).
		Int("years", len(ctx.Histogram)).
		Msg("Metadata loaded")

	model := weight.NewModel(ctx, cfg.Model)
	p := &pipeline{cfg: cfg, ctx: ctx, model: model, scorer: model, logger: logger}

	if cfg.Search.CacheSize > 0 {
		cached, err := weight.NewCached(model, cfg.Search.CacheSize)
		if err != nil {
			return nil, err
		}
		p.scorer = cached
	}
	return p, nil
}

func (p *pipeline) options() reweight.Options {
	return reweight.Options{Policy: p.cfg.Policy(), Logger: p.logger}
}

// reference returns the normalization factor of a median-volume year.
func (p *pipeline) reference() float64 {
	return reweight.Reference(p.ctx.Histogram)
}

// mustLoadPipeline loads configuration and metadata, exits on error.
func mustLoadPipeline() *pipeline {
	cfg := mustLoadConfig()
	p, err := loadPipeline(cfg, newLogger(cfg))
	if err != nil {
		exitWithError(exitCodeFor(err), "loading metadata: %v", err)
	}
	return p
}
