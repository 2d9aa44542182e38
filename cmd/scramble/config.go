package main

import (
	"github.com/caarlos0/env/v11"
	"github.com/zeebo/errs"

	"github.com/zeebo/scramble"
	"github.com/zeebo/scramble/internal/uint128"
)

// config holds the settings for a run. Environment variables provide the
// defaults and flags override them.
type config struct {
	Seed       string `env:"SCRAMBLE_SEED"`
	SeedPhrase string `env:"SCRAMBLE_SEED_PHRASE"`
	Skip       string `env:"SCRAMBLE_SKIP"`
	Format     string `env:"SCRAMBLE_FORMAT" envDefault:"json"`
	Output     string `env:"SCRAMBLE_OUTPUT"`
	Verbose    bool   `env:"SCRAMBLE_VERBOSE"`
}

// loadConfig reads the config from the environment.
func loadConfig() (cfg config, err error) {
	if err := env.Parse(&cfg); err != nil {
		return cfg, errs.New("parse env: %v", err)
	}
	return cfg, nil
}

// seed returns the seed selected by the config.
func (c config) seed() (uint128.T, error) {
	switch {
	case c.Seed != "" && c.SeedPhrase != "":
		return uint128.T{}, errs.New("only one of seed and seed phrase may be set")
	case c.Seed != "":
		return scramble.ParseSeed(c.Seed)
	case c.SeedPhrase != "":
		return scramble.PhraseSeed(c.SeedPhrase), nil
	default:
		return scramble.DefaultSeed, nil
	}
}

// steps returns how far to advance the generator before scrambling.
func (c config) steps() (uint128.T, error) {
	if c.Skip == "" {
		return uint128.T{}, nil
	}
	return scramble.ParseSteps(c.Skip)
}

// generator returns the seeded and advanced generator for the config.
func (c config) generator() (*scramble.PCG, error) {
	seed, err := c.seed()
	if err != nil {
		return nil, err
	}
	steps, err := c.steps()
	if err != nil {
		return nil, err
	}

	rng := scramble.New(seed)
	rng.Advance(steps)
	return rng, nil
}
