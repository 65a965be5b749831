// SPDX-License-Identifier: MIT
// Copyright (c) 2026 datamob
// Source: github.com/datamob/dictgen

package main

import (
	"fmt"

	env "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// appConfig holds environment-provided defaults for CLI runs.
// Every value can still be overridden by flags or positional arguments.
type appConfig struct {
	SchemaPath   string `env:"SCHEMA" envDefault:"entire_schema.yml"`
	DocsDir      string `env:"DOCS_DIR" envDefault:"docs"`
	SlotsOnly    bool   `env:"SLOTS_ONLY" envDefault:"false"`
	MetadataPath string `env:"METADATA" envDefault:"other_elements/schema_metadata.yml"`
	EnumsPath    string `env:"ENUMS" envDefault:"other_elements/enums.yml"`
	ClassesPath  string `env:"CLASSES" envDefault:"other_elements/classes.yml"`
	SlotsDir     string `env:"SLOTS_DIR" envDefault:"slots"`
}

// loadAppConfig reads DICTGEN_-prefixed environment defaults. A .env file
// in the working directory is loaded first when present.
func loadAppConfig() (appConfig, error) {
	_ = godotenv.Load()

	var cfg appConfig
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "DICTGEN_"}); err != nil {
		return appConfig{}, fmt.Errorf("parse environment config: %w", err)
	}

	return cfg, nil
}
