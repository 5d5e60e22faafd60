// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

// Package roundtrip batch-verifies that a set of PDF files survive a
// parse/serialize round trip unchanged. It is an external collaborator,
// not part of the core pdf package: the core package never iterates
// over multiple documents or touches a filesystem.
package roundtrip

import (
	"time"

	"github.com/go-playground/validator/v10"

	pdf "github.com/sassoftware/pdf-roundtrip"
	"github.com/sassoftware/pdf-roundtrip/logger"
)

// Config controls how a Verifier bounds and retries concurrent work.
type Config struct {
	MaxConcurrentFiles int           `validate:"min=1,max=64"`
	FileTimeout        time.Duration `validate:"required"`
	MaxRetries         int           `validate:"min=0,max=3"`
	ParsingMode        pdf.ParsingMode `validate:"oneof=strict best-effort"`
	DebugOn            bool
	Logger             logger.LogFunc
}

// NewDefaultConfig returns a Config with the same defaults the core
// package ships for parsing mode, plus a modest concurrency bound.
func NewDefaultConfig() *Config {
	return &Config{
		MaxConcurrentFiles: 5,
		FileTimeout:        5 * time.Second,
		MaxRetries:         0,
		ParsingMode:        pdf.BestEffort,
		DebugOn:            false,
	}
}

// Validate checks Config's fields for well-formedness.
func (cfg *Config) Validate() error {
	logger.Debug("validating roundtrip config")
	return validator.New().Struct(cfg)
}
