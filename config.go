// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdf

import (
	"github.com/go-playground/validator/v10"
	"github.com/sassoftware/pdf-roundtrip/logger"
)

// ParsingMode selects how loudly the parser surfaces constructs that are
// accepted but are not conformant with the PDF
// specification, such as a signed object number on an indirect reference.
type ParsingMode string

const (
	// Strict logs every such construct at error level and records it as a
	// Flag on the parse result.
	Strict ParsingMode = "strict"
	// BestEffort logs the same construct at debug level; it is still
	// recorded as a Flag on the parse result.
	BestEffort ParsingMode = "best-effort"
)

// Config controls the ambient behavior of Parse; it never changes what
// bytes are accepted or how they are re-serialized, and it never causes
// Parse to reject input it would otherwise accept.
type Config struct {
	ParsingMode ParsingMode `validate:"oneof=strict best-effort"`
	DebugOn     bool
	Logger      logger.LogFunc
}

// NewDefaultConfig returns the Config used when Parse is called without
// one explicitly.
func NewDefaultConfig() *Config {
	return &Config{
		ParsingMode: BestEffort,
		DebugOn:     false,
	}
}

// Validate checks the Config's invariants.
func (cfg *Config) Validate() error {
	logger.Debug("validating pdf.Config")
	validate := validator.New()
	return validate.Struct(cfg)
}

func (cfg *Config) logger() logger.LogFunc {
	if cfg != nil && cfg.Logger != nil {
		return cfg.Logger
	}
	return nil
}
