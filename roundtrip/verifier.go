// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package roundtrip

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/semaphore"

	pdf "github.com/sassoftware/pdf-roundtrip"
	"github.com/sassoftware/pdf-roundtrip/logger"
)

// File names and carries the bytes of one candidate document.
type File struct {
	Name string
	Data []byte
}

// Result is the outcome of round-tripping one File.
type Result struct {
	Name string

	// OK is true when Parse succeeded and Bytes() reproduced Data
	// exactly.
	OK bool

	// MismatchOffset is the index of the first byte at which the
	// serialized output diverges from the input; when one is a prefix
	// of the other, it is the length of the shorter. It is -1 when OK,
	// or when no output was produced to compare.
	MismatchOffset int

	// Flags carries every non-conformant-but-accepted construct the
	// parser flagged while parsing Data, in document order.
	Flags []pdf.Flag

	// Err is set when Parse itself failed, when Parse left bytes
	// unconsumed, when the output diverges, or on a context error.
	Err error
}

// Verifier round-trips many files concurrently, bounding the number
// in flight with a weighted semaphore.
type Verifier struct {
	cfg *Config
	sem *semaphore.Weighted
}

// NewVerifier validates cfg and constructs a Verifier.
func NewVerifier(cfg *Config) (*Verifier, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("roundtrip: invalid config: %w", err)
	}
	if cfg.Logger != nil {
		logger.SetLogger(cfg.Logger)
	}
	logger.Debug("verifier initialized", "max_concurrent_files", cfg.MaxConcurrentFiles)
	return &Verifier{
		cfg: cfg,
		sem: semaphore.NewWeighted(int64(cfg.MaxConcurrentFiles)),
	}, nil
}

// VerifyAll round-trips every file in files, respecting ctx cancellation
// and the Verifier's concurrency bound. Results are returned in the same
// order as files, regardless of completion order.
func (v *Verifier) VerifyAll(ctx context.Context, files []File) ([]Result, error) {
	results := make([]Result, len(files))

	var wg sync.WaitGroup
	for i, f := range files {
		if err := v.sem.Acquire(ctx, 1); err != nil {
			logger.Debug("context cancelled while acquiring slot", "file", f.Name, "err", err)
			results[i] = Result{Name: f.Name, MismatchOffset: -1, Err: err}
			continue
		}
		wg.Add(1)
		go func(i int, f File) {
			defer wg.Done()
			defer v.sem.Release(1)
			results[i] = v.verifyWithRetries(ctx, f)
		}(i, f)
	}
	wg.Wait()

	return results, nil
}

func (v *Verifier) verifyWithRetries(ctx context.Context, f File) Result {
	var res Result
	for attempt := 0; attempt <= v.cfg.MaxRetries; attempt++ {
		fileCtx, cancel := context.WithTimeout(ctx, v.cfg.FileTimeout)
		res = v.verifyOne(fileCtx, f)
		cancel()
		if res.Err == nil {
			break
		}
		logger.Debug("retrying round-trip verification", "file", f.Name, "attempt", attempt, "err", res.Err)
	}
	return res
}

func (v *Verifier) verifyOne(ctx context.Context, f File) Result {
	select {
	case <-ctx.Done():
		return Result{Name: f.Name, MismatchOffset: -1, Err: ctx.Err()}
	default:
	}

	cfg := pdf.NewDefaultConfig()
	cfg.ParsingMode = v.cfg.ParsingMode

	doc, remaining, err := pdf.Parse(f.Data, cfg)
	if err != nil {
		logger.Debug("parse failed during round-trip verification", "file", f.Name, "err", err)
		return Result{Name: f.Name, MismatchOffset: -1, Err: err}
	}
	if len(remaining) != 0 {
		err := fmt.Errorf("roundtrip: %d unconsumed bytes after parse", len(remaining))
		return Result{Name: f.Name, MismatchOffset: -1, Err: err}
	}

	out := doc.Bytes()
	offset := firstMismatch(f.Data, out)
	if offset == -1 {
		logger.Debug("round-trip verified", "file", f.Name)
		return Result{Name: f.Name, OK: true, MismatchOffset: -1, Flags: doc.Flags}
	}

	logger.Error("round-trip mismatch", "file", f.Name, "offset", offset)
	return Result{
		Name:           f.Name,
		OK:             false,
		MismatchOffset: offset,
		Flags:          doc.Flags,
		Err:            fmt.Errorf("roundtrip: output diverges from input at offset %d", offset),
	}
}

// firstMismatch returns the index of the first differing byte between a
// and b, or -1 if they are equal.
func firstMismatch(a, b []byte) int {
	if bytes.Equal(a, b) {
		return -1
	}
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}
