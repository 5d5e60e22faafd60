// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

// Command pdfroundtrip is a thin external collaborator: it
// owns the file I/O and CLI surface that the pdf package deliberately
// does not. Given one or more file paths, it parses each, serializes the
// result, and reports whether the output reproduces the input exactly.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	pdf "github.com/sassoftware/pdf-roundtrip"
	"github.com/sassoftware/pdf-roundtrip/logger"
	"github.com/sassoftware/pdf-roundtrip/roundtrip"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: pdfroundtrip <file.pdf> [file.pdf...]")
		os.Exit(2)
	}

	logger.SetLogger(func(level logger.LogLevel, msg string, keyvals ...interface{}) {
		if level == logger.ErrorLevel {
			fmt.Fprintln(os.Stderr, "pdfroundtrip:", msg, keyvals)
		}
	})

	var files []roundtrip.File
	for _, path := range os.Args[1:] {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "pdfroundtrip: %s: %v\n", path, err)
			os.Exit(1)
		}
		files = append(files, roundtrip.File{Name: path, Data: data})
	}

	cfg := roundtrip.NewDefaultConfig()
	cfg.ParsingMode = pdf.BestEffort
	v, err := roundtrip.NewVerifier(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "pdfroundtrip:", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	results, err := v.VerifyAll(ctx, files)
	if err != nil {
		fmt.Fprintln(os.Stderr, "pdfroundtrip:", err)
		os.Exit(1)
	}

	exit := 0
	for _, r := range results {
		if r.OK {
			fmt.Printf("OK   %s (%d flags)\n", r.Name, len(r.Flags))
			continue
		}
		exit = 1
		if r.MismatchOffset >= 0 {
			fmt.Printf("FAIL %s: output diverges at offset %d\n", r.Name, r.MismatchOffset)
		} else {
			fmt.Printf("FAIL %s: %v\n", r.Name, r.Err)
		}
	}
	os.Exit(exit)
}
