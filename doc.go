// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

// Package pdf implements a byte-preserving parser and serializer for PDF
// 1.x documents.
//
// # Overview
//
// Parse walks an input byte slice and produces a PdfFile: a syntax tree
// that keeps every lexically significant fragment of the input, including
// whitespace, comments, sign characters, leading zeros and EOL style.
// Serialize walks that tree back into bytes. For any input accepted by
// Parse, serializing the resulting tree reproduces the input exactly —
// that round-trip identity, not any normalized or canonical rendering of
// the document, is this package's correctness property.
//
// This package does not interpret PDF semantics: it does not decode
// stream filters, resolve indirect references, render pages, or validate
// referential integrity. It only recognizes the lexical and file-level
// grammar of section 7 of the PDF reference (objects, cross-reference
// tables, trailers, and incremental-update chains) closely enough to
// reproduce it byte for byte.
//
// Parsing and serialization are pure, synchronous functions: there is no
// I/O and no background work. The only shared mutable state is the logger
// package's process-wide log hook, which Parse replaces when the optional
// Config supplied by the caller sets Logger.
package pdf
