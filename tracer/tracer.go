// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

// Package tracer records the production path a parser descends through.
//
// An earlier shape of this package kept the depth stack in a package-level
// variable. A parser is meant to be a pure, reentrant function, so the
// stack now lives on a value owned by the caller: construct a Trace and
// pass it alongside the cursor it annotates.
package tracer

import "strings"

// Trace accumulates the stack of productions a parser is currently inside,
// for annotating error messages and optional debug dumps. The zero value
// is ready to use.
type Trace struct {
	stack    []string
	messages []string
}

// Enter pushes a production name onto the stack. Callers should defer the
// matching Leave.
func (t *Trace) Enter(production string) {
	t.stack = append(t.stack, production)
}

// Leave pops the most recently entered production.
func (t *Trace) Leave() {
	if n := len(t.stack); n > 0 {
		t.stack = t.stack[:n-1]
	}
}

// Path renders the current production stack as "a > b > c".
func (t *Trace) Path() string {
	return strings.Join(t.stack, " > ")
}

// Depth reports how many productions are currently entered.
func (t *Trace) Depth() int {
	return len(t.stack)
}

// Log appends a message to the trace's message log, for later Flush.
func (t *Trace) Log(msg string) {
	t.messages = append(t.messages, msg)
}

// Flush returns the accumulated messages and resets the log.
func (t *Trace) Flush() []string {
	msgs := t.messages
	t.messages = nil
	return msgs
}
