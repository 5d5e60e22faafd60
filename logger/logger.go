// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

// Package logger is the logging seam used by the pdf package and its
// collaborators. Hosts embedding the parser install their own LogFunc via
// SetLogger; by default nothing is emitted.
package logger

// LogLevel represents log severity.
type LogLevel string

const (
	DebugLevel LogLevel = "debug"
	ErrorLevel LogLevel = "error"
)

// LogFunc is a single logger function that handles all levels.
type LogFunc func(level LogLevel, msg string, keyvals ...interface{})

var logFunc LogFunc = func(level LogLevel, msg string, keyvals ...interface{}) {
}

// SetLogger sets the package-level logger function.
func SetLogger(f LogFunc) {
	if f != nil {
		logFunc = f
	}
}

// Debug logs a message at debug level.
func Debug(msg string, keyvals ...interface{}) {
	logFunc(DebugLevel, msg, keyvals...)
}

// Error logs a message at error level.
func Error(msg string, keyvals ...interface{}) {
	logFunc(ErrorLevel, msg, keyvals...)
}
