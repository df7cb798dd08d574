// SPDX-FileCopyrightText: © 2023 Siemens AG
// SPDX-License-Identifier: MIT

// Package clog provides global conditional logging for application components.
package clog

import (
	"fmt"
	"log"
)

var enabled = false
var debugEnabled = false

// Enable turns on conditional log output.
func Enable() {
	enabled = true
}

// EnableDebug turns on verbose handler-state-transition tracing (spec.md §6
// is_debug option). It also turns on Printf output, so a debug run gets
// both; Enable alone turns on Printf without the per-handler trace.
func EnableDebug() {
	debugEnabled = true
	enabled = true
}

// A CLogger represents a logger object that logs output in the manner of the
// standard logger but can be conditionally enabled. By default, conditional
// logging is disabled.
type CLogger struct {
	logger *log.Logger // standard logger with prefix
}

// New creates a new conditional logger with the given prefix.
func New(prefixFormat string, prefixArgs ...any) *CLogger {
	return &CLogger{
		log.New(
			log.Default().Writer(),
			fmt.Sprintf(prefixFormat, prefixArgs...),
			log.Ldate|log.Ltime|log.Lmicroseconds|log.Lmsgprefix,
		),
	}
}

// Printf logs output conditionally (if enabled with -l command line option) in
// the manner of log.Printf.
func (c *CLogger) Printf(format string, a ...any) {
	if !enabled {
		return
	}
	c.logger.Printf(format, a...)
}

// Debugf logs output only when is_debug-style verbose tracing is enabled
// (EnableDebug) — handler state transitions, neighbor sets, pre/post
// markings (spec.md §6). Gated separately from Printf so a benchmarking run
// can stay silent while a debugging run gets the full trace.
func (c *CLogger) Debugf(format string, a ...any) {
	if !debugEnabled {
		return
	}
	c.logger.Printf(format, a...)
}

// Errorf logs output unconditionally, i.e. always, in the manner of log.Printf.
func (c *CLogger) Errorf(format string, a ...any) {
	c.logger.Printf(format, a...)
}
