// Copyright 2025 The go-zeromq Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	log "github.com/schollz/logger"
)

// LogLevel represents different logging levels
type LogLevel int

const (
	LogLevelError LogLevel = iota
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
	LogLevelTrace
)

// String returns the level name understood by the logger.
func (l LogLevel) String() string {
	switch l {
	case LogLevelError:
		return "error"
	case LogLevelWarn:
		return "warn"
	case LogLevelInfo:
		return "info"
	case LogLevelDebug:
		return "debug"
	case LogLevelTrace:
		return "trace"
	default:
		return "unknown"
	}
}

// levelFor picks the log level from the global flags.
func levelFor(debug, quiet bool) LogLevel {
	switch {
	case debug:
		return LogLevelDebug
	case quiet:
		return LogLevelError
	default:
		return LogLevelWarn
	}
}

func setLogLevel(l LogLevel) {
	log.SetLevel(l.String())
	log.Debugf("log level %s", l)
}
