// Copyright 2025 The directory-ldap-api Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package log defines the minimal structured-logging facade used throughout
// this module. The module itself never depends on a concrete logging
// framework; adapters for zap, logrus and the standard library's slog live in
// subpackages. Components that accept a Logger treat a nil value as
// [NopLogger].
package log

// Fields carries structured key/value context for a single log entry.
type Fields map[string]any

// Logger is the interface the module logs through.
type Logger interface {
	Debug(msg string, fields Fields)
	Info(msg string, fields Fields)
	Warn(msg string, fields Fields)
	Error(msg string, fields Fields)
}

// NopLogger discards all entries. It is the default wherever a Logger is
// optional.
type NopLogger struct{}

var _ Logger = NopLogger{}

func (NopLogger) Debug(string, Fields) {}
func (NopLogger) Info(string, Fields)  {}
func (NopLogger) Warn(string, Fields)  {}
func (NopLogger) Error(string, Fields) {}

// OrNop returns l if it is non-nil and NopLogger otherwise.
func OrNop(l Logger) Logger {
	if l == nil {
		return NopLogger{}
	}
	return l
}
