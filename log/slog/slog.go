// Copyright 2025 The directory-ldap-api Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package slog adapts a standard library log/slog logger to the module's
// log.Logger interface.
package slog

import (
	"log/slog"

	"github.com/nE0sIghT/directory-ldap-api/log"
)

// Logger wraps a *slog.Logger.
type Logger struct {
	L *slog.Logger
}

var _ log.Logger = Logger{}

func args(f log.Fields) []any {
	as := make([]any, 0, len(f)*2)
	for k, v := range f {
		as = append(as, k, v)
	}
	return as
}

func (l Logger) Debug(msg string, f log.Fields) { l.L.Debug(msg, args(f)...) }
func (l Logger) Info(msg string, f log.Fields)  { l.L.Info(msg, args(f)...) }
func (l Logger) Warn(msg string, f log.Fields)  { l.L.Warn(msg, args(f)...) }
func (l Logger) Error(msg string, f log.Fields) { l.L.Error(msg, args(f)...) }
