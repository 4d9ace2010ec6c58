// Copyright 2025 The directory-ldap-api Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package zap adapts a go.uber.org/zap logger to the module's log.Logger
// interface.
package zap

import (
	"go.uber.org/zap"

	"github.com/nE0sIghT/directory-ldap-api/log"
)

// Logger wraps a *zap.Logger.
type Logger struct {
	L *zap.Logger
}

var _ log.Logger = Logger{}

func zfields(f log.Fields) []zap.Field {
	fs := make([]zap.Field, 0, len(f))
	for k, v := range f {
		fs = append(fs, zap.Any(k, v))
	}
	return fs
}

func (z Logger) Debug(msg string, f log.Fields) { z.L.Debug(msg, zfields(f)...) }
func (z Logger) Info(msg string, f log.Fields)  { z.L.Info(msg, zfields(f)...) }
func (z Logger) Warn(msg string, f log.Fields)  { z.L.Warn(msg, zfields(f)...) }
func (z Logger) Error(msg string, f log.Fields) { z.L.Error(msg, zfields(f)...) }
