// Copyright 2025 The directory-ldap-api Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logrus adapts a github.com/sirupsen/logrus logger to the module's
// log.Logger interface.
package logrus

import (
	"github.com/sirupsen/logrus"

	"github.com/nE0sIghT/directory-ldap-api/log"
)

// Logger wraps a *logrus.Logger.
type Logger struct {
	L *logrus.Logger
}

var _ log.Logger = Logger{}

func (l Logger) Debug(msg string, f log.Fields) { l.L.WithFields(logrus.Fields(f)).Debug(msg) }
func (l Logger) Info(msg string, f log.Fields)  { l.L.WithFields(logrus.Fields(f)).Info(msg) }
func (l Logger) Warn(msg string, f log.Fields)  { l.L.WithFields(logrus.Fields(f)).Warn(msg) }
func (l Logger) Error(msg string, f log.Fields) { l.L.WithFields(logrus.Fields(f)).Error(msg) }
