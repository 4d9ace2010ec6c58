// Copyright 2025 The directory-ldap-api Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	"strings"
	"time"

	"github.com/nE0sIghT/directory-ldap-api/asn1/ber"
)

// Entry is a minimal directory entry: a DN and a multi-valued attribute map
// with case-insensitive attribute names. The [EntityFactory] consumes entries
// loaded from a schema partition.
type Entry struct {
	DN    string
	attrs map[string][]string
}

// NewEntry returns an empty entry with the given DN.
func NewEntry(dn string) *Entry {
	return &Entry{DN: dn, attrs: make(map[string][]string)}
}

// Add appends values to the named attribute.
func (e *Entry) Add(attr string, values ...string) *Entry {
	key := strings.ToLower(attr)
	e.attrs[key] = append(e.attrs[key], values...)
	return e
}

// Values returns all values of the named attribute, nil if absent.
func (e *Entry) Values(attr string) []string {
	return e.attrs[strings.ToLower(attr)]
}

// First returns the first value of the named attribute.
func (e *Entry) First(attr string) (string, bool) {
	vs := e.attrs[strings.ToLower(attr)]
	if len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

// Bool interprets the named attribute as an LDAP boolean: the value "TRUE"
// (any case) is true, everything else including absence is false.
func (e *Entry) Bool(attr string) bool {
	v, ok := e.First(attr)
	return ok && strings.EqualFold(v, "TRUE")
}

// Time parses the named attribute as a directory timestamp. 13-byte values
// are decoded as UTCTime, 15-byte values as GeneralizedTime. Absence yields
// the zero time without an error.
func (e *Entry) Time(attr string) (time.Time, error) {
	v, ok := e.First(attr)
	if !ok {
		return time.Time{}, nil
	}
	if len(v) == ber.UTCTimeLength {
		return ber.DecodeUTCTime([]byte(v))
	}
	return ber.DecodeGeneralizedTime([]byte(v))
}
