// Copyright 2025 The directory-ldap-api Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	"testing"
	"time"
)

func TestIsNumericOID(t *testing.T) {
	tests := map[string]struct {
		oid  string
		want bool
	}{
		"Simple":      {"2.5.4.3", true},
		"TwoArcs":     {"1.2", true},
		"Enterprise":  {"1.3.6.1.4.1.18060.0.1.6", true},
		"ZeroArc":     {"0.0", true},
		"Empty":       {"", false},
		"SingleArc":   {"2", false},
		"LeadingZero": {"1.02.3", false},
		"TrailingDot": {"1.2.", false},
		"LeadingDot":  {".1.2", false},
		"EmptyArc":    {"1..2", false},
		"Letters":     {"1.2.a", false},
		"Descriptor":  {"cn", false},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := IsNumericOID(tt.oid); got != tt.want {
				t.Errorf("IsNumericOID(%q) = %t, want %t", tt.oid, got, tt.want)
			}
		})
	}
}

func TestParseUsage(t *testing.T) {
	tests := map[string]struct {
		s    string
		want Usage
		ok   bool
	}{
		"UserApplications":     {"userApplications", UserApplications, true},
		"DirectoryOperation":   {"directoryOperation", DirectoryOperation, true},
		"DistributedOperation": {"distributedOperation", DistributedOperation, true},
		"DSAOperation":         {"dSAOperation", DSAOperation, true},
		"WrongCase":            {"USERAPPLICATIONS", UserApplications, false},
		"Unknown":              {"bogus", UserApplications, false},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := ParseUsage(tt.s)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ParseUsage(%q) = %v, %t, want %v, %t", tt.s, got, ok, tt.want, tt.ok)
			}
			if ok && got.String() != tt.s {
				t.Errorf("String() = %q, want %q", got.String(), tt.s)
			}
		})
	}
}

func TestParseObjectClassKind(t *testing.T) {
	tests := map[string]struct {
		s    string
		want ObjectClassKind
		ok   bool
	}{
		"Abstract":   {"ABSTRACT", Abstract, true},
		"Structural": {"STRUCTURAL", Structural, true},
		"Auxiliary":  {"AUXILIARY", Auxiliary, true},
		"Lowercase":  {"structural", Structural, false},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := ParseObjectClassKind(tt.s)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ParseObjectClassKind(%q) = %v, %t, want %v, %t", tt.s, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestEntry(t *testing.T) {
	e := NewEntry("m-oid=2.5.4.3,ou=attributeTypes,cn=system,ou=schema").
		Add("m-oid", "2.5.4.3").
		Add("M-NAME", "cn", "commonName").
		Add("m-obsolete", "TRUE")

	if got := e.Values("m-name"); len(got) != 2 || got[0] != "cn" {
		t.Errorf("Values(m-name) = %v", got)
	}
	if v, ok := e.First("M-OID"); !ok || v != "2.5.4.3" {
		t.Errorf("First(M-OID) = %q, %t", v, ok)
	}
	if !e.Bool("m-obsolete") {
		t.Error("Bool(m-obsolete) must be true")
	}
	if e.Bool("m-singleValue") {
		t.Error("Bool of an absent attribute must be false")
	}
	if _, ok := e.First("missing"); ok {
		t.Error("First of an absent attribute must report false")
	}
}

func TestEntry_Time(t *testing.T) {
	tests := map[string]struct {
		value   string
		want    time.Time
		wantErr bool
	}{
		"UTCTime":         {"100101000000Z", time.Date(2010, time.January, 1, 0, 0, 0, 0, time.UTC), false},
		"GeneralizedTime": {"20100101000000Z", time.Date(2010, time.January, 1, 0, 0, 0, 0, time.UTC), false},
		"Garbage":         {"not a timestamp", time.Time{}, true},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := NewEntry("cn=test").Add("createTimestamp", tt.value)
			got, err := e.Time("createTimestamp")
			if (err != nil) != tt.wantErr {
				t.Fatalf("Time() error = %v, wantErr %t", err, tt.wantErr)
			}
			if err == nil && !got.Equal(tt.want) {
				t.Errorf("Time() = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("Absent", func(t *testing.T) {
		got, err := NewEntry("cn=test").Time("createTimestamp")
		if err != nil {
			t.Fatalf("Time() error: %v", err)
		}
		if !got.IsZero() {
			t.Errorf("Time() = %v, want zero time", got)
		}
	})
}
