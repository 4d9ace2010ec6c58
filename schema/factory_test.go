// Copyright 2025 The directory-ldap-api Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	"errors"
	"testing"
	"time"
)

type fakeChecker struct{ oid string }

func (c fakeChecker) OID() string             { return c.oid }
func (c fakeChecker) Valid(value []byte) bool { return true }

type fakeNormalizer struct{ oid string }

func (n fakeNormalizer) OID() string                        { return n.oid }
func (n fakeNormalizer) Normalize(v string) (string, error) { return v, nil }

type fakeComparator struct{ oid string }

func (c fakeComparator) OID() string             { return c.oid }
func (c fakeComparator) Compare(a, b string) int { return 0 }

func TestConstructorRegistry(t *testing.T) {
	reg := NewConstructorRegistry[SyntaxChecker](nil)
	reg.Register("1.2.3", func() SyntaxChecker { return fakeChecker{oid: "1.2.3"} })

	c, err := reg.New("1.2.3")
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if c.OID() != "1.2.3" {
		t.Errorf("OID() = %q, want %q", c.OID(), "1.2.3")
	}

	if _, err := reg.New("9.9.9"); !errors.Is(err, ErrNoConstructor) {
		t.Errorf("New(unknown) error = %v, want ErrNoConstructor", err)
	}
}

func TestEntityFactory_AttributeType(t *testing.T) {
	f := NewEntityFactory(nil)
	entry := NewEntry("m-oid=2.5.4.3,ou=attributeTypes,cn=core,ou=schema").
		Add("m-oid", "2.5.4.3").
		Add("m-name", "cn", "commonName").
		Add("m-description", "RFC4519: common name(s)").
		Add("m-supAttributeType", "2.5.4.41").
		Add("m-equality", "2.5.13.2").
		Add("m-substr", "2.5.13.4").
		Add("m-syntax", "1.3.6.1.4.1.1466.115.121.1.15").
		Add("m-usage", "userApplications").
		Add("createTimestamp", "20100101000000Z")

	at, err := f.AttributeType(entry)
	if err != nil {
		t.Fatalf("AttributeType() error: %v", err)
	}
	if at.OID != "2.5.4.3" || at.Name() != "cn" {
		t.Errorf("OID = %q, Name() = %q", at.OID, at.Name())
	}
	if at.SuperiorOID != "2.5.4.41" || at.EqualityOID != "2.5.13.2" {
		t.Errorf("SuperiorOID = %q, EqualityOID = %q", at.SuperiorOID, at.EqualityOID)
	}
	if at.SyntaxOID != "1.3.6.1.4.1.1466.115.121.1.15" {
		t.Errorf("SyntaxOID = %q", at.SyntaxOID)
	}
	if at.Usage != UserApplications || at.SingleValue || at.Obsolete {
		t.Errorf("Usage = %v, SingleValue = %t, Obsolete = %t", at.Usage, at.SingleValue, at.Obsolete)
	}
	want := time.Date(2010, time.January, 1, 0, 0, 0, 0, time.UTC)
	if !at.CreateTimestamp.Equal(want) {
		t.Errorf("CreateTimestamp = %v, want %v", at.CreateTimestamp, want)
	}
}

func TestEntityFactory_AttributeType_UTCTimestamp(t *testing.T) {
	f := NewEntityFactory(nil)
	entry := NewEntry("m-oid=1.2.3,ou=attributeTypes,cn=test,ou=schema").
		Add("m-oid", "1.2.3").
		Add("createTimestamp", "100101000000Z")

	at, err := f.AttributeType(entry)
	if err != nil {
		t.Fatalf("AttributeType() error: %v", err)
	}
	want := time.Date(2010, time.January, 1, 0, 0, 0, 0, time.UTC)
	if !at.CreateTimestamp.Equal(want) {
		t.Errorf("CreateTimestamp = %v, want %v", at.CreateTimestamp, want)
	}
}

func TestEntityFactory_ObjectClass(t *testing.T) {
	f := NewEntityFactory(nil)
	entry := NewEntry("m-oid=2.5.6.6,ou=objectClasses,cn=core,ou=schema").
		Add("m-oid", "2.5.6.6").
		Add("m-name", "person").
		Add("m-supObjectClass", "top").
		Add("m-typeObjectClass", "STRUCTURAL").
		Add("m-must", "sn", "cn").
		Add("m-may", "userPassword", "telephoneNumber")

	oc, err := f.ObjectClass(entry)
	if err != nil {
		t.Fatalf("ObjectClass() error: %v", err)
	}
	if oc.Name() != "person" || oc.Kind != Structural {
		t.Errorf("Name() = %q, Kind = %v", oc.Name(), oc.Kind)
	}
	if len(oc.Must) != 2 || oc.Must[0] != "sn" {
		t.Errorf("Must = %v", oc.Must)
	}
	if len(oc.May) != 2 || len(oc.SuperiorOIDs) != 1 {
		t.Errorf("May = %v, SuperiorOIDs = %v", oc.May, oc.SuperiorOIDs)
	}
}

func TestEntityFactory_Syntax(t *testing.T) {
	f := NewEntityFactory(nil)
	f.SyntaxCheckers.Register("1.3.6.1.4.1.1466.115.121.1.15", func() SyntaxChecker {
		return fakeChecker{oid: "1.3.6.1.4.1.1466.115.121.1.15"}
	})

	entry := NewEntry("m-oid=1.3.6.1.4.1.1466.115.121.1.15,ou=syntaxes,cn=system,ou=schema").
		Add("m-oid", "1.3.6.1.4.1.1466.115.121.1.15").
		Add("m-description", "Directory String").
		Add("x-human-readable", "TRUE")

	s, err := f.Syntax(entry)
	if err != nil {
		t.Fatalf("Syntax() error: %v", err)
	}
	if !s.HumanReadable || s.Description != "Directory String" {
		t.Errorf("HumanReadable = %t, Description = %q", s.HumanReadable, s.Description)
	}

	// No checker registered for this OID.
	orphan := NewEntry("m-oid=9.9.9,ou=syntaxes,cn=other,ou=schema").Add("m-oid", "9.9.9")
	if _, err := f.Syntax(orphan); err == nil {
		t.Error("Syntax() must fail without a registered checker")
	}
}

func TestEntityFactory_MatchingRule(t *testing.T) {
	f := NewEntityFactory(nil)
	f.Normalizers.Register("2.5.13.2", func() Normalizer { return fakeNormalizer{oid: "2.5.13.2"} })
	f.Comparators.Register("2.5.13.2", func() Comparator { return fakeComparator{oid: "2.5.13.2"} })

	entry := NewEntry("m-oid=2.5.13.2,ou=matchingRules,cn=system,ou=schema").
		Add("m-oid", "2.5.13.2").
		Add("m-name", "caseIgnoreMatch").
		Add("m-syntax", "1.3.6.1.4.1.1466.115.121.1.15")

	mr, err := f.MatchingRule(entry)
	if err != nil {
		t.Fatalf("MatchingRule() error: %v", err)
	}
	if mr.Name() != "caseIgnoreMatch" || mr.SyntaxOID != "1.3.6.1.4.1.1466.115.121.1.15" {
		t.Errorf("Name() = %q, SyntaxOID = %q", mr.Name(), mr.SyntaxOID)
	}

	// A normalizer alone is not enough.
	half := NewEntityFactory(nil)
	half.Normalizers.Register("2.5.13.2", func() Normalizer { return fakeNormalizer{oid: "2.5.13.2"} })
	if _, err := half.MatchingRule(entry); err == nil {
		t.Error("MatchingRule() must fail without a registered comparator")
	}
}

func TestEntityFactory_Errors(t *testing.T) {
	f := NewEntityFactory(nil)
	tests := map[string]*Entry{
		"NilEntry":     nil,
		"MissingOID":   NewEntry("ou=attributeTypes").Add("m-name", "cn"),
		"NotNumeric":   NewEntry("m-oid=cn").Add("m-oid", "cn"),
		"LeadingZero":  NewEntry("m-oid=1.02").Add("m-oid", "1.02"),
		"BadUsage":     NewEntry("m-oid=1.2.3").Add("m-oid", "1.2.3").Add("m-usage", "bogus"),
		"BadTimestamp": NewEntry("m-oid=1.2.3").Add("m-oid", "1.2.3").Add("createTimestamp", "100132000000Z"),
	}
	for name, entry := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := f.AttributeType(entry)
			var entityErr *EntityError
			if !errors.As(err, &entityErr) {
				t.Fatalf("error = %v, want *EntityError", err)
			}
		})
	}
}

func TestEntityFactory_ObjectClass_BadKind(t *testing.T) {
	f := NewEntityFactory(nil)
	entry := NewEntry("m-oid=1.2.3").Add("m-oid", "1.2.3").Add("m-typeObjectClass", "structural")
	var entityErr *EntityError
	if _, err := f.ObjectClass(entry); !errors.As(err, &entityErr) {
		t.Fatalf("error = %v, want *EntityError", err)
	}
}
