// Copyright 2025 The directory-ldap-api Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package schema models LDAP schema elements as specified in RFC 4512:
// attribute types, object classes, syntaxes and matching rules. Entities are
// indexed by [Registries] and built from directory entries by
// [EntityFactory]. Loadable behavior such as syntax checkers, normalizers and
// comparators comes from explicit constructor registries; nothing is ever
// loaded dynamically.
package schema

import (
	"strconv"
	"time"
)

// Usage describes where an attribute type applies (RFC 4512, Section 4.1.2).
type Usage int

const (
	UserApplications Usage = iota
	DirectoryOperation
	DistributedOperation
	DSAOperation
)

func (u Usage) String() string {
	switch u {
	case UserApplications:
		return "userApplications"
	case DirectoryOperation:
		return "directoryOperation"
	case DistributedOperation:
		return "distributedOperation"
	case DSAOperation:
		return "dSAOperation"
	default:
		return "usage(" + strconv.Itoa(int(u)) + ")"
	}
}

// ParseUsage parses the RFC 4512 string form of a Usage. It reports false for
// unknown strings.
func ParseUsage(s string) (Usage, bool) {
	switch s {
	case "userApplications":
		return UserApplications, true
	case "directoryOperation":
		return DirectoryOperation, true
	case "distributedOperation":
		return DistributedOperation, true
	case "dSAOperation":
		return DSAOperation, true
	default:
		return UserApplications, false
	}
}

// ObjectClassKind is the kind element of an object class definition.
type ObjectClassKind int

const (
	Abstract ObjectClassKind = iota
	Structural
	Auxiliary
)

func (k ObjectClassKind) String() string {
	switch k {
	case Abstract:
		return "ABSTRACT"
	case Structural:
		return "STRUCTURAL"
	case Auxiliary:
		return "AUXILIARY"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// ParseObjectClassKind parses the RFC 4512 keyword form of a kind.
func ParseObjectClassKind(s string) (ObjectClassKind, bool) {
	switch s {
	case "ABSTRACT":
		return Abstract, true
	case "STRUCTURAL":
		return Structural, true
	case "AUXILIARY":
		return Auxiliary, true
	default:
		return Structural, false
	}
}

// AttributeType is an attribute type definition (RFC 4512, Section 4.1.2).
type AttributeType struct {
	OID                string
	Names              []string
	Description        string
	Obsolete           bool
	SuperiorOID        string
	EqualityOID        string
	OrderingOID        string
	SubstringOID       string
	SyntaxOID          string
	SingleValue        bool
	Collective         bool
	NoUserModification bool
	Usage              Usage
	CreateTimestamp    time.Time
}

// Name returns the first short name of the attribute type, or its OID if it
// has none.
func (at *AttributeType) Name() string {
	if len(at.Names) > 0 {
		return at.Names[0]
	}
	return at.OID
}

// ObjectClass is an object class definition (RFC 4512, Section 4.1.1).
type ObjectClass struct {
	OID             string
	Names           []string
	Description     string
	Obsolete        bool
	SuperiorOIDs    []string
	Kind            ObjectClassKind
	Must            []string
	May             []string
	CreateTimestamp time.Time
}

// Name returns the first short name of the object class, or its OID if it has
// none.
func (oc *ObjectClass) Name() string {
	if len(oc.Names) > 0 {
		return oc.Names[0]
	}
	return oc.OID
}

// Syntax is an LDAP syntax definition (RFC 4512, Section 4.1.5).
type Syntax struct {
	OID             string
	Description     string
	Obsolete        bool
	HumanReadable   bool
	CreateTimestamp time.Time
}

// MatchingRule is a matching rule definition (RFC 4512, Section 4.1.3).
type MatchingRule struct {
	OID             string
	Names           []string
	Description     string
	Obsolete        bool
	SyntaxOID       string
	CreateTimestamp time.Time
}

// Name returns the first short name of the matching rule, or its OID if it
// has none.
func (mr *MatchingRule) Name() string {
	if len(mr.Names) > 0 {
		return mr.Names[0]
	}
	return mr.OID
}

// IsNumericOID reports whether s is a valid numeric object identifier in
// dotted-decimal form: at least two arcs, digits only, no superfluous leading
// zeros.
func IsNumericOID(s string) bool {
	if s == "" {
		return false
	}
	arcs := 0
	for len(s) > 0 {
		i := 0
		for i < len(s) && s[i] != '.' {
			if s[i] < '0' || '9' < s[i] {
				return false
			}
			i++
		}
		if i == 0 {
			return false // empty arc
		}
		if i > 1 && s[0] == '0' {
			return false // leading zero
		}
		arcs++
		if i == len(s) {
			break
		}
		s = s[i+1:]
		if s == "" {
			return false // trailing dot
		}
	}
	return arcs >= 2
}
