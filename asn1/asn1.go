// Copyright 2025 The directory-ldap-api Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package asn1 defines the ASN.1 tagging model shared by the directory
// protocol packages in this module. It only contains the identifier types
// defined in [Rec. ITU-T X.680]; the encoding and decoding of values under the
// Basic and Distinguished Encoding Rules lives in the ber subpackage.
//
// [Rec. ITU-T X.680]: https://www.itu.int/rec/T-REC-X.680
package asn1

import (
	"strconv"
	"strings"
)

// Tag constitutes an ASN.1 tag, consisting of its class and number. For
// details, see Section 8 of Rec. ITU-T X.680.
type Tag struct {
	Class  Class
	Number uint
}

// Universal returns the tag with number n in the [ClassUniversal] namespace.
func Universal(n uint) Tag {
	return Tag{Class: ClassUniversal, Number: n}
}

// Application returns the tag with number n in the [ClassApplication]
// namespace. LDAP identifies protocol operations by APPLICATION tags.
func Application(n uint) Tag {
	return Tag{Class: ClassApplication, Number: n}
}

// ContextSpecific returns the tag with number n in the [ClassContextSpecific]
// namespace.
func ContextSpecific(n uint) Tag {
	return Tag{Class: ClassContextSpecific, Number: n}
}

// String returns a string representation of t in a format similar to the one
// used in ASN.1 notation. The tag number is enclosed by square brackets and
// prefixed with the class used. To avoid ambiguity the UNIVERSAL word is used
// for universal tags, although this is not valid ASN.1 syntax.
func (t Tag) String() string {
	if t.Class == ClassContextSpecific {
		return "[" + strconv.FormatUint(uint64(t.Number), 10) + "]"
	}
	return "[" + strings.ToUpper(t.Class.String()) + " " + strconv.FormatUint(uint64(t.Number), 10) + "]"
}

// Class holds the class part of an ASN.1 tag. The class acts as a namespace
// for the tag number. A Class value is an unsigned 2-bit integer. Class values
// whose value exceeds 2 bits are invalid.
//
//go:generate stringer -type=Class -trimprefix=Class
type Class uint8

// IsValid reports whether c is a valid Class value.
func (c Class) IsValid() bool {
	return c <= 3
}

// Predefined [Class] constants. These are all the possible values that can be
// encoded in the [Class] type.
const (
	ClassUniversal Class = iota
	ClassApplication
	ClassContextSpecific
	ClassPrivate
)

// These ASN.1 tag numbers are defined in the [ClassUniversal] namespace. The
// assignments are defined in Rec. ITU-T X.680, Section 8, Table 1.
const (
	TagBoolean         uint = 1
	TagInteger         uint = 2
	TagBitString       uint = 3
	TagOctetString     uint = 4
	TagNull            uint = 5
	TagOID             uint = 6
	TagReal            uint = 9
	TagEnumerated      uint = 10
	TagUTF8String      uint = 12
	TagSequence        uint = 16
	TagSet             uint = 17
	TagNumericString   uint = 18
	TagPrintableString uint = 19
	TagIA5String       uint = 22
	TagUTCTime         uint = 23
	TagGeneralizedTime uint = 24
)
