// Copyright 2025 The directory-ldap-api Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"strconv"

	"github.com/nE0sIghT/directory-ldap-api/asn1"
)

// EncodingError reports structurally malformed input: bad TLV framing,
// truncated content octets, or a value whose length cannot represent its type,
// such as an INTEGER of zero or more than eight octets.
type EncodingError struct {
	Msg string
}

func (e *EncodingError) Error() string {
	return "ber: " + e.Msg
}

// RangeError reports a well-formed integer value that lies outside the bounds
// requested by the caller. Value is the decoded value, Min and Max are the
// inclusive bounds it was checked against.
type RangeError struct {
	Value int64
	Min   int64
	Max   int64
}

func (e *RangeError) Error() string {
	return "ber: value " + strconv.FormatInt(e.Value, 10) +
		" not in range [" + strconv.FormatInt(e.Min, 10) +
		", " + strconv.FormatInt(e.Max, 10) + "]"
}

// FormatError reports a time value whose string form does not conform to the
// expected DER representation.
type FormatError struct {
	Value string
	Msg   string
}

func (e *FormatError) Error() string {
	return "ber: " + e.Msg + ": " + strconv.Quote(e.Value)
}

// TagError reports a data value whose tag differs from the one required at
// this position of the grammar.
type TagError struct {
	Expected asn1.Tag
	Actual   asn1.Tag
}

func (e *TagError) Error() string {
	return "ber: unexpected tag " + e.Actual.String() + ", expected " + e.Expected.String()
}
