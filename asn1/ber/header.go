// Copyright 2025 The directory-ldap-api Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"math"

	"github.com/nE0sIghT/directory-ldap-api/asn1"
	"github.com/nE0sIghT/directory-ldap-api/internal/vlq"
)

// Header represents the identifier and length octets of an encoded data value.
// Length indicates the number of content octets that follow the header.
// Indefinite lengths are not representable: this package implements the
// definite-length subset of BER mandated by LDAP and DER.
type Header struct {
	Tag         asn1.Tag
	Length      int
	Constructed bool
}

// AppendHeader appends the encoding of h to dst and returns the extended
// slice. Tag numbers below 31 use the low-tag-number form, larger numbers the
// base-128 high-tag-number form.
func AppendHeader(dst []byte, h Header) []byte {
	dst = appendIdentifier(dst, h.Tag, h.Constructed)
	return appendLength(dst, h.Length)
}

// appendIdentifier appends the identifier octets of a tag.
func appendIdentifier(dst []byte, tag asn1.Tag, constructed bool) []byte {
	b := byte(tag.Class) << 6
	if constructed {
		b |= 0x20
	}
	if tag.Number < 31 {
		return append(dst, b|byte(tag.Number))
	}
	dst = append(dst, b|0x1f)
	return vlq.Append(dst, tag.Number)
}

// appendLength appends definite-length octets: the short form below 128, the
// minimal long form otherwise.
func appendLength(dst []byte, l int) []byte {
	if l < 0x80 {
		return append(dst, byte(l))
	}
	numBytes := 1
	for v := l; v > 0xff; v >>= 8 {
		numBytes++
	}
	dst = append(dst, 0x80|byte(numBytes))
	for i := numBytes - 1; i >= 0; i-- {
		dst = append(dst, byte(l>>(8*i)))
	}
	return dst
}

// lengthOfLength returns the number of octets appendLength writes for l.
func lengthOfLength(l int) int {
	if l < 0x80 {
		return 1
	}
	n := 2
	for v := l; v > 0xff; v >>= 8 {
		n++
	}
	return n
}

// decodeHeader parses the identifier and length octets at the beginning of b.
// It returns the header and the number of bytes consumed. The length of the
// content octets is not checked against the remaining input; callers do that
// with knowledge of their framing.
func decodeHeader(b []byte) (Header, int, error) {
	if len(b) == 0 {
		return Header{}, 0, &EncodingError{Msg: "truncated header"}
	}
	h := Header{
		Tag:         asn1.Tag{Class: asn1.Class(b[0] >> 6)},
		Constructed: b[0]&0x20 != 0,
	}
	n := 1
	if num := uint(b[0] & 0x1f); num < 31 {
		h.Tag.Number = num
	} else {
		num, used, err := vlq.Decode(b[1:])
		if err != nil {
			return Header{}, 0, &EncodingError{Msg: "invalid tag number: " + err.Error()}
		}
		if num < 31 {
			// must have used the low-tag-number form
			return Header{}, 0, &EncodingError{Msg: "non-minimal tag number encoding"}
		}
		h.Tag.Number = num
		n += used
	}

	if n >= len(b) {
		return Header{}, 0, &EncodingError{Msg: "truncated header"}
	}
	switch l := b[n]; {
	case l < 0x80:
		h.Length = int(l)
		n++
	case l == 0x80:
		return Header{}, 0, &EncodingError{Msg: "indefinite length not supported"}
	default:
		numBytes := int(l & 0x7f)
		n++
		if numBytes > 8 {
			return Header{}, 0, &EncodingError{Msg: "length octets exceed 8 bytes"}
		}
		if len(b)-n < numBytes {
			return Header{}, 0, &EncodingError{Msg: "truncated header"}
		}
		var length uint64
		for i := 0; i < numBytes; i++ {
			length = length<<8 | uint64(b[n+i])
		}
		if length > math.MaxInt {
			return Header{}, 0, &EncodingError{Msg: "length overflows int"}
		}
		h.Length = int(length)
		n += numBytes
	}
	return h, n, nil
}
