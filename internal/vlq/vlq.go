// Copyright 2025 The directory-ldap-api Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vlq implements [Variable-length quantity] encoding as used in the
// identifier octets of BER. A VLQ is essentially a base-128 representation of
// an unsigned integer with the addition of the eighth bit to mark continuation
// of bytes.
//
// [Variable-length quantity]: https://en.wikipedia.org/wiki/Variable-length_quantity
package vlq

import (
	"errors"
	"math/bits"
)

var (
	// ErrNotMinimal indicates a VLQ with redundant leading zeros (a leading
	// 0x80 byte). BER requires minimally encoded tag numbers.
	ErrNotMinimal = errors.New("vlq is not minimally encoded")
	// ErrOverflow indicates a VLQ whose value does not fit into a uint.
	ErrOverflow = errors.New("vlq too large for target type")
	// ErrTruncated indicates that the input ended before the final VLQ byte.
	ErrTruncated = errors.New("truncated vlq")
)

// Decode parses a minimally encoded VLQ from the beginning of b. It returns
// the decoded value and the number of bytes consumed.
func Decode(b []byte) (uint, int, error) {
	if len(b) == 0 {
		return 0, 0, ErrTruncated
	}
	if b[0] == 0x80 {
		return 0, 0, ErrNotMinimal
	}
	var v uint
	numBits := bits.Len8(b[0] & 0x7f)
	for i, c := range b {
		if i > 0 {
			if numBits == 0 {
				numBits = bits.Len8(c & 0x7f)
			} else {
				numBits += 7
			}
			if numBits > bits.UintSize {
				return 0, 0, ErrOverflow
			}
		}
		v = v<<7 | uint(c&0x7f)
		if c&0x80 == 0 {
			return v, i + 1, nil
		}
	}
	return 0, 0, ErrTruncated
}

// Length returns the number of bytes needed to encode v as a VLQ.
func Length(v uint) int {
	if v == 0 {
		return 1
	}
	l := 0
	for i := v; i > 0; i >>= 7 {
		l++
	}
	return l
}

// Append appends the VLQ encoding of v to dst and returns the extended slice.
func Append(dst []byte, v uint) []byte {
	for j := Length(v) - 1; j >= 0; j-- {
		b := byte(v>>(j*7)) & 0x7f
		if j > 0 {
			b |= 0x80
		}
		dst = append(dst, b)
	}
	return dst
}
