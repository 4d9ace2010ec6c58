// Copyright 2025 The directory-ldap-api Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"math"
	"math/bits"
	"strconv"
)

// mask selects the value bits of a two's-complement integer encoded in a given
// number of octets. mask[n-1] covers an n-octet encoding.
var mask = [8]uint64{
	0x00000000000000ff,
	0x000000000000ffff,
	0x0000000000ffffff,
	0x00000000ffffffff,
	0x000000ffffffffff,
	0x0000ffffffffffff,
	0x00ffffffffffffff,
	0xffffffffffffffff,
}

// DecodeInt64 decodes the content octets of a BER INTEGER or ENUMERATED value.
// It is equivalent to [DecodeInt64Range] with the full int64 range.
func DecodeInt64(b []byte) (int64, error) {
	return DecodeInt64Range(b, math.MinInt64, math.MaxInt64)
}

// DecodeInt64Range decodes the content octets of a BER INTEGER or ENUMERATED
// value and verifies that the result lies within [min, max]. The value is a
// big-endian two's-complement integer of one to eight octets; any other length
// is an *EncodingError. A value outside the requested bounds is a *RangeError
// carrying the value and both bounds.
//
// Redundant leading octets are accepted: BER does not require minimal integer
// encodings on input. Re-encoding a decoded value with [AppendInt64] always
// yields the minimal form.
func DecodeInt64Range(b []byte, min, max int64) (int64, error) {
	if len(b) == 0 {
		return 0, &EncodingError{Msg: "integer with zero-length encoding"}
	}
	if len(b) > 8 {
		return 0, &EncodingError{Msg: "integer encoding exceeds 8 octets: " + strconv.Itoa(len(b))}
	}
	var acc uint64
	for _, c := range b {
		acc = acc<<8 | uint64(c)
	}
	v := int64(acc)
	if b[0]&0x80 != 0 {
		v = -int64((^acc + 1) & mask[len(b)-1])
	}
	if v < min || v > max {
		return 0, &RangeError{Value: v, Min: min, Max: max}
	}
	return v, nil
}

// Int64Length returns the number of octets of the minimal two's-complement
// encoding of v.
func Int64Length(v int64) int {
	u := uint64(v)
	if v < 0 {
		u = ^u
	}
	return bits.Len64(u)/8 + 1
}

// AppendInt64 appends the minimal two's-complement encoding of v to dst and
// returns the extended slice. This is the encoding required by DER: no
// redundant leading 0x00 or 0xff octets.
func AppendInt64(dst []byte, v int64) []byte {
	for i := Int64Length(v) - 1; i >= 0; i-- {
		dst = append(dst, byte(v>>(8*i)))
	}
	return dst
}

// EncodeInt64 returns the minimal two's-complement encoding of v.
func EncodeInt64(v int64) []byte {
	return AppendInt64(make([]byte, 0, Int64Length(v)), v)
}
