// Copyright 2025 The directory-ldap-api Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"math"
	"time"

	"github.com/nE0sIghT/directory-ldap-api/asn1"
)

// Decoder reads BER data values sequentially from a fully buffered packet.
// Structural problems surface as *EncodingError, tag mismatches as *TagError.
// A Decoder is not safe for concurrent use; the free codec functions in this
// package are.
type Decoder struct {
	data []byte
	off  int
}

// NewDecoder returns a Decoder reading from data. The Decoder does not copy
// data; the caller must not modify it until decoding is complete.
func NewDecoder(data []byte) *Decoder {
	return &Decoder{data: data}
}

// Offset returns the number of bytes consumed so far.
func (d *Decoder) Offset() int {
	return d.off
}

// Remaining returns the number of unread bytes.
func (d *Decoder) Remaining() int {
	return len(d.data) - d.off
}

// More reports whether unread bytes remain.
func (d *Decoder) More() bool {
	return d.off < len(d.data)
}

// PeekHeader decodes the header of the next data value without consuming
// anything.
func (d *Decoder) PeekHeader() (Header, error) {
	h, _, err := decodeHeader(d.data[d.off:])
	return h, err
}

// ReadHeader decodes and consumes the header of the next data value. The
// content octets remain unread. ReadHeader verifies that the announced length
// does not exceed the remaining input.
func (d *Decoder) ReadHeader() (Header, error) {
	h, n, err := decodeHeader(d.data[d.off:])
	if err != nil {
		return Header{}, err
	}
	if h.Length > d.Remaining()-n {
		return Header{}, &EncodingError{Msg: "value length exceeds remaining input"}
	}
	d.off += n
	return h, nil
}

// ReadValue consumes the next data value entirely and returns its header
// together with its raw content octets. The returned slice aliases the
// Decoder's input.
func (d *Decoder) ReadValue() (Header, []byte, error) {
	h, err := d.ReadHeader()
	if err != nil {
		return Header{}, nil, err
	}
	v := d.data[d.off : d.off+h.Length]
	d.off += h.Length
	return h, v, nil
}

// ReadRaw consumes the next data value and returns its complete encoding,
// identifier and length octets included. The returned slice aliases the
// Decoder's input. Use ReadRaw to carry elements through without
// interpretation.
func (d *Decoder) ReadRaw() ([]byte, error) {
	start := d.off
	if _, _, err := d.ReadValue(); err != nil {
		return nil, err
	}
	return d.data[start:d.off], nil
}

// readPrimitive consumes the next data value, checks its tag against want and
// returns the content octets.
func (d *Decoder) readPrimitive(want asn1.Tag) ([]byte, error) {
	h, v, err := d.ReadValue()
	if err != nil {
		return nil, err
	}
	if h.Tag != want {
		return nil, &TagError{Expected: want, Actual: h.Tag}
	}
	return v, nil
}

// Expect consumes a constructed data value with the given tag and returns a
// sub-Decoder over its content octets.
func (d *Decoder) Expect(want asn1.Tag) (*Decoder, error) {
	h, v, err := d.ReadValue()
	if err != nil {
		return nil, err
	}
	if h.Tag != want {
		return nil, &TagError{Expected: want, Actual: h.Tag}
	}
	if !h.Constructed {
		return nil, &EncodingError{Msg: "expected constructed encoding for " + want.String()}
	}
	return NewDecoder(v), nil
}

// Sequence consumes a SEQUENCE and returns a sub-Decoder over its elements.
func (d *Decoder) Sequence() (*Decoder, error) {
	return d.Expect(asn1.Universal(asn1.TagSequence))
}

// ReadBoolean consumes a BOOLEAN data value.
func (d *Decoder) ReadBoolean() (bool, error) {
	v, err := d.readPrimitive(asn1.Universal(asn1.TagBoolean))
	if err != nil {
		return false, err
	}
	if len(v) != 1 {
		return false, &EncodingError{Msg: "boolean must be exactly 1 byte"}
	}
	return v[0] != 0, nil
}

// ReadInt64 consumes an INTEGER data value of up to eight content octets.
func (d *Decoder) ReadInt64() (int64, error) {
	return d.ReadInt64Range(math.MinInt64, math.MaxInt64)
}

// ReadInt64Range consumes an INTEGER data value and verifies that it lies
// within [min, max]. See [DecodeInt64Range] for the error contract.
func (d *Decoder) ReadInt64Range(min, max int64) (int64, error) {
	v, err := d.readPrimitive(asn1.Universal(asn1.TagInteger))
	if err != nil {
		return 0, err
	}
	return DecodeInt64Range(v, min, max)
}

// ReadEnumRange consumes an ENUMERATED data value and verifies that it lies
// within [min, max].
func (d *Decoder) ReadEnumRange(min, max int64) (int64, error) {
	v, err := d.readPrimitive(asn1.Universal(asn1.TagEnumerated))
	if err != nil {
		return 0, err
	}
	return DecodeInt64Range(v, min, max)
}

// ReadOctetString consumes an OCTET STRING data value. The returned slice
// aliases the Decoder's input.
func (d *Decoder) ReadOctetString() ([]byte, error) {
	return d.readPrimitive(asn1.Universal(asn1.TagOctetString))
}

// ReadString consumes an OCTET STRING data value and returns its content as a
// string. LDAP encodes all of its strings this way (LDAPString, RFC 4511,
// Section 4.1.2).
func (d *Decoder) ReadString() (string, error) {
	v, err := d.ReadOctetString()
	return string(v), err
}

// ReadUTCTime consumes a UTCTime data value in the restricted 13-byte form.
// See [DecodeUTCTime].
func (d *Decoder) ReadUTCTime() (time.Time, error) {
	v, err := d.readPrimitive(asn1.Universal(asn1.TagUTCTime))
	if err != nil {
		return time.Time{}, err
	}
	return DecodeUTCTime(v)
}

// ReadGeneralizedTime consumes a GeneralizedTime data value in the restricted
// 15-byte form. See [DecodeGeneralizedTime].
func (d *Decoder) ReadGeneralizedTime() (time.Time, error) {
	v, err := d.readPrimitive(asn1.Universal(asn1.TagGeneralizedTime))
	if err != nil {
		return time.Time{}, err
	}
	return DecodeGeneralizedTime(v)
}

// ReadNull consumes a NULL data value.
func (d *Decoder) ReadNull() error {
	v, err := d.readPrimitive(asn1.Universal(asn1.TagNull))
	if err != nil {
		return err
	}
	if len(v) != 0 {
		return &EncodingError{Msg: "null must be empty"}
	}
	return nil
}
