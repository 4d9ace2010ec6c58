// Copyright 2025 The directory-ldap-api Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"time"

	"github.com/nE0sIghT/directory-ldap-api/asn1"
)

// Encoder builds a BER encoded packet in memory. Primitive values are written
// with the Write methods; constructed values pair [Encoder.Begin] with
// [Encoder.End], which inserts the definite length octets once the content
// size is known. All output is minimal as required by DER and RFC 4511,
// Section 5.1.
type Encoder struct {
	buf []byte
}

// NewEncoder returns an Encoder with the given initial capacity.
func NewEncoder(capacity int) *Encoder {
	if capacity <= 0 {
		capacity = 64
	}
	return &Encoder{buf: make([]byte, 0, capacity)}
}

// Bytes returns the encoded packet. The slice is only valid until the next
// mutating call.
func (e *Encoder) Bytes() []byte {
	return e.buf
}

// Len returns the number of bytes encoded so far.
func (e *Encoder) Len() int {
	return len(e.buf)
}

// Reset clears the Encoder for reuse, retaining the allocated buffer.
func (e *Encoder) Reset() {
	e.buf = e.buf[:0]
}

// Begin opens a constructed data value with the given tag. It returns a
// position token that must be passed to [Encoder.End] after the content has
// been written. Begin/End pairs nest.
func (e *Encoder) Begin(tag asn1.Tag) int {
	e.buf = appendIdentifier(e.buf, tag, true)
	return len(e.buf)
}

// BeginSequence opens a SEQUENCE.
func (e *Encoder) BeginSequence() int {
	return e.Begin(asn1.Universal(asn1.TagSequence))
}

// End closes the constructed data value opened by the matching
// [Encoder.Begin] call and inserts its length octets.
func (e *Encoder) End(pos int) {
	length := len(e.buf) - pos
	lb := appendLength(make([]byte, 0, lengthOfLength(length)), length)
	e.buf = append(e.buf, lb...)
	copy(e.buf[pos+len(lb):], e.buf[pos:len(e.buf)-len(lb)])
	copy(e.buf[pos:], lb)
}

// WriteBoolean writes a BOOLEAN data value. TRUE is encoded as 0xff as
// required by DER.
func (e *Encoder) WriteBoolean(v bool) {
	e.buf = AppendHeader(e.buf, Header{Tag: asn1.Universal(asn1.TagBoolean), Length: 1})
	if v {
		e.buf = append(e.buf, 0xff)
	} else {
		e.buf = append(e.buf, 0x00)
	}
}

// WriteInt64 writes an INTEGER data value using the minimal two's-complement
// encoding.
func (e *Encoder) WriteInt64(v int64) {
	e.buf = AppendHeader(e.buf, Header{Tag: asn1.Universal(asn1.TagInteger), Length: Int64Length(v)})
	e.buf = AppendInt64(e.buf, v)
}

// WriteEnum writes an ENUMERATED data value using the minimal two's-complement
// encoding.
func (e *Encoder) WriteEnum(v int64) {
	e.buf = AppendHeader(e.buf, Header{Tag: asn1.Universal(asn1.TagEnumerated), Length: Int64Length(v)})
	e.buf = AppendInt64(e.buf, v)
}

// WriteOctetString writes an OCTET STRING data value.
func (e *Encoder) WriteOctetString(v []byte) {
	e.buf = AppendHeader(e.buf, Header{Tag: asn1.Universal(asn1.TagOctetString), Length: len(v)})
	e.buf = append(e.buf, v...)
}

// WriteString writes s as an OCTET STRING data value (LDAPString).
func (e *Encoder) WriteString(s string) {
	e.buf = AppendHeader(e.buf, Header{Tag: asn1.Universal(asn1.TagOctetString), Length: len(s)})
	e.buf = append(e.buf, s...)
}

// WriteUTCTime writes a UTCTime data value in the restricted 13-byte form. See
// [EncodeUTCTime] for the representable range.
func (e *Encoder) WriteUTCTime(t time.Time) error {
	e.buf = AppendHeader(e.buf, Header{Tag: asn1.Universal(asn1.TagUTCTime), Length: UTCTimeLength})
	var err error
	e.buf, err = AppendUTCTime(e.buf, t)
	return err
}

// WriteGeneralizedTime writes a GeneralizedTime data value in the restricted
// 15-byte form.
func (e *Encoder) WriteGeneralizedTime(t time.Time) error {
	e.buf = AppendHeader(e.buf, Header{Tag: asn1.Universal(asn1.TagGeneralizedTime), Length: GeneralizedTimeLength})
	var err error
	e.buf, err = AppendGeneralizedTime(e.buf, t)
	return err
}

// WriteNull writes a NULL data value.
func (e *Encoder) WriteNull() {
	e.buf = AppendHeader(e.buf, Header{Tag: asn1.Universal(asn1.TagNull), Length: 0})
}

// WriteTagged writes value as the content octets of a data value with the
// given tag. This is used for IMPLICIT tagging of pre-encoded content.
func (e *Encoder) WriteTagged(tag asn1.Tag, constructed bool, value []byte) {
	e.buf = AppendHeader(e.buf, Header{Tag: tag, Length: len(value), Constructed: constructed})
	e.buf = append(e.buf, value...)
}

// WriteRaw appends pre-encoded bytes verbatim.
func (e *Encoder) WriteRaw(b []byte) {
	e.buf = append(e.buf, b...)
}
