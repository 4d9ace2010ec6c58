// Copyright 2025 The directory-ldap-api Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/nE0sIghT/directory-ldap-api/asn1"
)

func TestDecoder_Primitives(t *testing.T) {
	e := NewEncoder(0)
	e.WriteBoolean(true)
	e.WriteInt64(-513)
	e.WriteEnum(32)
	e.WriteOctetString([]byte("cn=admin"))
	e.WriteNull()
	if err := e.WriteUTCTime(time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("WriteUTCTime error: %v", err)
	}

	d := NewDecoder(e.Bytes())
	if v, err := d.ReadBoolean(); err != nil || v != true {
		t.Errorf("ReadBoolean() = (%v, %v)", v, err)
	}
	if v, err := d.ReadInt64(); err != nil || v != -513 {
		t.Errorf("ReadInt64() = (%d, %v)", v, err)
	}
	if v, err := d.ReadEnumRange(0, 90); err != nil || v != 32 {
		t.Errorf("ReadEnumRange() = (%d, %v)", v, err)
	}
	if v, err := d.ReadString(); err != nil || v != "cn=admin" {
		t.Errorf("ReadString() = (%q, %v)", v, err)
	}
	if err := d.ReadNull(); err != nil {
		t.Errorf("ReadNull() error: %v", err)
	}
	want := time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC)
	if v, err := d.ReadUTCTime(); err != nil || !v.Equal(want) {
		t.Errorf("ReadUTCTime() = (%v, %v)", v, err)
	}
	if d.More() {
		t.Errorf("%d unread bytes remain", d.Remaining())
	}
}

func TestDecoder_Sequence(t *testing.T) {
	e := NewEncoder(0)
	outer := e.BeginSequence()
	e.WriteInt64(1)
	inner := e.Begin(asn1.ContextSpecific(3))
	e.WriteString("uid")
	e.End(inner)
	e.End(outer)

	d := NewDecoder(e.Bytes())
	seq, err := d.Sequence()
	if err != nil {
		t.Fatalf("Sequence() error: %v", err)
	}
	if d.More() {
		t.Fatalf("outer decoder must be exhausted, %d bytes remain", d.Remaining())
	}
	if v, err := seq.ReadInt64(); err != nil || v != 1 {
		t.Fatalf("ReadInt64() = (%d, %v)", v, err)
	}
	sub, err := seq.Expect(asn1.ContextSpecific(3))
	if err != nil {
		t.Fatalf("Expect([3]) error: %v", err)
	}
	if v, err := sub.ReadString(); err != nil || v != "uid" {
		t.Errorf("ReadString() = (%q, %v)", v, err)
	}
	if seq.More() || sub.More() {
		t.Error("sub-decoders must be exhausted")
	}
}

func TestDecoder_TagError(t *testing.T) {
	e := NewEncoder(0)
	e.WriteInt64(7)

	d := NewDecoder(e.Bytes())
	_, err := d.ReadBoolean()
	var tagErr *TagError
	if !errors.As(err, &tagErr) {
		t.Fatalf("ReadBoolean() error = %v, want *TagError", err)
	}
	if tagErr.Expected != asn1.Universal(asn1.TagBoolean) || tagErr.Actual != asn1.Universal(asn1.TagInteger) {
		t.Errorf("unexpected TagError: %v", tagErr)
	}
}

func TestDecoder_Truncated(t *testing.T) {
	tests := map[string][]byte{
		"LengthBeyondInput": {0x04, 0x05, 0x01, 0x02},
		"EmptyInput":        {},
		"HeaderOnly":        {0x30},
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			d := NewDecoder(input)
			_, err := d.ReadHeader()
			var encErr *EncodingError
			if !errors.As(err, &encErr) {
				t.Errorf("ReadHeader(%x) error = %v, want *EncodingError", input, err)
			}
		})
	}
}

func TestDecoder_BadPrimitiveShapes(t *testing.T) {
	tests := map[string]struct {
		input []byte
		read  func(*Decoder) error
	}{
		"WideBoolean": {[]byte{0x01, 0x02, 0x00, 0xff}, func(d *Decoder) error {
			_, err := d.ReadBoolean()
			return err
		}},
		"NonEmptyNull": {[]byte{0x05, 0x01, 0x00}, func(d *Decoder) error {
			return d.ReadNull()
		}},
		"EmptyInteger": {[]byte{0x02, 0x00}, func(d *Decoder) error {
			_, err := d.ReadInt64()
			return err
		}},
		"NineByteInteger": {append([]byte{0x02, 0x09}, make([]byte, 9)...), func(d *Decoder) error {
			_, err := d.ReadInt64()
			return err
		}},
		"PrimitiveSequence": {[]byte{0x10, 0x00}, func(d *Decoder) error {
			_, err := d.Sequence()
			return err
		}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.read(NewDecoder(tt.input))
			var encErr *EncodingError
			if !errors.As(err, &encErr) {
				t.Errorf("error = %v, want *EncodingError", err)
			}
		})
	}
}

func TestDecoder_ReadValue(t *testing.T) {
	input := []byte{0x64, 0x03, 0x0a, 0x0b, 0x0c, 0x01, 0x01, 0x00}
	d := NewDecoder(input)
	h, v, err := d.ReadValue()
	if err != nil {
		t.Fatalf("ReadValue() error: %v", err)
	}
	want := Header{Tag: asn1.Application(4), Length: 3, Constructed: true}
	if h != want {
		t.Errorf("ReadValue() header = %+v, want %+v", h, want)
	}
	if !bytes.Equal(v, []byte{0x0a, 0x0b, 0x0c}) {
		t.Errorf("ReadValue() content = %x", v)
	}
	if d.Offset() != 5 {
		t.Errorf("Offset() = %d, want 5", d.Offset())
	}
}
