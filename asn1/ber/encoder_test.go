// Copyright 2025 The directory-ldap-api Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"bytes"
	"testing"

	"github.com/nE0sIghT/directory-ldap-api/asn1"
)

func TestEncoder_Begin_End(t *testing.T) {
	e := NewEncoder(0)
	pos := e.BeginSequence()
	e.WriteInt64(5)
	e.End(pos)

	want := []byte{0x30, 0x03, 0x02, 0x01, 0x05}
	if !bytes.Equal(e.Bytes(), want) {
		t.Errorf("Bytes() = %x, want %x", e.Bytes(), want)
	}
}

func TestEncoder_Nested(t *testing.T) {
	e := NewEncoder(0)
	outer := e.BeginSequence()
	e.WriteBoolean(false)
	inner := e.Begin(asn1.ContextSpecific(0))
	e.WriteOctetString([]byte{0xaa})
	e.End(inner)
	e.End(outer)

	want := []byte{
		0x30, 0x08,
		0x01, 0x01, 0x00,
		0xa0, 0x03,
		0x04, 0x01, 0xaa,
	}
	if !bytes.Equal(e.Bytes(), want) {
		t.Errorf("Bytes() = %x, want %x", e.Bytes(), want)
	}
}

// TestEncoder_LongContent forces the long length form: End must insert more
// than one length octet without corrupting the already written content.
func TestEncoder_LongContent(t *testing.T) {
	payload := bytes.Repeat([]byte{0x5a}, 200)
	e := NewEncoder(0)
	pos := e.BeginSequence()
	e.WriteOctetString(payload)
	e.End(pos)

	d := NewDecoder(e.Bytes())
	seq, err := d.Sequence()
	if err != nil {
		t.Fatalf("Sequence() error: %v", err)
	}
	got, err := seq.ReadOctetString()
	if err != nil {
		t.Fatalf("ReadOctetString() error: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("payload corrupted after End: got %d bytes", len(got))
	}
	if d.More() || seq.More() {
		t.Error("decoders must be exhausted")
	}
}

func TestEncoder_WriteTagged(t *testing.T) {
	e := NewEncoder(0)
	e.WriteTagged(asn1.ContextSpecific(7), false, []byte("credentials"))

	d := NewDecoder(e.Bytes())
	h, v, err := d.ReadValue()
	if err != nil {
		t.Fatalf("ReadValue() error: %v", err)
	}
	if h.Tag != asn1.ContextSpecific(7) || h.Constructed {
		t.Errorf("header = %+v", h)
	}
	if string(v) != "credentials" {
		t.Errorf("content = %q", v)
	}
}

func TestEncoder_Reset(t *testing.T) {
	e := NewEncoder(8)
	e.WriteInt64(1)
	e.Reset()
	e.WriteBoolean(true)

	want := []byte{0x01, 0x01, 0xff}
	if !bytes.Equal(e.Bytes(), want) {
		t.Errorf("Bytes() = %x, want %x", e.Bytes(), want)
	}
}
