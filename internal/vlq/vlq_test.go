// Copyright 2025 The directory-ldap-api Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vlq

import (
	"bytes"
	"errors"
	"testing"
)

func TestDecode(t *testing.T) {
	tests := map[string]struct {
		input []byte
		want  uint
		n     int
		err   error
	}{
		"Zero":       {input: []byte{0x00}, want: 0, n: 1},
		"SingleByte": {input: []byte{0x7f}, want: 127, n: 1},
		"TwoBytes":   {input: []byte{0x81, 0x00}, want: 128, n: 2},
		"Large":      {input: []byte{0x87, 0xff, 0x7f}, want: 0x1ffff, n: 3},
		"Trailing":   {input: []byte{0x05, 0xaa, 0xbb}, want: 5, n: 1},
		"NotMinimal": {input: []byte{0x80, 0x01}, err: ErrNotMinimal},
		"Truncated":  {input: []byte{0x81}, err: ErrTruncated},
		"Empty":      {input: nil, err: ErrTruncated},
		"Overflow":   {input: []byte{0x83, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f}, err: ErrOverflow},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, n, err := Decode(tt.input)
			if !errors.Is(err, tt.err) {
				t.Fatalf("Decode() error = %v, want %v", err, tt.err)
			}
			if tt.err != nil {
				return
			}
			if got != tt.want || n != tt.n {
				t.Errorf("Decode() = (%d, %d), want (%d, %d)", got, n, tt.want, tt.n)
			}
		})
	}
}

func TestAppend(t *testing.T) {
	tests := map[string]struct {
		value uint
		want  []byte
	}{
		"Zero":       {value: 0, want: []byte{0x00}},
		"SingleByte": {value: 127, want: []byte{0x7f}},
		"TwoBytes":   {value: 128, want: []byte{0x81, 0x00}},
		"Large":      {value: 0x1ffff, want: []byte{0x87, 0xff, 0x7f}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := Append(nil, tt.value)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("Append() = %x, want %x", got, tt.want)
			}
			if l := Length(tt.value); l != len(tt.want) {
				t.Errorf("Length() = %d, want %d", l, len(tt.want))
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for _, v := range []uint{0, 1, 42, 127, 128, 300, 1 << 14, 1<<28 - 1} {
		got, n, err := Decode(Append(nil, v))
		if err != nil {
			t.Fatalf("Decode(Append(%d)) error: %v", v, err)
		}
		if got != v || n != Length(v) {
			t.Errorf("round trip of %d = (%d, %d), want (%d, %d)", v, got, n, v, Length(v))
		}
	}
}
