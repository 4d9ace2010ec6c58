// Copyright 2025 The directory-ldap-api Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ber implements encoding and decoding of ASN.1 data values under the
// Basic Encoding Rules with the restrictions imposed by LDAP (RFC 4511,
// Section 5.1): definite lengths only and minimal (DER) output.
//
// Decoding is deliberately liberal where BER permits it. In particular
// integers with redundant leading octets are accepted on input, while every
// encoding produced by this package uses the minimal form. Values are
// processed from fully buffered packets using [Decoder] and [Encoder]; the
// free functions such as [DecodeInt64Range] operate on bare content octets for
// callers that handle framing themselves.
package ber
