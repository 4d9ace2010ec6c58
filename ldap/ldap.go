// Copyright 2025 The directory-ldap-api Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ldap models LDAP protocol messages as specified in RFC 4511 and
// implements their BER encoding. The package covers the message envelope, the
// bind, search, abandon and extended operations and the common LDAPResult.
// Operations with tags this package does not model are carried through
// losslessly as [RawOperation].
//
// The package is a message codec only: it opens no connections and evaluates
// no credentials.
package ldap

import (
	"errors"

	"github.com/nE0sIghT/directory-ldap-api/asn1"
	"github.com/nE0sIghT/directory-ldap-api/asn1/ber"
)

// Protocol operations are identified by these APPLICATION tag numbers
// (RFC 4511, Section 4.1.1).
const (
	ApplicationBindRequest           uint = 0
	ApplicationBindResponse          uint = 1
	ApplicationUnbindRequest         uint = 2
	ApplicationSearchRequest         uint = 3
	ApplicationSearchResultEntry     uint = 4
	ApplicationSearchResultDone      uint = 5
	ApplicationModifyRequest         uint = 6
	ApplicationModifyResponse        uint = 7
	ApplicationAddRequest            uint = 8
	ApplicationAddResponse           uint = 9
	ApplicationDelRequest            uint = 10
	ApplicationDelResponse           uint = 11
	ApplicationModifyDNRequest       uint = 12
	ApplicationModifyDNResponse      uint = 13
	ApplicationCompareRequest        uint = 14
	ApplicationCompareResponse       uint = 15
	ApplicationAbandonRequest        uint = 16
	ApplicationSearchResultReference uint = 19
	ApplicationExtendedRequest       uint = 23
	ApplicationExtendedResponse      uint = 24
	ApplicationIntermediateResponse  uint = 25
)

// MessageID bounds per RFC 4511, Section 4.1.1.1.
const (
	MinMessageID = 0
	MaxMessageID = 2147483647
)

// contextTagControls is the context-specific tag of the optional controls
// element of LDAPMessage.
const contextTagControls uint = 0

var (
	// ErrEmptyMessage indicates an attempt to parse a zero-length packet.
	ErrEmptyMessage = errors.New("ldap: empty message")
	// ErrMissingOperation indicates a Message without a protocol operation.
	ErrMissingOperation = errors.New("ldap: message has no operation")
)

// ParseError describes a malformed LDAP PDU. Field names the grammar element
// that failed; Err carries the underlying codec error.
type ParseError struct {
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	return "ldap: " + e.Field + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Message is the LDAPMessage envelope (RFC 4511, Section 4.1.1): a message ID,
// exactly one protocol operation and optional controls.
type Message struct {
	ID       int
	Op       Operation
	Controls []Control
}

// Operation is a protocol operation carried in a Message. Operations whose
// APPLICATION tag this package does not model are represented as
// *RawOperation.
type Operation interface {
	// Tag returns the APPLICATION tag identifying the operation on the wire.
	Tag() asn1.Tag
	encode(e *ber.Encoder) error
}

// RawOperation preserves an operation this package does not model. Raw holds
// the content octets exactly as received; Constructed preserves the encoding
// form bit.
type RawOperation struct {
	OpTag       asn1.Tag
	Constructed bool
	Raw         []byte
}

// Tag implements Operation.
func (op *RawOperation) Tag() asn1.Tag {
	return op.OpTag
}

func (op *RawOperation) encode(e *ber.Encoder) error {
	e.WriteTagged(op.OpTag, op.Constructed, op.Raw)
	return nil
}

// Control is a message control (RFC 4511, Section 4.1.11). Criticality
// defaults to false and is omitted from the encoding when false.
type Control struct {
	OID         string
	Criticality bool
	Value       []byte
}
