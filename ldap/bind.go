// Copyright 2025 The directory-ldap-api Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ldap

import (
	"github.com/nE0sIghT/directory-ldap-api/asn1"
	"github.com/nE0sIghT/directory-ldap-api/asn1/ber"
)

// Authentication choice tags of BindRequest (RFC 4511, Section 4.2).
const (
	contextTagAuthSimple uint = 0
	contextTagAuthSASL   uint = 3
)

// contextTagServerSaslCreds is the tag of the optional serverSaslCreds element
// of BindResponse.
const contextTagServerSaslCreds uint = 7

// Protocol version bounds of BindRequest.
const (
	minBindVersion = 1
	maxBindVersion = 127
)

// SASLCredentials is the sasl alternative of the BindRequest authentication
// choice.
type SASLCredentials struct {
	Mechanism   string
	Credentials []byte
}

// BindRequest models [APPLICATION 0] BindRequest. Exactly one of Simple and
// SASL is set; a zero-length simple password is represented by a non-nil empty
// Simple slice.
type BindRequest struct {
	Version int // 1 through 127
	Name    string
	Simple  []byte
	SASL    *SASLCredentials
}

// Tag implements Operation.
func (op *BindRequest) Tag() asn1.Tag {
	return asn1.Application(ApplicationBindRequest)
}

func (op *BindRequest) encode(e *ber.Encoder) error {
	if op.Version < minBindVersion || op.Version > maxBindVersion {
		return &ber.RangeError{Value: int64(op.Version), Min: minBindVersion, Max: maxBindVersion}
	}
	pos := e.Begin(op.Tag())
	e.WriteInt64(int64(op.Version))
	e.WriteString(op.Name)
	if op.SASL != nil {
		sasl := e.Begin(asn1.ContextSpecific(contextTagAuthSASL))
		e.WriteString(op.SASL.Mechanism)
		if op.SASL.Credentials != nil {
			e.WriteOctetString(op.SASL.Credentials)
		}
		e.End(sasl)
	} else {
		e.WriteTagged(asn1.ContextSpecific(contextTagAuthSimple), false, op.Simple)
	}
	e.End(pos)
	return nil
}

func decodeBindRequest(d *ber.Decoder) (*BindRequest, error) {
	op := &BindRequest{}
	version, err := d.ReadInt64Range(minBindVersion, maxBindVersion)
	if err != nil {
		return nil, &ParseError{Field: "bind version", Err: err}
	}
	op.Version = int(version)
	if op.Name, err = d.ReadString(); err != nil {
		return nil, &ParseError{Field: "bind name", Err: err}
	}
	h, content, err := d.ReadValue()
	if err != nil {
		return nil, &ParseError{Field: "bind authentication", Err: err}
	}
	switch h.Tag {
	case asn1.ContextSpecific(contextTagAuthSimple):
		op.Simple = make([]byte, len(content))
		copy(op.Simple, content)
	case asn1.ContextSpecific(contextTagAuthSASL):
		sasl := ber.NewDecoder(content)
		creds := &SASLCredentials{}
		if creds.Mechanism, err = sasl.ReadString(); err != nil {
			return nil, &ParseError{Field: "sasl mechanism", Err: err}
		}
		if sasl.More() {
			if creds.Credentials, err = sasl.ReadOctetString(); err != nil {
				return nil, &ParseError{Field: "sasl credentials", Err: err}
			}
		}
		op.SASL = creds
	default:
		return nil, &ParseError{
			Field: "bind authentication",
			Err:   &ber.TagError{Expected: asn1.ContextSpecific(contextTagAuthSimple), Actual: h.Tag},
		}
	}
	return op, nil
}

// BindResponse models [APPLICATION 1] BindResponse.
type BindResponse struct {
	Result
	ServerSASLCreds []byte
}

// Tag implements Operation.
func (op *BindResponse) Tag() asn1.Tag {
	return asn1.Application(ApplicationBindResponse)
}

func (op *BindResponse) encode(e *ber.Encoder) error {
	pos := e.Begin(op.Tag())
	encodeResult(e, op.Result)
	if op.ServerSASLCreds != nil {
		e.WriteTagged(asn1.ContextSpecific(contextTagServerSaslCreds), false, op.ServerSASLCreds)
	}
	e.End(pos)
	return nil
}

func decodeBindResponse(d *ber.Decoder) (*BindResponse, error) {
	op := &BindResponse{}
	var err error
	if op.Result, err = decodeResult(d); err != nil {
		return nil, err
	}
	if d.More() {
		h, content, err := d.ReadValue()
		if err != nil {
			return nil, &ParseError{Field: "serverSaslCreds", Err: err}
		}
		if h.Tag == asn1.ContextSpecific(contextTagServerSaslCreds) {
			op.ServerSASLCreds = make([]byte, len(content))
			copy(op.ServerSASLCreds, content)
		}
	}
	return op, nil
}
