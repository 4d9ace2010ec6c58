// Copyright 2025 The directory-ldap-api Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package storedproc implements the stored procedure extended operation used
// by directory servers to invoke a named procedure with typed parameters. The
// request value is the BER encoding of
//
//	StoredProcedure ::= SEQUENCE {
//	    language    OCTET STRING,
//	    procedure   OCTET STRING,
//	    parameters  SEQUENCE OF SEQUENCE {
//	        type    OCTET STRING,
//	        value   OCTET STRING } }
//
// [Factory] plugs the operation into an [ldap.ExtendedOperationRegistry].
package storedproc

import (
	"github.com/nE0sIghT/directory-ldap-api/asn1/ber"
	"github.com/nE0sIghT/directory-ldap-api/ldap"
)

// RequestOID identifies the stored procedure extended request.
const RequestOID = "1.3.6.1.4.1.18060.0.1.6"

// Parameter is one typed argument of a stored procedure call.
type Parameter struct {
	Type  []byte
	Value []byte
}

// Request is a stored procedure call: the language it is written in, the
// procedure body or name, and its parameters.
type Request struct {
	Language   string
	Procedure  []byte
	Parameters []Parameter
}

// EncodeValue encodes the request into the value of an extended request.
func (r *Request) EncodeValue() []byte {
	e := ber.NewEncoder(64)
	pos := e.BeginSequence()
	e.WriteString(r.Language)
	e.WriteOctetString(r.Procedure)
	params := e.BeginSequence()
	for _, p := range r.Parameters {
		pp := e.BeginSequence()
		e.WriteOctetString(p.Type)
		e.WriteOctetString(p.Value)
		e.End(pp)
	}
	e.End(params)
	e.End(pos)
	return e.Bytes()
}

// DecodeValue decodes the value of an extended request into a Request.
func DecodeValue(value []byte) (*Request, error) {
	seq, err := ber.NewDecoder(value).Sequence()
	if err != nil {
		return nil, err
	}
	r := &Request{}
	if r.Language, err = seq.ReadString(); err != nil {
		return nil, err
	}
	if r.Procedure, err = seq.ReadOctetString(); err != nil {
		return nil, err
	}
	params, err := seq.Sequence()
	if err != nil {
		return nil, err
	}
	for params.More() {
		p, err := params.Sequence()
		if err != nil {
			return nil, err
		}
		var param Parameter
		if param.Type, err = p.ReadOctetString(); err != nil {
			return nil, err
		}
		if param.Value, err = p.ReadOctetString(); err != nil {
			return nil, err
		}
		r.Parameters = append(r.Parameters, param)
	}
	return r, nil
}

// Response is the result of a stored procedure call. Servers return the raw
// procedure output as the response value.
type Response struct {
	Value []byte
}

// Factory decodes stored procedure requests and responses. It implements
// [ldap.ExtendedOperationFactory].
type Factory struct{}

// OID implements ldap.ExtendedOperationFactory.
func (Factory) OID() string { return RequestOID }

// NewRequest implements ldap.ExtendedOperationFactory.
func (Factory) NewRequest(value []byte) (any, error) {
	return DecodeValue(value)
}

// NewResponse implements ldap.ExtendedOperationFactory.
func (Factory) NewResponse(value []byte) (any, error) {
	v := make([]byte, len(value))
	copy(v, value)
	return &Response{Value: v}, nil
}

var _ ldap.ExtendedOperationFactory = Factory{}
