// Copyright 2025 The directory-ldap-api Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ldap

import (
	"errors"
	"sync"

	"github.com/nE0sIghT/directory-ldap-api/asn1"
	"github.com/nE0sIghT/directory-ldap-api/asn1/ber"
	"github.com/nE0sIghT/directory-ldap-api/log"
)

// Context-specific tags of the extended operation elements (RFC 4511,
// Section 4.12).
const (
	contextTagExtendedRequestName   uint = 0
	contextTagExtendedRequestValue  uint = 1
	contextTagExtendedResponseName  uint = 10
	contextTagExtendedResponseValue uint = 11
)

// ExtendedRequest models [APPLICATION 23] ExtendedRequest. Value carries the
// operation-specific request value, nil if absent.
type ExtendedRequest struct {
	OID   string
	Value []byte
}

// Tag implements Operation.
func (op *ExtendedRequest) Tag() asn1.Tag {
	return asn1.Application(ApplicationExtendedRequest)
}

func (op *ExtendedRequest) encode(e *ber.Encoder) error {
	pos := e.Begin(op.Tag())
	e.WriteTagged(asn1.ContextSpecific(contextTagExtendedRequestName), false, []byte(op.OID))
	if op.Value != nil {
		e.WriteTagged(asn1.ContextSpecific(contextTagExtendedRequestValue), false, op.Value)
	}
	e.End(pos)
	return nil
}

func decodeExtendedRequest(d *ber.Decoder) (*ExtendedRequest, error) {
	op := &ExtendedRequest{}
	h, content, err := d.ReadValue()
	if err != nil {
		return nil, &ParseError{Field: "requestName", Err: err}
	}
	if h.Tag != asn1.ContextSpecific(contextTagExtendedRequestName) {
		return nil, &ParseError{
			Field: "requestName",
			Err:   &ber.TagError{Expected: asn1.ContextSpecific(contextTagExtendedRequestName), Actual: h.Tag},
		}
	}
	op.OID = string(content)
	if d.More() {
		h, content, err = d.ReadValue()
		if err != nil {
			return nil, &ParseError{Field: "requestValue", Err: err}
		}
		if h.Tag == asn1.ContextSpecific(contextTagExtendedRequestValue) {
			op.Value = make([]byte, len(content))
			copy(op.Value, content)
		}
	}
	return op, nil
}

// ExtendedResponse models [APPLICATION 24] ExtendedResponse.
type ExtendedResponse struct {
	Result
	OID   string // responseName, empty if absent
	Value []byte // responseValue, nil if absent
}

// Tag implements Operation.
func (op *ExtendedResponse) Tag() asn1.Tag {
	return asn1.Application(ApplicationExtendedResponse)
}

func (op *ExtendedResponse) encode(e *ber.Encoder) error {
	pos := e.Begin(op.Tag())
	encodeResult(e, op.Result)
	if op.OID != "" {
		e.WriteTagged(asn1.ContextSpecific(contextTagExtendedResponseName), false, []byte(op.OID))
	}
	if op.Value != nil {
		e.WriteTagged(asn1.ContextSpecific(contextTagExtendedResponseValue), false, op.Value)
	}
	e.End(pos)
	return nil
}

func decodeExtendedResponse(d *ber.Decoder) (*ExtendedResponse, error) {
	op := &ExtendedResponse{}
	var err error
	if op.Result, err = decodeResult(d); err != nil {
		return nil, err
	}
	for d.More() {
		h, content, err := d.ReadValue()
		if err != nil {
			return nil, &ParseError{Field: "extended response", Err: err}
		}
		switch h.Tag {
		case asn1.ContextSpecific(contextTagExtendedResponseName):
			op.OID = string(content)
		case asn1.ContextSpecific(contextTagExtendedResponseValue):
			op.Value = make([]byte, len(content))
			copy(op.Value, content)
		}
	}
	return op, nil
}

// ErrUnknownExtendedOperation is returned by the registry when no factory is
// registered for an OID.
var ErrUnknownExtendedOperation = errors.New("ldap: unknown extended operation")

// ExtendedOperationFactory decodes the values of one extended operation,
// identified by its OID.
type ExtendedOperationFactory interface {
	// OID returns the requestName the factory is responsible for.
	OID() string
	// NewRequest decodes an operation-specific request from its raw value.
	NewRequest(value []byte) (any, error)
	// NewResponse decodes an operation-specific response from its raw value.
	NewResponse(value []byte) (any, error)
}

// ExtendedOperationRegistry maps extended operation OIDs to their factories.
// Factories are registered explicitly; there is no dynamic discovery. The
// registry is safe for concurrent use.
type ExtendedOperationRegistry struct {
	mu        sync.RWMutex
	factories map[string]ExtendedOperationFactory
	logger    log.Logger
}

// NewExtendedOperationRegistry returns an empty registry logging through
// logger. A nil logger discards diagnostics.
func NewExtendedOperationRegistry(logger log.Logger) *ExtendedOperationRegistry {
	return &ExtendedOperationRegistry{
		factories: make(map[string]ExtendedOperationFactory),
		logger:    log.OrNop(logger),
	}
}

// Register adds f to the registry, replacing any factory previously
// registered for the same OID.
func (r *ExtendedOperationRegistry) Register(f ExtendedOperationFactory) {
	r.mu.Lock()
	prev := r.factories[f.OID()]
	r.factories[f.OID()] = f
	r.mu.Unlock()
	if prev != nil {
		r.logger.Warn("extended operation factory replaced", log.Fields{"oid": f.OID()})
	} else {
		r.logger.Debug("extended operation factory registered", log.Fields{"oid": f.OID()})
	}
}

// Lookup returns the factory registered for oid.
func (r *ExtendedOperationRegistry) Lookup(oid string) (ExtendedOperationFactory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[oid]
	return f, ok
}

// DecodeRequest decodes the value of req using the factory registered for its
// OID.
func (r *ExtendedOperationRegistry) DecodeRequest(req *ExtendedRequest) (any, error) {
	f, ok := r.Lookup(req.OID)
	if !ok {
		r.logger.Debug("no factory for extended request", log.Fields{"oid": req.OID})
		return nil, ErrUnknownExtendedOperation
	}
	return f.NewRequest(req.Value)
}

// DecodeResponse decodes the value of resp using the factory registered for
// the given request OID. The OID must be supplied by the caller because
// responses are not required to repeat it on the wire.
func (r *ExtendedOperationRegistry) DecodeResponse(oid string, resp *ExtendedResponse) (any, error) {
	f, ok := r.Lookup(oid)
	if !ok {
		r.logger.Debug("no factory for extended response", log.Fields{"oid": oid})
		return nil, ErrUnknownExtendedOperation
	}
	return f.NewResponse(resp.Value)
}
