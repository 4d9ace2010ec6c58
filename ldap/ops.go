// Copyright 2025 The directory-ldap-api Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ldap

import (
	"github.com/nE0sIghT/directory-ldap-api/asn1"
	"github.com/nE0sIghT/directory-ldap-api/asn1/ber"
)

// UnbindRequest models [APPLICATION 2] UnbindRequest. Its content is an
// implicit NULL and therefore empty.
type UnbindRequest struct{}

// Tag implements Operation.
func (op *UnbindRequest) Tag() asn1.Tag {
	return asn1.Application(ApplicationUnbindRequest)
}

func (op *UnbindRequest) encode(e *ber.Encoder) error {
	e.WriteTagged(op.Tag(), false, nil)
	return nil
}

func decodeUnbindRequest(content []byte) (*UnbindRequest, error) {
	if len(content) != 0 {
		return nil, &ParseError{Field: "unbind request", Err: &ber.EncodingError{Msg: "unbind request must be empty"}}
	}
	return &UnbindRequest{}, nil
}

// AbandonRequest models [APPLICATION 16] AbandonRequest. Its content octets
// are the bare integer encoding of the message ID to abandon.
type AbandonRequest struct {
	MessageID int
}

// Tag implements Operation.
func (op *AbandonRequest) Tag() asn1.Tag {
	return asn1.Application(ApplicationAbandonRequest)
}

func (op *AbandonRequest) encode(e *ber.Encoder) error {
	if op.MessageID < MinMessageID || op.MessageID > MaxMessageID {
		return &ber.RangeError{Value: int64(op.MessageID), Min: MinMessageID, Max: MaxMessageID}
	}
	e.WriteTagged(op.Tag(), false, ber.EncodeInt64(int64(op.MessageID)))
	return nil
}

func decodeAbandonRequest(content []byte) (*AbandonRequest, error) {
	id, err := ber.DecodeInt64Range(content, MinMessageID, MaxMessageID)
	if err != nil {
		return nil, &ParseError{Field: "abandon message id", Err: err}
	}
	return &AbandonRequest{MessageID: int(id)}, nil
}
