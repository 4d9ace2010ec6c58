// Copyright 2025 The directory-ldap-api Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ldap

import (
	"github.com/nE0sIghT/directory-ldap-api/asn1"
	"github.com/nE0sIghT/directory-ldap-api/asn1/ber"
)

// ParseMessage parses a BER encoded LDAPMessage (RFC 4511, Section 4.1.1):
//
//	LDAPMessage ::= SEQUENCE {
//	    messageID  MessageID,
//	    protocolOp CHOICE { ... },
//	    controls   [0] Controls OPTIONAL }
//
// The message ID is range checked against [MinMessageID, MaxMessageID].
// Operations with a known APPLICATION tag are decoded into their typed
// representation; all others are preserved as *RawOperation.
func ParseMessage(data []byte) (*Message, error) {
	if len(data) == 0 {
		return nil, ErrEmptyMessage
	}
	d := ber.NewDecoder(data)
	seq, err := d.Sequence()
	if err != nil {
		return nil, &ParseError{Field: "LDAPMessage", Err: err}
	}

	id, err := seq.ReadInt64Range(MinMessageID, MaxMessageID)
	if err != nil {
		return nil, &ParseError{Field: "messageID", Err: err}
	}

	h, content, err := seq.ReadValue()
	if err != nil {
		return nil, &ParseError{Field: "protocolOp", Err: err}
	}
	if h.Tag.Class != asn1.ClassApplication {
		return nil, &ParseError{
			Field: "protocolOp",
			Err:   &ber.TagError{Expected: asn1.Application(h.Tag.Number), Actual: h.Tag},
		}
	}
	op, err := decodeOperation(h, content)
	if err != nil {
		return nil, err
	}

	msg := &Message{ID: int(id), Op: op}

	if seq.More() {
		ctrls, err := seq.Expect(asn1.ContextSpecific(contextTagControls))
		if err != nil {
			return nil, &ParseError{Field: "controls", Err: err}
		}
		for ctrls.More() {
			ctrl, err := decodeControl(ctrls)
			if err != nil {
				return nil, err
			}
			msg.Controls = append(msg.Controls, ctrl)
		}
	}
	return msg, nil
}

// decodeOperation dispatches on the APPLICATION tag of a protocol operation.
func decodeOperation(h ber.Header, content []byte) (Operation, error) {
	d := ber.NewDecoder(content)
	switch h.Tag.Number {
	case ApplicationBindRequest:
		return decodeBindRequest(d)
	case ApplicationBindResponse:
		return decodeBindResponse(d)
	case ApplicationUnbindRequest:
		return decodeUnbindRequest(content)
	case ApplicationSearchRequest:
		return decodeSearchRequest(d)
	case ApplicationSearchResultEntry:
		return decodeSearchResultEntry(d)
	case ApplicationSearchResultDone:
		return decodeSearchResultDone(d)
	case ApplicationAbandonRequest:
		return decodeAbandonRequest(content)
	case ApplicationExtendedRequest:
		return decodeExtendedRequest(d)
	case ApplicationExtendedResponse:
		return decodeExtendedResponse(d)
	default:
		raw := make([]byte, len(content))
		copy(raw, content)
		return &RawOperation{OpTag: h.Tag, Constructed: h.Constructed, Raw: raw}, nil
	}
}

// decodeControl parses a single Control (RFC 4511, Section 4.1.11).
func decodeControl(d *ber.Decoder) (Control, error) {
	var ctrl Control
	seq, err := d.Sequence()
	if err != nil {
		return ctrl, &ParseError{Field: "control", Err: err}
	}
	if ctrl.OID, err = seq.ReadString(); err != nil {
		return ctrl, &ParseError{Field: "controlType", Err: err}
	}
	if seq.More() {
		h, err := seq.PeekHeader()
		if err != nil {
			return ctrl, &ParseError{Field: "control", Err: err}
		}
		if h.Tag == asn1.Universal(asn1.TagBoolean) {
			if ctrl.Criticality, err = seq.ReadBoolean(); err != nil {
				return ctrl, &ParseError{Field: "criticality", Err: err}
			}
		}
	}
	if seq.More() {
		if ctrl.Value, err = seq.ReadOctetString(); err != nil {
			return ctrl, &ParseError{Field: "controlValue", Err: err}
		}
	}
	return ctrl, nil
}

// Encode returns the BER encoding of m. The message ID is validated against
// [MinMessageID, MaxMessageID].
func (m *Message) Encode() ([]byte, error) {
	if m.Op == nil {
		return nil, ErrMissingOperation
	}
	if m.ID < MinMessageID || m.ID > MaxMessageID {
		return nil, &ber.RangeError{Value: int64(m.ID), Min: MinMessageID, Max: MaxMessageID}
	}
	e := ber.NewEncoder(256)
	seq := e.BeginSequence()
	e.WriteInt64(int64(m.ID))
	if err := m.Op.encode(e); err != nil {
		return nil, err
	}
	if len(m.Controls) > 0 {
		pos := e.Begin(asn1.ContextSpecific(contextTagControls))
		for _, ctrl := range m.Controls {
			encodeControl(e, ctrl)
		}
		e.End(pos)
	}
	e.End(seq)
	return e.Bytes(), nil
}

func encodeControl(e *ber.Encoder, ctrl Control) {
	pos := e.BeginSequence()
	e.WriteString(ctrl.OID)
	if ctrl.Criticality {
		e.WriteBoolean(true)
	}
	if len(ctrl.Value) > 0 {
		e.WriteOctetString(ctrl.Value)
	}
	e.End(pos)
}
