// Copyright 2025 The directory-ldap-api Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ldap

import (
	"math"
	"strconv"

	"github.com/nE0sIghT/directory-ldap-api/asn1"
	"github.com/nE0sIghT/directory-ldap-api/asn1/ber"
)

// Scope is the scope element of SearchRequest (RFC 4511, Section 4.5.1.2).
type Scope int

const (
	ScopeBaseObject   Scope = 0
	ScopeSingleLevel  Scope = 1
	ScopeWholeSubtree Scope = 2
)

func (s Scope) String() string {
	switch s {
	case ScopeBaseObject:
		return "baseObject"
	case ScopeSingleLevel:
		return "singleLevel"
	case ScopeWholeSubtree:
		return "wholeSubtree"
	default:
		return "scope(" + strconv.Itoa(int(s)) + ")"
	}
}

// DerefAliases is the derefAliases element of SearchRequest.
type DerefAliases int

const (
	NeverDerefAliases   DerefAliases = 0
	DerefInSearching    DerefAliases = 1
	DerefFindingBaseObj DerefAliases = 2
	DerefAlways         DerefAliases = 3
)

func (d DerefAliases) String() string {
	switch d {
	case NeverDerefAliases:
		return "neverDerefAliases"
	case DerefInSearching:
		return "derefInSearching"
	case DerefFindingBaseObj:
		return "derefFindingBaseObj"
	case DerefAlways:
		return "derefAlways"
	default:
		return "derefAliases(" + strconv.Itoa(int(d)) + ")"
	}
}

// SearchRequest models [APPLICATION 3] SearchRequest. The filter is carried as
// its raw encoding: this package does not interpret filter expressions.
type SearchRequest struct {
	BaseDN       string
	Scope        Scope
	DerefAliases DerefAliases
	SizeLimit    int
	TimeLimit    int
	TypesOnly    bool
	Filter       []byte // complete encoding of the filter element
	Attributes   []string
}

// Tag implements Operation.
func (op *SearchRequest) Tag() asn1.Tag {
	return asn1.Application(ApplicationSearchRequest)
}

func (op *SearchRequest) encode(e *ber.Encoder) error {
	pos := e.Begin(op.Tag())
	e.WriteString(op.BaseDN)
	e.WriteEnum(int64(op.Scope))
	e.WriteEnum(int64(op.DerefAliases))
	e.WriteInt64(int64(op.SizeLimit))
	e.WriteInt64(int64(op.TimeLimit))
	e.WriteBoolean(op.TypesOnly)
	e.WriteRaw(op.Filter)
	attrs := e.BeginSequence()
	for _, a := range op.Attributes {
		e.WriteString(a)
	}
	e.End(attrs)
	e.End(pos)
	return nil
}

func decodeSearchRequest(d *ber.Decoder) (*SearchRequest, error) {
	op := &SearchRequest{}
	var err error
	if op.BaseDN, err = d.ReadString(); err != nil {
		return nil, &ParseError{Field: "baseObject", Err: err}
	}
	scope, err := d.ReadEnumRange(int64(ScopeBaseObject), int64(ScopeWholeSubtree))
	if err != nil {
		return nil, &ParseError{Field: "scope", Err: err}
	}
	op.Scope = Scope(scope)
	deref, err := d.ReadEnumRange(int64(NeverDerefAliases), int64(DerefAlways))
	if err != nil {
		return nil, &ParseError{Field: "derefAliases", Err: err}
	}
	op.DerefAliases = DerefAliases(deref)
	sizeLimit, err := d.ReadInt64Range(0, math.MaxInt32)
	if err != nil {
		return nil, &ParseError{Field: "sizeLimit", Err: err}
	}
	op.SizeLimit = int(sizeLimit)
	timeLimit, err := d.ReadInt64Range(0, math.MaxInt32)
	if err != nil {
		return nil, &ParseError{Field: "timeLimit", Err: err}
	}
	op.TimeLimit = int(timeLimit)
	if op.TypesOnly, err = d.ReadBoolean(); err != nil {
		return nil, &ParseError{Field: "typesOnly", Err: err}
	}
	filter, err := d.ReadRaw()
	if err != nil {
		return nil, &ParseError{Field: "filter", Err: err}
	}
	op.Filter = make([]byte, len(filter))
	copy(op.Filter, filter)
	attrs, err := d.Sequence()
	if err != nil {
		return nil, &ParseError{Field: "attributes", Err: err}
	}
	for attrs.More() {
		a, err := attrs.ReadString()
		if err != nil {
			return nil, &ParseError{Field: "attributes", Err: err}
		}
		op.Attributes = append(op.Attributes, a)
	}
	return op, nil
}

// PartialAttribute is a single attribute of a SearchResultEntry.
type PartialAttribute struct {
	Type   string
	Values [][]byte
}

// SearchResultEntry models [APPLICATION 4] SearchResultEntry.
type SearchResultEntry struct {
	ObjectName string
	Attributes []PartialAttribute
}

// Tag implements Operation.
func (op *SearchResultEntry) Tag() asn1.Tag {
	return asn1.Application(ApplicationSearchResultEntry)
}

func (op *SearchResultEntry) encode(e *ber.Encoder) error {
	pos := e.Begin(op.Tag())
	e.WriteString(op.ObjectName)
	attrs := e.BeginSequence()
	for _, attr := range op.Attributes {
		a := e.BeginSequence()
		e.WriteString(attr.Type)
		vals := e.Begin(asn1.Universal(asn1.TagSet))
		for _, v := range attr.Values {
			e.WriteOctetString(v)
		}
		e.End(vals)
		e.End(a)
	}
	e.End(attrs)
	e.End(pos)
	return nil
}

func decodeSearchResultEntry(d *ber.Decoder) (*SearchResultEntry, error) {
	op := &SearchResultEntry{}
	var err error
	if op.ObjectName, err = d.ReadString(); err != nil {
		return nil, &ParseError{Field: "objectName", Err: err}
	}
	attrs, err := d.Sequence()
	if err != nil {
		return nil, &ParseError{Field: "attributes", Err: err}
	}
	for attrs.More() {
		seq, err := attrs.Sequence()
		if err != nil {
			return nil, &ParseError{Field: "partialAttribute", Err: err}
		}
		var attr PartialAttribute
		if attr.Type, err = seq.ReadString(); err != nil {
			return nil, &ParseError{Field: "attribute type", Err: err}
		}
		vals, err := seq.Expect(asn1.Universal(asn1.TagSet))
		if err != nil {
			return nil, &ParseError{Field: "attribute values", Err: err}
		}
		for vals.More() {
			v, err := vals.ReadOctetString()
			if err != nil {
				return nil, &ParseError{Field: "attribute value", Err: err}
			}
			val := make([]byte, len(v))
			copy(val, v)
			attr.Values = append(attr.Values, val)
		}
		op.Attributes = append(op.Attributes, attr)
	}
	return op, nil
}

// SearchResultDone models [APPLICATION 5] SearchResultDone.
type SearchResultDone struct {
	Result
}

// Tag implements Operation.
func (op *SearchResultDone) Tag() asn1.Tag {
	return asn1.Application(ApplicationSearchResultDone)
}

func (op *SearchResultDone) encode(e *ber.Encoder) error {
	pos := e.Begin(op.Tag())
	encodeResult(e, op.Result)
	e.End(pos)
	return nil
}

func decodeSearchResultDone(d *ber.Decoder) (*SearchResultDone, error) {
	r, err := decodeResult(d)
	if err != nil {
		return nil, err
	}
	return &SearchResultDone{Result: r}, nil
}
