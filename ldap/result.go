// Copyright 2025 The directory-ldap-api Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ldap

import (
	"strconv"

	"github.com/nE0sIghT/directory-ldap-api/asn1"
	"github.com/nE0sIghT/directory-ldap-api/asn1/ber"
)

// ResultCode is the resultCode of an LDAPResult (RFC 4511, Appendix A).
type ResultCode int

// Result codes defined in RFC 4511.
const (
	ResultSuccess                      ResultCode = 0
	ResultOperationsError              ResultCode = 1
	ResultProtocolError                ResultCode = 2
	ResultTimeLimitExceeded            ResultCode = 3
	ResultSizeLimitExceeded            ResultCode = 4
	ResultCompareFalse                 ResultCode = 5
	ResultCompareTrue                  ResultCode = 6
	ResultAuthMethodNotSupported       ResultCode = 7
	ResultStrongerAuthRequired         ResultCode = 8
	ResultReferral                     ResultCode = 10
	ResultAdminLimitExceeded           ResultCode = 11
	ResultUnavailableCriticalExtension ResultCode = 12
	ResultConfidentialityRequired      ResultCode = 13
	ResultSaslBindInProgress           ResultCode = 14
	ResultNoSuchAttribute              ResultCode = 16
	ResultUndefinedAttributeType       ResultCode = 17
	ResultInappropriateMatching        ResultCode = 18
	ResultConstraintViolation          ResultCode = 19
	ResultAttributeOrValueExists       ResultCode = 20
	ResultInvalidAttributeSyntax       ResultCode = 21
	ResultNoSuchObject                 ResultCode = 32
	ResultAliasProblem                 ResultCode = 33
	ResultInvalidDNSyntax              ResultCode = 34
	ResultAliasDereferencingProblem    ResultCode = 36
	ResultInappropriateAuthentication  ResultCode = 48
	ResultInvalidCredentials           ResultCode = 49
	ResultInsufficientAccessRights     ResultCode = 50
	ResultBusy                         ResultCode = 51
	ResultUnavailable                  ResultCode = 52
	ResultUnwillingToPerform           ResultCode = 53
	ResultLoopDetect                   ResultCode = 54
	ResultNamingViolation              ResultCode = 64
	ResultObjectClassViolation         ResultCode = 65
	ResultNotAllowedOnNonLeaf          ResultCode = 66
	ResultNotAllowedOnRDN              ResultCode = 67
	ResultEntryAlreadyExists           ResultCode = 68
	ResultObjectClassModsProhibited    ResultCode = 69
	ResultAffectsMultipleDSAs          ResultCode = 71
	ResultOther                        ResultCode = 80
)

// maxResultCode bounds the ENUMERATED decode of result codes. RFC 4511
// reserves code points up to 90 for future extensions.
const maxResultCode = 90

func (c ResultCode) String() string {
	switch c {
	case ResultSuccess:
		return "success"
	case ResultOperationsError:
		return "operationsError"
	case ResultProtocolError:
		return "protocolError"
	case ResultTimeLimitExceeded:
		return "timeLimitExceeded"
	case ResultSizeLimitExceeded:
		return "sizeLimitExceeded"
	case ResultCompareFalse:
		return "compareFalse"
	case ResultCompareTrue:
		return "compareTrue"
	case ResultAuthMethodNotSupported:
		return "authMethodNotSupported"
	case ResultStrongerAuthRequired:
		return "strongerAuthRequired"
	case ResultReferral:
		return "referral"
	case ResultAdminLimitExceeded:
		return "adminLimitExceeded"
	case ResultUnavailableCriticalExtension:
		return "unavailableCriticalExtension"
	case ResultConfidentialityRequired:
		return "confidentialityRequired"
	case ResultSaslBindInProgress:
		return "saslBindInProgress"
	case ResultNoSuchAttribute:
		return "noSuchAttribute"
	case ResultUndefinedAttributeType:
		return "undefinedAttributeType"
	case ResultInappropriateMatching:
		return "inappropriateMatching"
	case ResultConstraintViolation:
		return "constraintViolation"
	case ResultAttributeOrValueExists:
		return "attributeOrValueExists"
	case ResultInvalidAttributeSyntax:
		return "invalidAttributeSyntax"
	case ResultNoSuchObject:
		return "noSuchObject"
	case ResultAliasProblem:
		return "aliasProblem"
	case ResultInvalidDNSyntax:
		return "invalidDNSyntax"
	case ResultAliasDereferencingProblem:
		return "aliasDereferencingProblem"
	case ResultInappropriateAuthentication:
		return "inappropriateAuthentication"
	case ResultInvalidCredentials:
		return "invalidCredentials"
	case ResultInsufficientAccessRights:
		return "insufficientAccessRights"
	case ResultBusy:
		return "busy"
	case ResultUnavailable:
		return "unavailable"
	case ResultUnwillingToPerform:
		return "unwillingToPerform"
	case ResultLoopDetect:
		return "loopDetect"
	case ResultNamingViolation:
		return "namingViolation"
	case ResultObjectClassViolation:
		return "objectClassViolation"
	case ResultNotAllowedOnNonLeaf:
		return "notAllowedOnNonLeaf"
	case ResultNotAllowedOnRDN:
		return "notAllowedOnRDN"
	case ResultEntryAlreadyExists:
		return "entryAlreadyExists"
	case ResultObjectClassModsProhibited:
		return "objectClassModsProhibited"
	case ResultAffectsMultipleDSAs:
		return "affectsMultipleDSAs"
	case ResultOther:
		return "other"
	default:
		return "resultCode(" + strconv.Itoa(int(c)) + ")"
	}
}

// contextTagReferral is the context-specific tag of the optional referral
// element of LDAPResult.
const contextTagReferral uint = 3

// Result is the LDAPResult component common to most responses (RFC 4511,
// Section 4.1.9).
type Result struct {
	Code       ResultCode
	MatchedDN  string
	Diagnostic string
	Referral   []string
}

// decodeResult reads the LDAPResult elements from d.
func decodeResult(d *ber.Decoder) (Result, error) {
	var r Result
	code, err := d.ReadEnumRange(0, maxResultCode)
	if err != nil {
		return r, &ParseError{Field: "resultCode", Err: err}
	}
	r.Code = ResultCode(code)
	if r.MatchedDN, err = d.ReadString(); err != nil {
		return r, &ParseError{Field: "matchedDN", Err: err}
	}
	if r.Diagnostic, err = d.ReadString(); err != nil {
		return r, &ParseError{Field: "diagnosticMessage", Err: err}
	}
	if d.More() {
		h, err := d.PeekHeader()
		if err != nil {
			return r, &ParseError{Field: "referral", Err: err}
		}
		if h.Tag == asn1.ContextSpecific(contextTagReferral) {
			refs, err := d.Expect(h.Tag)
			if err != nil {
				return r, &ParseError{Field: "referral", Err: err}
			}
			for refs.More() {
				uri, err := refs.ReadString()
				if err != nil {
					return r, &ParseError{Field: "referral", Err: err}
				}
				r.Referral = append(r.Referral, uri)
			}
		}
	}
	return r, nil
}

// encodeResult writes the LDAPResult elements to e.
func encodeResult(e *ber.Encoder, r Result) {
	e.WriteEnum(int64(r.Code))
	e.WriteString(r.MatchedDN)
	e.WriteString(r.Diagnostic)
	if len(r.Referral) > 0 {
		pos := e.Begin(asn1.ContextSpecific(contextTagReferral))
		for _, uri := range r.Referral {
			e.WriteString(uri)
		}
		e.End(pos)
	}
}
