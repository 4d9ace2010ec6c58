// Copyright 2025 The directory-ldap-api Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"time"
)

// UTCTimeLength is the exact length of the restricted DER UTCTime form
// yyMMddHHmmssZ used throughout this module: twelve decimal digits followed by
// a literal 'Z'.
const UTCTimeLength = 13

// GeneralizedTimeLength is the exact length of the restricted DER
// GeneralizedTime form yyyyMMddHHmmssZ.
const GeneralizedTimeLength = 15

// The two-digit UTCTime year is interpreted per RFC 5280, Section 4.1.2.5.1:
// values 00 through 49 denote 2000 through 2049, values 50 through 99 denote
// 1950 through 1999.
const (
	utcTimeMinYear = 1950
	utcTimeMaxYear = 2049
)

// EncodeUTCTime returns the DER UTCTime representation of t: exactly
// [UTCTimeLength] bytes. t is converted to UTC and truncated to whole seconds.
// Times whose UTC year lies outside 1950 through 2049 cannot be represented
// and yield a *FormatError.
//
// All functions in this file are pure and safe for unlimited concurrent use.
func EncodeUTCTime(t time.Time) ([]byte, error) {
	return AppendUTCTime(make([]byte, 0, UTCTimeLength), t)
}

// AppendUTCTime appends the DER UTCTime representation of t to dst and returns
// the extended slice. See [EncodeUTCTime] for the representable range.
func AppendUTCTime(dst []byte, t time.Time) ([]byte, error) {
	t = t.UTC()
	if t.Year() < utcTimeMinYear || t.Year() > utcTimeMaxYear {
		return dst, &FormatError{Value: t.Format(time.RFC3339), Msg: "year not representable as UTCTime"}
	}
	dst = appendDigits(dst, t.Year()%100, 2)
	dst = appendDigits(dst, int(t.Month()), 2)
	dst = appendDigits(dst, t.Day(), 2)
	dst = appendDigits(dst, t.Hour(), 2)
	dst = appendDigits(dst, t.Minute(), 2)
	dst = appendDigits(dst, t.Second(), 2)
	return append(dst, 'Z'), nil
}

// DecodeUTCTime parses the restricted DER UTCTime form yyMMddHHmmssZ. Any
// other length, a missing trailing 'Z', a non-digit character or a date that
// does not exist on the proleptic Gregorian calendar yields a *FormatError.
// The result is always in UTC.
func DecodeUTCTime(b []byte) (time.Time, error) {
	if len(b) != UTCTimeLength {
		return time.Time{}, &FormatError{Value: string(b), Msg: "UTCTime must be exactly 13 bytes"}
	}
	if b[12] != 'Z' {
		return time.Time{}, &FormatError{Value: string(b), Msg: "UTCTime must end in Z"}
	}
	year := atoiN(b, 2)
	month := atoiN(b[2:], 2)
	day := atoiN(b[4:], 2)
	hour := atoiN(b[6:], 2)
	minute := atoiN(b[8:], 2)
	second := atoiN(b[10:], 2)
	if year < 0 || month < 0 || day < 0 || hour < 0 || minute < 0 || second < 0 {
		return time.Time{}, &FormatError{Value: string(b), Msg: "UTCTime contains a non-digit character"}
	}
	if year <= 49 {
		year += 2000
	} else {
		year += 1900
	}
	ret := time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC)
	if ret.Year() != year || ret.Month() != time.Month(month) || ret.Day() != day ||
		ret.Hour() != hour || ret.Minute() != minute || ret.Second() != second {
		return time.Time{}, &FormatError{Value: string(b), Msg: "UTCTime denotes an invalid calendar time"}
	}
	return ret, nil
}

// EncodeGeneralizedTime returns the DER GeneralizedTime representation of t:
// exactly [GeneralizedTimeLength] bytes. t is converted to UTC and truncated
// to whole seconds. Years outside 0 through 9999 yield a *FormatError.
func EncodeGeneralizedTime(t time.Time) ([]byte, error) {
	return AppendGeneralizedTime(make([]byte, 0, GeneralizedTimeLength), t)
}

// AppendGeneralizedTime appends the DER GeneralizedTime representation of t to
// dst and returns the extended slice.
func AppendGeneralizedTime(dst []byte, t time.Time) ([]byte, error) {
	t = t.UTC()
	if t.Year() < 0 || t.Year() > 9999 {
		return dst, &FormatError{Value: t.Format(time.RFC3339), Msg: "year not representable as GeneralizedTime"}
	}
	dst = appendDigits(dst, t.Year(), 4)
	dst = appendDigits(dst, int(t.Month()), 2)
	dst = appendDigits(dst, t.Day(), 2)
	dst = appendDigits(dst, t.Hour(), 2)
	dst = appendDigits(dst, t.Minute(), 2)
	dst = appendDigits(dst, t.Second(), 2)
	return append(dst, 'Z'), nil
}

// DecodeGeneralizedTime parses the restricted DER GeneralizedTime form
// yyyyMMddHHmmssZ. The result is always in UTC.
func DecodeGeneralizedTime(b []byte) (time.Time, error) {
	if len(b) != GeneralizedTimeLength {
		return time.Time{}, &FormatError{Value: string(b), Msg: "GeneralizedTime must be exactly 15 bytes"}
	}
	if b[14] != 'Z' {
		return time.Time{}, &FormatError{Value: string(b), Msg: "GeneralizedTime must end in Z"}
	}
	year := atoiN(b, 4)
	month := atoiN(b[4:], 2)
	day := atoiN(b[6:], 2)
	hour := atoiN(b[8:], 2)
	minute := atoiN(b[10:], 2)
	second := atoiN(b[12:], 2)
	if year < 0 || month < 0 || day < 0 || hour < 0 || minute < 0 || second < 0 {
		return time.Time{}, &FormatError{Value: string(b), Msg: "GeneralizedTime contains a non-digit character"}
	}
	ret := time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC)
	if ret.Year() != year || ret.Month() != time.Month(month) || ret.Day() != day ||
		ret.Hour() != hour || ret.Minute() != minute || ret.Second() != second {
		return time.Time{}, &FormatError{Value: string(b), Msg: "GeneralizedTime denotes an invalid calendar time"}
	}
	return ret, nil
}

// atoiN parses exactly n leading ASCII digits of b and returns -1 if any of
// them is not a digit. b must be at least n bytes long.
func atoiN(b []byte, n int) (i int) {
	for j := 0; j < n; j++ {
		if b[j] < '0' || '9' < b[j] {
			return -1
		}
		i = i*10 + int(b[j]-'0')
	}
	return i
}

// appendDigits appends the n-digit zero-padded decimal representation of v to
// dst. v must be non-negative and fit into n digits.
func appendDigits(dst []byte, v, n int) []byte {
	var buf [4]byte
	for j := n - 1; j >= 0; j-- {
		buf[j] = '0' + byte(v%10)
		v /= 10
	}
	return append(dst, buf[:n]...)
}
