// Copyright 2025 The directory-ldap-api Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asn1

import (
	"fmt"
	"testing"
)

func ExampleTag_String() {
	t1 := Application(17)
	t2 := ContextSpecific(8)
	t3 := Universal(TagInteger)
	fmt.Println(t1.String())
	fmt.Println(t2.String())
	fmt.Println(t3.String())
	// Output:
	// [APPLICATION 17]
	// [8]
	// [UNIVERSAL 2]
}

func TestClass_IsValid(t *testing.T) {
	tests := map[string]struct {
		class Class
		want  bool
	}{
		"Universal":       {ClassUniversal, true},
		"Application":     {ClassApplication, true},
		"ContextSpecific": {ClassContextSpecific, true},
		"Private":         {ClassPrivate, true},
		"OutOfRange":      {Class(4), false},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.class.IsValid(); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}
