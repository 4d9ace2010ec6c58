// Copyright 2025 The directory-ldap-api Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	"strings"
	"sync"

	"github.com/nE0sIghT/directory-ldap-api/log"
)

// DuplicateError reports a registration whose OID is already taken.
type DuplicateError struct {
	Kind string
	OID  string
}

func (e *DuplicateError) Error() string {
	return "schema: duplicate " + e.Kind + " " + e.OID
}

// Registries indexes schema entities by OID and by any of their short names.
// Name lookups are case-insensitive. Registries is safe for concurrent use.
type Registries struct {
	mu             sync.RWMutex
	logger         log.Logger
	attributeTypes map[string]*AttributeType
	objectClasses  map[string]*ObjectClass
	syntaxes       map[string]*Syntax
	matchingRules  map[string]*MatchingRule
}

// NewRegistries returns empty registries logging through logger. A nil logger
// discards diagnostics.
func NewRegistries(logger log.Logger) *Registries {
	return &Registries{
		logger:         log.OrNop(logger),
		attributeTypes: make(map[string]*AttributeType),
		objectClasses:  make(map[string]*ObjectClass),
		syntaxes:       make(map[string]*Syntax),
		matchingRules:  make(map[string]*MatchingRule),
	}
}

// register indexes an entity under its OID and names. The OID must be free;
// colliding aliases are skipped with a warning.
func register[T any](r *Registries, m map[string]*T, kind, oid string, names []string, v *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := m[oid]; ok {
		return &DuplicateError{Kind: kind, OID: oid}
	}
	m[oid] = v
	for _, name := range names {
		key := strings.ToLower(name)
		if _, ok := m[key]; ok {
			r.logger.Warn("schema alias already taken", log.Fields{"kind": kind, "oid": oid, "alias": name})
			continue
		}
		m[key] = v
	}
	r.logger.Debug("schema entity registered", log.Fields{"kind": kind, "oid": oid})
	return nil
}

func lookup[T any](r *Registries, m map[string]*T, nameOrOID string) (*T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if v, ok := m[nameOrOID]; ok {
		return v, true
	}
	v, ok := m[strings.ToLower(nameOrOID)]
	return v, ok
}

// RegisterAttributeType adds at to the registries.
func (r *Registries) RegisterAttributeType(at *AttributeType) error {
	return register(r, r.attributeTypes, "attributeType", at.OID, at.Names, at)
}

// AttributeType looks up an attribute type by OID or name.
func (r *Registries) AttributeType(nameOrOID string) (*AttributeType, bool) {
	return lookup(r, r.attributeTypes, nameOrOID)
}

// RegisterObjectClass adds oc to the registries.
func (r *Registries) RegisterObjectClass(oc *ObjectClass) error {
	return register(r, r.objectClasses, "objectClass", oc.OID, oc.Names, oc)
}

// ObjectClass looks up an object class by OID or name.
func (r *Registries) ObjectClass(nameOrOID string) (*ObjectClass, bool) {
	return lookup(r, r.objectClasses, nameOrOID)
}

// RegisterSyntax adds s to the registries.
func (r *Registries) RegisterSyntax(s *Syntax) error {
	return register(r, r.syntaxes, "syntax", s.OID, nil, s)
}

// Syntax looks up a syntax by OID.
func (r *Registries) Syntax(oid string) (*Syntax, bool) {
	return lookup(r, r.syntaxes, oid)
}

// RegisterMatchingRule adds mr to the registries.
func (r *Registries) RegisterMatchingRule(mr *MatchingRule) error {
	return register(r, r.matchingRules, "matchingRule", mr.OID, mr.Names, mr)
}

// MatchingRule looks up a matching rule by OID or name.
func (r *Registries) MatchingRule(nameOrOID string) (*MatchingRule, bool) {
	return lookup(r, r.matchingRules, nameOrOID)
}
