// Copyright 2025 The directory-ldap-api Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	"errors"
	"sync"

	"github.com/nE0sIghT/directory-ldap-api/log"
)

// Attribute names of the meta schema: the entries of a schema partition that
// describe schema elements.
const (
	attrOID                = "m-oid"
	attrName               = "m-name"
	attrDescription        = "m-description"
	attrObsolete           = "m-obsolete"
	attrSupAttributeType   = "m-supAttributeType"
	attrEquality           = "m-equality"
	attrOrdering           = "m-ordering"
	attrSubstr             = "m-substr"
	attrSyntax             = "m-syntax"
	attrSingleValue        = "m-singleValue"
	attrCollective         = "m-collective"
	attrNoUserModification = "m-noUserModification"
	attrUsage              = "m-usage"
	attrTypeObjectClass    = "m-typeObjectClass"
	attrSupObjectClass     = "m-supObjectClass"
	attrMust               = "m-must"
	attrMay                = "m-may"
	attrHumanReadable      = "x-human-readable"
	attrCreateTimestamp    = "createTimestamp"
)

// EntityError reports an entry that cannot be turned into a schema entity.
type EntityError struct {
	DN  string
	Msg string
}

func (e *EntityError) Error() string {
	if e.DN == "" {
		return "schema: " + e.Msg
	}
	return "schema: " + e.DN + ": " + e.Msg
}

// ErrNoConstructor is returned by a ConstructorRegistry when no constructor
// is registered for an OID.
var ErrNoConstructor = errors.New("schema: no constructor registered")

// SyntaxChecker validates that a value conforms to a syntax.
type SyntaxChecker interface {
	OID() string
	Valid(value []byte) bool
}

// Normalizer maps attribute values to a canonical form before comparison.
type Normalizer interface {
	OID() string
	Normalize(value string) (string, error)
}

// Comparator orders normalized values for a matching rule.
type Comparator interface {
	OID() string
	Compare(a, b string) int
}

// ConstructorRegistry maps OIDs to constructor functions for loadable schema
// behavior: syntax checkers, normalizers and comparators. Constructors are
// registered explicitly at startup; there is no dynamic code loading of any
// kind. The registry is safe for concurrent use.
type ConstructorRegistry[T any] struct {
	mu     sync.RWMutex
	ctors  map[string]func() T
	logger log.Logger
}

// NewConstructorRegistry returns an empty registry logging through logger.
func NewConstructorRegistry[T any](logger log.Logger) *ConstructorRegistry[T] {
	return &ConstructorRegistry[T]{
		ctors:  make(map[string]func() T),
		logger: log.OrNop(logger),
	}
}

// Register adds a constructor for oid, replacing any previous one.
func (r *ConstructorRegistry[T]) Register(oid string, ctor func() T) {
	r.mu.Lock()
	r.ctors[oid] = ctor
	r.mu.Unlock()
	r.logger.Debug("constructor registered", log.Fields{"oid": oid})
}

// New instantiates the object registered for oid.
func (r *ConstructorRegistry[T]) New(oid string) (T, error) {
	r.mu.RLock()
	ctor, ok := r.ctors[oid]
	r.mu.RUnlock()
	if !ok {
		var zero T
		r.logger.Warn("no constructor for oid", log.Fields{"oid": oid})
		return zero, ErrNoConstructor
	}
	return ctor(), nil
}

// EntityFactory builds schema entities from meta schema entries.
type EntityFactory struct {
	logger log.Logger

	// SyntaxCheckers, Normalizers and Comparators supply the loadable
	// behavior referenced by syntaxes and matching rules.
	SyntaxCheckers *ConstructorRegistry[SyntaxChecker]
	Normalizers    *ConstructorRegistry[Normalizer]
	Comparators    *ConstructorRegistry[Comparator]
}

// NewEntityFactory returns a factory with empty constructor registries,
// logging through logger.
func NewEntityFactory(logger log.Logger) *EntityFactory {
	logger = log.OrNop(logger)
	return &EntityFactory{
		logger:         logger,
		SyntaxCheckers: NewConstructorRegistry[SyntaxChecker](logger),
		Normalizers:    NewConstructorRegistry[Normalizer](logger),
		Comparators:    NewConstructorRegistry[Comparator](logger),
	}
}

// checkOID extracts and validates the m-oid attribute of entry.
func checkOID(entry *Entry) (string, error) {
	if entry == nil {
		return "", &EntityError{Msg: "entry is absent"}
	}
	oid, ok := entry.First(attrOID)
	if !ok {
		return "", &EntityError{DN: entry.DN, Msg: "entry has no m-oid attribute"}
	}
	if !IsNumericOID(oid) {
		return "", &EntityError{DN: entry.DN, Msg: "invalid OID " + oid}
	}
	return oid, nil
}

// common extracts the elements shared by all entity kinds.
func common(entry *Entry) (names []string, description string, obsolete bool) {
	names = entry.Values(attrName)
	description, _ = entry.First(attrDescription)
	obsolete = entry.Bool(attrObsolete)
	return names, description, obsolete
}

// AttributeType builds an attribute type from a meta schema entry.
func (f *EntityFactory) AttributeType(entry *Entry) (*AttributeType, error) {
	oid, err := checkOID(entry)
	if err != nil {
		return nil, err
	}
	at := &AttributeType{OID: oid}
	at.Names, at.Description, at.Obsolete = common(entry)
	at.SuperiorOID, _ = entry.First(attrSupAttributeType)
	at.EqualityOID, _ = entry.First(attrEquality)
	at.OrderingOID, _ = entry.First(attrOrdering)
	at.SubstringOID, _ = entry.First(attrSubstr)
	at.SyntaxOID, _ = entry.First(attrSyntax)
	at.SingleValue = entry.Bool(attrSingleValue)
	at.Collective = entry.Bool(attrCollective)
	at.NoUserModification = entry.Bool(attrNoUserModification)
	if usage, ok := entry.First(attrUsage); ok {
		u, ok := ParseUsage(usage)
		if !ok {
			return nil, &EntityError{DN: entry.DN, Msg: "invalid usage " + usage}
		}
		at.Usage = u
	}
	if at.CreateTimestamp, err = entry.Time(attrCreateTimestamp); err != nil {
		return nil, &EntityError{DN: entry.DN, Msg: "invalid createTimestamp: " + err.Error()}
	}
	f.logger.Debug("attribute type built", log.Fields{"oid": oid, "name": at.Name()})
	return at, nil
}

// ObjectClass builds an object class from a meta schema entry.
func (f *EntityFactory) ObjectClass(entry *Entry) (*ObjectClass, error) {
	oid, err := checkOID(entry)
	if err != nil {
		return nil, err
	}
	oc := &ObjectClass{OID: oid, Kind: Structural}
	oc.Names, oc.Description, oc.Obsolete = common(entry)
	oc.SuperiorOIDs = entry.Values(attrSupObjectClass)
	oc.Must = entry.Values(attrMust)
	oc.May = entry.Values(attrMay)
	if kind, ok := entry.First(attrTypeObjectClass); ok {
		k, ok := ParseObjectClassKind(kind)
		if !ok {
			return nil, &EntityError{DN: entry.DN, Msg: "invalid object class kind " + kind}
		}
		oc.Kind = k
	}
	if oc.CreateTimestamp, err = entry.Time(attrCreateTimestamp); err != nil {
		return nil, &EntityError{DN: entry.DN, Msg: "invalid createTimestamp: " + err.Error()}
	}
	f.logger.Debug("object class built", log.Fields{"oid": oid, "name": oc.Name()})
	return oc, nil
}

// Syntax builds a syntax from a meta schema entry and verifies that a syntax
// checker is registered for it.
func (f *EntityFactory) Syntax(entry *Entry) (*Syntax, error) {
	oid, err := checkOID(entry)
	if err != nil {
		return nil, err
	}
	s := &Syntax{OID: oid, HumanReadable: entry.Bool(attrHumanReadable)}
	_, s.Description, s.Obsolete = common(entry)
	if s.CreateTimestamp, err = entry.Time(attrCreateTimestamp); err != nil {
		return nil, &EntityError{DN: entry.DN, Msg: "invalid createTimestamp: " + err.Error()}
	}
	if _, err := f.SyntaxCheckers.New(oid); err != nil {
		return nil, &EntityError{DN: entry.DN, Msg: "no syntax checker for " + oid}
	}
	f.logger.Debug("syntax built", log.Fields{"oid": oid})
	return s, nil
}

// MatchingRule builds a matching rule from a meta schema entry and verifies
// that a normalizer and a comparator are registered for it.
func (f *EntityFactory) MatchingRule(entry *Entry) (*MatchingRule, error) {
	oid, err := checkOID(entry)
	if err != nil {
		return nil, err
	}
	mr := &MatchingRule{OID: oid}
	mr.Names, mr.Description, mr.Obsolete = common(entry)
	mr.SyntaxOID, _ = entry.First(attrSyntax)
	if mr.CreateTimestamp, err = entry.Time(attrCreateTimestamp); err != nil {
		return nil, &EntityError{DN: entry.DN, Msg: "invalid createTimestamp: " + err.Error()}
	}
	if _, err := f.Normalizers.New(oid); err != nil {
		return nil, &EntityError{DN: entry.DN, Msg: "no normalizer for " + oid}
	}
	if _, err := f.Comparators.New(oid); err != nil {
		return nil, &EntityError{DN: entry.DN, Msg: "no comparator for " + oid}
	}
	f.logger.Debug("matching rule built", log.Fields{"oid": oid, "name": mr.Name()})
	return mr, nil
}
