package types

import (
	"errors"
	"fmt"
)

// Kind discriminates the variants of TType.
type Kind int

const (
	KInt Kind = iota
	KFloat
	KBool
	KStr
	KVoid
	KNamed
	KReference
)

var primitiveNames = map[Kind]string{
	KInt:   "int",
	KFloat: "float",
	KBool:  "bool",
	KStr:   "str",
	KVoid:  "void",
}

var primitiveByName = map[string]Kind{
	"int":   KInt,
	"float": KFloat,
	"bool":  KBool,
	"str":   KStr,
	"void":  KVoid,
}

// ErrNotReference is returned by Referent when called on a non-reference
// TType.
var ErrNotReference = errors.New("types: not a reference type")

// TType is a type descriptor: a primitive, a named custom type, or a
// reference wrapping another TType.
type TType struct {
	Kind Kind
	Name string // populated for KNamed
	Ref  *TType // populated for KReference
}

// Primitive constructs one of the five built-in primitive descriptors.
// It panics if k is not a primitive Kind — callers only ever pass one of
// the Kind constants above, so this is a programmer error, not a runtime
// condition arising from source input.
func Primitive(k Kind) TType {
	if _, ok := primitiveNames[k]; !ok {
		panic(fmt.Sprintf("types: %v is not a primitive kind", k))
	}

	return TType{Kind: k}
}

// Named constructs a descriptor for a previously declared composite type.
func Named(name string) TType {
	return TType{Kind: KNamed, Name: name}
}

// Reference constructs a descriptor that wraps referent as a reference.
func Reference(referent TType) TType {
	r := referent

	return TType{Kind: KReference, Ref: &r}
}

// FromName resolves a lexeme to its TType: a primitive keyword, or a named
// custom type if isDeclared reports that it has been declared. It returns
// an error quoting the lexeme verbatim when neither applies, matching the
// wording of the original strToType's "Unknown type:" failure.
func FromName(name string, isDeclared func(string) bool) (TType, error) {
	if k, ok := primitiveByName[name]; ok {
		return Primitive(k), nil
	}
	if isDeclared != nil && isDeclared(name) {
		return Named(name), nil
	}

	return TType{}, fmt.Errorf("types: unknown type: %q", name)
}

// IsReference reports whether t's outermost variant is a reference.
func (t TType) IsReference() bool {
	return t.Kind == KReference
}

// Referent returns the type t points to. It returns ErrNotReference if t
// is not a reference.
func (t TType) Referent() (TType, error) {
	if !t.IsReference() {
		return TType{}, ErrNotReference
	}

	return *t.Ref, nil
}

// Equal reports whether t and other are structurally equal.
func (t TType) Equal(other TType) bool {
	if t.Kind != other.Kind {
		return false
	}
	switch t.Kind {
	case KNamed:
		return t.Name == other.Name
	case KReference:
		return t.Ref.Equal(*other.Ref)
	default:
		return true
	}
}

// Canonical renders t's canonical string form: a primitive keyword, a
// custom type's name, or "ref_" prepended to the referent's canonical
// form. This is the key used in operator and generic-function mangling.
func (t TType) Canonical() string {
	switch t.Kind {
	case KNamed:
		return t.Name
	case KReference:
		return "ref_" + t.Ref.Canonical()
	default:
		name, ok := primitiveNames[t.Kind]
		if !ok {
			return fmt.Sprintf("TType(%d)", int(t.Kind))
		}

		return name
	}
}

// String implements fmt.Stringer as an alias for Canonical, so TType reads
// naturally in diagnostics and %v formatting.
func (t TType) String() string {
	return t.Canonical()
}
