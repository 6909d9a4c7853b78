package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalPrimitives(t *testing.T) {
	assert.Equal(t, "int", Primitive(KInt).Canonical())
	assert.Equal(t, "float", Primitive(KFloat).Canonical())
	assert.Equal(t, "bool", Primitive(KBool).Canonical())
	assert.Equal(t, "str", Primitive(KStr).Canonical())
	assert.Equal(t, "void", Primitive(KVoid).Canonical())
}

func TestCanonicalNamed(t *testing.T) {
	assert.Equal(t, "Point", Named("Point").Canonical())
}

func TestCanonicalReferencePrependsRefUnderscore(t *testing.T) {
	ref := Reference(Primitive(KInt))
	assert.Equal(t, "ref_int", ref.Canonical())

	nested := Reference(ref)
	assert.Equal(t, "ref_ref_int", nested.Canonical())
}

func TestReferentOnNonReferenceFails(t *testing.T) {
	_, err := Primitive(KInt).Referent()
	assert.ErrorIs(t, err, ErrNotReference)
}

func TestReferentOnReferenceSucceeds(t *testing.T) {
	ref := Reference(Named("Point"))
	referent, err := ref.Referent()
	require.NoError(t, err)
	assert.True(t, referent.Equal(Named("Point")))
}

func TestIsReference(t *testing.T) {
	assert.False(t, Primitive(KBool).IsReference())
	assert.True(t, Reference(Primitive(KBool)).IsReference())
}

func TestEqualStructural(t *testing.T) {
	assert.True(t, Primitive(KInt).Equal(Primitive(KInt)))
	assert.False(t, Primitive(KInt).Equal(Primitive(KFloat)))
	assert.True(t, Named("Point").Equal(Named("Point")))
	assert.False(t, Named("Point").Equal(Named("Line")))
	assert.True(t, Reference(Named("Point")).Equal(Reference(Named("Point"))))
	assert.False(t, Reference(Named("Point")).Equal(Named("Point")))
}

func TestFromName(t *testing.T) {
	declared := map[string]bool{"Point": true}
	isDeclared := func(s string) bool { return declared[s] }

	tt, err := FromName("int", isDeclared)
	require.NoError(t, err)
	assert.Equal(t, Primitive(KInt), tt)

	tt, err = FromName("Point", isDeclared)
	require.NoError(t, err)
	assert.Equal(t, Named("Point"), tt)

	_, err = FromName("Nope", isDeclared)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"Nope"`)
}
