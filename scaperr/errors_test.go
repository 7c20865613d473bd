package scaperr

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	for _, tc := range []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "missing attribute",
			err:  MissingAttribute("person", "name"),
			want: "Element 'person' doesn't have required 'name' attribute",
		},
		{
			name: "invalid attribute value",
			err:  InvalidValue("person", "name", "Albert", []string{"John", "Peter"}),
			want: `Element 'person' attribute 'name'='Albert', but expected one of ["John", "Peter"]`,
		},
		{
			name: "invalid text value",
			err:  InvalidValue("status", "", "final", []string{"draft", "accepted"}),
			want: `Element 'status' has value 'final', but expected one of ["draft", "accepted"]`,
		},
		{
			name: "unparseable attribute",
			err:  UnparseableAttribute("Rule", "weight", "heavy"),
			want: "Element 'Rule' attribute 'weight' can't parse value 'heavy'.",
		},
		{
			name: "namespace mismatch",
			err:  NamespaceMismatch("urn:wrong", "http://scap.nist.gov/schema/scap/source/1.2"),
			want: "Wrong namespace 'urn:wrong', expected 'http://scap.nist.gov/schema/scap/source/1.2'",
		},
		{
			name: "unexpected element",
			err:  UnexpectedElement("bogus"),
			want: "Unexpected element 'bogus'",
		},
		{
			name: "duplicate element",
			err:  DuplicateElement("version"),
			want: "Duplicate version elements",
		},
		{
			name: "missing child element",
			err:  MissingChildElement("data-stream-collection", "data-stream"),
			want: "The 'data-stream-collection' element needs to have at least 1 child 'data-stream' element.",
		},
		{
			name: "inconsistent reference",
			err:  InconsistentReference("ref1", "comp1"),
			want: "checklist reference 'ref1' resolved to component 'comp1', which is not an XCCDF benchmark",
		},
		{
			name: "newf",
			err:  Newf(KindCardinalityViolation, "Profile '%s' doesn't have any title", "p1"),
			want: "Profile 'p1' doesn't have any title",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.EqualError(t, tc.err, tc.want)
		})
	}
}

func TestIsKind(t *testing.T) {
	err := MissingAttribute("person", "name")
	assert.True(t, IsKind(err, KindMissingAttribute))
	assert.False(t, IsKind(err, KindInvalidValue))
	assert.False(t, IsKind(errors.New("plain"), KindMissingAttribute))

	wrapped := errors.Wrap(err, "mapping person")
	assert.True(t, IsKind(wrapped, KindMissingAttribute))
}

func TestAsError(t *testing.T) {
	err := InvalidValue("person", "name", "Albert", []string{"John"})
	e, ok := AsError(errors.Wrap(err, "context"))
	assert.True(t, ok)
	assert.Equal(t, KindInvalidValue, e.Kind)
	assert.Equal(t, "person", e.Element)
	assert.Equal(t, "name", e.Attribute)
	assert.Equal(t, "Albert", e.Value)

	_, ok = AsError(errors.New("plain"))
	assert.False(t, ok)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "missing-attribute", KindMissingAttribute.String())
	assert.Equal(t, "inconsistent-reference", KindInconsistentReference.String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
}
