package xmlutil

import (
	"strings"
	"testing"

	"github.com/antchfx/xmlquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jan-cerny/oscapxml/scaperr"
)

func parseElement(t *testing.T, src string) *xmlquery.Node {
	t.Helper()
	doc, err := xmlquery.Parse(strings.NewReader(src))
	require.NoError(t, err)
	for child := doc.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == xmlquery.ElementNode {
			return child
		}
	}
	t.Fatal("fixture has no element")
	return nil
}

func TestGetAttr(t *testing.T) {
	el := parseElement(t, `<person xmlns="people" name="John"/>`)
	val, ok := GetAttr(el, "name")
	assert.True(t, ok)
	assert.Equal(t, "John", val)

	_, ok = GetAttr(el, "login")
	assert.False(t, ok)
}

func TestGetAttrQualified(t *testing.T) {
	el := parseElement(t, `<ref xmlns:xlink="http://www.w3.org/1999/xlink" xlink:href="#target"/>`)
	val, ok := GetAttr(el, "xlink:href")
	assert.True(t, ok)
	assert.Equal(t, "#target", val)
}

func TestGetAttrDefault(t *testing.T) {
	el := parseElement(t, `<person xmlns="ns" age="24"/>`)
	assert.Equal(t, "24", GetAttrDefault(el, "age", "17"))
	assert.Equal(t, "17", GetAttrDefault(el, "height", "17"))
}

func TestGetAttrDefaultBool(t *testing.T) {
	for _, tc := range []struct {
		name    string
		src     string
		def     bool
		want    bool
		wantErr string
	}{
		{name: "present", src: `<item xmlns="ns" hidden="true"/>`, want: true},
		{name: "absent uses default", src: `<item xmlns="ns"/>`, def: true, want: true},
		{name: "unparseable", src: `<item xmlns="ns" hidden="maybe"/>`,
			wantErr: "Element 'item' attribute 'hidden' can't parse value 'maybe'."},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := GetAttrDefaultBool(parseElement(t, tc.src), "hidden", tc.def)
			if tc.wantErr != "" {
				require.EqualError(t, err, tc.wantErr)
				assert.True(t, scaperr.IsKind(err, scaperr.KindUnparseableAttribute))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestGetAttrDefaultFloat(t *testing.T) {
	for _, tc := range []struct {
		name    string
		src     string
		want    float64
		wantErr string
	}{
		{name: "present", src: `<Rule xmlns="ns" weight="4.5"/>`, want: 4.5},
		{name: "absent uses default", src: `<Rule xmlns="ns"/>`, want: 1.0},
		{name: "unparseable", src: `<Rule xmlns="ns" weight="heavy"/>`,
			wantErr: "Element 'Rule' attribute 'weight' can't parse value 'heavy'."},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := GetAttrDefaultFloat(parseElement(t, tc.src), "weight", 1.0)
			if tc.wantErr != "" {
				require.EqualError(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestGetAttrDefaultOptions(t *testing.T) {
	el := parseElement(t, `<Rule xmlns="ns" severity="high"/>`)
	val, err := GetAttrDefaultOptions(el, "severity", "unknown", []string{"unknown", "low", "high"})
	require.NoError(t, err)
	assert.Equal(t, "high", val)

	val, err = GetAttrDefaultOptions(el, "role", "full", []string{"full", "unscored"})
	require.NoError(t, err)
	assert.Equal(t, "full", val)

	_, err = GetAttrDefaultOptions(el, "severity", "unknown", []string{"unknown", "low"})
	require.EqualError(t, err, `Element 'Rule' attribute 'severity'='high', but expected one of ["unknown", "low"]`)
	assert.True(t, scaperr.IsKind(err, scaperr.KindInvalidValue))
}

func TestRequireAttr(t *testing.T) {
	el := parseElement(t, `<person xmlns="people" name="John"/>`)
	val, err := RequireAttr(el, "name")
	require.NoError(t, err)
	assert.Equal(t, "John", val)
}

func TestRequireAttrMissing(t *testing.T) {
	el := parseElement(t, `<person xmlns="people"/>`)
	_, err := RequireAttr(el, "name")
	require.EqualError(t, err, "Element 'person' doesn't have required 'name' attribute")
	assert.True(t, scaperr.IsKind(err, scaperr.KindMissingAttribute))
}

func TestRequireAttrOptions(t *testing.T) {
	el := parseElement(t, `<person xmlns="people" name="John"/>`)
	val, err := RequireAttrOptions(el, "name", []string{"John", "Peter"})
	require.NoError(t, err)
	assert.Equal(t, "John", val)
}

func TestRequireAttrOptionsWrong(t *testing.T) {
	el := parseElement(t, `<person xmlns="people" name="Albert"/>`)
	_, err := RequireAttrOptions(el, "name", []string{"John", "Peter"})
	require.EqualError(t, err, `Element 'person' attribute 'name'='Albert', but expected one of ["John", "Peter"]`)
	assert.True(t, scaperr.IsKind(err, scaperr.KindInvalidValue))
}
