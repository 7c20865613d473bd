package xmlutil

import (
	"strconv"

	"github.com/antchfx/xmlquery"
	"github.com/samber/lo"

	"github.com/jan-cerny/oscapxml/scaperr"
)

// attrKey returns the qualified lookup key of an attribute: the local
// name, or prefix:local for prefixed attributes such as xlink:href.
func attrKey(attr xmlquery.Attr) string {
	if attr.Name.Space != "" {
		return attr.Name.Space + ":" + attr.Name.Local
	}
	return attr.Name.Local
}

// GetAttr looks up an attribute by qualified name, reporting presence.
func GetAttr(el *xmlquery.Node, name string) (string, bool) {
	for _, attr := range el.Attr {
		if attrKey(attr) == name {
			return attr.Value, true
		}
	}
	return "", false
}

// GetAttrDefault returns the attribute value, or def if absent.
func GetAttrDefault(el *xmlquery.Node, name, def string) string {
	if val, ok := GetAttr(el, name); ok {
		return val
	}
	return def
}

// GetAttrDefaultBool returns the attribute parsed as a boolean, or def
// if absent.
func GetAttrDefaultBool(el *xmlquery.Node, name string, def bool) (bool, error) {
	val, ok := GetAttr(el, name)
	if !ok {
		return def, nil
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return false, scaperr.UnparseableAttribute(el.Data, name, val)
	}
	return parsed, nil
}

// GetAttrDefaultFloat returns the attribute parsed as a float, or def
// if absent.
func GetAttrDefaultFloat(el *xmlquery.Node, name string, def float64) (float64, error) {
	val, ok := GetAttr(el, name)
	if !ok {
		return def, nil
	}
	parsed, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, scaperr.UnparseableAttribute(el.Data, name, val)
	}
	return parsed, nil
}

// GetAttrDefaultOptions returns the attribute value (or def if absent),
// checked against a fixed allowed-value set.
func GetAttrDefaultOptions(el *xmlquery.Node, name, def string, options []string) (string, error) {
	val := GetAttrDefault(el, name, def)
	if !lo.Contains(options, val) {
		return "", scaperr.InvalidValue(el.Data, name, val, options)
	}
	return val, nil
}

// RequireAttr returns the attribute value, failing if it is absent.
func RequireAttr(el *xmlquery.Node, name string) (string, error) {
	val, ok := GetAttr(el, name)
	if !ok {
		return "", scaperr.MissingAttribute(el.Data, name)
	}
	return val, nil
}

// RequireAttrOptions returns the attribute value, failing if it is
// absent or outside the fixed allowed-value set.
func RequireAttrOptions(el *xmlquery.Node, name string, options []string) (string, error) {
	val, err := RequireAttr(el, name)
	if err != nil {
		return "", err
	}
	if !lo.Contains(options, val) {
		return "", scaperr.InvalidValue(el.Data, name, val, options)
	}
	return val, nil
}
