package scaperr

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Kind classifies a mapping error.
type Kind int

const (
	// KindNamespaceMismatch indicates an element outside its expected namespace
	KindNamespaceMismatch Kind = iota
	// KindMissingAttribute indicates a required attribute is absent
	KindMissingAttribute
	// KindInvalidValue indicates a value outside its fixed allowed set
	KindInvalidValue
	// KindUnparseableAttribute indicates an attribute value not convertible to its target type
	KindUnparseableAttribute
	// KindCardinalityViolation indicates a required child element is absent
	KindCardinalityViolation
	// KindDuplicateElement indicates a singleton child element was seen twice
	KindDuplicateElement
	// KindUnexpectedElement indicates an unrecognized child where content is exhaustively modeled
	KindUnexpectedElement
	// KindInconsistentReference indicates a checklist reference resolved to a non-benchmark component
	KindInconsistentReference
)

func (k Kind) String() string {
	switch k {
	case KindNamespaceMismatch:
		return "namespace-mismatch"
	case KindMissingAttribute:
		return "missing-attribute"
	case KindInvalidValue:
		return "invalid-value"
	case KindUnparseableAttribute:
		return "unparseable-attribute"
	case KindCardinalityViolation:
		return "cardinality-violation"
	case KindDuplicateElement:
		return "duplicate-element"
	case KindUnexpectedElement:
		return "unexpected-element"
	case KindInconsistentReference:
		return "inconsistent-reference"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is a structural mapping error. Callers match on Kind rather
// than parsing Error() output.
type Error struct {
	Kind      Kind
	Element   string
	Attribute string
	Value     string
	Allowed   []string
	Message   string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	switch e.Kind {
	case KindMissingAttribute:
		return fmt.Sprintf("Element '%s' doesn't have required '%s' attribute", e.Element, e.Attribute)
	case KindInvalidValue:
		if e.Attribute == "" {
			return fmt.Sprintf("Element '%s' has value '%s', but expected one of %s", e.Element, e.Value, quoteList(e.Allowed))
		}
		return fmt.Sprintf("Element '%s' attribute '%s'='%s', but expected one of %s", e.Element, e.Attribute, e.Value, quoteList(e.Allowed))
	case KindUnparseableAttribute:
		return fmt.Sprintf("Element '%s' attribute '%s' can't parse value '%s'.", e.Element, e.Attribute, e.Value)
	case KindUnexpectedElement:
		return fmt.Sprintf("Unexpected element '%s'", e.Element)
	case KindDuplicateElement:
		return fmt.Sprintf("Duplicate %s elements", e.Element)
	default:
		return e.Kind.String()
	}
}

// quoteList renders an allowed-value set as ["a", "b"].
func quoteList(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// IsKind reports whether err is a mapping Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// AsError returns the mapping Error within err, if any.
func AsError(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

// Newf returns an Error of the given kind with a preformatted message.
// Used where the message embeds owner context (a benchmark, profile,
// group or rule id) rather than a fixed shape.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NamespaceMismatch reports an element found outside its expected namespace.
func NamespaceMismatch(got, want string, opts ...Option) *Error {
	e := &Error{
		Kind:    KindNamespaceMismatch,
		Value:   got,
		Allowed: []string{want},
		Message: fmt.Sprintf("Wrong namespace '%s', expected '%s'", got, want),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// MissingAttribute reports a required attribute absent from an element.
func MissingAttribute(elementName, attributeName string, opts ...Option) *Error {
	e := &Error{
		Kind:      KindMissingAttribute,
		Element:   elementName,
		Attribute: attributeName,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// InvalidValue reports an attribute value outside its fixed allowed set.
// An empty attributeName reports an invalid element text value instead.
func InvalidValue(elementName, attributeName, value string, allowed []string, opts ...Option) *Error {
	e := &Error{
		Kind:      KindInvalidValue,
		Element:   elementName,
		Attribute: attributeName,
		Value:     value,
		Allowed:   allowed,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// UnparseableAttribute reports an attribute value not convertible to its
// target type.
func UnparseableAttribute(elementName, attributeName, value string, opts ...Option) *Error {
	e := &Error{
		Kind:      KindUnparseableAttribute,
		Element:   elementName,
		Attribute: attributeName,
		Value:     value,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// UnexpectedElement reports an unrecognized child element.
func UnexpectedElement(elementName string, opts ...Option) *Error {
	e := &Error{
		Kind:    KindUnexpectedElement,
		Element: elementName,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// DuplicateElement reports a second occurrence of a singleton child element.
func DuplicateElement(elementName string, opts ...Option) *Error {
	e := &Error{
		Kind:    KindDuplicateElement,
		Element: elementName,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// MissingChildElement reports a violated at-least-one cardinality on a
// named child element.
func MissingChildElement(parentName, childName string, opts ...Option) *Error {
	e := &Error{
		Kind:    KindCardinalityViolation,
		Element: childName,
		Message: fmt.Sprintf("The '%s' element needs to have at least 1 child '%s' element.", parentName, childName),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// InconsistentReference reports a checklist reference whose resolved
// component is not an XCCDF benchmark.
func InconsistentReference(refID, componentID string, opts ...Option) *Error {
	e := &Error{
		Kind:    KindInconsistentReference,
		Value:   refID,
		Message: fmt.Sprintf("checklist reference '%s' resolved to component '%s', which is not an XCCDF benchmark", refID, componentID),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
