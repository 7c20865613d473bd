package xmlutil

import (
	"strings"

	"github.com/antchfx/xmlquery"
)

// Is reports whether el is an element with the given local name in the
// given namespace.
func Is(el *xmlquery.Node, local, namespace string) bool {
	return el != nil && el.Type == xmlquery.ElementNode &&
		el.Data == local && el.NamespaceURI == namespace
}

// ChildElements returns the element children of el in document order,
// skipping text, comment and other non-element nodes.
func ChildElements(el *xmlquery.Node) []*xmlquery.Node {
	var children []*xmlquery.Node
	for child := el.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == xmlquery.ElementNode {
			children = append(children, child)
		}
	}
	return children
}

// GetChild returns the first element child of el with the given local
// name and namespace, or nil if there is none.
func GetChild(el *xmlquery.Node, local, namespace string) *xmlquery.Node {
	for child := el.FirstChild; child != nil; child = child.NextSibling {
		if Is(child, local, namespace) {
			return child
		}
	}
	return nil
}

// Text returns the recursively collected text content of el.
func Text(el *xmlquery.Node) string {
	return el.InnerText()
}

// HTMLToString flattens a restricted-HTML content model into plain text.
// Text nodes have embedded newlines replaced by spaces, a <br/> child
// becomes a literal newline, and any other child element contributes its
// own recursive text content with newlines likewise collapsed to spaces.
// Document order is preserved.
func HTMLToString(el *xmlquery.Node) string {
	var sb strings.Builder
	for child := el.FirstChild; child != nil; child = child.NextSibling {
		switch child.Type {
		case xmlquery.TextNode, xmlquery.CharDataNode:
			sb.WriteString(strings.ReplaceAll(child.Data, "\n", " "))
		case xmlquery.ElementNode:
			if child.Data == "br" {
				sb.WriteString("\n")
			} else {
				sb.WriteString(strings.ReplaceAll(child.InnerText(), "\n", " "))
			}
		}
	}
	return sb.String()
}
