package sds

import (
	"github.com/antchfx/xmlquery"

	"github.com/jan-cerny/oscapxml/scaperr"
	"github.com/jan-cerny/oscapxml/xmlutil"
)

// Catalog holds URI rewrite rules used when a component reference
// points outside the document. Remote references are not followed, so
// the rules are carried for completeness only.
type Catalog struct {
	URIs        []CatURI
	RewriteURIs []RewriteURI
}

func parseCatalog(el *xmlquery.Node) (Catalog, error) {
	if !xmlutil.Is(el, "catalog", CatalogNamespace) {
		return Catalog{}, scaperr.UnexpectedElement(el.Data)
	}
	var catalog Catalog
	for _, child := range xmlutil.ChildElements(el) {
		switch {
		case xmlutil.Is(child, "uri", CatalogNamespace):
			uri, err := parseCatURI(child)
			if err != nil {
				return Catalog{}, err
			}
			catalog.URIs = append(catalog.URIs, uri)
		case xmlutil.Is(child, "rewriteURI", CatalogNamespace):
			rewrite, err := parseRewriteURI(child)
			if err != nil {
				return Catalog{}, err
			}
			catalog.RewriteURIs = append(catalog.RewriteURIs, rewrite)
		default:
			return Catalog{}, scaperr.Newf(scaperr.KindUnexpectedElement,
				"Unexpected element '%s', expected either 'uri' or 'rewriteURI'", child.Data)
		}
	}
	return catalog, nil
}

// CatURI maps a named entity to a URI.
type CatURI struct {
	Name string
	URI  string
}

func parseCatURI(el *xmlquery.Node) (CatURI, error) {
	name, err := xmlutil.RequireAttr(el, "name")
	if err != nil {
		return CatURI{}, err
	}
	uri, err := xmlutil.RequireAttr(el, "uri")
	if err != nil {
		return CatURI{}, err
	}
	return CatURI{Name: name, URI: uri}, nil
}

// RewriteURI rewrites a URI prefix during resolution.
type RewriteURI struct {
	URIStartString string
	RewritePrefix  string
}

func parseRewriteURI(el *xmlquery.Node) (RewriteURI, error) {
	uriStartString, err := xmlutil.RequireAttr(el, "uriStartString")
	if err != nil {
		return RewriteURI{}, err
	}
	rewritePrefix, err := xmlutil.RequireAttr(el, "rewritePrefix")
	if err != nil {
		return RewriteURI{}, err
	}
	return RewriteURI{URIStartString: uriStartString, RewritePrefix: rewritePrefix}, nil
}
