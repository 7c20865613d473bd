package sds

import (
	"github.com/antchfx/xmlquery"

	"github.com/jan-cerny/oscapxml/scaperr"
	"github.com/jan-cerny/oscapxml/xccdf"
	"github.com/jan-cerny/oscapxml/xmlutil"
)

const (
	// Namespace is the SCAP 1.2 source data stream namespace URI.
	Namespace = "http://scap.nist.gov/schema/scap/source/1.2"
	// DSigNamespace is the SCAP XML digital signature namespace URI.
	DSigNamespace = "http://scap.nist.gov/schema/xml-dsig/1.0"
	// CatalogNamespace is the OASIS XML catalog namespace URI.
	CatalogNamespace = "urn:oasis:names:tc:entity:xmlns:xml:catalog"
)

var (
	useCaseValues     = []string{"CONFIGURATION", "VULNERABILITY", "INVENTORY", "OTHER"}
	scapVersionValues = []string{"1.0", "1.1", "1.2", "1.3"}
)

// DataStreamCollection is the outer envelope bundling data streams and
// the components they reference.
type DataStreamCollection struct {
	ID                 string
	SchematronVersion  string
	DataStreams        []DataStream
	Components         []Component
	ExtendedComponents []ExtendedComponent
	Signatures         []Signature
}

// ParseDataStreamCollection maps a data-stream-collection element tree
// into a DataStreamCollection.
//
// Unrecognized children of the collection element are skipped; the
// schema permits foreign sibling content at this level. A collection
// must carry at least one data-stream and at least one component.
func ParseDataStreamCollection(root *xmlquery.Node) (*DataStreamCollection, error) {
	if root.NamespaceURI != Namespace {
		return nil, scaperr.NamespaceMismatch(root.NamespaceURI, Namespace)
	}
	id, err := xmlutil.RequireAttr(root, "id")
	if err != nil {
		return nil, err
	}
	schematronVersion, err := xmlutil.RequireAttr(root, "schematron-version")
	if err != nil {
		return nil, err
	}

	coll := &DataStreamCollection{ID: id, SchematronVersion: schematronVersion}
	for _, child := range xmlutil.ChildElements(root) {
		switch {
		case xmlutil.Is(child, "data-stream", Namespace):
			ds, err := parseDataStream(child)
			if err != nil {
				return nil, err
			}
			coll.DataStreams = append(coll.DataStreams, ds)
		case xmlutil.Is(child, "component", Namespace):
			component, err := parseComponent(child)
			if err != nil {
				return nil, err
			}
			coll.Components = append(coll.Components, component)
		case xmlutil.Is(child, "extended-component", Namespace):
			ec, err := parseExtendedComponent(child)
			if err != nil {
				return nil, err
			}
			coll.ExtendedComponents = append(coll.ExtendedComponents, ec)
		case xmlutil.Is(child, "Signature", DSigNamespace):
			signature, err := parseSignature(child)
			if err != nil {
				return nil, err
			}
			coll.Signatures = append(coll.Signatures, signature)
		}
	}
	if len(coll.DataStreams) < 1 {
		return nil, scaperr.MissingChildElement("data-stream-collection", "data-stream")
	}
	if len(coll.Components) < 1 {
		return nil, scaperr.MissingChildElement("data-stream-collection", "component")
	}
	return coll, nil
}

// DataStream is a named view over a subset of bundled components,
// partitioned into dictionaries, checklists, checks and extended
// components by reference. The reference lists name components; they do
// not own them.
type DataStream struct {
	ID          string
	UseCase     string
	SCAPVersion string
	Timestamp   string // optional; empty when absent

	Dictionaries       []ComponentRef
	Checklists         []ComponentRef
	Checks             []ComponentRef
	ExtendedComponents []ComponentRef
}

func parseDataStream(el *xmlquery.Node) (DataStream, error) {
	id, err := xmlutil.RequireAttr(el, "id")
	if err != nil {
		return DataStream{}, err
	}
	useCase, err := xmlutil.RequireAttrOptions(el, "use-case", useCaseValues)
	if err != nil {
		return DataStream{}, err
	}
	scapVersion, err := xmlutil.RequireAttrOptions(el, "scap-version", scapVersionValues)
	if err != nil {
		return DataStream{}, err
	}
	timestamp, _ := xmlutil.GetAttr(el, "timestamp")

	dictionaries, err := parseComponentRefs(el, "dictionaries")
	if err != nil {
		return DataStream{}, err
	}
	checklists, err := parseComponentRefs(el, "checklists")
	if err != nil {
		return DataStream{}, err
	}
	checks, err := parseComponentRefs(el, "checks")
	if err != nil {
		return DataStream{}, err
	}
	extendedComponents, err := parseComponentRefs(el, "extended-components")
	if err != nil {
		return DataStream{}, err
	}
	return DataStream{
		ID:                 id,
		UseCase:            useCase,
		SCAPVersion:        scapVersion,
		Timestamp:          timestamp,
		Dictionaries:       dictionaries,
		Checklists:         checklists,
		Checks:             checks,
		ExtendedComponents: extendedComponents,
	}, nil
}

// parseComponentRefs maps the grandchildren of the named reference
// container. An absent container yields an empty list.
func parseComponentRefs(dataStreamEl *xmlquery.Node, containerName string) ([]ComponentRef, error) {
	container := xmlutil.GetChild(dataStreamEl, containerName, Namespace)
	if container == nil {
		return nil, nil
	}
	var refs []ComponentRef
	for _, child := range xmlutil.ChildElements(container) {
		ref, err := parseComponentRef(child)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// ComponentRef is a named pointer from a data stream to a component. A
// leading '#' on Href denotes a same-document fragment pointing at a
// Component.ID.
type ComponentRef struct {
	ID      string
	Type    string // optional; empty when absent
	Href    string
	Catalog *Catalog
}

func parseComponentRef(el *xmlquery.Node) (ComponentRef, error) {
	if !xmlutil.Is(el, "component-ref", Namespace) {
		return ComponentRef{}, scaperr.UnexpectedElement(el.Data)
	}
	id, err := xmlutil.RequireAttr(el, "id")
	if err != nil {
		return ComponentRef{}, err
	}
	linkType, _ := xmlutil.GetAttr(el, "xlink:type")
	href, err := xmlutil.RequireAttr(el, "xlink:href")
	if err != nil {
		return ComponentRef{}, err
	}
	var catalog *Catalog
	if catalogEl := xmlutil.GetChild(el, "catalog", CatalogNamespace); catalogEl != nil {
		c, err := parseCatalog(catalogEl)
		if err != nil {
			return ComponentRef{}, err
		}
		catalog = &c
	}
	return ComponentRef{ID: id, Type: linkType, Href: href, Catalog: catalog}, nil
}

// ComponentContent is the payload variant of a Component: either a
// mapped XCCDF benchmark or content this tool does not model.
type ComponentContent interface {
	isComponentContent()
}

// BenchmarkContent is a component payload mapped as an XCCDF benchmark.
type BenchmarkContent struct {
	Benchmark *xccdf.Benchmark
}

func (BenchmarkContent) isComponentContent() {}

// UnsupportedContent is a component payload of a type this tool does
// not model. It is carried, not rejected, so the collection can still
// represent content it does not understand.
type UnsupportedContent struct{}

func (UnsupportedContent) isComponentContent() {}

// Component is an inlined, identified XML document addressable by id
// from within the collection.
type Component struct {
	ID        string
	Timestamp string
	// Name and Namespace qualify the single payload child element.
	Name      string
	Namespace string
	Content   ComponentContent
}

func parseComponent(el *xmlquery.Node) (Component, error) {
	id, err := xmlutil.RequireAttr(el, "id")
	if err != nil {
		return Component{}, err
	}
	timestamp, err := xmlutil.RequireAttr(el, "timestamp")
	if err != nil {
		return Component{}, err
	}
	children := xmlutil.ChildElements(el)
	if len(children) == 0 {
		return Component{}, scaperr.Newf(scaperr.KindCardinalityViolation,
			"component '%s' doesn't have any child element", id)
	}
	payload := children[0]
	var content ComponentContent = UnsupportedContent{}
	if payload.NamespaceURI == xccdf.Namespace && payload.Data == "Benchmark" {
		benchmark, err := xccdf.ParseBenchmark(payload)
		if err != nil {
			return Component{}, err
		}
		content = BenchmarkContent{Benchmark: benchmark}
	}
	return Component{
		ID:        id,
		Timestamp: timestamp,
		Name:      payload.Data,
		Namespace: payload.NamespaceURI,
		Content:   content,
	}, nil
}

// ExtendedComponent is a placeholder for non-standard bundled content;
// its detailed payload is intentionally not modeled.
type ExtendedComponent struct {
	ID        string
	Timestamp string
}

func parseExtendedComponent(el *xmlquery.Node) (ExtendedComponent, error) {
	id, err := xmlutil.RequireAttr(el, "id")
	if err != nil {
		return ExtendedComponent{}, err
	}
	timestamp, err := xmlutil.RequireAttr(el, "timestamp")
	if err != nil {
		return ExtendedComponent{}, err
	}
	return ExtendedComponent{ID: id, Timestamp: timestamp}, nil
}

// Signature is a placeholder for an XML digital signature; its detailed
// content is intentionally not modeled.
type Signature struct {
	ID string
}

func parseSignature(el *xmlquery.Node) (Signature, error) {
	id, err := xmlutil.RequireAttr(el, "id")
	if err != nil {
		return Signature{}, err
	}
	return Signature{ID: id}, nil
}
