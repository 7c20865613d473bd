package xccdf

import (
	"github.com/antchfx/xmlquery"

	"github.com/jan-cerny/oscapxml/scaperr"
	"github.com/jan-cerny/oscapxml/xmlutil"
)

// itemAttributes is the attribute shape shared by Group and Rule.
type itemAttributes struct {
	ID              string
	Abstract        bool
	ClusterID       string // optional; empty when absent
	Extends         string // optional; empty when absent
	Hidden          bool
	ProhibitChanges bool
	Selected        bool
	Weight          float64
}

func parseItemAttributes(el *xmlquery.Node) (itemAttributes, error) {
	id, err := xmlutil.RequireAttr(el, "id")
	if err != nil {
		return itemAttributes{}, err
	}
	abstract, err := xmlutil.GetAttrDefaultBool(el, "abstract", false)
	if err != nil {
		return itemAttributes{}, err
	}
	hidden, err := xmlutil.GetAttrDefaultBool(el, "hidden", false)
	if err != nil {
		return itemAttributes{}, err
	}
	prohibitChanges, err := xmlutil.GetAttrDefaultBool(el, "prohibitChanges", false)
	if err != nil {
		return itemAttributes{}, err
	}
	selected, err := xmlutil.GetAttrDefaultBool(el, "selected", true)
	if err != nil {
		return itemAttributes{}, err
	}
	weight, err := xmlutil.GetAttrDefaultFloat(el, "weight", 1.0)
	if err != nil {
		return itemAttributes{}, err
	}
	clusterID, _ := xmlutil.GetAttr(el, "cluster-id")
	extends, _ := xmlutil.GetAttr(el, "extends")
	return itemAttributes{
		ID:              id,
		Abstract:        abstract,
		ClusterID:       clusterID,
		Extends:         extends,
		Hidden:          hidden,
		ProhibitChanges: prohibitChanges,
		Selected:        selected,
		Weight:          weight,
	}, nil
}

// Group is a hierarchical checklist node. Groups nest further Values,
// Groups and Rules, forming the checklist tree.
type Group struct {
	itemAttributes

	Statuses     []Status
	Version      *Version
	Titles       []Title
	Descriptions []Description
	Warnings     []Warning
	Questions    []Question
	References   []Reference
	Metadata     []Metadata
	Rationales   []Rationale
	Platforms    []Platform
	Requires     []Requires
	Conflicts    []Conflicts
	Values       []Value
	Groups       []Group
	Rules        []Rule
}

func parseGroup(el *xmlquery.Node) (Group, error) {
	attrs, err := parseItemAttributes(el)
	if err != nil {
		return Group{}, err
	}
	g := Group{itemAttributes: attrs}
	for _, child := range xmlutil.ChildElements(el) {
		switch child.Data {
		case "status":
			status, err := parseStatus(child)
			if err != nil {
				return Group{}, err
			}
			g.Statuses = append(g.Statuses, status)
		case "version":
			if g.Version != nil {
				return Group{}, scaperr.DuplicateElement("version")
			}
			version, err := parseVersion(child)
			if err != nil {
				return Group{}, err
			}
			g.Version = &version
		case "title":
			title, err := parseTitle(child)
			if err != nil {
				return Group{}, err
			}
			g.Titles = append(g.Titles, title)
		case "description":
			desc, err := parseDescription(child)
			if err != nil {
				return Group{}, err
			}
			g.Descriptions = append(g.Descriptions, desc)
		case "warning":
			warning, err := parseWarning(child)
			if err != nil {
				return Group{}, err
			}
			g.Warnings = append(g.Warnings, warning)
		case "question":
			question, err := parseQuestion(child)
			if err != nil {
				return Group{}, err
			}
			g.Questions = append(g.Questions, question)
		case "reference":
			ref, err := parseReference(child)
			if err != nil {
				return Group{}, err
			}
			g.References = append(g.References, ref)
		case "metadata":
			metadata, err := parseMetadata(child)
			if err != nil {
				return Group{}, err
			}
			g.Metadata = append(g.Metadata, metadata)
		case "rationale":
			rationale, err := parseRationale(child)
			if err != nil {
				return Group{}, err
			}
			g.Rationales = append(g.Rationales, rationale)
		case "platform":
			platform, err := parsePlatform(child)
			if err != nil {
				return Group{}, err
			}
			g.Platforms = append(g.Platforms, platform)
		case "requires":
			requires, err := parseRequires(child)
			if err != nil {
				return Group{}, err
			}
			g.Requires = append(g.Requires, requires)
		case "conflicts":
			conflicts, err := parseConflicts(child)
			if err != nil {
				return Group{}, err
			}
			g.Conflicts = append(g.Conflicts, conflicts)
		case "Value":
			value, err := parseValue(child)
			if err != nil {
				return Group{}, err
			}
			g.Values = append(g.Values, value)
		case "Group":
			group, err := parseGroup(child)
			if err != nil {
				return Group{}, err
			}
			g.Groups = append(g.Groups, group)
		case "Rule":
			rule, err := parseRule(child)
			if err != nil {
				return Group{}, err
			}
			g.Rules = append(g.Rules, rule)
		default:
			return Group{}, scaperr.Newf(scaperr.KindUnexpectedElement,
				"Group '%s': unexpected element '%s'", attrs.ID, child.Data)
		}
	}
	return g, nil
}
