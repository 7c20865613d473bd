package xccdf

import (
	"github.com/antchfx/xmlquery"

	"github.com/jan-cerny/oscapxml/scaperr"
	"github.com/jan-cerny/oscapxml/xmlutil"
)

// Profile is a named selection and tailoring of the rules and values of
// a benchmark.
type Profile struct {
	ID              string
	ProhibitChanges bool
	Abstract        bool
	NoteTag         string // optional; empty when absent
	Extends         string // optional; empty when absent

	Statuses         []Status
	Version          *Version
	Titles           []Title
	Descriptions     []Description
	References       []Reference
	Platforms        []Platform
	Selects          []Select
	SetComplexValues []SetComplexValue
	SetValues        []SetValue
	RefineValues     []RefineValue
	RefineRules      []RefineRule
}

func parseProfile(el *xmlquery.Node) (Profile, error) {
	id, err := xmlutil.RequireAttr(el, "id")
	if err != nil {
		return Profile{}, err
	}
	prohibitChanges, err := xmlutil.GetAttrDefaultBool(el, "prohibitChanges", false)
	if err != nil {
		return Profile{}, err
	}
	abstract, err := xmlutil.GetAttrDefaultBool(el, "abstract", false)
	if err != nil {
		return Profile{}, err
	}
	noteTag, _ := xmlutil.GetAttr(el, "note-tag")
	extends, _ := xmlutil.GetAttr(el, "extends")

	p := Profile{
		ID:              id,
		ProhibitChanges: prohibitChanges,
		Abstract:        abstract,
		NoteTag:         noteTag,
		Extends:         extends,
	}
	for _, child := range xmlutil.ChildElements(el) {
		switch child.Data {
		case "status":
			status, err := parseStatus(child)
			if err != nil {
				return Profile{}, err
			}
			p.Statuses = append(p.Statuses, status)
		case "version":
			if p.Version != nil {
				return Profile{}, scaperr.DuplicateElement("version")
			}
			version, err := parseVersion(child)
			if err != nil {
				return Profile{}, err
			}
			p.Version = &version
		case "title":
			title, err := parseTitle(child)
			if err != nil {
				return Profile{}, err
			}
			p.Titles = append(p.Titles, title)
		case "description":
			desc, err := parseDescription(child)
			if err != nil {
				return Profile{}, err
			}
			p.Descriptions = append(p.Descriptions, desc)
		case "reference":
			ref, err := parseReference(child)
			if err != nil {
				return Profile{}, err
			}
			p.References = append(p.References, ref)
		case "platform":
			platform, err := parsePlatform(child)
			if err != nil {
				return Profile{}, err
			}
			p.Platforms = append(p.Platforms, platform)
		case "select":
			sel, err := parseSelect(child)
			if err != nil {
				return Profile{}, err
			}
			p.Selects = append(p.Selects, sel)
		case "set-complex-value":
			scv, err := parseSetComplexValue(child)
			if err != nil {
				return Profile{}, err
			}
			p.SetComplexValues = append(p.SetComplexValues, scv)
		case "set-value":
			sv, err := parseSetValue(child)
			if err != nil {
				return Profile{}, err
			}
			p.SetValues = append(p.SetValues, sv)
		case "refine-value":
			rv, err := parseRefineValue(child)
			if err != nil {
				return Profile{}, err
			}
			p.RefineValues = append(p.RefineValues, rv)
		case "refine-rule":
			rr, err := parseRefineRule(child)
			if err != nil {
				return Profile{}, err
			}
			p.RefineRules = append(p.RefineRules, rr)
		default:
			return Profile{}, scaperr.Newf(scaperr.KindUnexpectedElement,
				"Profile '%s': unexpected element '%s'", id, child.Data)
		}
	}
	if len(p.Titles) == 0 {
		return Profile{}, scaperr.Newf(scaperr.KindCardinalityViolation,
			"Profile '%s' doesn't have any title", id)
	}
	return p, nil
}
