package xccdf

import (
	"github.com/antchfx/xmlquery"

	"github.com/jan-cerny/oscapxml/scaperr"
	"github.com/jan-cerny/oscapxml/xmlutil"
)

var (
	roleValues     = []string{"full", "unscored", "unchecked"}
	severityValues = []string{"unknown", "info", "low", "medium", "high"}
)

// Rule is a leaf checklist node carrying check and fix instructions.
type Rule struct {
	itemAttributes
	Role     string
	Severity string
	Multiple bool

	Statuses      []Status
	Version       *Version
	Titles        []Title
	Descriptions  []Description
	Warnings      []Warning
	Questions     []Question
	References    []Reference
	Metadata      []Metadata
	Rationales    []Rationale
	Platforms     []Platform
	Requires      []Requires
	Conflicts     []Conflicts
	Idents        []Ident
	ProfileNotes  []ProfileNote
	FixTexts      []FixText
	Fixes         []Fix
	Checks        []Check
	ComplexChecks []ComplexCheck
}

func parseRule(el *xmlquery.Node) (Rule, error) {
	attrs, err := parseItemAttributes(el)
	if err != nil {
		return Rule{}, err
	}
	role, err := xmlutil.GetAttrDefaultOptions(el, "role", "full", roleValues)
	if err != nil {
		return Rule{}, err
	}
	severity, err := xmlutil.GetAttrDefaultOptions(el, "severity", "unknown", severityValues)
	if err != nil {
		return Rule{}, err
	}
	multiple, err := xmlutil.GetAttrDefaultBool(el, "multiple", false)
	if err != nil {
		return Rule{}, err
	}

	r := Rule{
		itemAttributes: attrs,
		Role:           role,
		Severity:       severity,
		Multiple:       multiple,
	}
	for _, child := range xmlutil.ChildElements(el) {
		switch child.Data {
		case "status":
			status, err := parseStatus(child)
			if err != nil {
				return Rule{}, err
			}
			r.Statuses = append(r.Statuses, status)
		case "version":
			if r.Version != nil {
				return Rule{}, scaperr.DuplicateElement("version")
			}
			version, err := parseVersion(child)
			if err != nil {
				return Rule{}, err
			}
			r.Version = &version
		case "title":
			title, err := parseTitle(child)
			if err != nil {
				return Rule{}, err
			}
			r.Titles = append(r.Titles, title)
		case "description":
			desc, err := parseDescription(child)
			if err != nil {
				return Rule{}, err
			}
			r.Descriptions = append(r.Descriptions, desc)
		case "warning":
			warning, err := parseWarning(child)
			if err != nil {
				return Rule{}, err
			}
			r.Warnings = append(r.Warnings, warning)
		case "question":
			question, err := parseQuestion(child)
			if err != nil {
				return Rule{}, err
			}
			r.Questions = append(r.Questions, question)
		case "reference":
			ref, err := parseReference(child)
			if err != nil {
				return Rule{}, err
			}
			r.References = append(r.References, ref)
		case "metadata":
			metadata, err := parseMetadata(child)
			if err != nil {
				return Rule{}, err
			}
			r.Metadata = append(r.Metadata, metadata)
		case "rationale":
			rationale, err := parseRationale(child)
			if err != nil {
				return Rule{}, err
			}
			r.Rationales = append(r.Rationales, rationale)
		case "platform":
			platform, err := parsePlatform(child)
			if err != nil {
				return Rule{}, err
			}
			r.Platforms = append(r.Platforms, platform)
		case "requires":
			requires, err := parseRequires(child)
			if err != nil {
				return Rule{}, err
			}
			r.Requires = append(r.Requires, requires)
		case "conflicts":
			conflicts, err := parseConflicts(child)
			if err != nil {
				return Rule{}, err
			}
			r.Conflicts = append(r.Conflicts, conflicts)
		case "ident":
			ident, err := parseIdent(child)
			if err != nil {
				return Rule{}, err
			}
			r.Idents = append(r.Idents, ident)
		case "profile-note":
			note, err := parseProfileNote(child)
			if err != nil {
				return Rule{}, err
			}
			r.ProfileNotes = append(r.ProfileNotes, note)
		case "fixtext":
			fixText, err := parseFixText(child)
			if err != nil {
				return Rule{}, err
			}
			r.FixTexts = append(r.FixTexts, fixText)
		case "fix":
			fix, err := parseFix(child)
			if err != nil {
				return Rule{}, err
			}
			r.Fixes = append(r.Fixes, fix)
		case "check":
			check, err := parseCheck(child)
			if err != nil {
				return Rule{}, err
			}
			r.Checks = append(r.Checks, check)
		case "complex-check":
			cc, err := parseComplexCheck(child)
			if err != nil {
				return Rule{}, err
			}
			r.ComplexChecks = append(r.ComplexChecks, cc)
		default:
			return Rule{}, scaperr.Newf(scaperr.KindUnexpectedElement,
				"Rule '%s': unexpected element '%s'", attrs.ID, child.Data)
		}
	}
	return r, nil
}
