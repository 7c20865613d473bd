package xccdf

import (
	"github.com/antchfx/xmlquery"

	"github.com/jan-cerny/oscapxml/scaperr"
	"github.com/jan-cerny/oscapxml/xmlutil"
)

// Namespace is the XCCDF 1.2 namespace URI.
const Namespace = "http://checklists.nist.gov/xccdf/1.2"

// Benchmark is the root of an XCCDF checklist document.
type Benchmark struct {
	ID       string
	Resolved bool
	Style    string // optional; empty when absent
	StyleHref string // optional; empty when absent

	Statuses              []Status
	Titles                []Title
	Descriptions          []Description
	Notices               []Notice
	FrontMatters          []FrontMatter
	RearMatters           []RearMatter
	References            []Reference
	PlainTexts            []PlainText
	PlatformSpecification *PlatformSpecification
	Platforms             []Platform
	Version               Version
	Metadata              []Metadata
	Models                []Model
	Profiles              []Profile
	Values                []Value
	Groups                []Group
	Rules                 []Rule
	TestResults           []TestResult
}

// ParseBenchmark maps an xccdf:Benchmark element tree into a Benchmark.
//
// Benchmark content is exhaustively modeled: any unrecognized child
// element is a hard error. A Benchmark must carry at least one status
// and exactly one version child.
func ParseBenchmark(el *xmlquery.Node) (*Benchmark, error) {
	if !xmlutil.Is(el, "Benchmark", Namespace) {
		return nil, scaperr.Newf(scaperr.KindUnexpectedElement,
			"Unexpected element '%s', expected xccdf:Benchmark", el.Data)
	}
	id, err := xmlutil.RequireAttr(el, "id")
	if err != nil {
		return nil, err
	}
	resolved, err := xmlutil.GetAttrDefaultBool(el, "resolved", false)
	if err != nil {
		return nil, err
	}
	style, _ := xmlutil.GetAttr(el, "style")
	styleHref, _ := xmlutil.GetAttr(el, "style-href")

	b := &Benchmark{
		ID:       id,
		Resolved: resolved,
		Style:    style,
		StyleHref: styleHref,
	}
	var version *Version
	for _, child := range xmlutil.ChildElements(el) {
		switch child.Data {
		case "status":
			status, err := parseStatus(child)
			if err != nil {
				return nil, err
			}
			b.Statuses = append(b.Statuses, status)
		case "title":
			title, err := parseTitle(child)
			if err != nil {
				return nil, err
			}
			b.Titles = append(b.Titles, title)
		case "description":
			desc, err := parseDescription(child)
			if err != nil {
				return nil, err
			}
			b.Descriptions = append(b.Descriptions, desc)
		case "notice":
			notice, err := parseNotice(child)
			if err != nil {
				return nil, err
			}
			b.Notices = append(b.Notices, notice)
		case "front-matter":
			fm, err := parseFrontMatter(child)
			if err != nil {
				return nil, err
			}
			b.FrontMatters = append(b.FrontMatters, fm)
		case "rear-matter":
			rm, err := parseRearMatter(child)
			if err != nil {
				return nil, err
			}
			b.RearMatters = append(b.RearMatters, rm)
		case "reference":
			ref, err := parseReference(child)
			if err != nil {
				return nil, err
			}
			b.References = append(b.References, ref)
		case "plain-text":
			pt, err := parsePlainText(child)
			if err != nil {
				return nil, err
			}
			b.PlainTexts = append(b.PlainTexts, pt)
		case "platform-specification":
			if b.PlatformSpecification != nil {
				return nil, scaperr.DuplicateElement("platform")
			}
			spec, err := parsePlatformSpecification(child)
			if err != nil {
				return nil, err
			}
			b.PlatformSpecification = &spec
		case "platform":
			platform, err := parsePlatform(child)
			if err != nil {
				return nil, err
			}
			b.Platforms = append(b.Platforms, platform)
		case "version":
			if version != nil {
				return nil, scaperr.DuplicateElement("version")
			}
			v, err := parseVersion(child)
			if err != nil {
				return nil, err
			}
			version = &v
		case "metadata":
			metadata, err := parseMetadata(child)
			if err != nil {
				return nil, err
			}
			b.Metadata = append(b.Metadata, metadata)
		case "model":
			model, err := parseModel(child)
			if err != nil {
				return nil, err
			}
			b.Models = append(b.Models, model)
		case "Profile":
			profile, err := parseProfile(child)
			if err != nil {
				return nil, err
			}
			b.Profiles = append(b.Profiles, profile)
		case "Value":
			value, err := parseValue(child)
			if err != nil {
				return nil, err
			}
			b.Values = append(b.Values, value)
		case "Group":
			group, err := parseGroup(child)
			if err != nil {
				return nil, err
			}
			b.Groups = append(b.Groups, group)
		case "Rule":
			rule, err := parseRule(child)
			if err != nil {
				return nil, err
			}
			b.Rules = append(b.Rules, rule)
		case "TestResult":
			tr, err := parseTestResult(child)
			if err != nil {
				return nil, err
			}
			b.TestResults = append(b.TestResults, tr)
		default:
			return nil, scaperr.Newf(scaperr.KindUnexpectedElement,
				"unexpected element %s", child.Data)
		}
	}
	if len(b.Statuses) == 0 {
		return nil, scaperr.Newf(scaperr.KindCardinalityViolation,
			"xccdf:Benchmark %s: missing status element", id)
	}
	if version == nil {
		return nil, scaperr.Newf(scaperr.KindCardinalityViolation,
			"xccdf:Benchmark %s: missing version element", id)
	}
	b.Version = *version
	return b, nil
}
