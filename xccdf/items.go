package xccdf

import (
	"strconv"

	"github.com/antchfx/xmlquery"
	"github.com/samber/lo"

	"github.com/jan-cerny/oscapxml/scaperr"
	"github.com/jan-cerny/oscapxml/xmlutil"
)

// allowed xccdf:status values
var statusValues = []string{"incomplete", "draft", "interim", "accepted", "deprecated"}

// Status is a benchmark lifecycle status marker.
type Status struct {
	Date   string // optional; empty when absent
	Status string
}

func parseStatus(el *xmlquery.Node) (Status, error) {
	date, _ := xmlutil.GetAttr(el, "date")
	status := xmlutil.Text(el)
	if !lo.Contains(statusValues, status) {
		return Status{}, scaperr.InvalidValue(el.Data, "", status, statusValues)
	}
	return Status{Date: date, Status: status}, nil
}

// Title is a human-readable item title.
type Title struct {
	Text string
}

func parseTitle(el *xmlquery.Node) (Title, error) {
	return Title{Text: xmlutil.Text(el)}, nil
}

// Description is a prose description; its restricted-HTML content is
// flattened into plain text.
type Description struct {
	Text string
}

func parseDescription(el *xmlquery.Node) (Description, error) {
	return Description{Text: xmlutil.HTMLToString(el)}, nil
}

// Notice is a legal notice identified by id.
type Notice struct {
	ID   string
	Text string
}

func parseNotice(el *xmlquery.Node) (Notice, error) {
	id, err := xmlutil.RequireAttr(el, "id")
	if err != nil {
		return Notice{}, err
	}
	return Notice{ID: id, Text: xmlutil.Text(el)}, nil
}

// FrontMatter is introductory prose for a benchmark.
type FrontMatter struct {
	Text string
}

func parseFrontMatter(el *xmlquery.Node) (FrontMatter, error) {
	return FrontMatter{Text: xmlutil.Text(el)}, nil
}

// RearMatter is concluding prose for a benchmark.
type RearMatter struct {
	Text string
}

func parseRearMatter(el *xmlquery.Node) (RearMatter, error) {
	return RearMatter{Text: xmlutil.Text(el)}, nil
}

// Reference is a bibliographic reference.
type Reference struct {
	Text string
}

func parseReference(el *xmlquery.Node) (Reference, error) {
	return Reference{Text: xmlutil.Text(el)}, nil
}

// PlainText is a reusable text block.
type PlainText struct {
	Text string
}

func parsePlainText(el *xmlquery.Node) (PlainText, error) {
	return PlainText{Text: xmlutil.Text(el)}, nil
}

// PlatformSpecification holds complex platform applicability logic.
type PlatformSpecification struct {
	Text string
}

func parsePlatformSpecification(el *xmlquery.Node) (PlatformSpecification, error) {
	return PlatformSpecification{Text: xmlutil.Text(el)}, nil
}

// Platform names an applicable platform by CPE identifier reference.
type Platform struct {
	IDRef string
}

func parsePlatform(el *xmlquery.Node) (Platform, error) {
	idref, err := xmlutil.RequireAttr(el, "idref")
	if err != nil {
		return Platform{}, err
	}
	return Platform{IDRef: idref}, nil
}

// Version is an item version string.
type Version struct {
	Text string
}

func parseVersion(el *xmlquery.Node) (Version, error) {
	return Version{Text: xmlutil.Text(el)}, nil
}

// Metadata holds Dublin Core style document metadata.
type Metadata struct {
	Contributors []string
	Publishers   []string
	Creators     []string
	Sources      []string
}

func parseMetadata(el *xmlquery.Node) (Metadata, error) {
	var m Metadata
	for _, child := range xmlutil.ChildElements(el) {
		switch child.Data {
		case "contributor":
			m.Contributors = append(m.Contributors, xmlutil.Text(child))
		case "publisher":
			m.Publishers = append(m.Publishers, xmlutil.Text(child))
		case "creator":
			m.Creators = append(m.Creators, xmlutil.Text(child))
		case "source":
			m.Sources = append(m.Sources, xmlutil.Text(child))
		}
	}
	return m, nil
}

// Model names a scoring model.
type Model struct {
	Text string
}

func parseModel(el *xmlquery.Node) (Model, error) {
	return Model{Text: xmlutil.Text(el)}, nil
}

// Value is a named tailorable value.
type Value struct {
	ID string
}

func parseValue(el *xmlquery.Node) (Value, error) {
	id, err := xmlutil.RequireAttr(el, "id")
	if err != nil {
		return Value{}, err
	}
	return Value{ID: id}, nil
}

// TestResult records a benchmark test run.
type TestResult struct {
	ID string
}

func parseTestResult(el *xmlquery.Node) (TestResult, error) {
	id, err := xmlutil.RequireAttr(el, "id")
	if err != nil {
		return TestResult{}, err
	}
	return TestResult{ID: id}, nil
}

// Select switches a rule or group on or off within a profile.
type Select struct {
	IDRef    string
	Selected bool
}

func parseSelect(el *xmlquery.Node) (Select, error) {
	idref, err := xmlutil.RequireAttr(el, "idref")
	if err != nil {
		return Select{}, err
	}
	raw, err := xmlutil.RequireAttr(el, "selected")
	if err != nil {
		return Select{}, err
	}
	selected, err := strconv.ParseBool(raw)
	if err != nil {
		return Select{}, scaperr.UnparseableAttribute(el.Data, "selected", raw)
	}
	return Select{IDRef: idref, Selected: selected}, nil
}

// SetComplexValue overrides a complex value within a profile.
type SetComplexValue struct {
	Text string
}

func parseSetComplexValue(el *xmlquery.Node) (SetComplexValue, error) {
	return SetComplexValue{Text: xmlutil.Text(el)}, nil
}

// SetValue overrides a value within a profile.
type SetValue struct {
	Text string
}

func parseSetValue(el *xmlquery.Node) (SetValue, error) {
	return SetValue{Text: xmlutil.Text(el)}, nil
}

// RefineValue adjusts a value selector within a profile.
type RefineValue struct {
	Text string
}

func parseRefineValue(el *xmlquery.Node) (RefineValue, error) {
	return RefineValue{Text: xmlutil.Text(el)}, nil
}

// RefineRule adjusts rule properties within a profile.
type RefineRule struct {
	Text string
}

func parseRefineRule(el *xmlquery.Node) (RefineRule, error) {
	return RefineRule{Text: xmlutil.Text(el)}, nil
}

// Warning is a cautionary note attached to an item.
type Warning struct {
	Text string
}

func parseWarning(el *xmlquery.Node) (Warning, error) {
	return Warning{Text: xmlutil.Text(el)}, nil
}

// Question is an interrogative text attached to an item.
type Question struct {
	Text string
}

func parseQuestion(el *xmlquery.Node) (Question, error) {
	return Question{Text: xmlutil.Text(el)}, nil
}

// Rationale explains why an item is worth complying with.
type Rationale struct {
	Text string
}

func parseRationale(el *xmlquery.Node) (Rationale, error) {
	return Rationale{Text: xmlutil.Text(el)}, nil
}

// Requires names items that must be selected together with its owner.
type Requires struct {
	Text string
}

func parseRequires(el *xmlquery.Node) (Requires, error) {
	return Requires{Text: xmlutil.Text(el)}, nil
}

// Conflicts names an item that must not be selected with its owner.
type Conflicts struct {
	IDRef string
}

func parseConflicts(el *xmlquery.Node) (Conflicts, error) {
	idref, err := xmlutil.RequireAttr(el, "idref")
	if err != nil {
		return Conflicts{}, err
	}
	return Conflicts{IDRef: idref}, nil
}

// Ident is a globally meaningful rule identifier within a naming system.
type Ident struct {
	System string
	Text   string
}

func parseIdent(el *xmlquery.Node) (Ident, error) {
	system, err := xmlutil.RequireAttr(el, "system")
	if err != nil {
		return Ident{}, err
	}
	return Ident{System: system, Text: xmlutil.Text(el)}, nil
}

// ProfileNote is profile-specific guidance attached to a rule.
type ProfileNote struct {
	Text string
}

func parseProfileNote(el *xmlquery.Node) (ProfileNote, error) {
	return ProfileNote{Text: xmlutil.Text(el)}, nil
}

// FixText is a prose remediation description.
type FixText struct {
	Text string
}

func parseFixText(el *xmlquery.Node) (FixText, error) {
	return FixText{Text: xmlutil.Text(el)}, nil
}

// Fix is a machine-consumable remediation script.
type Fix struct {
	Text string
}

func parseFix(el *xmlquery.Node) (Fix, error) {
	return Fix{Text: xmlutil.Text(el)}, nil
}

// Check references an automated check for a rule.
type Check struct {
	Text string
}

func parseCheck(el *xmlquery.Node) (Check, error) {
	return Check{Text: xmlutil.Text(el)}, nil
}

// ComplexCheck is a boolean combination of checks.
type ComplexCheck struct {
	Text string
}

func parseComplexCheck(el *xmlquery.Node) (ComplexCheck, error) {
	return ComplexCheck{Text: xmlutil.Text(el)}, nil
}
