package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jan-cerny/oscapxml/loader"
	"github.com/jan-cerny/oscapxml/scaperr"
	"github.com/jan-cerny/oscapxml/sds"
	"github.com/jan-cerny/oscapxml/xccdf"
)

func parseCollection(t *testing.T, src string) *sds.DataStreamCollection {
	t.Helper()
	root, err := loader.Parse(strings.NewReader(src))
	require.NoError(t, err)
	coll, err := sds.ParseDataStreamCollection(root)
	require.NoError(t, err)
	return coll
}

func TestPrint(t *testing.T) {
	coll := parseCollection(t, `
<data-stream-collection xmlns="http://scap.nist.gov/schema/scap/source/1.2"
    xmlns:xlink="http://www.w3.org/1999/xlink"
    id="c1" schematron-version="1.3">
  <data-stream id="scap_org.example_datastream_ds1" use-case="CONFIGURATION" scap-version="1.3">
    <checklists>
      <component-ref id="scap_org.example_cref_b1" xlink:href="#scap_org.example_comp_b1"/>
    </checklists>
  </data-stream>
  <component id="scap_org.example_comp_b1" timestamp="2026-01-15T10:00:00">
    <Benchmark xmlns="http://checklists.nist.gov/xccdf/1.2" id="xccdf_org.example_benchmark_b1">
      <status>accepted</status>
      <version>1.0</version>
      <Profile id="xccdf_org.example_profile_p1">
        <title>Example Profile</title>
        <description>An example profile.</description>
      </Profile>
    </Benchmark>
  </component>
</data-stream-collection>`)

	var buf bytes.Buffer
	require.NoError(t, Print(&buf, coll))
	want := strings.Join([]string{
		"Document type: SCAP Source Data Stream",
		"Stream: scap_org.example_datastream_ds1",
		"",
		"Checklists:",
		"Ref-Id: scap_org.example_cref_b1",
		"Component ID: scap_org.example_comp_b1",
		"Benchmark ID: xccdf_org.example_benchmark_b1",
		"Profiles:",
		"* Example Profile",
		"ID: xccdf_org.example_profile_p1",
		"An example profile.",
		"",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestPrintRemoteChecklist(t *testing.T) {
	coll := parseCollection(t, `
<data-stream-collection xmlns="http://scap.nist.gov/schema/scap/source/1.2"
    xmlns:xlink="http://www.w3.org/1999/xlink"
    id="c1" schematron-version="1.3">
  <data-stream id="ds1" use-case="OTHER" scap-version="1.2">
    <checklists>
      <component-ref id="ref1" xlink:href="http://example.com/xccdf.xml"/>
    </checklists>
  </data-stream>
  <component id="comp1" timestamp="2026-01-15T10:00:00"><other xmlns="urn:x"/></component>
</data-stream-collection>`)

	var buf bytes.Buffer
	require.NoError(t, Print(&buf, coll))
	assert.Contains(t, buf.String(), "Ref-Id: ref1")
	assert.Contains(t, buf.String(), "Remote checklists aren't supported by this tool")
	assert.NotContains(t, buf.String(), "Component ID:")
}

func TestPrintProfileWithoutDescription(t *testing.T) {
	coll := &sds.DataStreamCollection{
		DataStreams: []sds.DataStream{{
			ID:         "ds1",
			Checklists: []sds.ComponentRef{{ID: "ref1", Href: "#comp1"}},
		}},
		Components: []sds.Component{{
			ID: "comp1",
			Content: sds.BenchmarkContent{Benchmark: &xccdf.Benchmark{
				ID: "b1",
				Profiles: []xccdf.Profile{{
					ID:     "p1",
					Titles: []xccdf.Title{{Text: "Only a title"}},
				}},
			}},
		}},
	}
	var buf bytes.Buffer
	require.NoError(t, Print(&buf, coll))
	assert.Contains(t, buf.String(), "* Only a title")
	assert.Contains(t, buf.String(), "Unknown")
}

func TestPrintInconsistentReference(t *testing.T) {
	coll := &sds.DataStreamCollection{
		DataStreams: []sds.DataStream{{
			ID:         "ds1",
			Checklists: []sds.ComponentRef{{ID: "ref1", Href: "#comp1"}},
		}},
		Components: []sds.Component{{
			ID:      "comp1",
			Content: sds.UnsupportedContent{},
		}},
	}
	var buf bytes.Buffer
	err := Print(&buf, coll)
	require.EqualError(t, err,
		"checklist reference 'ref1' resolved to component 'comp1', which is not an XCCDF benchmark")
	assert.True(t, scaperr.IsKind(err, scaperr.KindInconsistentReference))
}
