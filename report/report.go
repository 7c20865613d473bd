// Package report resolves checklist references inside a validated data
// stream collection and writes a line-oriented textual report.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/jan-cerny/oscapxml/scaperr"
	"github.com/jan-cerny/oscapxml/sds"
	"github.com/jan-cerny/oscapxml/xccdf"
)

// Print walks the checklist references of every data stream in coll,
// matching same-document fragments against component identifiers, and
// writes the report to w.
//
// Remote references (href not starting with '#') are reported as
// unsupported and skipped. A resolved component whose content is not an
// XCCDF benchmark yields an inconsistent-reference error; a checklist
// reference is defined to always target a benchmark.
func Print(w io.Writer, coll *sds.DataStreamCollection) error {
	fmt.Fprintln(w, "Document type: SCAP Source Data Stream")
	for _, ds := range coll.DataStreams {
		fmt.Fprintf(w, "Stream: %s\n", ds.ID)
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Checklists:")
		for _, checklist := range ds.Checklists {
			fmt.Fprintf(w, "Ref-Id: %s\n", checklist.ID)
			if !strings.HasPrefix(checklist.Href, "#") {
				fmt.Fprintln(w, "Remote checklists aren't supported by this tool")
				continue
			}
			fragment := strings.TrimPrefix(checklist.Href, "#")
			for i := range coll.Components {
				component := &coll.Components[i]
				if fragment != component.ID {
					continue
				}
				fmt.Fprintf(w, "Component ID: %s\n", component.ID)
				content, ok := component.Content.(sds.BenchmarkContent)
				if !ok {
					return scaperr.InconsistentReference(checklist.ID, component.ID)
				}
				printBenchmark(w, content.Benchmark)
			}
		}
	}
	return nil
}

func printBenchmark(w io.Writer, b *xccdf.Benchmark) {
	fmt.Fprintf(w, "Benchmark ID: %s\n", b.ID)
	if len(b.Profiles) == 0 {
		return
	}
	fmt.Fprintln(w, "Profiles:")
	for _, profile := range b.Profiles {
		title := "Unknown"
		if len(profile.Titles) > 0 {
			title = profile.Titles[0].Text
		}
		description := "Unknown"
		if len(profile.Descriptions) > 0 {
			description = profile.Descriptions[0].Text
		}
		fmt.Fprintf(w, "* %s\n", title)
		fmt.Fprintf(w, "ID: %s\n", profile.ID)
		fmt.Fprintln(w, description)
		fmt.Fprintln(w)
	}
}
