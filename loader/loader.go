// Package loader reads a SCAP source data stream document from a
// filesystem and materializes it as a generic XML element tree.
package loader

import (
	"io"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

var xpRoot = xpath.MustCompile(`/*`)

// Load opens path on fs and parses it into an element tree, returning
// the document's root element.
func Load(fs afero.Fs, path string) (*xmlquery.Node, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening input file")
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads an XML document from r and returns its root element.
func Parse(r io.Reader) (*xmlquery.Node, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, "parsing XML document")
	}
	root := xmlquery.QuerySelector(doc, xpRoot)
	if root == nil {
		return nil, errors.New("document has no root element")
	}
	return root, nil
}
