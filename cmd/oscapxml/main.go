// Command oscapxml parses a SCAP source data stream document and prints
// a summary of the checklists it bundles.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"

	"github.com/jan-cerny/oscapxml/loader"
	"github.com/jan-cerny/oscapxml/report"
	"github.com/jan-cerny/oscapxml/sds"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := pflag.NewFlagSet("oscapxml", pflag.ContinueOnError)
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: oscapxml <datastream.xml>\n\n")
		fmt.Fprintln(os.Stderr, "Parses a SCAP source data stream and prints its checklists.")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return 2
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return 2
	}
	filepath := flags.Arg(0)

	root, err := loader.Load(afero.NewOsFs(), filepath)
	if err != nil {
		logrus.Errorf("Failed to parse SCAP Source data stream file '%s': %v", filepath, err)
		return 1
	}
	coll, err := sds.ParseDataStreamCollection(root)
	if err != nil {
		logrus.Errorf("Failed to parse SCAP Source data stream file '%s': %v", filepath, err)
		return 1
	}
	if err := report.Print(os.Stdout, coll); err != nil {
		logrus.Errorf("Failed to report on SCAP Source data stream file '%s': %v", filepath, err)
		return 1
	}
	return 0
}
