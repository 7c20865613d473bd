/*
Package oscapxml is a set of SCAP source data stream mapping libraries.

Doing the heavy lifting of schema-aware XML mapping, these libraries
turn a generic, namespace-qualified element tree into a strongly typed
document model for SCAP 1.2 Source Data Stream Collections and the
XCCDF 1.2 Benchmark documents embedded inside them, validating the
structural constraints of both schemas along the way.

The sds package maps the outer collection envelope, the xccdf package
maps an inlined benchmark payload, and the report package resolves
checklist references between the two and prints a human-readable
summary. The loader package builds the generic tree from a file, and
cmd/oscapxml ties everything into a command line tool.

Mapping is all-or-nothing: the first structural violation encountered
aborts the whole pass with a structured error (see the scaperr package)
and no partial model is returned.
*/
package oscapxml
