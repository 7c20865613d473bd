/*
Package xccdf maps a generic XML element tree holding an XCCDF 1.2
Benchmark document into a strongly typed, immutable value model.

ParseBenchmark is the entry point. It performs a single depth-first pass
over the element tree, enforcing the structural constraints of the XCCDF
schema as it goes: required and optional attributes, enumerated value
domains, element cardinality and singleton children. Benchmark content is
exhaustively modeled, so an unrecognized child element anywhere inside a
Benchmark, Profile, Group or Rule is a hard parse error. The first
violation encountered aborts the whole mapping; no partial model is ever
returned.

The mapped model owns every string it carries and holds no references
into the source tree.
*/
package xccdf
