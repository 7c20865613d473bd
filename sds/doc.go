/*
Package sds maps a generic XML element tree holding a SCAP 1.2 Source
Data Stream Collection into a strongly typed, immutable value model.

ParseDataStreamCollection is the entry point. The collection envelope is
tolerant of unknown sibling elements (they are skipped), while the
elements it does model are validated strictly: required attributes,
enumerated attribute domains and element cardinality. Inlined component
payloads are dispatched by qualified name; an XCCDF Benchmark payload is
mapped by the xccdf package, any other payload is carried as an
unsupported content variant rather than rejected.
*/
package sds
