// Package render prints contraction results as tables.
//
// What:
//
//   - ExpressionTable    one row per term: position, coefficient, term.
//   - EquationsTable     many-body equations grouped by lhs block.
//   - RegistryTable      the orbital spaces of a registry.
//   - MetricsTable       counters and histograms read back from a
//     prometheus.Gatherer.
//   - PartitionsTable    integer partitions, for inspecting the General
//     space leg distributions.
//
// Options:
//
//	WithMarkdown(true) switches from box drawing to a markdown table.
//	WithColor(true) colours signs and labels; fatih/color still honours
//	NO_COLOR and non-terminal outputs.
//
// Errors:
//
//	Writer and table errors are returned wrapped as "render: Func: …".
package render
