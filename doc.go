// Package seqtab collects small, self-contained building blocks for
// numeric and tabular analysis pipelines.
//
// 🚀 What is seqtab?
//
//	A pure-Go toolbox of leaf-level transformations that larger pipelines
//	compose without ceremony:
//		• Run detection: maximal consecutive-integer runs in a sequence
//		• Correlation unstacking: square correlation matrix → sorted,
//		  deduplicated long-form edge table
//		• Execution plumbing: leveled console/file logging & scoped timers
//
// ✨ Why choose seqtab?
//
//   - Pure functions – no shared state, safe to call from anywhere
//   - Deterministic – fixed traversal orders, explicit tie-breaking
//   - Minimal API – clear, intuitive naming, explicit error returns
//
// Everything is organized under three subpackages:
//
//	intervals/ — boundaries & values of maximal consecutive-integer runs
//	corrtab/   — labeled correlation matrices & long-form unstacking
//	execlog/   — logging facility and scoped timing helper for callers
//
// The core packages (intervals, corrtab) perform no I/O and never log;
// execlog exists for the code that wraps them.
//
//	go get github.com/katalvlaran/seqtab
package seqtab
