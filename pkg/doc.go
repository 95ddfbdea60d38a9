// Package pkg provides the core libraries for Poly Bridge 2 level file
// conversion.
//
// # Architecture
//
// The typical data flow:
//
//	.layout / .slot bytes
//	         ↓
//	[bin] primitive reader  →  [layout] / [slot] codecs  →  in-memory tree
//	         ↓                                                      ↓
//	[sanity] guard flags absurd values              [io] JSON export/import
//	                                                        ↓
//	                                                [render] bridge diagrams
//
// Packages:
//
//   - [bin] - little-endian primitive reader/writer with sticky errors
//   - [errors] - coded errors carrying byte offsets
//   - [sanity] - configurable plausibility checks on decoded values
//   - [layout] - the versioned .layout format and the shared bridge codec
//   - [slot] - the self-describing .slot format
//   - [io] - JSON mapping of both formats
//   - [render] - Graphviz diagrams of bridge graphs
//   - [buildinfo] - build-time version metadata
package pkg
