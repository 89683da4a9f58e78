// Package writers turns translations and ORFs into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (pretty blocks, JSON/JSONL/FASTA).
//   • core/scan stays domain-only; internal/pipeline stays orchestration-only.
//   • JSON/JSONL go through pkg/api (v1) for a stable wire format.
//   • A writer that fails keeps draining its input so producers never block.
package writers
