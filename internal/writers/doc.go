// Package writers turns processor results into serialized outputs.
//
// Design:
//   • internal/output owns presentation; writers owns dispatch and I/O.
//   • Core packages stay domain-only; pipeline stays orchestration-only.
//   • JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
