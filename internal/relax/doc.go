// Package relax runs relaxation labeling over pending nodes.
//
// Status holds the alignment state: confirmed mappings, pending nodes and
// unmapped synsets. Each round has two phases separated by a barrier:
//
//  1. Score: every pending node is reset and scored by the Constrainer
//     against the confirmed mappings as they stood when the round began.
//     Nodes are independent, so this phase may run in parallel.
//  2. Commit: per node, in source-id order, the round decides to keep,
//     shrink (narrow to the tied maxima) or promote (exactly one maximum
//     becomes a confirmed mapping).
//
// The Relaxer repeats rounds until one completes with no promotion and no
// shrink, until a round cap, or until the context is cancelled.
package relax
