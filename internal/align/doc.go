// Package align runs the end-to-end alignment pipeline between two
// taxonomies:
//
//  1. Validate the configuration and resolve the enabled HH types.
//  2. Build lemma indexes and candidate sets, through the memo store when
//     one is configured.
//  3. Seed confirmed mappings from the source's known mappings and from
//     explicit anchors.
//  4. Build ancestry indexes and run relaxation to a fixpoint, the round
//     cap, or cancellation.
//  5. Assemble a Result with diagnostics and nearest-lemma suggestions for
//     unmapped synsets.
//
// Results can be exported as YAML with ExportYAML or summarized with
// FormatReport.
package align
