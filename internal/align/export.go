package align

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"taxalign/internal/candidate"
	"taxalign/internal/diagnostic"
	"taxalign/internal/taxonomy"
)

// Document is the exported form of a Result.
type Document struct {
	RunID       string                                    `yaml:"run_id"`
	Source      string                                    `yaml:"source"`
	Target      string                                    `yaml:"target"`
	State       string                                    `yaml:"state"`
	Converged   bool                                      `yaml:"converged"`
	Rounds      int                                       `yaml:"rounds"`
	Stats       Stats                                     `yaml:"stats"`
	Coverage    candidate.Coverage                        `yaml:"coverage"`
	Confirmed   map[taxonomy.SynsetID]taxonomy.SynsetID   `yaml:"confirmed"`
	Ambiguous   map[taxonomy.SynsetID][]taxonomy.SynsetID `yaml:"ambiguous,omitempty"`
	Unmapped    []UnmappedEntry                           `yaml:"unmapped,omitempty"`
	Diagnostics []DiagnosticEntry                         `yaml:"diagnostics,omitempty"`
}

// Stats holds result counters.
type Stats struct {
	Confirmed int `yaml:"confirmed"`
	Seeded    int `yaml:"seeded"`
	Ambiguous int `yaml:"ambiguous"`
	Unmapped  int `yaml:"unmapped"`
}

// UnmappedEntry is an unmapped synset with lemma suggestions.
type UnmappedEntry struct {
	ID          taxonomy.SynsetID `yaml:"id"`
	Suggestions []string          `yaml:"suggestions,omitempty"`
}

// DiagnosticEntry is an exported warning or error.
type DiagnosticEntry struct {
	Severity string `yaml:"severity"`
	Code     string `yaml:"code"`
	Message  string `yaml:"message"`
	Taxonomy string `yaml:"taxonomy,omitempty"`
	Synset   string `yaml:"synset,omitempty"`
}

// Export converts a Result to its document form. Unmapped info diagnostics
// are folded into the Unmapped entries.
func Export(r *Result) *Document {
	doc := &Document{
		RunID:     r.RunID,
		Source:    r.Source,
		Target:    r.Target,
		State:     r.State.String(),
		Converged: r.Converged,
		Rounds:    r.Rounds,
		Stats: Stats{
			Confirmed: len(r.Confirmed),
			Seeded:    r.Seeded,
			Ambiguous: len(r.Ambiguous),
			Unmapped:  len(r.Unmapped),
		},
		Coverage:  r.Coverage,
		Confirmed: r.Confirmed,
		Ambiguous: r.Ambiguous,
	}

	suggestions := map[taxonomy.SynsetID][]string{}
	for _, d := range r.Diagnostics.ByCode(diagnostic.CodeUnmapped) {
		suggestions[d.Synset] = d.Suggestions
	}

	for _, id := range r.Unmapped {
		doc.Unmapped = append(doc.Unmapped, UnmappedEntry{ID: id, Suggestions: suggestions[id]})
	}

	for _, group := range [][]diagnostic.Diagnostic{r.Diagnostics.Errors, r.Diagnostics.Warnings} {
		for _, d := range group {
			doc.Diagnostics = append(doc.Diagnostics, DiagnosticEntry{
				Severity: d.Severity.String(),
				Code:     d.Code,
				Message:  d.Message,
				Taxonomy: d.Taxonomy,
				Synset:   d.Synset,
			})
		}
	}

	return doc
}

// ExportYAML renders a Result as YAML.
func ExportYAML(r *Result) ([]byte, error) {
	return yaml.Marshal(Export(r))
}

// WriteFile writes the YAML form of a Result to path.
func WriteFile(r *Result, path string) error {
	data, err := ExportYAML(r)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write result file %s: %w", path, err)
	}

	return nil
}

// FormatReport formats a Result as a short human-readable summary.
func FormatReport(r *Result) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "=== %s -> %s ===\n", r.Source, r.Target)
	fmt.Fprintf(&sb, "Run: %s\n", r.RunID)
	fmt.Fprintf(&sb, "State: %s after %d rounds\n", r.State, r.Rounds)
	fmt.Fprintf(&sb, "Confirmed: %d (seeded %d), Ambiguous: %d, Unmapped: %d\n",
		len(r.Confirmed), r.Seeded, len(r.Ambiguous), len(r.Unmapped))
	fmt.Fprintf(&sb, "Lemma coverage: %.0f%%, target coverage: %.0f%%\n",
		r.Coverage.LemmaRatio()*100, r.Coverage.TargetRatio()*100)

	if len(r.Diagnostics.Warnings) > 0 {
		sb.WriteString("\nWarnings:\n")

		for _, w := range r.Diagnostics.Warnings {
			fmt.Fprintf(&sb, "  ⚠ %s\n", w.String())
		}
	}

	if !r.Converged {
		sb.WriteString("\n⚠ Alignment did not converge; results are partial.\n")
	}

	return sb.String()
}
