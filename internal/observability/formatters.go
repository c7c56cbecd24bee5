// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/jd-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
	// barWidth is the width of a subscore bar
	barWidth = 20
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to limit runes, marking the cut with "..."
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-3]) + "..."
}

func bar(score int) string {
	filled := max(0, min(barWidth, score*barWidth/100))
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

func listLines(sb *strings.Builder, items []string, limit int) {
	count := min(len(items), limit)
	for i := 0; i < count; i++ {
		fmt.Fprintf(sb, "  • %s\n", items[i])
	}
	if len(items) > limit {
		fmt.Fprintf(sb, "  ... and %d more\n", len(items)-limit)
	}
}

// PrintVerdict outputs a human-readable summary of one match verdict.
func (p *Printer) PrintVerdict(title string, v *types.MatchVerdict) {
	if v == nil {
		return
	}
	if title == "" {
		title = "MATCH VERDICT"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Status:   %s\n", v.Status)
	fmt.Fprintf(&sb, "Match:    %d%% (%s)\n", v.MatchPercent, v.Level)
	sb.WriteString("\n")

	sb.WriteString("Subscores:\n")
	for _, s := range []struct {
		name  string
		score int
	}{
		{"Experience", v.Subscores.Experience},
		{"Skill", v.Subscores.Skill},
		{"Education", v.Subscores.Education},
		{"Language", v.Subscores.Language},
		{"Certificate", v.Subscores.Certificate},
	} {
		fmt.Fprintf(&sb, "  %-12s %s %3d\n", s.name, bar(s.score), s.score)
	}
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "Recency:  +%d   Seniority: -%d   Coverage: %.0f%%\n",
		v.Adjustments.RecencyBoost, v.Adjustments.SeniorityPenalty, v.Adjustments.CoverageScore*100)

	if len(v.MissingSkills) > 0 {
		sb.WriteString("\nMissing skills:\n")
		listLines(&sb, v.MissingSkills, maxItemsToShow)
	}
	if len(v.MissingCertificates) > 0 {
		sb.WriteString("\nMissing certificates:\n")
		listLines(&sb, v.MissingCertificates, 3)
	}

	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintInstitutions outputs the matched institutions and any verification flags.
func (p *Printer) PrintInstitutions(eval *types.InstitutionEvaluation) {
	if eval == nil {
		return
	}

	var sb strings.Builder
	if len(eval.Matches) == 0 {
		sb.WriteString("No known institution matched\n")
	} else {
		sb.WriteString("Matched:\n")
		count := min(len(eval.Matches), maxItemsToShow)
		for i := 0; i < count; i++ {
			m := eval.Matches[i]
			fmt.Fprintf(&sb, "  • %s\n", m.CanonicalName)
			fmt.Fprintf(&sb, "    Tier: %s  Weight: %.2f\n", m.Tier, m.QualityWeight)
		}
		if len(eval.Matches) > maxItemsToShow {
			fmt.Fprintf(&sb, "  ... and %d more\n", len(eval.Matches)-maxItemsToShow)
		}
	}
	fmt.Fprintf(&sb, "\nBoost: %.2f\n", eval.Boost)

	if eval.VerificationNeeded {
		sb.WriteString("\n⚠ Verification needed:\n")
		listLines(&sb, eval.VerificationReasons, maxItemsToShow)
	}

	p.printBox("INSTITUTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintInstitutionMatch outputs the result of matching a single line.
func (p *Printer) PrintInstitutionMatch(m *types.InstitutionMatch) {
	if m == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Input:    %s\n", m.Raw)
	if m.Matched != nil {
		fmt.Fprintf(&sb, "Matched:  %s\n", m.Matched.CanonicalName)
		fmt.Fprintf(&sb, "Tier:     %s (%.2f)\n", m.Matched.Tier, m.Matched.QualityWeight)
	} else {
		sb.WriteString("Matched:  (none)\n")
	}
	if m.NeedsVerification {
		fmt.Fprintf(&sb, "⚠ %s\n", m.Reason)
	}

	p.printBox("INSTITUTION MATCH", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBatchSummary outputs the aggregate of a batch run.
func (p *Printer) PrintBatchSummary(s *types.BatchSummary) {
	if s == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Candidates: %d   Passed: %d   Rejected: %d\n", s.Total, s.Passed, s.Rejected)
	if s.Passed > 0 {
		fmt.Fprintf(&sb, "Average match (passing): %.1f%%\n", s.AveragePercent)
	}
	if s.VerificationNeeded > 0 {
		fmt.Fprintf(&sb, "Institutions to verify: %d\n", s.VerificationNeeded)
	}

	if len(s.ByLevel) > 0 {
		sb.WriteString("\nBy level:\n")
		levels := make([]string, 0, len(s.ByLevel))
		for level := range s.ByLevel {
			levels = append(levels, string(level))
		}
		sort.Slice(levels, func(i, j int) bool {
			return levelRank(types.Level(levels[i])) < levelRank(types.Level(levels[j]))
		})
		for _, level := range levels {
			fmt.Fprintf(&sb, "  %-13s %d\n", level, s.ByLevel[types.Level(level)])
		}
	}

	if len(s.Top) > 0 {
		sb.WriteString("\nTop candidates:\n")
		for i, id := range s.Top {
			fmt.Fprintf(&sb, "  #%d  %s\n", i+1, id)
		}
	}

	p.printBox("BATCH SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

var levelOrder = []types.Level{
	types.LevelExpert,
	types.LevelAdvanced,
	types.LevelIntermediate,
	types.LevelBeginner,
	types.LevelUnqualified,
	types.LevelRejected,
}

func levelRank(l types.Level) int {
	for i, level := range levelOrder {
		if level == l {
			return i
		}
	}
	return len(levelOrder)
}
