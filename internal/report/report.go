// Package report renders human-readable views of an analysis record: a
// styled console summary and an optional PDF rendering.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hyperifyio/gosift/internal/record"
)

var (
	// titleStyle for collection headers
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	// dimStyle for muted metadata text
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// rankStyle for importance ranks
	rankStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))

	// boxStyle for the summary box
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1)
)

// SummaryStats is the per-collection counters shown under the header.
type SummaryStats struct {
	Persona   string
	Documents int
	Pages     int
	Sections  int
}

// Summary writes a styled per-collection summary to w.
func Summary(w io.Writer, collection string, out *record.Output, stats SummaryStats) {
	var b strings.Builder

	b.WriteString(titleStyle.Render(collection))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("persona: %s · task: %s", stats.Persona, out.Metadata.JobToBeDone)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d documents · %d pages · %d sections",
		stats.Documents, stats.Pages, stats.Sections)))
	b.WriteString("\n\n")

	for _, s := range out.ExtractedSections {
		b.WriteString(rankStyle.Render(fmt.Sprintf("#%d", s.ImportanceRank)))
		b.WriteString(fmt.Sprintf(" %s ", s.SectionTitle))
		b.WriteString(dimStyle.Render(fmt.Sprintf("(%s, p.%d)", s.Document, s.PageNumber)))
		b.WriteString("\n")
	}
	if len(out.SubsectionAnalysis) > 0 {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(fmt.Sprintf("%d refined summaries", len(out.SubsectionAnalysis))))
	}

	fmt.Fprintln(w, boxStyle.Render(b.String()))
}
