package survival

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"gonum.org/v1/gonum/floats"

	"github.com/meldlab/pbckit/internal/dataset"
	"github.com/meldlab/pbckit/pkg/pbc"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	labelStyle = lipgloss.NewStyle().Width(24)
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

// PrintSummary writes a human-readable dataset summary. Reporting only,
// no mutation of the frame.
func PrintSummary(w io.Writer, f *Frame) error {
	fmt.Fprintln(w, titleStyle.Render("PBC Dataset Summary"))

	line := func(label, value string) {
		fmt.Fprintf(w, "%s %s\n", labelStyle.Render(label), value)
	}

	line("Total patients:", fmt.Sprintf("%d", f.NumRows()))

	if s, err := f.Column("death_event"); err == nil {
		deaths := 0
		for _, v := range s.Ints() {
			if v != nil && *v == 1 {
				deaths++
			}
		}
		line("Deaths:", fmt.Sprintf("%d", deaths))
	}

	if s, err := f.Column("status"); err == nil {
		line("Transplants:", fmt.Sprintf("%d", countStatus(s, pbc.StatusTransplant)))
		line("Alive:", fmt.Sprintf("%d", countStatus(s, pbc.StatusAlive)))
	}

	if s, err := f.Column("futime"); err == nil {
		if present := s.Present(); len(present) > 0 {
			line("Median survival time:", fmt.Sprintf("%.0f days", median(present)))
		}
	}

	if s, err := f.Column("age_years"); err == nil {
		if present := s.Present(); len(present) > 0 {
			line("Age range:", fmt.Sprintf("%.1f - %.1f years",
				floats.Min(present), floats.Max(present)))
		}
	}

	printMissing(w, f)
	return nil
}

func countStatus(s *Series, status int64) int {
	n := 0
	for _, v := range s.Ints() {
		if v != nil && *v == status {
			n++
		}
	}
	return n
}

func printMissing(w io.Writer, f *Frame) {
	type missing struct {
		name  string
		count int
	}
	var cols []missing
	for _, name := range f.Names() {
		s, err := f.Column(name)
		if err != nil {
			continue
		}
		if c := s.MissingCount(); c > 0 {
			cols = append(cols, missing{name, c})
		}
	}
	if len(cols) == 0 {
		return
	}

	fmt.Fprintln(w, labelStyle.Render("Missing values:"))
	for _, m := range cols {
		fmt.Fprintf(w, "  %s %d\n", labelStyle.Render(m.name), m.count)
	}
}

// PrintShapes reports the dimensions of an extracted survival tuple.
func PrintShapes(w io.Writer, d *Data) {
	rows, cols := d.Features.Dims()
	fmt.Fprintln(w, titleStyle.Render("ML-ready data shapes"))
	fmt.Fprintf(w, "%s (%d,)\n", labelStyle.Render("Survival times:"), len(d.Durations))
	fmt.Fprintf(w, "%s (%d,)\n", labelStyle.Render("Death events:"), len(d.Events))
	fmt.Fprintf(w, "%s (%d, %d)\n", labelStyle.Render("Feature matrix:"), rows, cols)
	fmt.Fprintf(w, "%s %v\n", labelStyle.Render("Features:"), d.FeatureNames)
}

// PrintDescriptions writes the fixed feature-description table, sorted by
// feature name.
func PrintDescriptions(w io.Writer) {
	desc := dataset.FeatureDescriptions()

	names := make([]string, 0, len(desc))
	for name := range desc {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(w, titleStyle.Render("Feature descriptions"))
	for _, name := range names {
		fmt.Fprintf(w, "%s %s\n", labelStyle.Render(name), dimStyle.Render(desc[name]))
	}
}
