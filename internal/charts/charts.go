// Package charts holds the dashboard's static status datasets and renders
// them as terminal bars or PNG donuts.
package charts

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Slice is one labelled share of a chart.
type Slice struct {
	Label string
	Value float64
}

// Chart is a two-slice status chart.
type Chart struct {
	ID     string
	Title  string
	Slices []Slice
}

var all = []Chart{
	{ID: "sgc-deployed", Title: "SGC deployed", Slices: []Slice{{"Deployed", 900}, {"Not Deployed", 100}}},
	{ID: "sgc-status", Title: "SGC status", Slices: []Slice{{"Online", 850}, {"Offline", 50}}},
	{ID: "defender-installed", Title: "Defender installed", Slices: []Slice{{"Active", 920}, {"Inactive", 80}}},
	{ID: "defender-status", Title: "Defender status", Slices: []Slice{{"Updated", 900}, {"Outdated", 20}}},
}

// All returns the dashboard charts in display order.
func All() []Chart {
	out := make([]Chart, len(all))
	for i, c := range all {
		out[i] = c
		out[i].Slices = append([]Slice(nil), c.Slices...)
	}
	return out
}

// Lookup returns the chart with id.
func Lookup(id string) (Chart, bool) {
	for _, c := range All() {
		if c.ID == id {
			return c, true
		}
	}
	return Chart{}, false
}

// Total sums the slice values.
func (c Chart) Total() float64 {
	var sum float64
	for _, s := range c.Slices {
		sum += s.Value
	}
	return sum
}

// Percent returns slice i as a percentage of the total.
func (c Chart) Percent(i int) float64 {
	total := c.Total()
	if total == 0 || i < 0 || i >= len(c.Slices) {
		return 0
	}
	return c.Slices[i].Value / total * 100
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	filledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#1f3a5f"))
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#9e9e9e"))
)

// Bar renders the first slice's share as a bar of width cells.
func (c Chart) Bar(width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(c.Percent(0)/100*float64(width) + 0.5)
	return filledStyle.Render(strings.Repeat("█", filled)) +
		emptyStyle.Render(strings.Repeat("░", width-filled))
}

// Summary renders one line per chart: title, bar, and both slice counts.
func Summary(charts []Chart, width int) string {
	titleWidth := 0
	for _, c := range charts {
		titleWidth = max(titleWidth, len(c.Title))
	}
	var b strings.Builder
	for _, c := range charts {
		b.WriteString(titleStyle.Render(fmt.Sprintf("%-*s", titleWidth, c.Title)))
		b.WriteString("  ")
		b.WriteString(c.Bar(width))
		fmt.Fprintf(&b, " %5.1f%%", c.Percent(0))
		for _, s := range c.Slices {
			fmt.Fprintf(&b, "  %s %.0f", s.Label, s.Value)
		}
		b.WriteString("\n")
	}
	return b.String()
}
