package tree

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// terminalColors maps editor theme colours to ANSI colours. Colours missing
// here render in the terminal's default foreground.
var terminalColors = map[string]lipgloss.Color{
	"charts.red":    "1",
	"charts.green":  "2",
	"charts.yellow": "3",
	"charts.blue":   "4",
	"charts.purple": "5",
	"charts.orange": "208",
}

// Render writes nodes to w as an indented tree. Styling is dropped when w is
// not a terminal.
func Render(w io.Writer, nodes []*ThemeNode) error {
	r := lipgloss.NewRenderer(w)
	dim := r.NewStyle().Faint(true)

	for _, tn := range nodes {
		head := style(r, tn.Color).Bold(true).Render(tn.DisplayName)
		if _, err := fmt.Fprintf(w, "%s %s\n", head, dim.Render(fmt.Sprintf("(%d)", len(tn.Children)))); err != nil {
			return err
		}
		for i, fn := range tn.Children {
			branch := "├── "
			if i == len(tn.Children)-1 {
				branch = "└── "
			}
			title := style(r, fn.Color).Render(fn.File.Title)
			line := fmt.Sprintf("%s%s  %s  %s\n", branch, title, dim.Render(fn.Description), dim.Render("["+fn.TypeLabel+"]"))
			if _, err := io.WriteString(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

func style(r *lipgloss.Renderer, color string) lipgloss.Style {
	s := r.NewStyle()
	if c, ok := terminalColors[color]; ok {
		s = s.Foreground(c)
	}
	return s
}
