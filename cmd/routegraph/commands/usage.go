package commands

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// writeUsage prints the argument summary. Styling is dropped automatically
// when w is not a terminal.
func writeUsage(w io.Writer) {
	r := lipgloss.NewRenderer(w)
	title := r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF5F87"))
	hint := r.NewStyle().Faint(true)

	fmt.Fprintln(w, title.Render("Invalid arguments!"))
	fmt.Fprintln(w, "You must supply either:")
	fmt.Fprintln(w, "\t(No arguments),")
	fmt.Fprintln(w, "\tFrom(a node name) To(a node name),")
	fmt.Fprintln(w, "\tGraph(a path to a text file describing a graph),")
	fmt.Fprintln(w, "\tor Graph From To")
	fmt.Fprintln(w, hint.Render("Edges are read from standard input when no Graph file is given."))
}
