package controller

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var barStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))

// RenderBars renders a module string as block glyphs, one column per module,
// dark modules as full blocks. The row is doubled for visual bar height.
func RenderBars(modules string) string {
	var row strings.Builder

	for i := 0; i < len(modules); i++ {
		if modules[i] == '1' {
			row.WriteRune('█')
		} else {
			row.WriteRune(' ')
		}
	}

	bar := row.String()

	return barStyle.Render(bar + "\n" + bar)
}
