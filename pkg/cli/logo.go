package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const logo = `    ___       ___       ___       ___       ___       ___       ___
   /\  \     /\__\     /\  \     /\__\     /\  \     /\  \     /\  \
  /::\  \   /:/  /    _\:\  \   /::L_L_   /::\  \   _\:\  \   /::\  \
 /:/\:\__\ /:/__/    /\/::\__\ /:/L:\__\ /::\:\__\ /::::\__\ /::\:\__\
 \:\ \/__/ \:\  \    \::/\/__/ \/_/:/  / \/\::/  / \::;;/__/ \:\:\/  /
  \:\__\    \:\__\    \:\__\     /:/  /    /:/  /   \:\__\    \:\/  /
   \/__/     \/__/     \/__/     \/__/     \/__/     \/__/     \/__/`

const tagline = "A tool for visualizing maze generation and solving algorithms"

// Banner is the logo block printed above menus.
func Banner(styled bool) string {
	var sb strings.Builder
	if styled {
		sb.WriteString(lipgloss.NewStyle().Foreground(ColorBrightGreen).Render(logo))
		sb.WriteByte('\n')
		sb.WriteString(lipgloss.NewStyle().Foreground(ColorGreen).Render(tagline))
	} else {
		sb.WriteString(logo)
		sb.WriteByte('\n')
		sb.WriteString(tagline)
	}
	sb.WriteString("\n\n\n")
	return sb.String()
}
