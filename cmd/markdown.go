package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// renderMarkdown renders md for the terminal with the given glamour style.
func renderMarkdown(md, style string) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(100)}
	if style == "" || style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("could not create markdown renderer: %w", err)
	}
	return r.Render(md)
}

// printMarkdown prints md to the standard output, rendered when possible.
func printMarkdown(md string) {
	out, err := renderMarkdown(md, config.Style)
	if err != nil {
		logger.Warn().Err(err).Msg("printing raw markdown")
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
