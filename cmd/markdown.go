package cmd

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog/log"
)

// wordWrap is the width of the rendered markdown.
const wordWrap = 120

// printMarkdown renders markdown for the terminal, or prints it as is when raw is set.
func printMarkdown(md string, raw bool) {
	if raw {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(wordWrap))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(stdout, out)
			return
		}
	}
	log.Warn().Err(err).Msg("could not render markdown, printing it raw")
	fmt.Fprint(stdout, md)
}

// validateCurrency checks that code is a known ISO currency code, or empty.
func validateCurrency(code string) error {
	if code == "" {
		return nil
	}
	if money.GetCurrency(strings.ToUpper(code)) == nil {
		return fmt.Errorf("unknown currency %q", code)
	}
	return nil
}
