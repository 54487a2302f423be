package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/etnz/stocks"
	"github.com/etnz/stocks/chart"
	"github.com/etnz/stocks/renderer"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

type reportCmd struct {
	inputFlags
	outputDir string
	format    string
	markdown  string
}

func (*reportCmd) Name() string { return "report" }
func (*reportCmd) Synopsis() string {
	return "analyze the price table, save the charts and print the report"
}
func (*reportCmd) Usage() string {
	return `stocks [-input <file>] report [-o <dir>] [-format png|svg|pdf|jpg] [-duplicates error|last] [-currency <code>]

Loads the price table, computes descriptive statistics, volatility, correlation,
percentage change and risk vs. return, saves one chart per analysis in the
output directory and prints the report.

The report is also written as markdown in the output directory, with links to the charts.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	c.inputFlags.SetFlags(f)
	f.StringVar(&c.outputDir, "o", "", "Directory to save the charts and the report into. Defaults to $"+EnvOutputDir+" or the current directory.")
	f.StringVar(&c.format, "format", string(chart.PNG), "Image format of the charts: png, svg, pdf or jpg.")
	f.StringVar(&c.markdown, "md", "report.md", "Name of the markdown report written in the output directory, empty to skip.")
}

func (c *reportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	opts, err := c.options()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	format, err := chart.ParseFormat(c.format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	dir := firstNonEmpty(c.outputDir, os.Getenv(EnvOutputDir), ".")

	input := InputFile()
	raw, analysis, err := stocks.Run(input, opts)
	if err != nil {
		return reportError(err)
	}

	charts, err := chart.Charts(analysis)
	if err != nil {
		return reportError(stocks.InStage(stocks.StageRender, err))
	}
	paths, err := chart.SaveAll(ctx, dir, format, charts)
	if err != nil {
		return reportError(stocks.InStage(stocks.StageRender, err))
	}

	links := make([]renderer.ChartLink, len(charts))
	for i, ch := range charts {
		// Links are relative to the report, which lives next to the charts.
		links[i] = renderer.ChartLink{Name: ch.Name, Title: ch.Title(), Path: filepath.Base(paths[i])}
	}
	md := renderer.ReportMarkdown(analysis, renderer.Options{
		Source:   input,
		Raw:      raw,
		Currency: c.currency,
		Charts:   links,
	})

	if c.markdown != "" {
		path := filepath.Join(dir, c.markdown)
		if err := os.WriteFile(path, []byte(md), 0644); err != nil {
			return reportError(stocks.InStage(stocks.StageRender, err))
		}
		log.Info().Str("file", path).Int("charts", len(paths)).Msg("report saved")
	}

	printMarkdown(md, c.raw)
	return subcommands.ExitSuccess
}
