package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stocks"
	"github.com/etnz/stocks/renderer"
	"github.com/google/subcommands"
)

type describeCmd struct {
	inputFlags
	rows int
}

func (*describeCmd) Name() string     { return "describe" }
func (*describeCmd) Synopsis() string { return "preview the price table and print its descriptive statistics" }
func (*describeCmd) Usage() string {
	return `stocks [-input <file>] describe [-n <rows>]

Prints the first rows of the input table and the descriptive statistics of the
closing prices of every ticker. No chart is produced.
`
}

func (c *describeCmd) SetFlags(f *flag.FlagSet) {
	c.inputFlags.SetFlags(f)
	f.IntVar(&c.rows, "n", renderer.DefaultPreviewRows, "Number of input rows to preview.")
}

func (c *describeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	opts, err := c.options()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.rows < 0 {
		fmt.Fprintf(os.Stderr, "Error: -n must not be negative, got %d\n", c.rows)
		return subcommands.ExitUsageError
	}

	input := InputFile()
	raw, err := stocks.Load(input, opts.Load)
	if err != nil {
		return reportError(stocks.InStage(stocks.StageLoad, err))
	}
	table, err := stocks.Reshape(raw, opts.Duplicates)
	if err != nil {
		return reportError(stocks.InStage(stocks.StageReshape, err))
	}

	md := renderer.DescribeMarkdown(table, stocks.Describe(table), renderer.Options{
		Source:      input,
		Raw:         raw,
		PreviewRows: c.rows,
		Currency:    c.currency,
	})
	printMarkdown(md, c.raw)
	return subcommands.ExitSuccess
}
