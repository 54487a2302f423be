// Package cmd implements the CLI application to analyze a stock price table.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/etnz/stocks"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// Environment variables used as defaults when the matching flag is not set.
const (
	EnvInput     = "STOCKS_INPUT"
	EnvOutputDir = "STOCKS_OUTPUT_DIR"
	EnvCurrency  = "STOCKS_CURRENCY"
)

// DefaultInput is the input file used when neither -input nor STOCKS_INPUT is set.
const DefaultInput = "stocks.csv"

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")
	c.Register(&topicCmd{}, "")

	c.Register(&reportCmd{}, "analysis")
	c.Register(&describeCmd{}, "analysis")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var inputFile = flag.String("input", "", "Path to the price table (CSV or JSON). Defaults to $"+EnvInput+" or "+DefaultInput)

// Verbose enables debug logs.
var Verbose = flag.Bool("v", false, "verbose logs")

// stdout receives the reports.
var stdout io.Writer = os.Stdout

// LoadEnv loads variables from a .env file in the current directory, if there is one.
// Variables already set in the environment take precedence.
func LoadEnv() error {
	err := godotenv.Load()
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// InputFile returns the input path from the -input flag, the environment, or the default.
func InputFile() string {
	return firstNonEmpty(*inputFile, os.Getenv(EnvInput), DefaultInput)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// inputFlags are the flags shared by the commands that read the input table.
type inputFlags struct {
	comma      string
	records    string
	duplicates string
	currency   string
	raw        bool
}

func (c *inputFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.comma, "comma", ",", "Field delimiter of the input table, 'tab' for tab separated values.")
	f.StringVar(&c.records, "records", stocks.DefaultRecordsPath, "JSONPath to the price records when the input is JSON.")
	f.StringVar(&c.duplicates, "duplicates", stocks.DuplicateError.String(), "What to do with several prices for the same ticker and date (error, last).")
	f.StringVar(&c.currency, "currency", "", "Currency code to format prices with. Defaults to $"+EnvCurrency+".")
	f.BoolVar(&c.raw, "raw", false, "Print raw markdown instead of rendering it for the terminal.")
}

// options validates the flags and returns the pipeline options.
func (c *inputFlags) options() (stocks.Options, error) {
	var opts stocks.Options

	comma := c.comma
	if strings.EqualFold(comma, "tab") {
		comma = "\t"
	}
	r, size := utf8.DecodeRuneInString(comma)
	if r == utf8.RuneError || size != len(comma) {
		return opts, fmt.Errorf("invalid delimiter %q: want a single character", c.comma)
	}
	opts.Load = stocks.LoadOptions{Comma: r, RecordsPath: c.records}

	policy, err := stocks.ParseDuplicatePolicy(c.duplicates)
	if err != nil {
		return opts, err
	}
	opts.Duplicates = policy

	c.currency = strings.ToUpper(firstNonEmpty(c.currency, os.Getenv(EnvCurrency)))
	if err := validateCurrency(c.currency); err != nil {
		return opts, err
	}
	return opts, nil
}

// reportError prints a pipeline error with the stage that failed.
func reportError(err error) subcommands.ExitStatus {
	var stageErr *stocks.StageError
	if errors.As(err, &stageErr) {
		fmt.Fprintf(os.Stderr, "Error: %s stage: %v\n", stageErr.Stage, stageErr.Err)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return subcommands.ExitFailure
}
