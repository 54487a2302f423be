package cmd

import (
	"maps"

	"github.com/etnz/stocks"
	"github.com/etnz/stocks/chart"
	"github.com/etnz/stocks/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion tree of the application.
//
// Install it with COMP_INSTALL=1 stocks, see the posener/complete documentation.
func Completion() *complete.Command {
	input := predict.Or(predict.Files("*.csv"), predict.Files("*.tsv"), predict.Files("*.json"))

	inputFlags := map[string]complete.Predictor{
		"comma":      predict.Set{",", ";", "tab", "|"},
		"records":    predict.Something,
		"duplicates": predict.Set{stocks.DuplicateError.String(), stocks.DuplicateKeepLast.String()},
		"currency":   predict.Something,
		"raw":        predict.Nothing,
	}
	with := func(extra map[string]complete.Predictor) map[string]complete.Predictor {
		flags := make(map[string]complete.Predictor, len(inputFlags)+len(extra))
		maps.Copy(flags, inputFlags)
		maps.Copy(flags, extra)
		return flags
	}

	topics, _ := docs.GetAllTopics()
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"input": input,
			"v":     predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"report": {Flags: with(map[string]complete.Predictor{
				"o":      predict.Dirs("*"),
				"format": predict.Set{string(chart.PNG), string(chart.SVG), string(chart.PDF), string(chart.JPG)},
				"md":     predict.Files("*.md"),
			})},
			"describe": {Flags: with(map[string]complete.Predictor{
				"n": predict.Something,
			})},
			"topic": {
				Flags: map[string]complete.Predictor{"raw": predict.Nothing},
				Args:  predict.Set(append(topics, "*")),
			},
			"help":     {Args: predict.Set{"report", "describe", "topic"}},
			"flags":    {},
			"commands": {},
		},
	}
}
