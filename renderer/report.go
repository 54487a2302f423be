package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/stocks"
	"github.com/guregu/null/v6"
	md "github.com/nao1215/markdown"
)

// DefaultPreviewRows is the number of input rows shown in the data preview.
const DefaultPreviewRows = 5

// ChartLink points to a saved chart image.
type ChartLink struct {
	Name  string // chart name, as chart.Chart.Name
	Title string
	Path  string
}

// Options holds configuration for rendering a report.
type Options struct {
	Source      string           // input file, shown in the summary line.
	Raw         *stocks.RawTable // input table for the data preview, no preview when nil.
	PreviewRows int              // DefaultPreviewRows when zero.
	Currency    string           // ISO code used to format prices, plain numbers when empty.
	Charts      []ChartLink
}

// chart returns the image markdown of a named chart, or an empty string.
func (o Options) chart(name string) string {
	for _, c := range o.Charts {
		if c.Name == name {
			return fmt.Sprintf("![%s](%s)", c.Title, c.Path)
		}
	}
	return ""
}

// ReportMarkdown renders the whole analysis: preview, statistics tables and charts.
func ReportMarkdown(a *stocks.Analysis, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Stock Market Analysis")
	doc.PlainText(summaryLine(a.Table, opts.Source))

	renderPreview(doc, opts)
	renderDescriptions(doc, a.Descriptions, opts.Currency)

	doc.H2("Time Series of Closing Prices")
	renderChart(doc, opts, "closing_prices")

	doc.H2("Volatility of Closing Prices")
	volatility := md.TableSet{Header: []string{"Ticker", "Standard Deviation"}}
	for _, v := range a.Volatility {
		volatility.Rows = append(volatility.Rows, []string{v.Ticker, formatPrice(v.Value, opts.Currency)})
	}
	doc.Table(volatility)
	renderChart(doc, opts, "volatility")

	doc.H2("Correlation Matrix of Closing Prices")
	tickers := a.Correlation.Tickers()
	correlation := md.TableSet{Header: append([]string{"Ticker"}, tickers...)}
	for i, ticker := range tickers {
		row := []string{ticker}
		for j := range tickers {
			row = append(row, formatNumber(a.Correlation.At(i, j), 2))
		}
		correlation.Rows = append(correlation.Rows, row)
	}
	doc.Table(correlation)
	renderChart(doc, opts, "correlation")

	doc.H2("Percentage Change in Closing Prices")
	change := md.TableSet{Header: []string{"Ticker", "Change"}}
	for _, v := range a.PercentChange {
		change.Rows = append(change.Rows, []string{v.Ticker, formatSignedPercent(v.Value)})
	}
	doc.Table(change)
	renderChart(doc, opts, "percentage_change")

	doc.H2("Risk vs. Return Analysis")
	doc.PlainText(fmt.Sprintf("Daily returns over %d dates.", a.Returns.Len()))
	riskReturn := md.TableSet{Header: []string{"Ticker", "Risk (Standard Deviation)", "Average Daily Return"}}
	for _, v := range a.RiskReturn {
		riskReturn.Rows = append(riskReturn.Rows, []string{v.Ticker, formatPercent(v.Risk, 3), formatPercent(v.Return, 3)})
	}
	doc.Table(riskReturn)
	renderChart(doc, opts, "risk_return")

	return doc.String()
}

// DescribeMarkdown renders the data preview and the descriptive statistics only.
func DescribeMarkdown(t *stocks.PriceTable, descriptions []stocks.Description, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Descriptive Statistics")
	doc.PlainText(summaryLine(t, opts.Source))
	renderPreview(doc, opts)
	renderDescriptions(doc, descriptions, opts.Currency)
	return doc.String()
}

func summaryLine(t *stocks.PriceTable, source string) string {
	r := t.Range()
	line := fmt.Sprintf("%d tickers over %d dates, from %s (%d calendar days).", t.Width(), t.Len(), r, r.Days())
	if source != "" {
		line = fmt.Sprintf("Source: %s. %s", source, line)
	}
	return line
}

func renderPreview(doc *md.Markdown, opts Options) {
	if opts.Raw == nil {
		return
	}
	n := opts.PreviewRows
	if n <= 0 {
		n = DefaultPreviewRows
	}
	doc.H2("Data Preview")
	preview := md.TableSet{Header: opts.Raw.Columns}
	for _, row := range opts.Raw.Head(n) {
		preview.Rows = append(preview.Rows, row)
	}
	doc.Table(preview)
	if more := opts.Raw.Len() - n; more > 0 {
		doc.PlainText(fmt.Sprintf("... and %d more rows.", more))
	}
}

func renderDescriptions(doc *md.Markdown, descriptions []stocks.Description, currency string) {
	doc.H2("Closing Prices by Ticker")
	table := md.TableSet{
		Header: []string{"Ticker", "Count", "Mean", "Std", "Min", "25%", "50%", "75%", "Max"},
	}
	for _, d := range descriptions {
		price := func(v null.Float) string { return formatPrice(v, currency) }
		table.Rows = append(table.Rows, []string{
			d.Ticker,
			strconv.Itoa(d.Count),
			price(d.Mean),
			price(d.Std),
			price(d.Min),
			price(d.Q25),
			price(d.Q50),
			price(d.Q75),
			price(d.Max),
		})
	}
	doc.Table(table)
}

func renderChart(doc *md.Markdown, opts Options, name string) {
	if img := opts.chart(name); img != "" {
		doc.PlainText(img)
	}
}
