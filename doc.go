// Package stocks analyzes a table of daily closing prices and derives the statistics of a
// descriptive report. It is designed to be local-first and deterministic: one input file,
// one pass, no state kept between runs.
//
// The pipeline is linear:
//   - Loading: reading a delimited (or JSON) table of Date, Ticker, Close rows into a
//     RawTable, in file order.
//   - Reshaping: parsing dates and prices into Records, then pivoting them into a
//     PriceTable indexed by date with one column per ticker.
//   - Analytics: stateless functions over the PriceTable computing descriptive statistics,
//     volatility, the correlation matrix, the percentage change over the period and the
//     risk/return profile of daily returns.
//
// Statistics that cannot be computed from the available observations are reported as
// missing values, never as zero.
//
// This package serves as the foundational logic for the `stocks` command-line tool, the
// charts are built by package chart and the text report by package renderer.
package stocks
