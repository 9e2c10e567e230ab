package benchmark

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Item is one category together with the regressions detected in it.
type Item struct {
	Category    Category
	Regressions []Regression
}

type Regression struct {
	Baseline     string
	Current      string
	BaselineMean float64
	CurrentMean  float64
}

// Ratio is how many times slower the current command is than the baseline.
func (r Regression) Ratio() float64 {
	if r.BaselineMean == 0 {
		return 0
	}
	return r.CurrentMean / r.BaselineMean
}

// Collector produces the regressed categories in the order they should be
// reported.
type Collector interface {
	Collect(ctx context.Context) ([]Item, error)
}

// hyperfineExport is the subset of `hyperfine --export-json` output we use.
type hyperfineExport struct {
	Results []struct {
		Command string  `json:"command"`
		Mean    float64 `json:"mean"`
	} `json:"results"`
}

// HyperfineCollector compares the mean run time of the current command with
// every baseline command in each category's JSON report.
type HyperfineCollector struct {
	log     zerolog.Logger
	matrix  Matrix
	reports ReportLocator
}

func NewHyperfineCollector(log zerolog.Logger, matrix Matrix, reports ReportLocator) *HyperfineCollector {
	return &HyperfineCollector{
		log:     log,
		matrix:  matrix,
		reports: reports,
	}
}

func (c *HyperfineCollector) Collect(ctx context.Context) ([]Item, error) {
	var items []Item
	for _, category := range c.matrix.Categories {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		regressions, err := c.compare(category)
		if err != nil {
			return nil, err
		}

		c.log.Debug().
			Str("category", string(category)).
			Int("regressions", len(regressions)).
			Msg("category compared")

		if len(regressions) > 0 {
			items = append(items, Item{Category: category, Regressions: regressions})
		}
	}
	return items, nil
}

func (c *HyperfineCollector) compare(category Category) ([]Regression, error) {
	text, err := c.reports.LoadReport(category, ExtJSON)
	if err != nil {
		return nil, err
	}

	var export hyperfineExport
	if err := json.Unmarshal([]byte(text), &export); err != nil {
		return nil, fmt.Errorf("decode hyperfine report for %q: %w", string(category), err)
	}

	means := make(map[string]float64, len(export.Results))
	for _, r := range export.Results {
		fields := strings.Fields(r.Command)
		if len(fields) == 0 {
			continue
		}
		if _, dup := means[fields[0]]; dup {
			c.log.Warn().
				Str("category", string(category)).
				Str("command", fields[0]).
				Msg("duplicate command in report, keeping the first result")
			continue
		}
		means[fields[0]] = r.Mean
	}

	current, ok := means[c.matrix.Current]
	if !ok {
		return nil, fmt.Errorf("hyperfine report for %q has no result for %q", string(category), c.matrix.Current)
	}

	threshold := c.matrix.Threshold()
	var regressions []Regression
	for _, baseline := range c.matrix.Baselines {
		mean, ok := means[baseline]
		if !ok {
			c.log.Warn().
				Str("category", string(category)).
				Str("baseline", baseline).
				Msg("baseline missing from report")
			continue
		}
		if current > mean*(1.0+threshold) {
			r := Regression{
				Baseline:     baseline,
				Current:      c.matrix.Current,
				BaselineMean: mean,
				CurrentMean:  current,
			}
			c.log.Info().
				Str("category", string(category)).
				Str("baseline", baseline).
				Float64("ratio", r.Ratio()).
				Msg("performance regression")
			regressions = append(regressions, r)
		}
	}
	return regressions, nil
}
