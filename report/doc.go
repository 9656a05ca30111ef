// Package report summarizes a labeling result as component counts, area
// statistics and per-component fill ratios. Summaries render as YAML or as
// an aligned text table.
package report
