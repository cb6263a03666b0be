// Package validate checks a dataset against the invariants the generator
// maintains by construction: referential integrity, temporal consistency,
// distribution conformance, and business rules. It runs over datasets read
// back through a loader, so it catches publish corruption as well as
// generator regressions.
package validate

import (
	"context"
	"fmt"

	"github.com/wolfeidau/taskseed/internal/models"
	"github.com/wolfeidau/taskseed/internal/telemetry"
)

// Finding categories.
const (
	CategoryReferential  = "referential_integrity"
	CategoryTemporal     = "temporal_consistency"
	CategoryDistribution = "distribution"
	CategoryBusiness     = "business_logic"
)

// Distribution checks only bind on datasets at least this large; the bands
// are meaningless for a handful of tasks.
const distributionMinTasks = 1000

// Finding is one hard violation discovered in a dataset.
type Finding struct {
	Category string
	Message  string
}

// Observation is a measured marginal rate with its target band.
// Observations fail only a strict validation, and only when the dataset is
// large enough for the band to bind.
type Observation struct {
	Name  string
	Value float64
	Lo    float64
	Hi    float64
}

// InBand reports whether the observation sits inside its target band.
func (o Observation) InBand() bool {
	return o.Value >= o.Lo && o.Value <= o.Hi
}

// Report is the outcome of validating one dataset.
type Report struct {
	Tasks        int
	Findings     []Finding
	Observations []Observation
}

func (r *Report) add(category, format string, args ...any) {
	r.Findings = append(r.Findings, Finding{Category: category, Message: fmt.Sprintf(format, args...)})
}

func (r *Report) observe(name string, value, lo, hi float64) {
	r.Observations = append(r.Observations, Observation{Name: name, Value: value, Lo: lo, Hi: hi})
}

// CountsByCategory returns the number of findings per category.
func (r *Report) CountsByCategory() map[string]int {
	counts := map[string]int{}
	for _, f := range r.Findings {
		counts[f.Category]++
	}
	return counts
}

// Failed reports whether the dataset should be rejected. Hard findings
// always fail; out-of-band observations fail only under strict and only
// when the distribution checks bind.
func (r *Report) Failed(strict bool) bool {
	if len(r.Findings) > 0 {
		return true
	}

	if strict && r.Tasks >= distributionMinTasks {
		for _, o := range r.Observations {
			if !o.InBand() {
				return true
			}
		}
	}

	return false
}

// Check runs every category against the dataset.
func Check(ctx context.Context, ds *models.Dataset) *Report {
	c := newChecker(ds)

	c.checkReferential()
	c.checkUniqueness()
	c.checkTemporal()
	c.checkBusiness()
	c.checkDistributions()

	metrics := telemetry.GetMetrics()
	for category, count := range c.report.CountsByCategory() {
		metrics.RecordViolations(ctx, category, count)
	}

	return c.report
}
