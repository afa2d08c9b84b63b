package cfd

import (
	"time"

	"github.com/ydrgzm/taiga-cfd-bot/pkg/logger"
)

// Granularity selects the bucket stride of the generated series.
type Granularity string

const (
	Daily   Granularity = "daily"
	Weekly  Granularity = "weekly"
	Monthly Granularity = "monthly"
)

// Stride returns the fixed bucket step. Monthly is a flat 30 days, an
// approximation rather than a calendar-month boundary.
func (g Granularity) Stride() time.Duration {
	switch g {
	case Weekly:
		return 7 * 24 * time.Hour
	case Monthly:
		return 30 * 24 * time.Hour
	default:
		return 24 * time.Hour
	}
}

func (g Granularity) String() string {
	return string(g)
}

// ParseGranularity is deliberately lenient: an unrecognized value logs a
// warning and falls back to daily instead of failing the run.
func ParseGranularity(s string, log logger.Logger) Granularity {
	switch Granularity(s) {
	case Daily, Weekly, Monthly:
		return Granularity(s)
	default:
		log.Warn("Unknown granularity, defaulting to daily", "granularity", s)
		return Daily
	}
}
