package configs

import (
	"fmt"
	"time"
)

// Stats configures the aggregation pipeline.
type Stats struct {
	// MonthlyThresholdDays is the longest custom range still bucketed by
	// day. Longer ranges are bucketed by month.
	MonthlyThresholdDays int `env:"MONTHLY_THRESHOLD_DAYS" envDefault:"60"`
	// ActiveStatuses is the campaign allow-list of the graph and table
	// views when a request does not pass its own.
	ActiveStatuses []string `env:"ACTIVE_STATUSES" envDefault:"ENABLED,ACTIVE" envSeparator:","`
	// Timezone decides which calendar day "today" is.
	Timezone string `env:"TIMEZONE" envDefault:"UTC"`
}

// Validate checks the threshold and the timezone name.
func (c Stats) Validate() error {
	if c.MonthlyThresholdDays < 1 {
		return fmt.Errorf("stats monthly threshold must be positive, got %d", c.MonthlyThresholdDays)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location loads Timezone.
func (c Stats) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("stats timezone: %w", err)
	}
	return loc, nil
}
