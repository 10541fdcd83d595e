package domain

import (
	"strings"
	"time"
)

// Campaign statuses reported by the ad platforms. Values are stored as the
// platforms send them; comparisons are case-insensitive.
const (
	StatusActive                = "ACTIVE"
	StatusEnabled               = "ENABLED"
	StatusPaused                = "PAUSED"
	StatusBudgetPaused          = "BUDGET_PAUSED"
	StatusBudgetAndManualPaused = "BUDGET_AND_MANUAL_PAUSED"
	StatusDeleted               = "DELETED"
	StatusRemoved               = "REMOVED"
	StatusSuspended             = "SUSPENDED"
	StatusPending               = "PENDING"
	StatusDraft                 = "DRAFT"
)

// MarketingChannel is an ad platform account the metrics are synced from
// (e.g. Google Ads, Bing Ads).
type MarketingChannel struct {
	ID         int64
	SourceName string
	IsActive   bool
	URL        string
	CreatedAt  time.Time
}

// Campaign represents an advertising campaign owned by a marketing channel.
// ExternalID is the identifier assigned by the ad platform.
type Campaign struct {
	ID         int64
	ChannelID  int64
	ExternalID string
	Name       string
	Status     string
}

// NormalizeStatus upper-cases and trims a status value.
func NormalizeStatus(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
