package entry

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/aldosh/aldo/internal/dateutil"
)

// HourEntry represents the hours worked on a single calendar date.
// The ledger holds at most one entry per date; logging the same date
// again replaces the previous entry.
type HourEntry struct {
	Date        dateutil.Date   `json:"date"`
	Hours       decimal.Decimal `json:"hours"`
	Description string          `json:"description,omitempty"`
	LoggedAt    time.Time       `json:"logged_at"`
}
