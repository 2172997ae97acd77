package invoice

import (
	"fmt"
	"strconv"

	"github.com/aldosh/aldo/internal/dateutil"
)

// Record is one generated invoice: its number and billing period, and
// the confirmation date once it has been confirmed as sent.
type Record struct {
	Number      int            `json:"number"`
	Start       dateutil.Date  `json:"start"`
	End         dateutil.Date  `json:"end"`
	ConfirmedOn *dateutil.Date `json:"confirmed_on,omitempty"`
}

// Records tracks generated invoices. Pending is the single invoice that
// has been generated but not yet confirmed; confirming it moves it into
// Confirmed and makes it the LastConfirmed. The last confirmed period's
// end seeds the start of the next billing period.
type Records struct {
	Pending       *Record           `json:"pending,omitempty"`
	LastConfirmed *Record           `json:"last_confirmed,omitempty"`
	Confirmed     map[string]Record `json:"confirmed,omitempty"`
}

// SetPending replaces the pending invoice record. Regenerating before
// confirming simply overwrites the previous pending record; no number
// is consumed either way.
func (r *Records) SetPending(rec Record) {
	rec.ConfirmedOn = nil
	r.Pending = &rec
}

// ConfirmPending confirms the pending record with the given number on
// the given date. It fails when there is no pending invoice or when the
// number does not match the pending one.
func (r *Records) ConfirmPending(number int, on dateutil.Date) (Record, error) {
	if r.Pending == nil {
		return Record{}, fmt.Errorf("no generated invoice to confirm: run generate first")
	}
	if r.Pending.Number != number {
		return Record{}, fmt.Errorf("invoice number mismatch: generated invoice is %d, got %d", r.Pending.Number, number)
	}

	rec := *r.Pending
	rec.ConfirmedOn = &on

	if r.Confirmed == nil {
		r.Confirmed = make(map[string]Record)
	}
	r.Confirmed[strconv.Itoa(rec.Number)] = rec
	r.LastConfirmed = &rec
	r.Pending = nil

	return rec, nil
}

// ByNumber looks up a confirmed invoice by number.
func (r *Records) ByNumber(number int) (Record, bool) {
	rec, ok := r.Confirmed[strconv.Itoa(number)]
	return rec, ok
}
