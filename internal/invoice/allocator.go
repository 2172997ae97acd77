// Package invoice implements invoice numbering and rendering: the
// two-phase peek/confirm allocation protocol over the durable counter,
// the record of generated and confirmed invoices, and the PDF composer.
package invoice

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aldosh/aldo/internal/config"
)

// StaleNumberError reports a confirmation whose number does not match
// the current counter. No state is mutated when this is returned.
type StaleNumberError struct {
	Expected int
	Next     int
}

func (e *StaleNumberError) Error() string {
	return fmt.Sprintf("stale invoice number %d: next number is %d", e.Expected, e.Next)
}

// Allocator hands out sequential invoice numbers using a two-phase
// protocol: PeekNext offers the next number without reserving it, and
// Confirm commits it after the invoice has actually been produced. A
// peeked number that is never confirmed is offered again on the next
// invocation; only the counter itself is durable.
type Allocator struct {
	counter *config.Invoice
}

// NewAllocator returns an allocator over the given counter. The counter
// is mutated in place by Confirm; persisting it is the caller's job,
// immediately after a successful Confirm.
func NewAllocator(counter *config.Invoice) *Allocator {
	return &Allocator{counter: counter}
}

// PeekNext returns the next invoice number without mutating state.
func (a *Allocator) PeekNext() int {
	return a.counter.NextNumber
}

// Confirm advances the counter past expected. If expected does not
// match the current next number the call fails with *StaleNumberError
// and performs no mutation. On success the new next number is returned.
func (a *Allocator) Confirm(expected int) (int, error) {
	if expected != a.counter.NextNumber {
		return 0, &StaleNumberError{Expected: expected, Next: a.counter.NextNumber}
	}
	a.counter.NextNumber += a.counter.Increment
	return a.counter.NextNumber, nil
}

// FormatNumber renders a numeric invoice number with its prefix and
// zero padding, e.g. FormatNumber("INV-", 1000) == "INV-1000".
func FormatNumber(prefix string, number int) string {
	return fmt.Sprintf("%s%04d", prefix, number)
}

// ParseNumberToken parses a user-supplied invoice number, with or
// without the configured prefix ("1000" and "INV-1000" both work).
// The second return value reports whether the token was a number.
func ParseNumberToken(token, prefix string) (int, bool) {
	token = strings.TrimSpace(token)
	if prefix != "" && strings.HasPrefix(token, prefix) {
		token = token[len(prefix):]
	}
	n, err := strconv.Atoi(token)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
