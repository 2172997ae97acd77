package invoice

import (
	"errors"
	"testing"

	"github.com/aldosh/aldo/internal/config"
)

func newTestCounter() *config.Invoice {
	return &config.Invoice{Prefix: "INV-", NextNumber: 1000, Increment: 10}
}

func TestAllocator_PeekDoesNotMutate(t *testing.T) {
	counter := newTestCounter()
	a := NewAllocator(counter)

	for i := 0; i < 3; i++ {
		if got := a.PeekNext(); got != 1000 {
			t.Fatalf("PeekNext() call %d = %d, expected 1000", i+1, got)
		}
	}
	if counter.NextNumber != 1000 {
		t.Errorf("counter advanced to %d by PeekNext, expected 1000", counter.NextNumber)
	}
}

func TestAllocator_PeekConfirmSequence(t *testing.T) {
	counter := newTestCounter()
	a := NewAllocator(counter)

	n := a.PeekNext()
	if n != 1000 {
		t.Fatalf("PeekNext() = %d, expected 1000", n)
	}

	next, err := a.Confirm(n)
	if err != nil {
		t.Fatalf("Confirm(%d) unexpected error: %v", n, err)
	}
	if next != 1010 {
		t.Errorf("Confirm() returned %d, expected 1010", next)
	}
	if got := a.PeekNext(); got != 1010 {
		t.Errorf("PeekNext() after confirm = %d, expected 1010", got)
	}
}

func TestAllocator_DoubleConfirmIsStale(t *testing.T) {
	counter := newTestCounter()
	a := NewAllocator(counter)

	n := a.PeekNext()
	if _, err := a.Confirm(n); err != nil {
		t.Fatalf("first Confirm(%d) unexpected error: %v", n, err)
	}

	_, err := a.Confirm(n)
	if err == nil {
		t.Fatal("second Confirm() with the same number should fail")
	}

	var staleErr *StaleNumberError
	if !errors.As(err, &staleErr) {
		t.Fatalf("error type = %T, expected *StaleNumberError", err)
	}
	if staleErr.Expected != n || staleErr.Next != 1010 {
		t.Errorf("StaleNumberError = {%d %d}, expected {%d %d}", staleErr.Expected, staleErr.Next, n, 1010)
	}
	if counter.NextNumber != 1010 {
		t.Errorf("failed Confirm() mutated counter to %d, expected 1010", counter.NextNumber)
	}
}

func TestAllocator_ConfirmArbitraryNumberIsStale(t *testing.T) {
	a := NewAllocator(newTestCounter())

	if _, err := a.Confirm(1230); err == nil {
		t.Error("Confirm() with an out-of-order number should fail")
	}
}

func TestAllocator_AbandonedPeekIsReoffered(t *testing.T) {
	counter := newTestCounter()

	// First invocation peeks but never confirms (e.g. PDF write failed).
	first := NewAllocator(counter)
	if got := first.PeekNext(); got != 1000 {
		t.Fatalf("PeekNext() = %d, expected 1000", got)
	}

	// A later invocation over the same durable counter gets the same number.
	second := NewAllocator(counter)
	if got := second.PeekNext(); got != 1000 {
		t.Errorf("abandoned number not reoffered: PeekNext() = %d, expected 1000", got)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		prefix   string
		number   int
		expected string
	}{
		{"INV-", 1000, "INV-1000"},
		{"INV-", 390, "INV-0390"},
		{"", 42, "0042"},
		{"ACME-", 12345, "ACME-12345"},
	}

	for _, tt := range tests {
		if got := FormatNumber(tt.prefix, tt.number); got != tt.expected {
			t.Errorf("FormatNumber(%q, %d) = %q, expected %q", tt.prefix, tt.number, got, tt.expected)
		}
	}
}

func TestParseNumberToken(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		prefix   string
		expected int
		ok       bool
	}{
		{name: "bare number", token: "1000", prefix: "INV-", expected: 1000, ok: true},
		{name: "with prefix", token: "INV-1000", prefix: "INV-", expected: 1000, ok: true},
		{name: "padded with prefix", token: "INV-0390", prefix: "INV-", expected: 390, ok: true},
		{name: "whitespace", token: " 1000 ", prefix: "INV-", expected: 1000, ok: true},
		{name: "date is not a number", token: "2025-05-31", prefix: "INV-", ok: false},
		{name: "alias is not a number", token: "today", prefix: "INV-", ok: false},
		{name: "negative", token: "-5", prefix: "INV-", ok: false},
		{name: "wrong prefix", token: "ACME-1000", prefix: "INV-", ok: false},
		{name: "empty", token: "", prefix: "INV-", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseNumberToken(tt.token, tt.prefix)
			if ok != tt.ok {
				t.Fatalf("ParseNumberToken(%q) ok = %v, expected %v", tt.token, ok, tt.ok)
			}
			if ok && got != tt.expected {
				t.Errorf("ParseNumberToken(%q) = %d, expected %d", tt.token, got, tt.expected)
			}
		})
	}
}
