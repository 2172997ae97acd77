// Package cli provides output formatting shared by the command layer
// and the TUI.
package cli

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/aldosh/aldo/internal/config"
	"github.com/aldosh/aldo/internal/entry"
)

// FormatHours formats an hour count for display.
// Examples: "8h", "7.5h", "0.25h"
func FormatHours(hours decimal.Decimal) string {
	return hours.String() + "h"
}

// FormatEntry formats a ledger entry as a single display line.
// Example: "2025-04-01   7.5h  backend work"
func FormatEntry(e entry.HourEntry) string {
	line := fmt.Sprintf("%s  %6s", e.Date, FormatHours(e.Hours))
	if e.Description != "" {
		line += "  " + e.Description
	}
	return line
}

// FormatAmount formats a monetary amount with its currency code.
// Example: "1240.00 EUR"
func FormatAmount(amount decimal.Decimal, currency string) string {
	if currency == "" {
		return amount.StringFixed(2)
	}
	return fmt.Sprintf("%s %s", amount.StringFixed(2), currency)
}

// FormatConfig renders the effective configuration as key/value lines.
func FormatConfig(cfg config.Config) string {
	var b strings.Builder

	section := func(name string) {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(name + "\n")
	}
	field := func(key, value string) {
		if value == "" {
			value = "(not set)"
		}
		fmt.Fprintf(&b, "  %-14s %s\n", key, value)
	}

	section("Business")
	field("name", cfg.Business.Name)
	field("address", cfg.Business.Address)
	field("email", cfg.Business.Email)
	field("phone", cfg.Business.Phone)
	field("tax id", cfg.Business.TaxID)

	section("Client")
	field("name", cfg.Client.Name)
	field("address", cfg.Client.Address)
	field("contact", cfg.Client.ContactPerson)
	field("email", cfg.Client.Email)

	section("Payment")
	field("hourly rate", FormatAmount(cfg.Payment.HourlyRate, cfg.Payment.Currency))
	field("terms", cfg.Payment.Terms)
	field("bank", cfg.Payment.BankName)
	field("iban", cfg.Payment.IBAN)

	section("Invoice")
	field("prefix", cfg.Invoice.Prefix)
	field("next number", fmt.Sprintf("%d", cfg.Invoice.NextNumber))
	field("increment", fmt.Sprintf("%d", cfg.Invoice.Increment))
	field("footer", cfg.Invoice.FooterText)

	return b.String()
}
