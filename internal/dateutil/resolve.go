package dateutil

import (
	"fmt"
	"strings"
	"time"
)

// Alias is a relative date keyword resolved against a reference date.
// The set is closed: adding an alias means extending the constants,
// ParseAlias, and the switch in apply, all checked at compile time.
type Alias int

const (
	AliasToday Alias = iota
	AliasTomorrow
	AliasYesterday
	AliasDayBefore
)

// ParseAlias recognizes a relative date keyword (case-insensitive).
// The second return value reports whether the token was an alias at all.
func ParseAlias(token string) (Alias, bool) {
	switch strings.ToLower(token) {
	case "today":
		return AliasToday, true
	case "tomorrow":
		return AliasTomorrow, true
	case "yesterday":
		return AliasYesterday, true
	case "daybefore":
		return AliasDayBefore, true
	default:
		return 0, false
	}
}

// apply resolves the alias against the reference date.
func (a Alias) apply(ref Date) Date {
	switch a {
	case AliasToday:
		return ref
	case AliasTomorrow:
		return ref.AddDays(1)
	case AliasYesterday:
		return ref.AddDays(-1)
	case AliasDayBefore:
		return ref.AddDays(-2)
	}
	panic(fmt.Sprintf("dateutil: unknown alias %d", a))
}

// InvalidDateError reports a token that is neither a known alias nor a
// parseable ISO date.
type InvalidDateError struct {
	Token string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %q (use YYYY-MM-DD or one of: today, tomorrow, yesterday, daybefore)", e.Token)
}

// Resolve turns a user-supplied date token into a calendar date.
// Recognized aliases are resolved against ref; any other token must
// parse as an ISO-8601 date (YYYY-MM-DD). Resolve has no side effects.
func Resolve(token string, ref Date) (Date, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Date{}, &InvalidDateError{Token: token}
	}

	if alias, ok := ParseAlias(token); ok {
		return alias.apply(ref), nil
	}

	t, err := time.Parse(ISOFormat, token)
	if err != nil {
		return Date{}, &InvalidDateError{Token: token}
	}
	return DateOf(t), nil
}
