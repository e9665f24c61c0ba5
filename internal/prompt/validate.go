package prompt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerkeep/assetlog/internal/model"
)

// DateLayout is the 8-digit calendar form used for record dates.
const DateLayout = "20060102"

// ErrExit is returned when the operator types an exit sentinel.
var ErrExit = errors.New("exit requested")

var exitSentinels = []string{"q", "exit"}

// ValidationError describes rejected input for a single field.
type ValidationError struct {
	Field  string
	Input  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %q: %s", e.Field, e.Input, e.Reason)
}

func invalid(field, input, reason string) error {
	return &ValidationError{Field: field, Input: input, Reason: reason}
}

// IsExit reports whether raw is an exit sentinel.
func IsExit(raw string) bool {
	s := strings.ToLower(strings.TrimSpace(raw))
	for _, sentinel := range exitSentinels {
		if s == sentinel {
			return true
		}
	}
	return false
}

// ParseDate accepts 8 digits forming a real calendar date, or empty input
// meaning def.
func ParseDate(raw, def string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return def, nil
	}
	if len(s) != 8 || !allDigits(s) {
		return "", invalid("date", s, "must be 8 digits (YYYYMMDD), e.g. 20260120")
	}
	if _, err := time.Parse(DateLayout, s); err != nil {
		return "", invalid("date", s, "not a calendar date")
	}
	return s, nil
}

// ChooseAccount resolves a 1-based index or an exact, case-sensitive name
// to a 0-based position in accounts. Anything else is rejected.
func ChooseAccount(raw string, accounts []model.Account) (int, error) {
	s := strings.TrimSpace(raw)
	if allDigits(s) && s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > len(accounts) {
			return -1, invalid("account", s, fmt.Sprintf("no account number %s", s))
		}
		return n - 1, nil
	}
	for i, a := range accounts {
		if a.Name == s {
			return i, nil
		}
	}
	return -1, invalid("account", s, "must be a listed number or full account name")
}

// ChooseStock resolves a 1-based index, then a case-insensitive code. An
// unknown stock is not an error: found is false and the caller starts the
// new-entry flow.
func ChooseStock(raw string, stocks []model.Stock) (idx int, found bool) {
	s := strings.TrimSpace(raw)
	if allDigits(s) && s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= len(stocks) {
			return n - 1, true
		}
	}
	for i, st := range stocks {
		if strings.EqualFold(st.Code, s) {
			return i, true
		}
	}
	return -1, false
}

// ParseWhole parses a number and truncates it toward zero to whole currency
// units.
func ParseWhole(field string) func(string) (int64, error) {
	return func(raw string) (int64, error) {
		d, err := parseNumber(field, raw)
		if err != nil {
			return 0, err
		}
		if d.Abs().GreaterThan(maxWhole) {
			return 0, invalid(field, raw, "out of range")
		}
		return d.IntPart(), nil
	}
}

// ParseShares parses a share count; fractional shares are kept.
func ParseShares(field string) func(string) (decimal.Decimal, error) {
	return func(raw string) (decimal.Decimal, error) {
		return parseNumber(field, raw)
	}
}

// ParseRequired rejects empty input.
func ParseRequired(field string) func(string) (string, error) {
	return func(raw string) (string, error) {
		s := strings.TrimSpace(raw)
		if s == "" {
			return "", invalid(field, s, "must not be empty")
		}
		return s, nil
	}
}

// ParseListField is ParseRequired for text stored in a reference list line,
// which has no quoting and so cannot hold a comma.
func ParseListField(field string) func(string) (string, error) {
	required := ParseRequired(field)
	return func(raw string) (string, error) {
		s, err := required(raw)
		if err != nil {
			return "", err
		}
		if strings.Contains(s, ",") {
			return "", invalid(field, s, "must not contain a comma")
		}
		return s, nil
	}
}

// ParseConfirm answers yes unless the input is "n" or "no".
func ParseConfirm(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "n", "no":
		return false, nil
	default:
		return true, nil
	}
}

var maxWhole = decimal.NewFromInt(1 << 53)

func parseNumber(field, raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, invalid(field, s, "must be a number")
	}
	return d, nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
