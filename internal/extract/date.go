package extract

import (
	"strconv"
	"strings"
	"time"

	"github.com/meinbt/meinbt-cli/internal/core/domain"
)

// NormalizeDate converts DD.MM.YYYY text into an optional calendar date.
//
// The text is split on dots, empty tokens are discarded, and the remaining
// tokens are reversed into year-month-day order. Text without any token
// (the common case: an empty element) passes through as an absent date
// that preserves the raw text. Tokens that are not numeric, an incomplete
// date, or an impossible calendar date such as 31.04 fail with
// MalformedDateError; the caller aborts the enclosing record.
//
// element names the source element for error reporting.
func NormalizeDate(element, text string) (domain.Date, error) {
	var tokens []string
	for _, token := range strings.Split(text, ".") {
		if token != "" {
			tokens = append(tokens, token)
		}
	}

	if len(tokens) == 0 {
		return domain.TextDate(text), nil
	}
	if len(tokens) != 3 {
		return domain.Date{}, &domain.MalformedDateError{Element: element, Text: text}
	}

	// Reverse DD MM YYYY into YYYY MM DD.
	parts := make([]int, 3)
	for i, token := range tokens {
		value, err := strconv.Atoi(token)
		if err != nil {
			return domain.Date{}, &domain.MalformedDateError{Element: element, Text: text, Err: err}
		}
		parts[2-i] = value
	}

	year, month, day := parts[0], parts[1], parts[2]
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalises out-of-range components (31.04 becomes 01.05),
	// so a changed component means the source date does not exist.
	if date.Year() != year || date.Month() != time.Month(month) || date.Day() != day {
		return domain.Date{}, &domain.MalformedDateError{Element: element, Text: text}
	}

	return domain.NewDate(year, time.Month(month), day, text), nil
}
