// Package kdate works with the localized Korean display dates carried by
// marathon records, e.g. "2024년 3월 17일".
package kdate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var monthRe = regexp.MustCompile(`(\d+)월`)

// Month extracts the month number from a display date by taking the first
// run of digits immediately preceding the "월" marker. Dates without such a
// run yield 0, which a real 1-12 month filter never matches.
func Month(date string) int {
	m := monthRe.FindStringSubmatch(date)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// FormatISO converts an ISO calendar date ("2026-01-21") into the display
// form "2026년 1월 21일". The second return value is false when the input is
// not an ISO date, in which case the input should be used as-is.
func FormatISO(date string) (string, bool) {
	if len(date) != 10 || !strings.Contains(date, "-") {
		return "", false
	}
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("%d년 %d월 %d일", t.Year(), int(t.Month()), t.Day()), true
}
