package extractor

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	isoDatePattern   = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	slashDatePattern = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})$`)
	// Mon D, YYYY / Month DD YYYY
	longDatePattern = regexp.MustCompile(`^([A-Za-z]{3,9})\s+(\d{1,2}),?\s+(\d{4})$`)
)

var months = map[string]time.Month{
	"jan": time.January,
	"feb": time.February,
	"mar": time.March,
	"apr": time.April,
	"may": time.May,
	"jun": time.June,
	"jul": time.July,
	"aug": time.August,
	"sep": time.September,
	"oct": time.October,
	"nov": time.November,
	"dec": time.December,
}

// NormalizeDate parses ISO (YYYY-MM-DD), slash (DD/MM/YYYY) and long-form
// (Mon D, YYYY) dates to UTC midnight. Anything else, including impossible
// calendar dates, reports false.
func NormalizeDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)

	if m := isoDatePattern.FindStringSubmatch(s); m != nil {
		return buildDate(m[1], m[2], m[3])
	}

	if m := slashDatePattern.FindStringSubmatch(s); m != nil {
		return buildDate(m[3], m[2], m[1])
	}

	if m := longDatePattern.FindStringSubmatch(s); m != nil {
		month, ok := months[strings.ToLower(m[1][:3])]
		if !ok {
			return time.Time{}, false
		}
		return buildDate(m[3], strconv.Itoa(int(month)), m[2])
	}

	return time.Time{}, false
}

func buildDate(yearStr, monthStr, dayStr string) (time.Time, bool) {
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(dayStr)
	if err != nil || day < 1 {
		return time.Time{}, false
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalises overflow (31/02 -> 03/03); reject instead
	if t.Day() != day || int(t.Month()) != month {
		return time.Time{}, false
	}
	return t, true
}
