// ABOUTME: Time parsing utilities for post publish dates
// ABOUTME: Parses ISO-8601 and epoch timestamps and renders long-form dates

package time

import (
	"strconv"
	"strings"
	"time"

	coreerrors "blog-search-api/core/errors"
)

// LongDateLayout renders dates as "March 4, 2019"
const LongDateLayout = "January 2, 2006"

// epochMillisThreshold separates epoch seconds from epoch milliseconds.
// 1e11 seconds is year 5138, so anything at or above it is milliseconds.
const epochMillisThreshold = 100_000_000_000

// minEpochDigits keeps short digit runs such as "20190304" from being read as epoch seconds
const minEpochDigits = 9

// Timestamp formats sent by the search service and its predecessors
var timeFormats = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05-0700",
	"2006-01-02T15:04:05.000-0700",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.000",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"20060102",
	time.RFC1123,
	time.RFC1123Z,
}

// ParseTimestamp parses an ISO-8601 or integer epoch timestamp.
// Values without a zone are taken as UTC. Epoch values need at least nine digits.
func ParseTimestamp(timeStr string) (time.Time, error) {
	timeStr = strings.TrimSpace(timeStr)
	if timeStr == "" {
		return time.Time{}, &coreerrors.InvalidTimestampError{Value: timeStr}
	}

	for _, format := range timeFormats {
		if t, err := time.Parse(format, timeStr); err == nil {
			return t.UTC(), nil
		}
	}

	if len(strings.TrimLeft(timeStr, "+-")) < minEpochDigits {
		return time.Time{}, &coreerrors.InvalidTimestampError{Value: timeStr}
	}

	if epoch, err := strconv.ParseInt(timeStr, 10, 64); err == nil {
		if epoch >= epochMillisThreshold || epoch <= -epochMillisThreshold {
			return time.UnixMilli(epoch).UTC(), nil
		}
		return time.Unix(epoch, 0).UTC(), nil
	}

	return time.Time{}, &coreerrors.InvalidTimestampError{Value: timeStr}
}

// FormatLongDate renders a timestamp as "<Month> <Day>, <Year>" in UTC
func FormatLongDate(timeStr string) (string, error) {
	t, err := ParseTimestamp(timeStr)
	if err != nil {
		return "", err
	}
	return t.Format(LongDateLayout), nil
}
