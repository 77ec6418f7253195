package rendering

import (
	"fmt"
	"strings"
	"time"
)

// DateSeparator joins the two ends of a date range
const DateSeparator = " — "

// Clock supplies the current instant. Rendering and relative times read it on every call.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock
type SystemClock struct{}

// Now returns time.Now()
func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant
type FixedClock time.Time

// Now returns the fixed instant
func (c FixedClock) Now() time.Time { return time.Time(c) }

// FormatDateRange joins start and end verbatim. Neither side is parsed or defaulted.
func FormatDateRange(start, end string) string {
	return start + DateSeparator + end
}

// ChunkIntoGroups splits seq into consecutive groups of at most size elements.
// The last group may be shorter. A non-positive size yields one group.
func ChunkIntoGroups[T any](seq []T, size int) [][]T {
	if len(seq) == 0 {
		return nil
	}
	if size <= 0 {
		return [][]T{seq}
	}
	groups := make([][]T, 0, (len(seq)+size-1)/size)
	for start := 0; start < len(seq); start += size {
		end := min(start+size, len(seq))
		groups = append(groups, seq[start:end])
	}
	return groups
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses the ISO-like layouts accepted by RelativeTime.
func ParseTimestamp(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// RelativeTime describes how long ago timestamp was relative to clock.Now().
func RelativeTime(clock Clock, timestamp string) string {
	t, ok := ParseTimestamp(timestamp)
	if !ok {
		return "Never"
	}
	return RelativeTimeSince(clock, t)
}

// RelativeTimeSince is RelativeTime for an already parsed instant.
func RelativeTimeSince(clock Clock, t time.Time) string {
	if t.IsZero() {
		return "Never"
	}
	diff := clock.Now().Sub(t)
	mins := int(diff / time.Minute)
	switch {
	case mins < 1:
		return "Just now"
	case mins < 60:
		return fmt.Sprintf("%dm ago", mins)
	}
	hours := mins / 60
	if hours < 24 {
		return fmt.Sprintf("%dh ago", hours)
	}
	days := hours / 24
	if days < 7 {
		return fmt.Sprintf("%dd ago", days)
	}
	return t.Format("Jan 2")
}
