package reconcile

import "time"

// Stamp layouts accepted for updatedAt values, tried in order. Clients send
// full RFC 3339 stamps; date-only values show up in hand-entered rows.
var stampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseStamp parses an ISO-8601 timestamp string. A malformed value degrades
// to the zero time rather than failing: it then compares as older than any
// well-formed stamp. This is a documented limitation of the comparator, not
// an error the caller has to handle.
func ParseStamp(s string) time.Time {
	for _, layout := range stampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// CompareStamps imposes a total order over optional timestamp strings:
// +1 when a is strictly later, -1 when strictly earlier, 0 when equal.
// A missing stamp is older than any present one; two missing stamps are
// equal, the tie being resolved by the merger.
func CompareStamps(a, b string) int {
	if a == "" && b == "" {
		return 0
	}
	if a == "" {
		return -1
	}
	if b == "" {
		return 1
	}
	return compareTimes(ParseStamp(a), ParseStamp(b))
}

// CompareTimestamps orders two optional instants under the same contract as
// CompareStamps: nil is older than any present instant, two nils are equal.
func CompareTimestamps(a, b *time.Time) int {
	if a == nil && b == nil {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	return compareTimes(*a, *b)
}

func compareTimes(a, b time.Time) int {
	switch {
	case a.After(b):
		return 1
	case a.Before(b):
		return -1
	default:
		return 0
	}
}
