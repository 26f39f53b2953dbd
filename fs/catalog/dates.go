package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Millis is a point in time which is written as milliseconds since
// the epoch, or as "" if it isn't known.
type Millis struct {
	Time  time.Time
	Valid bool
}

// MillisOf returns a valid Millis for t
func MillisOf(t time.Time) Millis {
	return Millis{Time: t, Valid: true}
}

// Int64 returns the epoch milliseconds, 0 if not Valid
func (m Millis) Int64() int64 {
	if !m.Valid {
		return 0
	}
	return m.Time.UnixMilli()
}

// MarshalJSON turns a Millis into JSON
func (m Millis) MarshalJSON() ([]byte, error) {
	if !m.Valid {
		return []byte(`""`), nil
	}
	return []byte(strconv.FormatInt(m.Time.UnixMilli(), 10)), nil
}

// UnmarshalJSON reads a number of milliseconds, a string or null
func (m *Millis) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*m = Millis{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*m = ParseMillis(s)
		return nil
	}
	ms, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("bad timestamp %s: %w", data, err)
	}
	*m = MillisOf(time.UnixMilli(int64(ms)).UTC())
	return nil
}

// minEpochDigits is the shortest digit string read as epoch
// milliseconds. Shorter ones are years or YYYYMMDD dates.
const minEpochDigits = 11

// layouts tried in order by ParseMillis. Dates without a zone are UTC.
var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"20060102",
	"2 January 2006",
	"2 Jan 2006",
	"January 2 2006",
	"January 2, 2006",
	"Jan 2 2006",
	"Jan 2, 2006",
	"January 2006",
	"Jan 2006",
	"2006",
	// as written by javascript's Date.toString
	"Mon Jan 02 2006 15:04:05 GMT-0700",
	time.RFC1123Z,
	time.RFC1123,
}

// ParseMillis parses the free text s into a Millis. Epoch
// milliseconds are accepted too. The result isn't Valid if s is empty
// or can't be parsed.
func ParseMillis(s string) Millis {
	s = strings.TrimSpace(s)
	if s == "" {
		return Millis{}
	}
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil && len(s) >= minEpochDigits {
		return MillisOf(time.UnixMilli(ms).UTC())
	}
	// drop a trailing zone name like " (Central European Standard Time)"
	if i := strings.Index(s, " ("); i > 0 && strings.HasSuffix(s, ")") {
		s = s[:i]
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return MillisOf(t)
		}
	}
	return Millis{}
}

// Day returns the UTC calendar day as 2006-01-02, or "" if not Valid
func (m Millis) Day() string {
	if !m.Valid {
		return ""
	}
	return m.Time.UTC().Format("2006-01-02")
}
