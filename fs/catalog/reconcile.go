package catalog

import (
	"fmt"
	"sort"
)

// Field is the date field records are ordered by
type Field string

// Fields
const (
	ByDate    Field = "date"
	ByCreated Field = "created"
)

// Fields is the list of valid fields
var Fields = []Field{ByDate, ByCreated}

// String satisfies pflag.Value
func (f Field) String() string {
	return string(f)
}

// Set satisfies pflag.Value
func (f *Field) Set(s string) error {
	for _, field := range Fields {
		if string(field) == s {
			*f = field
			return nil
		}
	}
	return fmt.Errorf("unknown field %q, must be one of %v", s, Fields)
}

// Type satisfies pflag.Value
func (f *Field) Type() string {
	return "string"
}

func (f Field) of(r *Record) Millis {
	if f == ByCreated {
		return r.Created
	}
	return r.Date
}

// Group is the records of one calendar day
type Group struct {
	Date  string   `json:"date"` // 2006-01-02, or "" for undated records
	Items []Record `json:"items"`
}

// Sort returns a copy of records in ascending order of field. Equal
// dates keep their input order and undated records go last.
func Sort(records []Record, field Field) []Record {
	sorted := append([]Record(nil), records...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := field.of(&sorted[i]), field.of(&sorted[j])
		if !a.Valid || !b.Valid {
			return a.Valid && !b.Valid
		}
		return a.Time.Before(b.Time)
	})
	return sorted
}

// GroupByDay groups consecutive records which share the calendar day
// of field, keeping their order.
func GroupByDay(records []Record, field Field) []Group {
	groups := []Group{}
	for _, r := range records {
		day := field.of(&r).Day()
		if n := len(groups); n > 0 && groups[n-1].Date == day {
			groups[n-1].Items = append(groups[n-1].Items, r)
			continue
		}
		groups = append(groups, Group{Date: day, Items: []Record{r}})
	}
	return groups
}

// Reconcile sorts records by field and groups them by day
func Reconcile(records []Record, field Field) []Group {
	return GroupByDay(Sort(records, field), field)
}
