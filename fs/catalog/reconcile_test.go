package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(id, date string) Record {
	return Record{ID: id, Date: ParseMillis(date), Created: ParseMillis(date)}
}

func groupIDs(groups []Group) map[string][]string {
	out := make(map[string][]string)
	for _, g := range groups {
		for _, r := range g.Items {
			out[g.Date] = append(out[g.Date], r.ID)
		}
	}
	return out
}

func TestReconcile(t *testing.T) {
	records := []Record{
		rec("rec1", "2019-03-02"),
		rec("rec2", "2019-03-01"),
		rec("rec3", "2019-03-01"),
	}
	groups := Reconcile(records, ByDate)
	require.Len(t, groups, 2)
	assert.Equal(t, "2019-03-01", groups[0].Date)
	assert.Equal(t, []string{"rec2", "rec3"}, []string{groups[0].Items[0].ID, groups[0].Items[1].ID})
	assert.Equal(t, "2019-03-02", groups[1].Date)
	require.Len(t, groups[1].Items, 1)
	assert.Equal(t, "rec1", groups[1].Items[0].ID)

	// input untouched
	assert.Equal(t, "rec1", records[0].ID)
}

func TestReconcileSameDayDifferentTimes(t *testing.T) {
	records := []Record{
		rec("late", "2019-03-01T23:00:00Z"),
		rec("early", "2019-03-01T01:00:00Z"),
		rec("undated", ""),
		rec("next", "2019-03-02T00:00:00Z"),
		rec("undated2", "whenever"),
	}
	groups := Reconcile(records, ByCreated)
	require.Len(t, groups, 3)
	assert.Equal(t, map[string][]string{
		"2019-03-01": {"early", "late"},
		"2019-03-02": {"next"},
		"":           {"undated", "undated2"},
	}, groupIDs(groups))
	assert.Equal(t, "", groups[2].Date)
}

func TestReconcileEmpty(t *testing.T) {
	groups := Reconcile(nil, ByDate)
	assert.NotNil(t, groups)
	assert.Len(t, groups, 0)
}

func TestFieldSet(t *testing.T) {
	var f Field
	require.NoError(t, f.Set("created"))
	assert.Equal(t, ByCreated, f)
	assert.Error(t, f.Set("modified"))
	assert.Equal(t, "string", f.Type())
}
