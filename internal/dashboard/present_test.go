package dashboard_test

import (
	"testing"

	"github.com/surveyadmin/backend/internal/analytics"
	"github.com/surveyadmin/backend/internal/dashboard"
	"github.com/surveyadmin/backend/internal/domain/question"
)

func TestPresent_UncategorizedKeepsRawKey(t *testing.T) {
	ds := question.Dataset{Questions: []question.Question{
		{ID: "1", Text: "No category", Level: question.LevelBeginner, TimesAnswered: 2, TimesSkipped: 1},
		{ID: "2", Text: "Named like the fallback", Category: dashboard.UncategorizedLabel, Level: question.LevelBeginner, TimesAnswered: 3},
	}}
	summary := analytics.Compute(ds, analytics.DefaultOptions())
	_, charts, tables := dashboard.Present(summary, ds.Questions)

	keys := map[string]string{}
	for _, row := range tables.CategorySkipRates {
		if row.Name != dashboard.UncategorizedLabel {
			t.Errorf("unexpected category row: %+v", row)
		}
		keys[row.Key] = row.Name
	}
	if len(keys) != 2 {
		t.Fatalf("expected two distinct category keys, got %+v", tables.CategorySkipRates)
	}
	if _, ok := keys[""]; !ok {
		t.Errorf("expected the empty-category row to keep an empty key, got %+v", keys)
	}

	buckets := map[string]int{}
	for _, b := range charts.AnswersByCategory.Buckets {
		buckets[b.Key] = b.Value
	}
	if buckets[""] != 2 || buckets[dashboard.UncategorizedLabel] != 3 {
		t.Errorf("unexpected category buckets: %+v", charts.AnswersByCategory.Buckets)
	}

	for _, row := range tables.MostSkipped {
		if row.Question == "No category" && row.CategoryKey != "" {
			t.Errorf("expected empty category key, got %+v", row)
		}
	}
}
