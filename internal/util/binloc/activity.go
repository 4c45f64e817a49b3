package binloc

import (
	"github.com/ahmetb/go-linq/v3"
	"github.com/samber/lo"

	"github.com/msb-dashboard/backend/internal/model"
	"github.com/msb-dashboard/backend/internal/pkg/csvtable"
)

// Aggregate counts cells per canonical prefix. Non-text cells have no prefix and
// are left out of both the records and the total. Records are ordered by count
// descending, then by location ascending.
func Aggregate(cells []csvtable.Cell) *model.ActivityReport {
	prefixes := lo.FilterMap(cells, func(c csvtable.Cell, _ int) (string, bool) {
		text, ok := c.Text()
		if !ok {
			return "", false
		}
		return Prefix(text), true
	})

	var records []model.BinActivityRecord
	linq.From(prefixes).
		GroupByT(
			func(p string) string { return p },
			func(p string) string { return p },
		).
		OrderByDescendingT(func(g linq.Group) int { return len(g.Group) }).
		ThenByT(func(g linq.Group) string { return g.Key.(string) }).
		SelectT(func(g linq.Group) model.BinActivityRecord {
			return model.BinActivityRecord{
				Location:      g.Key.(string),
				ActivityCount: len(g.Group),
			}
		}).
		ToSlice(&records)

	report := &model.ActivityReport{
		Records:         records,
		TotalActivities: len(prefixes),
	}
	if len(records) == 0 {
		report.Records = []model.BinActivityRecord{}
		return report
	}

	report.MaxActivity = records[0].ActivityCount
	report.MinActivity = records[len(records)-1].ActivityCount
	return report
}
