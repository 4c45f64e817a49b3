package binloc

import (
	"math"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msb-dashboard/backend/internal/model"
	"github.com/msb-dashboard/backend/internal/pkg/csvtable"
)

func TestPrefix(t *testing.T) {
	tests := map[string]string{
		"C24490D": "C2449",
		"C24491D": "C2449",
		"D1000A":  "D1000",
		"AB12":    "AB12",
		"x9":      "x9",
		"12AB":    "12AB",
		"DOCK":    "DOCK",
		"":        "",
	}
	for in, want := range tests {
		assert.Equal(t, want, Prefix(in), in)
	}
}

func cells(raw ...string) []csvtable.Cell {
	out := make([]csvtable.Cell, len(raw))
	for i, r := range raw {
		out[i] = csvtable.ParseCell(r)
	}
	return out
}

func TestAggregate(t *testing.T) {
	report := Aggregate(cells("C24490D", "C24491D", "D1000A"))

	assert.Equalf(t, []model.BinActivityRecord{
		{Location: "C2449", ActivityCount: 2},
		{Location: "D1000", ActivityCount: 1},
	}, report.Records, "records: %s", spew.Sdump(report.Records))
	assert.Equal(t, 3, report.TotalActivities)
	assert.Equal(t, 1, report.MinActivity)
	assert.Equal(t, 2, report.MaxActivity)
}

func TestAggregateExcludesNonText(t *testing.T) {
	report := Aggregate(cells("A0001X", "12345", "", "NA", "TRUE", "A0001Y", "DOCK"))

	assert.Equal(t, []model.BinActivityRecord{
		{Location: "A0001", ActivityCount: 2},
		{Location: "DOCK", ActivityCount: 1},
	}, report.Records)
	assert.Equal(t, 3, report.TotalActivities)
}

func TestAggregateTieBreak(t *testing.T) {
	report := Aggregate(cells("Z0001", "B0001", "M0001", "M0001A"))

	require.Len(t, report.Records, 3)
	assert.Equal(t, "M0001", report.Records[0].Location)
	assert.Equal(t, "B0001", report.Records[1].Location)
	assert.Equal(t, "Z0001", report.Records[2].Location)
}

func TestAggregateEmpty(t *testing.T) {
	report := Aggregate(nil)
	assert.NotNil(t, report.Records)
	assert.Empty(t, report.Records)
	assert.Zero(t, report.MinActivity)
	assert.Zero(t, report.MaxActivity)
	assert.Zero(t, report.TotalActivities)
}

func TestGenerateRange(t *testing.T) {
	bins := GenerateRange("C0001", "C0003", 2)
	assert.Equal(t, []model.BinRangeEntry{
		{Location: "C0001", Column: 2, Status: "active"},
		{Location: "C0002", Column: 2, Status: "active"},
		{Location: "C0003", Column: 2, Status: "active"},
	}, bins)

	assert.Equal(t, "C0100", GenerateRange("C99", "C100", 1)[1].Location)
}

func TestGenerateRangeEmpty(t *testing.T) {
	assert.Empty(t, GenerateRange("C0001", "D0003", 1))
	assert.Empty(t, GenerateRange("C0003", "C0001", 1))
	assert.Empty(t, GenerateRange("1C0001", "C0003", 1))
	assert.Empty(t, GenerateRange("C0001", "C", 1))
	assert.NotNil(t, GenerateRange("C0001", "D0003", 1))
}

func TestRangeSize(t *testing.T) {
	assert.Equal(t, 3, RangeSize("C0001", "C0003"))
	assert.Equal(t, 1, RangeSize("AA7", "AA7"))
	assert.Zero(t, RangeSize("AA7", "AB7"))
}

func TestRangeSizeOverflow(t *testing.T) {
	assert.Equal(t, math.MaxInt, RangeSize("C0", "C9223372036854775807"))
	assert.Equal(t, math.MaxInt, RangeSize("C1", "C9223372036854775807"))
	assert.Zero(t, RangeSize("C0", "C99999999999999999999"))

	assert.NotPanics(t, func() {
		assert.Empty(t, GenerateRange("C0", "C9223372036854775807", 1))
	})
	assert.Equal(t, []model.BinRangeEntry{
		{Location: "C9223372036854775806", Column: 1, Status: "active"},
		{Location: "C9223372036854775807", Column: 1, Status: "active"},
	}, GenerateRange("C9223372036854775806", "C9223372036854775807", 1))
}
