package binloc

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/msb-dashboard/backend/internal/constant"
	"github.com/msb-dashboard/backend/internal/model"
)

var identifierRegex = regexp.MustCompile(`^([A-Za-z]+)(\d+)$`)

// ParseIdentifier splits a bin identifier such as C0001 into its letter prefix and number.
func ParseIdentifier(id string) (prefix string, number int, ok bool) {
	m := identifierRegex.FindStringSubmatch(id)
	if m == nil {
		return "", 0, false
	}
	n, err := strconv.Atoi(m[2])
	if err != nil {
		return "", 0, false
	}
	return m[1], n, true
}

// RangeSize returns how many bins lie between start and end inclusive. A range
// whose size does not fit in an int saturates at math.MaxInt.
func RangeSize(start, end string) int {
	sp, sn, ok := ParseIdentifier(start)
	if !ok {
		return 0
	}
	ep, en, ok := ParseIdentifier(end)
	if !ok || sp != ep || sn > en {
		return 0
	}
	if en-sn >= math.MaxInt {
		return math.MaxInt
	}
	return en - sn + 1
}

// GenerateRange lists every bin from start to end inclusive, numbers zero-padded to
// four digits. It returns an empty slice when either identifier is malformed, the
// letter prefixes differ or the range size overflows.
func GenerateRange(start, end string, column int) []model.BinRangeEntry {
	size := RangeSize(start, end)
	if size <= 0 || size == math.MaxInt {
		return []model.BinRangeEntry{}
	}

	prefix, first, _ := ParseIdentifier(start)
	bins := make([]model.BinRangeEntry, 0, size)
	for i := 0; i < size; i++ {
		bins = append(bins, model.BinRangeEntry{
			Location: fmt.Sprintf("%s%04d", prefix, first+i),
			Column:   column,
			Status:   constant.BinStatusActive,
		})
	}
	return bins
}
