package service

import (
	"github.com/msb-dashboard/backend/internal/app/appconfig"
	"github.com/msb-dashboard/backend/internal/model"
	"github.com/msb-dashboard/backend/internal/model/types"
	"github.com/msb-dashboard/backend/internal/util/binloc"
)

type BinRange struct {
	max int
}

func NewBinRange(conf *appconfig.Config) *BinRange {
	return &BinRange{max: conf.BinRangeMax}
}

// Generate expands the query into its bins. Mismatched prefixes or a reversed range
// produce an empty result, a range longer than the configured maximum is rejected.
func (s *BinRange) Generate(q *types.BinRangeQuery) (*model.BinRangeResponse, error) {
	column := q.Column
	if column == 0 {
		column = 1
	}
	if s.max > 0 && binloc.RangeSize(q.Start, q.End) > s.max {
		return nil, ErrBinRangeTooLarge
	}
	return &model.BinRangeResponse{
		Success: true,
		Bins:    binloc.GenerateRange(q.Start, q.End, column),
	}, nil
}
