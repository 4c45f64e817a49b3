package service

import (
	"context"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"

	"github.com/msb-dashboard/backend/internal/constant"
	"github.com/msb-dashboard/backend/internal/model"
)

var jsonNull = json.RawMessage("null")

// Statistics serves the combined statistics document together with the by_date
// entry of the current day.
type Statistics struct {
	DatasetService *Dataset

	now func() time.Time
}

func NewStatistics(datasetService *Dataset) *Statistics {
	return &Statistics{
		DatasetService: datasetService,
		now:            time.Now,
	}
}

func (s *Statistics) Combined(ctx context.Context) *model.Envelope {
	today := s.now().Format(constant.DateLayout)

	env := s.DatasetService.Load(ctx, constant.DatasetCombined, withTodayData(today))
	env.SetRaw("today", json.RawMessage(strconv.Quote(today)))
	return env
}

// Kind serves any dataset that needs no post-processing.
func (s *Statistics) Kind(ctx context.Context, kind constant.DatasetKind) *model.Envelope {
	return s.DatasetService.Load(ctx, kind)
}

func withTodayData(today string) Transform {
	query := constant.ByDateKey + `.#(` + constant.DateKey + `==` + strconv.Quote(today) + `)`
	return func(doc []byte, env *model.Envelope) error {
		if !gjson.ParseBytes(doc).IsObject() {
			return ErrNotObject
		}

		// an absent or non-array by_date yields no match
		match := gjson.GetBytes(doc, query)
		if match.Exists() && match.IsObject() {
			env.SetRaw("today_data", json.RawMessage(match.Raw))
		} else {
			env.SetRaw("today_data", jsonNull)
		}
		return nil
	}
}
