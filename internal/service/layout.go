package service

import (
	"context"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"

	"github.com/msb-dashboard/backend/internal/constant"
	"github.com/msb-dashboard/backend/internal/model"
)

// Layout serves the warehouse layout part of the bin locations document.
type Layout struct {
	DatasetService *Dataset
}

func NewLayout(datasetService *Dataset) *Layout {
	return &Layout{
		DatasetService: datasetService,
	}
}

func (s *Layout) BinLocations(ctx context.Context) *model.Envelope {
	return s.DatasetService.Load(ctx, constant.DatasetBinLocations, extractLayout)
}

func extractLayout(doc []byte, env *model.Envelope) error {
	res := gjson.ParseBytes(doc)
	if !res.IsObject() {
		return ErrLayoutNotFound
	}
	layout := res.Get(constant.LayoutKey)
	if !layout.Exists() {
		return ErrLayoutNotFound
	}

	env.Data = nil
	env.SetRaw(constant.LayoutKey, json.RawMessage(layout.Raw))
	return nil
}
