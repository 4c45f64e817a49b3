package service

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
	"gopkg.in/guregu/null.v3"

	"github.com/msb-dashboard/backend/internal/app/appconfig"
	"github.com/msb-dashboard/backend/internal/constant"
	"github.com/msb-dashboard/backend/internal/model"
	"github.com/msb-dashboard/backend/internal/repo"
)

type Health struct {
	DatasetService     *Dataset
	BinActivityService *BinActivity
	SnapshotRepo       repo.Snapshot

	backend string
}

func NewHealth(conf *appconfig.Config, datasetService *Dataset, binActivityService *BinActivity, snapshotRepo repo.Snapshot) *Health {
	return &Health{
		DatasetService:     datasetService,
		BinActivityService: binActivityService,
		SnapshotRepo:       snapshotRepo,
		backend:            string(conf.StorageBackend),
	}
}

// Check stats every dataset file and the bin activity CSV concurrently. Missing
// files make the report unhealthy but never fail the check itself.
func (s *Health) Check(ctx context.Context) (*model.HealthReport, error) {
	var (
		mu      sync.Mutex
		results = make(map[string]model.DatasetHealth, len(constant.DatasetKinds)+1)
	)
	record := func(h model.DatasetHealth) {
		mu.Lock()
		results[h.Kind] = h
		mu.Unlock()
	}

	eg, ectx := errgroup.WithContext(ctx)
	for _, kind := range constant.DatasetKinds {
		kind := kind
		eg.Go(func() error {
			record(s.stat(ectx, string(kind), s.DatasetService.File(kind)))
			return nil
		})
	}
	eg.Go(func() error {
		name, err := s.BinActivityService.Resolve(ectx)
		if err != nil {
			record(model.DatasetHealth{
				Kind:  "bin_activity",
				Error: null.StringFrom(err.Error()),
			})
			return nil
		}
		record(s.stat(ectx, "bin_activity", name))
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	order := append(lo.Map(constant.DatasetKinds, func(k constant.DatasetKind, _ int) string { return string(k) }), "bin_activity")
	datasets := lo.Map(order, func(k string, _ int) model.DatasetHealth { return results[k] })

	return &model.HealthReport{
		Healthy:  lo.EveryBy(datasets, func(d model.DatasetHealth) bool { return d.Available }),
		Backend:  s.backend,
		Datasets: datasets,
	}, nil
}

func (s *Health) stat(ctx context.Context, kind, name string) model.DatasetHealth {
	h := model.DatasetHealth{
		Kind: kind,
		File: s.SnapshotRepo.Locate(name),
	}
	fi, err := s.SnapshotRepo.Stat(ctx, name)
	switch {
	case errors.Is(err, repo.ErrNotExist):
		h.Error = null.StringFrom("file not found")
	case err != nil:
		h.Error = null.StringFrom(err.Error())
	default:
		h.Available = true
		h.LastModified = null.StringFrom(fi.ModTime.Local().Format(constant.LastModifiedLayout))
	}
	return h
}
