package service

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/msb-dashboard/backend/internal/app/appconfig"
	"github.com/msb-dashboard/backend/internal/constant"
	"github.com/msb-dashboard/backend/internal/model"
	"github.com/msb-dashboard/backend/internal/pkg/csvtable"
	"github.com/msb-dashboard/backend/internal/pkg/observability"
	"github.com/msb-dashboard/backend/internal/repo"
	"github.com/msb-dashboard/backend/internal/util/binloc"
)

// BinActivity tallies the LTAP transaction export per bin prefix for the heatmap.
type BinActivity struct {
	SnapshotRepo repo.Snapshot

	candidates []string
}

func NewBinActivity(conf *appconfig.Config, snapshotRepo repo.Snapshot) *BinActivity {
	return &BinActivity{
		SnapshotRepo: snapshotRepo,
		candidates:   conf.BinActivityCSVPaths,
	}
}

// Resolve returns the first candidate CSV path that exists.
func (s *BinActivity) Resolve(ctx context.Context) (string, error) {
	for _, name := range s.candidates {
		_, err := s.SnapshotRepo.Stat(ctx, name)
		if err == nil {
			return name, nil
		}
		if !errors.Is(err, repo.ErrNotExist) {
			return "", err
		}
	}
	return "", ErrCSVNotFound
}

// Report aggregates the CSV into an ActivityReport.
func (s *BinActivity) Report(ctx context.Context) (*model.ActivityReport, error) {
	name, err := s.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	b, err := s.SnapshotRepo.Read(ctx, name)
	if err != nil {
		return nil, err
	}

	table, err := csvtable.Parse(b)
	if err != nil {
		return nil, err
	}

	cells, err := table.Column(constant.SourceBinColumn)
	if errors.Is(err, csvtable.ErrColumnNotFound) {
		return nil, ErrSourceBinNotFound
	}
	if err != nil {
		return nil, err
	}

	report := binloc.Aggregate(cells)
	observability.BinActivityRows.Set(float64(report.TotalActivities))

	log.Ctx(ctx).Debug().
		Str("evt.name", "binactivity.aggregated").
		Str("file", s.SnapshotRepo.Locate(name)).
		Int("rows", len(cells)).
		Int("prefixes", len(report.Records)).
		Msg("bin activity aggregated")

	return report, nil
}

// Envelope wraps Report for the dashboard. It never fails.
func (s *BinActivity) Envelope(ctx context.Context) *model.Envelope {
	report, err := s.Report(ctx)
	if err != nil {
		log.Ctx(ctx).Warn().
			Err(err).
			Str("evt.name", "binactivity.failed").
			Msg("bin activity could not be served")
		return model.Failed(err)
	}

	env := &model.Envelope{Success: true}
	if err := env.SetFields(report); err != nil {
		return model.Failed(err)
	}
	return env
}
