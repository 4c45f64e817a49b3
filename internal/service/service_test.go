package service

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/msb-dashboard/backend/internal/app/appconfig"
	"github.com/msb-dashboard/backend/internal/repo"
)

func testConfig(root string) *appconfig.Config {
	return &appconfig.Config{
		ConfigSpec: appconfig.ConfigSpec{
			StorageBackend:          appconfig.StorageBackendLocal,
			DataRoot:                root,
			StatisticsFile:          "static/data/statistics_one_combine.json",
			LTAPStatisticsFile:      "static/data/statistics_ltap.json",
			CDHDRStatisticsFile:     "static/data/statistics_cdhdr.json",
			ZUHistoryStatisticsFile: "static/data/statistics_zu_history.json",
			PGIDLinesStatisticsFile: "static/data/statistics_pgid_lines.json",
			BinLocationsFile:        "static/data/bin_locations.json",
			BinActivityCSVPaths:     []string{"../ltap_modify.csv", "ltap_modify.csv"},
			BinRangeMax:             100,
		},
	}
}

type fixture struct {
	t    *testing.T
	root string
	conf *appconfig.Config
	repo repo.Snapshot
}

func newFixture(t *testing.T) *fixture {
	root := filepath.Join(t.TempDir(), "app")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "static", "data"), 0o755))
	conf := testConfig(root)
	return &fixture{
		t:    t,
		root: root,
		conf: conf,
		repo: repo.NewLocalSnapshot(root),
	}
}

func (f *fixture) write(name, content string) time.Time {
	p := filepath.Join(f.root, name)
	require.NoError(f.t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(f.t, os.WriteFile(p, []byte(content), 0o644))
	mod := time.Date(2024, 5, 1, 8, 30, 0, 0, time.Local)
	require.NoError(f.t, os.Chtimes(p, mod, mod))
	return mod
}

func (f *fixture) dataset() *Dataset {
	return NewDataset(f.conf, f.repo)
}
