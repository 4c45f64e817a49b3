package appconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msb-dashboard/backend/internal/app/appcontext"
	"github.com/msb-dashboard/backend/internal/constant"
)

func TestParseDefaults(t *testing.T) {
	conf, err := Parse(appcontext.Declare(appcontext.EnvCLI))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", conf.ServiceHost)
	assert.Equal(t, StorageBackendLocal, conf.StorageBackend)
	assert.Equal(t, []string{"../ltap_modify.csv", "ltap_modify.csv"}, conf.BinActivityCSVPaths)
	assert.Equal(t, "static/data/statistics_one_combine.json", conf.DatasetFiles()[constant.DatasetCombined])
	assert.Len(t, conf.DatasetFiles(), len(constant.DatasetKinds))
}

func TestParsePortFallback(t *testing.T) {
	t.Setenv("PORT", "8080")

	conf, err := Parse(appcontext.Declare(appcontext.EnvServer))
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:8080", conf.ServiceAddress())

	t.Setenv("MSBDASH_PORT", "9090")
	conf, err = Parse(appcontext.Declare(appcontext.EnvServer))
	require.NoError(t, err)
	assert.Equal(t, 9090, conf.ServicePort)
}

func TestParseInvalidBackend(t *testing.T) {
	t.Setenv("MSBDASH_STORAGE_BACKEND", "ftp")

	_, err := Parse(appcontext.Declare(appcontext.EnvServer))
	assert.Error(t, err)
}
