package appconfig

import (
	"net"
	"strconv"
	"time"

	"github.com/msb-dashboard/backend/internal/app/appcontext"
	"github.com/msb-dashboard/backend/internal/constant"
)

type ConfigSpec struct {
	// ServiceHost is the host the dashboard server binds to. Defaults to all interfaces.
	ServiceHost string `split_words:"true" default:"0.0.0.0"`

	// ServicePort is the port the dashboard server listens on. MSBDASH_PORT takes precedence,
	// otherwise the bare PORT variable set by the hosting platform is used.
	ServicePort int `envconfig:"PORT" default:"10000"`

	// LogJsonStdout is whether to log JSON logs (instead of pretty-print logs) to stdout for the ease of log collection.
	LogJsonStdout bool `split_words:"true" default:"false"`

	// LogFile is the path of the rotated log file. Leaving this empty disables file logging.
	LogFile string `split_words:"true" default:"logs/app.log"`

	// LogFileMaxSize is the size in megabytes at which the log file gets rotated.
	LogFileMaxSize int `split_words:"true" default:"100"`

	// LogFileMaxBackups is the number of rotated log files to retain.
	LogFileMaxBackups int `split_words:"true" default:"5"`

	// TrustedProxies is a list of trusted proxies that are trusted to report a real IP via the X-Forwarded-For header.
	TrustedProxies []string `split_words:"true" default:"::1,127.0.0.1,10.0.0.0/8"`

	// DevMode to indicate development mode. When true, the program would spin up utilities for debugging and
	// log at trace level. See internal/server/httpserver/http.go for the actual implementation details.
	DevMode bool `split_words:"true"`

	// TracingEnabled to indicate whether to enable OpenTelemetry tracing.
	TracingEnabled bool `split_words:"true"`

	// TracingExporters to indicate which exporters to use for tracing.
	// Valid values are: jaeger, otlp, stdout (for debug).
	TracingExporters []string `split_words:"true" default:"otlp"`

	// TracingSampleRate to indicate the sampling rate for tracing.
	// Valid values are: 0.0 (disabled), 1.0 (all traces), or a value between 0.0 and 1.0 (sampling rate).
	TracingSampleRate float64 `split_words:"true" default:"1.0"`

	// SentryDSN is the DSN of the Sentry server. See https://pkg.go.dev/github.com/getsentry/sentry-go#ClientOptions
	SentryDSN string `split_words:"true"`

	// DatadogProfilerEnabled to indicate whether to enable Datadog profiler.
	DatadogProfilerEnabled bool `split_words:"true" default:"false"`

	// DatadogProfilerAgentAddress is the address of the Datadog profiler agent.
	DatadogProfilerAgentAddress string `split_words:"true" default:"localhost:8126"`

	// HTTPServerShutdownTimeout is the timeout for the HTTP server to shut down gracefully.
	HTTPServerShutdownTimeout time.Duration `split_words:"true" default:"60s"`

	// StaticDir is the directory served under /static for the dashboard's scripts and styles.
	StaticDir string `split_words:"true" default:"static"`

	// snapshot storage

	// StorageBackend selects where snapshot files are read from: local or s3.
	StorageBackend StorageBackend `split_words:"true" default:"local"`

	// DataRoot is the directory relative snapshot paths are resolved against (local backend only).
	DataRoot string `split_words:"true" default:"."`

	// S3Bucket, S3Prefix and S3Region locate snapshot objects when StorageBackend is s3.
	S3Bucket string `envconfig:"S3_BUCKET"`
	S3Prefix string `envconfig:"S3_PREFIX"`
	S3Region string `envconfig:"S3_REGION" default:"eu-central-1"`

	// S3Endpoint overrides the S3 endpoint, e.g. for MinIO. Path-style addressing is used when set.
	S3Endpoint string `envconfig:"S3_ENDPOINT"`

	// AWSAccessKey and AWSSecretKey are static credentials for S3. When empty, the default
	// AWS credential chain is used.
	AWSAccessKey string `envconfig:"AWS_ACCESS_KEY"`
	AWSSecretKey string `envconfig:"AWS_SECRET_KEY"`

	// dataset files, relative to DataRoot (or S3Prefix)

	StatisticsFile          string `split_words:"true" default:"static/data/statistics_one_combine.json"`
	LTAPStatisticsFile      string `envconfig:"LTAP_STATISTICS_FILE" default:"static/data/statistics_ltap.json"`
	CDHDRStatisticsFile     string `envconfig:"CDHDR_STATISTICS_FILE" default:"static/data/statistics_cdhdr.json"`
	ZUHistoryStatisticsFile string `envconfig:"ZU_HISTORY_STATISTICS_FILE" default:"static/data/statistics_zu_history.json"`
	PGIDLinesStatisticsFile string `envconfig:"PGID_LINES_STATISTICS_FILE" default:"static/data/statistics_pgid_lines.json"`
	BinLocationsFile        string `split_words:"true" default:"static/data/bin_locations.json"`

	// BinActivityCSVPaths is the ordered list of candidate locations of the LTAP transaction export.
	// The first one that exists is used.
	BinActivityCSVPaths []string `envconfig:"BIN_ACTIVITY_CSV_PATHS" default:"../ltap_modify.csv,ltap_modify.csv"`

	// BinRangeMax caps the number of entries a single bin range request may generate.
	BinRangeMax int `split_words:"true" default:"10000"`

	// WatcherEnabled starts a file watcher over the local dataset files that logs and exports
	// their modification times. It has no effect on the s3 backend.
	WatcherEnabled bool `split_words:"true" default:"true"`

	// deployment trigger

	// RenderAPIURL is the base URL of the Render API.
	RenderAPIURL string `envconfig:"RENDER_API_URL" default:"https://api.render.com"`

	// RenderServiceID is the Render service to redeploy after the data files have been refreshed.
	RenderServiceID string `envconfig:"RENDER_SERVICE_ID"`

	// RenderAPIKey is the bearer token used against the Render API.
	RenderAPIKey string `envconfig:"RENDER_API_KEY"`

	// RenderClearCache asks Render to clear the build cache on deploy.
	RenderClearCache bool `envconfig:"RENDER_CLEAR_CACHE" default:"false"`

	// RenderRequestTimeout bounds the deploy trigger request.
	RenderRequestTimeout time.Duration `envconfig:"RENDER_REQUEST_TIMEOUT" default:"10s"`
}

type Config struct {
	// ConfigSpec is the configuration specification injected to the config.
	ConfigSpec

	// AppContext is the application context
	AppContext appcontext.Ctx
}

// ServiceAddress is the listen address composed from ServiceHost and ServicePort.
func (c *Config) ServiceAddress() string {
	return net.JoinHostPort(c.ServiceHost, strconv.Itoa(c.ServicePort))
}

// DatasetFiles maps every dataset kind to its configured snapshot file.
func (c *Config) DatasetFiles() map[constant.DatasetKind]string {
	return map[constant.DatasetKind]string{
		constant.DatasetCombined:     c.StatisticsFile,
		constant.DatasetLTAP:         c.LTAPStatisticsFile,
		constant.DatasetCDHDR:        c.CDHDRStatisticsFile,
		constant.DatasetZUHistory:    c.ZUHistoryStatisticsFile,
		constant.DatasetPGIDLines:    c.PGIDLinesStatisticsFile,
		constant.DatasetBinLocations: c.BinLocationsFile,
	}
}
