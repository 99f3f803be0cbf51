package configs

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseServerConfig = `server:
  port: 8080
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
`

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()

	tmpfile, err := os.CreateTemp(t.TempDir(), "test_config_*.yml")
	require.NoError(t, err)
	_, err = tmpfile.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	return tmpfile.Name()
}

func TestLoadConfig_ValidConfig(t *testing.T) {
	path := writeTempConfig(t, baseServerConfig+`log:
  level: debug
file_storage:
  root_dir: ./data
analysis:
  timing_class_name: RequestTimer
  time_zone: Europe/Berlin
  slowest_limit: 5
  history_limit: 50
  max_log_bytes: 1048576
  server_name: app-01
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5, cfg.Server.ReadHeaderTimeout)
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
	assert.Equal(t, 10, cfg.Server.WriteTimeout)
	assert.Equal(t, 60, cfg.Server.IdleTimeout)
	assert.Zero(t, cfg.Server.UploadRateLimit)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "./data", cfg.FileStorage.RootDir)
	assert.Equal(t, AnalysisConfig{
		TimingClassName: "RequestTimer",
		TimeZone:        "Europe/Berlin",
		SlowestLimit:    5,
		HistoryLimit:    50,
		MaxLogBytes:     1048576,
		ServerName:      "app-01",
	}, cfg.Analysis)
}

func TestLoadConfig_AnalysisDefaults(t *testing.T) {
	path := writeTempConfig(t, baseServerConfig+`log:
  level: info
file_storage:
  root_dir: ./data
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, AnalysisConfig{
		TimingClassName: "SpringTimerFilter",
		TimeZone:        "",
		SlowestLimit:    10,
		HistoryLimit:    20,
		MaxLogBytes:     64 << 20,
		ServerName:      "default",
	}, cfg.Analysis)
}

func TestLoadConfig_UploadRateLimit(t *testing.T) {
	path := writeTempConfig(t, baseServerConfig+`  upload_rate_limit: 2.5
  upload_burst: 5
log:
  level: info
file_storage:
  root_dir: ./data
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, cfg.Server.UploadRateLimit, 1e-9)
	assert.Equal(t, 5, cfg.Server.UploadBurst)
}

func TestLoadConfig_NegativeUploadRateLimit(t *testing.T) {
	path := writeTempConfig(t, baseServerConfig+`  upload_rate_limit: -1
log:
  level: info
file_storage:
  root_dir: ./data
`)

	cfg, err := LoadConfig(path)
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.uploadratelimit (min=0)")
}

func TestLoadConfig_InvalidLogFormat(t *testing.T) {
	path := writeTempConfig(t, baseServerConfig+`log:
  level: info
  format: xml
file_storage:
  root_dir: ./data
`)

	cfg, err := LoadConfig(path)
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.format (oneof=json console)")
}

func TestLoadConfig_MissingRequiredFields(t *testing.T) {
	path := writeTempConfig(t, `server:
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
log:
  level: debug
file_storage:
  root_dir: ./data
`)

	cfg, err := LoadConfig(path)
	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "port")
}

func TestLoadConfig_InvalidLogLevel(t *testing.T) {
	path := writeTempConfig(t, baseServerConfig+`log:
  level: invalid
file_storage:
  root_dir: ./data
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Equal(t, "invalid", cfg.Log.Level)
}

func TestLoadConfig_InvalidPortRange(t *testing.T) {
	path := writeTempConfig(t, `server:
  port: 70000
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
log:
  level: info
file_storage:
  root_dir: ./data
`)

	cfg, err := LoadConfig(path)
	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "port")
}

func TestLoadConfig_MissingFileStorageRootDir(t *testing.T) {
	path := writeTempConfig(t, baseServerConfig+`log:
  level: info
file_storage: {}
`)

	cfg, err := LoadConfig(path)
	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), " filestorage.rootdir")
}

func TestLoadConfig_InvalidAnalysis(t *testing.T) {
	tests := []struct {
		name     string
		analysis string
		contains string
	}{
		{
			name: "unknown time zone",
			analysis: `analysis:
  time_zone: Mars/Olympus
`,
			contains: "analysis.timezone (unknown time zone",
		},
		{
			name: "zero slowest limit",
			analysis: `analysis:
  slowest_limit: -1
`,
			contains: "analysis.slowestlimit (min=1)",
		},
		{
			name: "negative history limit",
			analysis: `analysis:
  history_limit: -5
`,
			contains: "analysis.historylimit (min=1)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempConfig(t, baseServerConfig+`log:
  level: info
file_storage:
  root_dir: ./data
`+tt.analysis)

			cfg, err := LoadConfig(path)
			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/config.yml")
	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}
