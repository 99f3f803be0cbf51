package configs

// Config holds all configuration for the application.
type Config struct {
	Server      ServerConfig      `mapstructure:"server" validate:"required"`
	Log         LogConfig         `mapstructure:"log" validate:"required"`
	FileStorage FileStorageConfig `mapstructure:"file_storage" validate:"required"`
	Analysis    AnalysisConfig    `mapstructure:"analysis" validate:"required"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
	// UploadRateLimit is the sustained number of uploads per second. Zero disables the limit.
	UploadRateLimit float64 `mapstructure:"upload_rate_limit" validate:"min=0"`
	UploadBurst     int     `mapstructure:"upload_burst" validate:"min=0"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required"`
	Format string `mapstructure:"format" validate:"omitempty,oneof=json console"`
}

// FileStorageConfig holds file storage configuration.
type FileStorageConfig struct {
	RootDir string `mapstructure:"root_dir" validate:"required"`
}

// AnalysisConfig holds the settings of a log analysis run.
type AnalysisConfig struct {
	// TimingClassName is the logger class whose records carry request timings.
	TimingClassName string `mapstructure:"timing_class_name" validate:"required"`
	// TimeZone is the IANA zone log timestamps are written in. Empty uses the host zone.
	TimeZone     string `mapstructure:"time_zone" validate:"omitempty,timezone"`
	SlowestLimit int    `mapstructure:"slowest_limit" validate:"required,min=1"`
	HistoryLimit int    `mapstructure:"history_limit" validate:"required,min=1"`
	MaxLogBytes  int64  `mapstructure:"max_log_bytes" validate:"required,min=1"`
	// ServerName is used for uploads that do not name their server.
	ServerName string `mapstructure:"server_name" validate:"required,max=255,logtoken"`
}
