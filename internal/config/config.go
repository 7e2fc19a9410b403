package config

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Study    StudyConfig    `mapstructure:"study" validate:"required"`
	Importer ImporterConfig `mapstructure:"importer" validate:"required"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port                   int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel               string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds" validate:"gt=0"`
}

// DatabaseConfig contains database settings.
type DatabaseConfig struct {
	URL          string `mapstructure:"url" validate:"required,url"`
	AutoMigrate  bool   `mapstructure:"auto_migrate"`
	MaxOpenConns int    `mapstructure:"max_open_conns" validate:"gte=0"`
}

// StudyConfig tunes the card scheduler and the session registry.
type StudyConfig struct {
	RecencyWindow        int `mapstructure:"recency_window" validate:"gte=1"`
	StruggledGapMin      int `mapstructure:"struggled_gap_min" validate:"gte=0"`
	StruggledGapMax      int `mapstructure:"struggled_gap_max" validate:"gtefield=StruggledGapMin"`
	EasyGapMin           int `mapstructure:"easy_gap_min" validate:"gte=0"`
	EasyGapMax           int `mapstructure:"easy_gap_max" validate:"gtefield=EasyGapMin"`
	SessionTTLMinutes    int `mapstructure:"session_ttl_minutes" validate:"gt=0"`
	SweepIntervalSeconds int `mapstructure:"sweep_interval_seconds" validate:"gt=0"`
	MaxActiveSessions    int `mapstructure:"max_active_sessions" validate:"gt=0"`
}

// ImporterConfig contains spreadsheet import defaults.
type ImporterConfig struct {
	Sheet    string `mapstructure:"sheet" validate:"required"`
	StartRow int    `mapstructure:"start_row" validate:"gte=1"`
}
