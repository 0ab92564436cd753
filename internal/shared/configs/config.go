package configs

// Config holds all configuration for the application.
type Config struct {
	Server    ServerConfig     `mapstructure:"server" validate:"required"`
	Log       LogConfig        `mapstructure:"log" validate:"required"`
	Storage   StorageConfig    `mapstructure:"storage" validate:"required"`
	Collector CollectorConfig  `mapstructure:"collector" validate:"required"`
	Retention RetentionConfig  `mapstructure:"retention" validate:"required"`
	Campaigns []CampaignConfig `mapstructure:"campaigns" validate:"dive"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// StorageConfig holds storage configuration for the two persisted tables:
// raw samples (badger) and window summaries (file storage).
type StorageConfig struct {
	SampleDir      string `mapstructure:"sample_dir" validate:"required_if=SampleInMemory false"`
	SampleInMemory bool   `mapstructure:"sample_in_memory"`
	SummaryRootDir string `mapstructure:"summary_root_dir" validate:"required"`
}

// CollectorConfig holds vendor polling configuration.
type CollectorConfig struct {
	VendorBaseURL         string `mapstructure:"vendor_base_url" validate:"required,url"`
	VendorAPIKey          string `mapstructure:"vendor_api_key"`
	IntervalSeconds       int    `mapstructure:"interval_seconds" validate:"required,min=1"`
	MaxConcurrentRequests int    `mapstructure:"max_concurrent_requests" validate:"required,min=1"`
	BatchDelayMs          int    `mapstructure:"batch_delay_ms" validate:"min=0"`
	RetryAttempts         int    `mapstructure:"retry_attempts" validate:"required,min=1"`
	RetryBaseDelayMs      int    `mapstructure:"retry_base_delay_ms" validate:"required,min=1"`
	FetchTimeoutSeconds   int    `mapstructure:"fetch_timeout_seconds" validate:"required,min=1,max=60"`
	AutoStart             bool   `mapstructure:"auto_start"`
}

// RetentionConfig holds retention sweep configuration.
type RetentionConfig struct {
	SampleHorizonHours   int `mapstructure:"sample_horizon_hours" validate:"required,min=1"`
	SummaryHorizonDays   int `mapstructure:"summary_horizon_days" validate:"required,min=1"`
	SweepIntervalMinutes int `mapstructure:"sweep_interval_minutes" validate:"required,min=1"`
}

// CampaignConfig seeds the campaign registry. Campaign CRUD lives outside
// this service; the engine only needs to know which campaigns exist and
// which are eligible for collection.
type CampaignConfig struct {
	ID            string `mapstructure:"id" validate:"required"`
	Name          string `mapstructure:"name"`
	Status        string `mapstructure:"status" validate:"required,oneof=created ok running paused stopped"`
	Archived      bool   `mapstructure:"archived"`
	VendorTracked bool   `mapstructure:"vendor_tracked"`
}
