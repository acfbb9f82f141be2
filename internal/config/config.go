package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	App     AppConfig     `mapstructure:"app"     validate:"required"`
	Storage StorageConfig `mapstructure:"storage" validate:"required"`
}

// AppConfig contains settings for the process itself: logging and the
// location of the user preferences file.
type AppConfig struct {
	LogLevel  string `mapstructure:"log_level"  validate:"required,oneof=debug info warn error"`
	LogFormat string `mapstructure:"log_format" validate:"required,oneof=json text"`
	PrefsFile string `mapstructure:"prefs_file" validate:"required"`
}

// Storage drivers understood by StorageConfig.Driver.
const (
	DriverJSON     = "json"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// StorageConfig selects and configures the flashcard storage backend.
type StorageConfig struct {
	Driver string `mapstructure:"driver" validate:"required,oneof=json sqlite postgres"`

	// DataFile is the default JSON data file, used until the user
	// preferences file records a different one.
	DataFile string `mapstructure:"data_file" validate:"required"`

	SQLitePath  string `mapstructure:"sqlite_path"  validate:"required_if=Driver sqlite"`
	DatabaseURL string `mapstructure:"database_url" validate:"required_if=Driver postgres,omitempty,url"`

	// ExportDir is where export writes and import reads exchange files.
	ExportDir string `mapstructure:"export_dir" validate:"required"`
}
