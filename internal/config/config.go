package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Store      StoreConfig      `yaml:"store" mapstructure:"store"`
	Server     ServerConfig     `yaml:"server" mapstructure:"server"`
	Log        LogConfig        `yaml:"log" mapstructure:"log"`
	Extraction ExtractionConfig `yaml:"extraction" mapstructure:"extraction"`
	Validation ValidationConfig `yaml:"validation" mapstructure:"validation"`
	Batch      BatchConfig      `yaml:"batch" mapstructure:"batch"`
}

// StoreConfig configures the database backend.
type StoreConfig struct {
	Driver string `yaml:"driver" mapstructure:"driver"`
	DSN    string `yaml:"dsn" mapstructure:"dsn"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Port         int     `yaml:"port" mapstructure:"port"`
	RateLimitRPS float64 `yaml:"rate_limit_rps" mapstructure:"rate_limit_rps"`
	RateBurst    int     `yaml:"rate_burst" mapstructure:"rate_burst"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// ExtractionConfig configures recognition and scoring behavior.
type ExtractionConfig struct {
	// ConfidenceThreshold is the score below which an extraction is
	// flagged for manual review.
	ConfidenceThreshold float64 `yaml:"confidence_threshold" mapstructure:"confidence_threshold"`
	// MaxDepthM bounds plausible measured depth during recognition.
	MaxDepthM float64 `yaml:"max_depth_m" mapstructure:"max_depth_m"`
}

// ValidationConfig holds the physics validation thresholds. It is passed by
// value into each component that needs it; nothing reads these from globals.
type ValidationConfig struct {
	MDTVDToleranceM         float64 `yaml:"md_tvd_tolerance_m" mapstructure:"md_tvd_tolerance_m"`
	InclinationMaxDeg       float64 `yaml:"inclination_max_deg" mapstructure:"inclination_max_deg"`
	InclinationWarnDeg      float64 `yaml:"inclination_warning_deg" mapstructure:"inclination_warning_deg"`
	PipeIDMinMM             float64 `yaml:"pipe_id_min_mm" mapstructure:"pipe_id_min_mm"`
	PipeIDMaxMM             float64 `yaml:"pipe_id_max_mm" mapstructure:"pipe_id_max_mm"`
	ReservoirPressureMaxBar float64 `yaml:"reservoir_pressure_max_bar" mapstructure:"reservoir_pressure_max_bar"`
	WellheadPressureMaxBar  float64 `yaml:"wellhead_pressure_max_bar" mapstructure:"wellhead_pressure_max_bar"`
	TemperatureMinC         float64 `yaml:"temperature_min_c" mapstructure:"temperature_min_c"`
	TemperatureMaxC         float64 `yaml:"temperature_max_c" mapstructure:"temperature_max_c"`
	FluidDensityMin         float64 `yaml:"fluid_density_min" mapstructure:"fluid_density_min"`
	FluidDensityMax         float64 `yaml:"fluid_density_max" mapstructure:"fluid_density_max"`
	DefaultFluidDensity     float64 `yaml:"default_fluid_density" mapstructure:"default_fluid_density"`
}

// BatchConfig configures batch processing.
type BatchConfig struct {
	Concurrency int `yaml:"concurrency" mapstructure:"concurrency"`
}

// DefaultExtraction returns an ExtractionConfig with documented defaults.
func DefaultExtraction() ExtractionConfig {
	return ExtractionConfig{
		ConfidenceThreshold: 0.7,
		MaxDepthM:           10000,
	}
}

// DefaultValidation returns a ValidationConfig with documented defaults.
func DefaultValidation() ValidationConfig {
	return ValidationConfig{
		MDTVDToleranceM:         1.0,
		InclinationMaxDeg:       90,
		InclinationWarnDeg:      80,
		PipeIDMinMM:             50,
		PipeIDMaxMM:             1000,
		ReservoirPressureMaxBar: 1000,
		WellheadPressureMaxBar:  300,
		TemperatureMinC:         0,
		TemperatureMaxC:         300,
		FluidDensityMin:         800,
		FluidDensityMax:         1200,
		DefaultFluidDensity:     1000,
	}
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("WELLEXTRACT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.dsn", "wellextract.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.rate_limit_rps", 5)
	v.SetDefault("server.rate_burst", 10)
	v.SetDefault("batch.concurrency", 4)
	v.SetDefault("extraction.confidence_threshold", 0.7)
	v.SetDefault("extraction.max_depth_m", 10000)
	v.SetDefault("validation.md_tvd_tolerance_m", 1.0)
	v.SetDefault("validation.inclination_max_deg", 90)
	v.SetDefault("validation.inclination_warning_deg", 80)
	v.SetDefault("validation.pipe_id_min_mm", 50)
	v.SetDefault("validation.pipe_id_max_mm", 1000)
	v.SetDefault("validation.reservoir_pressure_max_bar", 1000)
	v.SetDefault("validation.wellhead_pressure_max_bar", 300)
	v.SetDefault("validation.temperature_min_c", 0)
	v.SetDefault("validation.temperature_max_c", 300)
	v.SetDefault("validation.fluid_density_min", 800)
	v.SetDefault("validation.fluid_density_max", 1200)
	v.SetDefault("validation.default_fluid_density", 1000)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
