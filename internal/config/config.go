package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"netracare-go/internal/metrics"
)

// Conf holds the application configuration, making it accessible globally.
var Conf *Config

// Config struct is the top-level configuration structure.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Scoring   ScoringConfig   `mapstructure:"scoring"`
	Retention RetentionConfig `mapstructure:"retention"`
	Protocol  ProtocolConfig  `mapstructure:"protocol"`
}

// ServerConfig holds server-related settings.
type ServerConfig struct {
	Port          string `mapstructure:"port"`
	SessionSecret string `mapstructure:"session_secret"`
}

// DatabaseConfig holds database connection settings.
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
}

// LoggingConfig holds settings for the logger.
type LoggingConfig struct {
	Directory  string `mapstructure:"directory"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

// ScoringConfig exposes the eye-tracking engine defaults for deployment
// tuning. Fields mirror metrics.ScoringOptions.
type ScoringConfig struct {
	MinValidSamples                int     `mapstructure:"min_valid_samples"`
	PupilDiameterMin               float64 `mapstructure:"pupil_diameter_min"`
	PupilDiameterMax               float64 `mapstructure:"pupil_diameter_max"`
	FixationMinDuration            float64 `mapstructure:"fixation_min_duration"`
	SaccadeVelocityThreshold       float64 `mapstructure:"saccade_velocity_threshold"`
	StabilityNormalizationConstant float64 `mapstructure:"stability_normalization_constant"`
	ConsistencyScaleFactor         float64 `mapstructure:"consistency_scale_factor"`
	AccuracyWeight                 float64 `mapstructure:"accuracy_weight"`
	StabilityWeight                float64 `mapstructure:"stability_weight"`
	ConsistencyWeight              float64 `mapstructure:"consistency_weight"`
}

// Options converts the configured scoring section into engine options.
func (s ScoringConfig) Options() metrics.ScoringOptions {
	return metrics.ScoringOptions{
		MinValidSamples:                s.MinValidSamples,
		PupilDiameterMin:               s.PupilDiameterMin,
		PupilDiameterMax:               s.PupilDiameterMax,
		FixationMinDuration:            s.FixationMinDuration,
		SaccadeVelocityThreshold:       s.SaccadeVelocityThreshold,
		StabilityNormalizationConstant: s.StabilityNormalizationConstant,
		ConsistencyScaleFactor:         s.ConsistencyScaleFactor,
		AccuracyWeight:                 s.AccuracyWeight,
		StabilityWeight:                s.StabilityWeight,
		ConsistencyWeight:              s.ConsistencyWeight,
	}
}

// RetentionConfig controls the background raw-data sweeper.
type RetentionConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	RawDataMaxAge int  `mapstructure:"raw_data_max_age"` // days
	SweepInterval int  `mapstructure:"sweep_interval"`   // minutes
}

// ProtocolConfig points at the test protocol definition.
type ProtocolConfig struct {
	Path string `mapstructure:"path"`
}

// setDefaults sets the default values for the configuration.
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "5050")
	v.SetDefault("server.session_secret", "")

	// Database defaults
	v.SetDefault("database.host", "db")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "user")
	v.SetDefault("database.password", "password")
	v.SetDefault("database.dbname", "netracare-db")

	// Logging defaults
	v.SetDefault("logging.directory", "logs")
	v.SetDefault("logging.max_size", 10)   // 10 MB
	v.SetDefault("logging.max_backups", 3) // Keep 3 backups
	v.SetDefault("logging.max_age", 7)     // 7 days
	v.SetDefault("logging.compress", true) // Compress old logs

	// Scoring defaults mirror the engine's documented defaults
	v.SetDefault("scoring.min_valid_samples", metrics.DefaultMinValidSamples)
	v.SetDefault("scoring.pupil_diameter_min", metrics.DefaultPupilDiameterMin)
	v.SetDefault("scoring.pupil_diameter_max", metrics.DefaultPupilDiameterMax)
	v.SetDefault("scoring.fixation_min_duration", metrics.DefaultFixationMinDuration)
	v.SetDefault("scoring.saccade_velocity_threshold", metrics.DefaultSaccadeVelocityThreshold)
	v.SetDefault("scoring.stability_normalization_constant", 0) // derive from screen diagonal
	v.SetDefault("scoring.consistency_scale_factor", metrics.DefaultConsistencyScaleFactor)
	v.SetDefault("scoring.accuracy_weight", 1.0/3.0)
	v.SetDefault("scoring.stability_weight", 1.0/3.0)
	v.SetDefault("scoring.consistency_weight", 1.0/3.0)

	// Retention defaults
	v.SetDefault("retention.enabled", true)
	v.SetDefault("retention.raw_data_max_age", 90) // days
	v.SetDefault("retention.sweep_interval", 60)   // minutes

	// Protocol definition
	v.SetDefault("protocol.path", "config/protocol.yaml")
}

// Init initializes the configuration with Viper.
func Init(projectRoot string, log *zap.Logger) error {
	v := viper.New()

	// Set default values
	setDefaults(v)

	// --- File Configuration ---
	v.AddConfigPath(filepath.Join(projectRoot, "config"))
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// --- Environment Variable Binding ---
	v.SetEnvPrefix("NETRACARE") // e.g., NETRACARE_SERVER_PORT
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read the initial configuration from the file.
	// It's okay if the file doesn't exist; defaults and env vars will be used.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Unmarshal the config into our global Conf variable
	if err := v.Unmarshal(&Conf); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	// Reject a broken scoring section at startup rather than on the first
	// scoring call.
	if err := Conf.Scoring.Options().Validate(); err != nil {
		return fmt.Errorf("invalid scoring configuration: %w", err)
	}

	// Set up a watch for configuration changes for hot-reloading
	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		log.Info("Configuration file changed, reloading.", zap.String("file", e.Name))
		if err := v.Unmarshal(&Conf); err != nil {
			log.Error("Error reloading configuration", zap.Error(err))
		}
	})

	log.Info("Configuration loaded successfully")
	return nil
}
