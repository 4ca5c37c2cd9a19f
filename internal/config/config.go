package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"     validate:"required"`
	Task       TaskConfig       `mapstructure:"task"       validate:"required"`
	Processing ProcessingConfig `mapstructure:"processing"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// TaskConfig contains all dispatcher-related configuration settings.
type TaskConfig struct {
	WorkerCount int `mapstructure:"worker_count" validate:"required,gt=0"`
	QueueSize   int `mapstructure:"queue_size"   validate:"required,gt=0"`
}

// ProcessingConfig contains all audio pipeline configuration settings.
// A zero DelayMs means the pipeline's built-in default delay applies.
type ProcessingConfig struct {
	DelayMs int `mapstructure:"delay_ms" validate:"gte=0"`
}

// Delay returns the simulated processing delay as a time.Duration.
func (c ProcessingConfig) Delay() time.Duration {
	return time.Duration(c.DelayMs) * time.Millisecond
}
