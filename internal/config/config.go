package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Toast  ToastConfig  `mapstructure:"toast"`
	Kafka  KafkaConfig  `mapstructure:"kafka"`
	Auth   AuthConfig   `mapstructure:"auth"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Env  string `mapstructure:"env"`
}

type ToastConfig struct {
	// DisplayDurationMs is the default visible window per toast.
	DisplayDurationMs int `mapstructure:"display_duration_ms"`
	// TransitionMs is the exit-transition window before removal.
	TransitionMs int `mapstructure:"transition_ms"`
}

type KafkaConfig struct {
	Brokers         []string `mapstructure:"brokers"`
	ConsumerGroupID string   `mapstructure:"consumer_group_id"`
	Topics          []string `mapstructure:"topics"`
}

type AuthConfig struct {
	// JWTSecret is the HS256 shared secret for API tokens.
	JWTSecret string `mapstructure:"jwt_secret"`
}

// Load reads configuration from environment variables and config files.
// Environment variables override file values. Prefix: ARDA_TOAST_
func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.port", "8091")
	v.SetDefault("server.env", "development")
	v.SetDefault("toast.display_duration_ms", 1500)
	v.SetDefault("toast.transition_ms", 350)
	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.consumer_group_id", "arda-toast-group")
	v.SetDefault("kafka.topics", []string{"batch-events", "auth-events", "toast-commands"})
	v.SetDefault("auth.jwt_secret", "dev-secret")

	// Environment variables (e.g. TOAST_TRANSITION_MS -> toast.transition_ms)
	v.SetEnvPrefix("ARDA_TOAST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Also support simple env vars without prefix for Docker Compose convenience
	v.BindEnv("kafka.brokers", "KAFKA_BROKERS")
	v.BindEnv("auth.jwt_secret", "JWT_SECRET")
	v.BindEnv("server.port", "PORT")

	// Try loading config file (optional)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // Not required

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// DisplayDuration returns the default display window as a time.Duration.
func (t ToastConfig) DisplayDuration() time.Duration {
	return time.Duration(t.DisplayDurationMs) * time.Millisecond
}

// Transition returns the exit-transition window as a time.Duration.
func (t ToastConfig) Transition() time.Duration {
	return time.Duration(t.TransitionMs) * time.Millisecond
}
