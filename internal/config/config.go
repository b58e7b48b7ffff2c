package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env            string        `mapstructure:"ENV"`
	Port           string        `mapstructure:"PORT"`
	APIURL         string        `mapstructure:"API_URL"`
	StateURL       string        `mapstructure:"STATE_URL"`
	CORSAllowed    string        `mapstructure:"CORS_ALLOWED_ORIGINS"`
	RequestTimeout time.Duration `mapstructure:"REQUEST_TIMEOUT"`
	LogLevel       string        `mapstructure:"LOG_LEVEL"`

	RefreshInterval    time.Duration `mapstructure:"REFRESH_INTERVAL"`
	TarifsRefreshMode  string        `mapstructure:"TARIFS_REFRESH_MODE"`
	TarifsRefreshDelay time.Duration `mapstructure:"TARIFS_REFRESH_DELAY"`
	TarifsPollInterval time.Duration `mapstructure:"TARIFS_POLL_INTERVAL"`
	TarifsPollTimeout  time.Duration `mapstructure:"TARIFS_POLL_TIMEOUT"`

	OTLPEndpoint string `mapstructure:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTLPInsecure bool   `mapstructure:"OTEL_EXPORTER_OTLP_INSECURE"`
}

func Load() (Config, error) {
	return LoadFile(".env")
}

// LoadFile reads an optional env file, then the process environment, which
// wins over the file.
func LoadFile(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()
	_ = v.ReadInConfig()

	v.SetDefault("ENV", "dev")
	v.SetDefault("PORT", "8080")
	v.SetDefault("API_URL", "http://localhost:8000")
	v.SetDefault("STATE_URL", "sav-portal.db")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("REQUEST_TIMEOUT", "30s")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("REFRESH_INTERVAL", "30s")
	v.SetDefault("TARIFS_REFRESH_MODE", "delay")
	v.SetDefault("TARIFS_REFRESH_DELAY", "3s")
	v.SetDefault("TARIFS_POLL_INTERVAL", "2s")
	v.SetDefault("TARIFS_POLL_TIMEOUT", "2m")
	v.SetDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	v.SetDefault("OTEL_EXPORTER_OTLP_INSECURE", false)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")
	if cfg.TarifsRefreshMode != "delay" && cfg.TarifsRefreshMode != "poll" {
		return Config{}, fmt.Errorf("TARIFS_REFRESH_MODE must be delay or poll, got %q", cfg.TarifsRefreshMode)
	}
	return cfg, nil
}
