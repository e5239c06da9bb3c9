package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/icodeforyou/tibberprice/logging"
	"github.com/icodeforyou/tibberprice/tibber"
	"github.com/spf13/viper"
)

const DefaultEndpoint = tibber.DefaultEndpoint

var ErrMissingApiToken = errors.New("tibber api token is not set, export TIBBER_API_TOKEN")

type AppConfigTibber struct {
	ApiToken string `mapstructure:"api_token"` // Personal access token from developer.tibber.com
	Endpoint string `mapstructure:"endpoint"`
	// Request timeout in seconds, default: 10
	Timeout *int `mapstructure:"timeout"`
}

func (t AppConfigTibber) GetEndpoint() string {
	if t.Endpoint == "" {
		return DefaultEndpoint
	}
	return t.Endpoint
}

func (t AppConfigTibber) GetTimeout() time.Duration {
	if t.Timeout == nil || *t.Timeout <= 0 {
		return 10 * time.Second
	}
	return time.Duration(*t.Timeout) * time.Second
}

type AppConfigChart struct {
	Width     *int  `mapstructure:"width"`     // Plot width in characters, default: 74
	Height    *int  `mapstructure:"height"`    // Plot height in rows, default: 12
	Precision *uint `mapstructure:"precision"` // Decimals on the y-axis labels, default: 2
}

func (c AppConfigChart) GetWidth() int {
	if c.Width == nil || *c.Width < 16 {
		return 74
	}
	return *c.Width
}

func (c AppConfigChart) GetHeight() int {
	if c.Height == nil || *c.Height < 2 {
		return 12
	}
	return *c.Height
}

func (c AppConfigChart) GetPrecision() uint {
	if c.Precision == nil {
		return 2
	}
	return *c.Precision
}

type AppConfigGui struct {
	// Timezone for displaying hours, default: Local
	Timezone *string `mapstructure:"timezone"`
}

func (g AppConfigGui) GetTimezone() string {
	if g.Timezone == nil || *g.Timezone == "" {
		return "Local"
	}
	return *g.Timezone
}

type AppConfigLogging struct {
	// Min log level for console: "DEBUG", "INFO", "WARN", "ERROR", default: "INFO"
	ConsoleLevel *string `mapstructure:"console_level"`
}

func (l AppConfigLogging) GetConsoleLevel() slog.Level {
	return logging.LevelFromString(l.ConsoleLevel)
}

type AppConfig struct {
	Tibber  AppConfigTibber  `mapstructure:"tibber"`
	Chart   AppConfigChart   `mapstructure:"chart"`
	Gui     AppConfigGui     `mapstructure:"gui"`
	Logging AppConfigLogging `mapstructure:"logging"`
}

// Validate reports configuration that makes it pointless to contact the api.
func (c *AppConfig) Validate() error {
	if strings.TrimSpace(c.Tibber.ApiToken) == "" {
		return ErrMissingApiToken
	}
	return nil
}

// Load reads config from path, or from config/config.yaml when path is empty.
// A missing default config file is not an error, everything can be set with
// environment variables, e.g. TIBBER_API_TOKEN for tibber.api_token.
func Load(path string) (*AppConfig, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath("config")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Unmarshal only sees env vars for keys viper already knows about
	v.SetDefault("tibber.api_token", "")
	v.SetDefault("tibber.endpoint", DefaultEndpoint)
	v.SetDefault("tibber.timeout", 10)
	v.SetDefault("chart.width", 74)
	v.SetDefault("chart.height", 12)
	v.SetDefault("chart.precision", 2)
	v.SetDefault("gui.timezone", "Local")
	v.SetDefault("logging.console_level", "INFO")

	var c AppConfig

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to unmarshal config file: %w", err)
	}

	return &c, nil
}
