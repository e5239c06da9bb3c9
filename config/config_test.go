package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigFromEnv(t *testing.T) {
	t.Chdir(t.TempDir()) // no config/config.yaml in sight

	testVars := map[string]string{
		"TIBBER_API_TOKEN":      "secret-token",
		"TIBBER_TIMEOUT":        "3",
		"CHART_WIDTH":           "50",
		"GUI_TIMEZONE":          "Europe/Stockholm",
		"LOGGING_CONSOLE_LEVEL": "debug",
	}
	for k, v := range testVars {
		t.Setenv(k, v)
	}

	config, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("Tibber", func(t *testing.T) {
		if config.Tibber.ApiToken != "secret-token" {
			t.Errorf("Expected api token secret-token, got %q", config.Tibber.ApiToken)
		}
		if config.Tibber.GetEndpoint() != DefaultEndpoint {
			t.Errorf("Expected endpoint %s, got %s", DefaultEndpoint, config.Tibber.GetEndpoint())
		}
		if config.Tibber.GetTimeout() != 3*time.Second {
			t.Errorf("Expected timeout 3s, got %s", config.Tibber.GetTimeout())
		}
		if err := config.Validate(); err != nil {
			t.Errorf("Expected valid config, got %v", err)
		}
	})

	t.Run("Chart", func(t *testing.T) {
		if config.Chart.GetWidth() != 50 {
			t.Errorf("Expected chart width 50, got %d", config.Chart.GetWidth())
		}
		if config.Chart.GetHeight() != 12 {
			t.Errorf("Expected chart height 12, got %d", config.Chart.GetHeight())
		}
		if config.Chart.GetPrecision() != 2 {
			t.Errorf("Expected chart precision 2, got %d", config.Chart.GetPrecision())
		}
	})

	t.Run("Gui and logging", func(t *testing.T) {
		if config.Gui.GetTimezone() != "Europe/Stockholm" {
			t.Errorf("Expected timezone Europe/Stockholm, got %s", config.Gui.GetTimezone())
		}
		if config.Logging.GetConsoleLevel() != slog.LevelDebug {
			t.Errorf("Expected console level DEBUG, got %s", config.Logging.GetConsoleLevel())
		}
	})
}

func TestMissingApiToken(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TIBBER_API_TOKEN", "")

	config, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := config.Validate(); !errors.Is(err, ErrMissingApiToken) {
		t.Errorf("Expected ErrMissingApiToken, got %v", err)
	}
}

func TestLoadConfigFile(t *testing.T) {
	t.Setenv("TIBBER_API_TOKEN", "")

	path := filepath.Join(t.TempDir(), "tibberprice.yaml")
	yaml := `
tibber:
  api_token: from-file
  endpoint: http://localhost:8080/gql
chart:
  width: 26
  height: 6
gui:
  timezone: UTC
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	config, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.Tibber.ApiToken != "from-file" {
		t.Errorf("Expected api token from-file, got %q", config.Tibber.ApiToken)
	}
	if config.Tibber.GetEndpoint() != "http://localhost:8080/gql" {
		t.Errorf("Expected local endpoint, got %s", config.Tibber.GetEndpoint())
	}
	if config.Chart.GetWidth() != 26 || config.Chart.GetHeight() != 6 {
		t.Errorf("Expected chart 26x6, got %dx%d", config.Chart.GetWidth(), config.Chart.GetHeight())
	}
	if config.Gui.GetTimezone() != "UTC" {
		t.Errorf("Expected timezone UTC, got %s", config.Gui.GetTimezone())
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Errorf("Expected error for missing explicit config file")
	}
}

func TestDefaults(t *testing.T) {
	var c AppConfig
	if c.Tibber.GetTimeout() != 10*time.Second {
		t.Errorf("Expected default timeout 10s, got %s", c.Tibber.GetTimeout())
	}
	if c.Chart.GetWidth() != 74 {
		t.Errorf("Expected default width 74, got %d", c.Chart.GetWidth())
	}
	if c.Gui.GetTimezone() != "Local" {
		t.Errorf("Expected default timezone Local, got %s", c.Gui.GetTimezone())
	}
	if c.Logging.GetConsoleLevel() != slog.LevelInfo {
		t.Errorf("Expected default level INFO, got %s", c.Logging.GetConsoleLevel())
	}
}
