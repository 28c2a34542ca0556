package config

import (
	"os"
	"testing"

	"github.com/oxhq/composer/ustring"
)

func clearConfigEnvVars() {
	os.Unsetenv("COMPOSER_HISTORY_LIMIT")
	os.Unsetenv("COMPOSER_CODE_UNIT_WIDTH")
}

func TestLoad_DefaultValues(t *testing.T) {
	clearConfigEnvVars()
	defer clearConfigEnvVars()

	cfg := Load()

	if cfg.HistoryLimit != 100 {
		t.Errorf("expected HistoryLimit 100, got %d", cfg.HistoryLimit)
	}
	if cfg.Width != ustring.U16 {
		t.Errorf("expected Width U16, got %v", cfg.Width)
	}
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	clearConfigEnvVars()
	defer clearConfigEnvVars()

	os.Setenv("COMPOSER_HISTORY_LIMIT", "250")
	os.Setenv("COMPOSER_CODE_UNIT_WIDTH", "utf32")

	cfg := Load()

	if cfg.HistoryLimit != 250 {
		t.Errorf("expected HistoryLimit 250, got %d", cfg.HistoryLimit)
	}
	if cfg.Width != ustring.U32 {
		t.Errorf("expected Width U32, got %v", cfg.Width)
	}
}

func TestLoad_InvalidHistoryLimitKeepsDefault(t *testing.T) {
	clearConfigEnvVars()
	defer clearConfigEnvVars()

	os.Setenv("COMPOSER_HISTORY_LIMIT", "not-a-number")

	cfg := Load()

	if cfg.HistoryLimit != 100 {
		t.Errorf("expected HistoryLimit to keep default 100, got %d", cfg.HistoryLimit)
	}
}
