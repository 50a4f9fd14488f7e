package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/armadachess/armada/internal/errors"
	"github.com/armadachess/armada/internal/testutil"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	testutil.AssertNoError(t, cfg.Validate())
	testutil.AssertEqual(t, cfg.Server.ListenAddr, ":8080")
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "armada.toml")
	testutil.AssertNoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
listen_addr = ":9999"

[bench]
games = 5
`)
	cfg, err := Load(path)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, cfg.Server.ListenAddr, ":9999")
	testutil.AssertEqual(t, cfg.Bench.Games, 5)
	// Untouched values keep their defaults.
	testutil.AssertEqual(t, cfg.Server.WindowMax, 64)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty listen addr", "[server]\nlisten_addr = \"\"\n"},
		{"zero window", "[server]\nwindow_max = 0\n"},
		{"zero games", "[bench]\ngames = 0\n"},
		{"zero plies", "[bench]\nmax_plies = 0\n"},
		{"not toml", "{\"server\": {}}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			testutil.AssertError(t, err)
			testutil.AssertTrue(t, errors.Is(err, errors.ErrInvalidConfig))
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	testutil.AssertError(t, err)
}
