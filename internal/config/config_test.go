package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"

	"github.com/thoreinstein/skillcheck/internal/errors"
	"github.com/thoreinstein/skillcheck/internal/paths"
)

// isolate points the config directory at an empty temp dir and runs Init
// from another temp dir so no real config is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(paths.ConfigDirEnv, dir)
	t.Chdir(t.TempDir())
	Init()
	return dir
}

func TestInit(t *testing.T) {
	isolate(t)

	if viper.GetInt("version") != 1 {
		t.Errorf("expected version default 1, got %d", viper.GetInt("version"))
	}
	if viper.GetString("color") != ColorAuto {
		t.Errorf("expected color default %q, got %q", ColorAuto, viper.GetString("color"))
	}
}

func TestLoad_NoConfigFile(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() with no config file should not error: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("Load() = %+v, want defaults %+v", cfg, Default())
	}
}

func TestLoad_WithConfigFile(t *testing.T) {
	dir := isolate(t)
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("color: never\nlog_format: json\n"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Color != ColorNever {
		t.Errorf("Color = %q, want %q", cfg.Color, ColorNever)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q, want json", cfg.LogFormat)
	}
}

func TestLoad_IgnoresWorkingDirectory(t *testing.T) {
	isolate(t)
	if err := os.WriteFile("config.yaml", []byte("color: red\nversion: 2\n"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() picked up ./config.yaml: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("Load() = %+v, want defaults %+v", cfg, Default())
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("SKILLCHECK_COLOR", ColorAlways)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Color != ColorAlways {
		t.Errorf("Color = %q, want %q", cfg.Color, ColorAlways)
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("Load() error = %v, want ErrNotFound", err)
	}
}

func TestLoad_InvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
		wantMsg string
	}{
		{
			name:    "invalid version",
			content: "version: 2\n",
			wantErr: ErrUnsupportedVersion,
			wantMsg: "validating config: unsupported config version: 2",
		},
		{
			name:    "invalid color",
			content: "color: rainbow\n",
			wantErr: ErrInvalidColor,
			wantMsg: "validating config: invalid color mode: rainbow",
		},
		{
			name:    "invalid log format",
			content: "log_format: xml\n",
			wantErr: ErrInvalidLogFormat,
			wantMsg: "validating config: invalid log format: xml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)

			configPath := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(configPath, []byte(tt.content), 0600); err != nil {
				t.Fatal(err)
			}

			_, err := Load(configPath)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Load() error = %v, want %v", err, tt.wantErr)
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("Load() error = %q, want %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestInit_ClearsPreviousState(t *testing.T) {
	dir := isolate(t)

	explicit := filepath.Join(t.TempDir(), "explicit.yaml")
	if err := os.WriteFile(explicit, []byte("color: always\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(explicit); err != nil {
		t.Fatalf("first Load failed: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("color: never\n"), 0600); err != nil {
		t.Fatal(err)
	}

	Init()
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("second Load failed: %v", err)
	}
	if cfg.Color != ColorNever {
		t.Errorf("Color = %q, want %q (explicit file leaked through Init)", cfg.Color, ColorNever)
	}
}

func TestValidate(t *testing.T) {
	if errs := Validate(Default()); len(errs) != 0 {
		t.Errorf("Validate(Default()) = %v, want no errors", errs)
	}
	if errs := Validate(nil); len(errs) != 1 {
		t.Errorf("Validate(nil) = %v, want one error", errs)
	}

	errs := Validate(&Config{Version: 0, Color: "x", LogFormat: "y"})
	if len(errs) != 3 {
		t.Fatalf("Validate() returned %d errors, want 3: %v", len(errs), errs)
	}
	var fe *FieldError
	if !errors.As(errs[0], &fe) || fe.Field != "version" {
		t.Errorf("first error = %v, want version FieldError", errs[0])
	}
}
