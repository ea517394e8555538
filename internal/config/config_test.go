package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

// resetViper clears all viper state between tests to avoid cross-contamination.
func resetViper() {
	viper.Reset()
}

func TestLoad_Defaults(t *testing.T) {
	resetViper()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"Format", cfg.Format, FormatTable},
		{"Color", cfg.Color, true},
		{"Verbose", cfg.Verbose, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	tests := []struct {
		name   string
		envKey string
		envVal string
		field  func(Config) any
		want   any
	}{
		{
			name:   "format",
			envKey: "SEISMO_FORMAT",
			envVal: "json",
			field:  func(c Config) any { return c.Format },
			want:   FormatJSON,
		},
		{
			name:   "color",
			envKey: "SEISMO_COLOR",
			envVal: "false",
			field:  func(c Config) any { return c.Color },
			want:   false,
		},
		{
			name:   "verbose",
			envKey: "SEISMO_VERBOSE",
			envVal: "true",
			field:  func(c Config) any { return c.Verbose },
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetViper()
			// Set env prefix so SEISMO_* env vars map to config keys.
			viper.SetEnvPrefix("SEISMO")
			viper.AutomaticEnv()

			t.Setenv(tt.envKey, tt.envVal)

			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() returned unexpected error: %v", err)
			}
			got := tt.field(cfg)
			if got != tt.want {
				t.Errorf("%s: got %v (%T), want %v (%T)", tt.name, got, got, tt.want, tt.want)
			}
		})
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	resetViper()

	path := filepath.Join(t.TempDir(), ".seismo.yaml")
	if err := os.WriteFile(path, []byte("format: toml\ncolor: false\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		t.Fatalf("ReadInConfig: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.Format != FormatTOML {
		t.Errorf("Format = %q, want %q", cfg.Format, FormatTOML)
	}
	if cfg.Color {
		t.Error("Color should be false from config file")
	}
}

func TestLoad_InvalidFormat(t *testing.T) {
	resetViper()
	viper.Set("format", "xml")

	if _, err := Load(); err == nil {
		t.Fatal("Load() should reject an unknown format")
	}
}

func TestValidateFormat(t *testing.T) {
	t.Parallel()

	for _, f := range []string{FormatTable, FormatJSON, FormatTOML} {
		if err := ValidateFormat(f); err != nil {
			t.Errorf("ValidateFormat(%q) = %v", f, err)
		}
	}
	for _, f := range []string{"", "yaml", "TABLE"} {
		if err := ValidateFormat(f); err == nil {
			t.Errorf("ValidateFormat(%q) should fail", f)
		}
	}
}
