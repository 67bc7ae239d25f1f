package config

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(cfg.Filenames) != 14 {
		t.Errorf("filenames = %d, want 14", len(cfg.Filenames))
	}
	if !reflect.DeepEqual(cfg.TargetSizes, []int{16, 32, 48, 64, 128, 256}) {
		t.Errorf("target sizes = %v", cfg.TargetSizes)
	}
	if got, want := cfg.ICOPath(), filepath.Join("icons", "icon.ico"); got != want {
		t.Errorf("ICOPath = %q, want %q", got, want)
	}
	if got, want := cfg.ICNSPath(), filepath.Join("icons", "icon.icns"); got != want {
		t.Errorf("ICNSPath = %q, want %q", got, want)
	}
	if got, want := cfg.SourcePath(), filepath.Join("icons", "icon.png"); got != want {
		t.Errorf("SourcePath = %q, want %q", got, want)
	}

	cfg.Filenames[0] = "changed.png"
	if DefaultFilenames[0] != "32x32.png" {
		t.Error("Default shares its filename slice")
	}
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "cfg.yaml", `
icons_dir: app/icons
backup_dir: app/icons_blue_backup
filenames: [icon.png, StoreLogo.png]
target_sizes: [16, 256]
force_backup: true
no_icns: true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Default()
	want.IconsDir = "app/icons"
	want.BackupDir = "app/icons_blue_backup"
	want.Filenames = []string{"icon.png", "StoreLogo.png"}
	want.TargetSizes = []int{16, 256}
	want.ForceBackup = true
	want.NoICNS = true
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("Load = %+v\nwant %+v", cfg, want)
	}
	if cfg.ICNSPath() != "" {
		t.Errorf("ICNSPath = %q, want disabled", cfg.ICNSPath())
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := Load(writeFile(t, "bad.yaml", "icon_dir: typo\n")); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestLoad_Empty(t *testing.T) {
	cfg, err := Load(writeFile(t, "empty.yaml", ""))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("empty file changed defaults: %+v", cfg)
	}
}

func TestParse(t *testing.T) {
	path := writeFile(t, "cfg.yaml", "icons_dir: from-file\nbackup_dir: backup-from-file\n")

	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, cfg Config)
	}{
		{"defaults", nil, func(t *testing.T, cfg Config) {
			if !reflect.DeepEqual(cfg, Default()) {
				t.Errorf("cfg = %+v", cfg)
			}
		}},
		{"flags", []string{"-d", "x", "--files", "a.png,b.png", "--sizes", "16,32", "-f"}, func(t *testing.T, cfg Config) {
			if cfg.IconsDir != "x" || !cfg.ForceBackup {
				t.Errorf("cfg = %+v", cfg)
			}
			if !reflect.DeepEqual(cfg.Filenames, []string{"a.png", "b.png"}) {
				t.Errorf("filenames = %v", cfg.Filenames)
			}
			if !reflect.DeepEqual(cfg.TargetSizes, []int{16, 32}) {
				t.Errorf("sizes = %v", cfg.TargetSizes)
			}
		}},
		{"config file", []string{"--config", path}, func(t *testing.T, cfg Config) {
			if cfg.IconsDir != "from-file" || cfg.BackupDir != "backup-from-file" {
				t.Errorf("cfg = %+v", cfg)
			}
		}},
		{"flag overrides file", []string{"-b", "cli", "-c", path}, func(t *testing.T, cfg Config) {
			if cfg.IconsDir != "from-file" || cfg.BackupDir != "cli" {
				t.Errorf("cfg = %+v", cfg)
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse("hueshift", tt.args, io.Discard)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown flag", []string{"--bogus"}, "unknown flag"},
		{"positional", []string{"extra"}, "unexpected arguments"},
		{"bad size", []string{"--sizes", "16,300"}, "out of range"},
		{"duplicate size", []string{"--sizes", "16,16"}, "duplicate"},
		{"path in name", []string{"--files", "../x.png"}, "invalid icon file name"},
		{"empty backup", []string{"--backup-dir", ""}, "backup dir"},
		{"config without value", []string{"-c"}, "needs an argument"},
		{"help before missing config", []string{"-h", "-c", "/nonexistent/cfg.yaml"}, "help requested"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("hueshift", tt.args, io.Discard)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestParse_Help(t *testing.T) {
	_, err := Parse("icogen", []string{"-h"}, io.Discard)
	if !errors.Is(err, pflag.ErrHelp) {
		t.Errorf("err = %v, want ErrHelp", err)
	}
}

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
