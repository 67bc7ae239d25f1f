// Package config holds the paths and options shared by the icon tools.
//
// Values come from Default, optionally overlaid by a YAML file given with
// --config, and finally by individual command-line flags.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Config lists every recognised option.
type Config struct {
	IconsDir   string   `yaml:"icons_dir"`
	BackupDir  string   `yaml:"backup_dir"`
	Filenames  []string `yaml:"filenames"`
	SourceIcon string   `yaml:"source_icon"`
	// Empty output paths default to icon.ico / icon.icns inside IconsDir.
	OutputICOPath  string `yaml:"output_ico_path"`
	OutputICNSPath string `yaml:"output_icns_path"`
	NoICNS         bool   `yaml:"no_icns"`
	TargetSizes    []int  `yaml:"target_sizes"`
	ForceBackup    bool   `yaml:"force_backup"`
}

// DefaultFilenames are the icons of a Tauri app bundle.
var DefaultFilenames = []string{
	"32x32.png",
	"128x128.png",
	"128x128@2x.png",
	"icon.png",
	"Square30x30Logo.png",
	"Square44x44Logo.png",
	"Square71x71Logo.png",
	"Square89x89Logo.png",
	"Square107x107Logo.png",
	"Square142x142Logo.png",
	"Square150x150Logo.png",
	"Square284x284Logo.png",
	"Square310x310Logo.png",
	"StoreLogo.png",
}

func Default() Config {
	return Config{
		IconsDir:    "icons",
		BackupDir:   "icons_blue_backup",
		Filenames:   append([]string(nil), DefaultFilenames...),
		SourceIcon:  "icon.png",
		TargetSizes: []int{16, 32, 48, 64, 128, 256},
	}
}

// Load reads a YAML file on top of Default. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse builds the configuration of the named command from its arguments.
// It returns pflag.ErrHelp when help was requested.
func Parse(name string, args []string, output io.Writer) (Config, error) {
	pre := pflag.NewFlagSet(name, pflag.ContinueOnError)
	pre.ParseErrorsWhitelist.UnknownFlags = true
	pre.SetOutput(io.Discard)
	pre.Usage = func() {}
	path := pre.StringP("config", "c", "", "")
	// A malformed command line is reported by the full parse below, so the
	// config file is not loaded from a half-parsed argument list.
	if err := pre.Parse(args); err != nil {
		*path = ""
	}

	cfg := Default()
	if *path != "" {
		var err error
		if cfg, err = Load(*path); err != nil {
			return cfg, err
		}
	}

	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(output)
	fs.SortFlags = false
	fs.StringP("config", "c", "", "YAML file with default options")
	cfg.bind(fs)
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	return cfg, cfg.Validate()
}

func (c *Config) bind(fs *pflag.FlagSet) {
	fs.StringVarP(&c.IconsDir, "icons-dir", "d", c.IconsDir, "directory holding the PNG icons")
	fs.StringVarP(&c.BackupDir, "backup-dir", "b", c.BackupDir, "directory for the one-time backup of the original icons")
	fs.StringSliceVar(&c.Filenames, "files", c.Filenames, "icon file names to convert, in order")
	fs.StringVar(&c.SourceIcon, "source", c.SourceIcon, "converted PNG the ICO is built from, relative to the icons dir")
	fs.StringVar(&c.OutputICOPath, "ico", c.OutputICOPath, "output ICO path (default <icons-dir>/icon.ico)")
	fs.StringVar(&c.OutputICNSPath, "icns", c.OutputICNSPath, "output ICNS path (default <icons-dir>/icon.icns)")
	fs.BoolVar(&c.NoICNS, "no-icns", c.NoICNS, "do not regenerate the ICNS file")
	fs.IntSliceVar(&c.TargetSizes, "sizes", c.TargetSizes, "square ICO frame sizes")
	fs.BoolVarP(&c.ForceBackup, "force-backup", "f", c.ForceBackup, "overwrite existing backups")
}

// Validate reports the first invalid option.
func (c Config) Validate() error {
	if c.IconsDir == "" {
		return errors.New("icons dir is empty")
	}
	if c.BackupDir == "" {
		return errors.New("backup dir is empty")
	}
	if len(c.Filenames) == 0 {
		return errors.New("no icon files configured")
	}
	for _, name := range append([]string{c.SourceIcon}, c.Filenames...) {
		if name == "" || name != filepath.Base(name) || strings.ContainsAny(name, `/\`) {
			return fmt.Errorf("invalid icon file name %q", name)
		}
	}
	seen := make(map[int]bool, len(c.TargetSizes))
	for _, size := range c.TargetSizes {
		if size < 1 || size > 256 {
			return fmt.Errorf("target size %d out of range 1..256", size)
		}
		if seen[size] {
			return fmt.Errorf("duplicate target size %d", size)
		}
		seen[size] = true
	}
	return nil
}

// IconPath returns the live path of the named icon.
func (c Config) IconPath(name string) string {
	return filepath.Join(c.IconsDir, name)
}

func (c Config) SourcePath() string {
	return c.IconPath(c.SourceIcon)
}

func (c Config) ICOPath() string {
	if c.OutputICOPath != "" {
		return c.OutputICOPath
	}
	return c.IconPath("icon.ico")
}

// ICNSPath is empty when ICNS output is disabled.
func (c Config) ICNSPath() string {
	switch {
	case c.NoICNS:
		return ""
	case c.OutputICNSPath != "":
		return c.OutputICNSPath
	}
	return c.IconPath("icon.icns")
}
