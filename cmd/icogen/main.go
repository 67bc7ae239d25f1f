// Command icogen regenerates icon.ico (and icon.icns) from the converted
// icon.png.
package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"purple-icons/internal/backup"
	"purple-icons/internal/config"
	"purple-icons/internal/icon"
	"purple-icons/internal/report"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		report.New(os.Stderr).Error("icogen", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Parse("icogen", args, os.Stderr)
	if err != nil {
		return err
	}

	p := report.New(os.Stdout)
	res, err := icon.Build(icon.Options{
		Source:   cfg.SourcePath(),
		ICOPath:  cfg.ICOPath(),
		ICNSPath: cfg.ICNSPath(),
		Sizes:    cfg.TargetSizes,
		Backup:   backup.Set{Dir: cfg.BackupDir, Force: cfg.ForceBackup},
	}, p)
	if err != nil {
		return err
	}
	p.IconDone(filepath.Base(res.ICO))
	return nil
}
