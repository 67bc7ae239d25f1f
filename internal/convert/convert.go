// Package convert runs the blue to purple hue shift over an icon directory.
package convert

import (
	"fmt"

	"purple-icons/internal/backup"
	"purple-icons/internal/config"
	"purple-icons/internal/hue"
	"purple-icons/internal/imgio"
	"purple-icons/internal/report"
)

// Summary lists what a run did, in processing order.
type Summary struct {
	BackedUp  []string
	Converted []string
	Skipped   []string
}

// File shifts the image at src and commits it to dst, which may be src.
func File(src, dst string) error {
	img, err := imgio.Load(src)
	if err != nil {
		return err
	}
	return imgio.SaveAtomic(dst, hue.Shift(img))
}

// Run converts every configured icon in place, backing up each original
// first. Missing icons are skipped. The first error stops the run; files
// converted before it stay converted and are listed in the returned
// Summary.
func Run(cfg config.Config, p *report.Printer) (Summary, error) {
	var sum Summary
	set := backup.Set{Dir: cfg.BackupDir, Force: cfg.ForceBackup}

	created, err := set.Ensure()
	if err != nil {
		return sum, err
	}
	if created {
		p.CreatedDir(cfg.BackupDir)
	}

	for _, name := range cfg.Filenames {
		path := cfg.IconPath(name)
		if !imgio.Exists(path) {
			sum.Skipped = append(sum.Skipped, name)
			continue
		}

		copied, err := set.Save(path)
		if err != nil {
			return sum, err
		}
		if copied {
			sum.BackedUp = append(sum.BackedUp, name)
			p.BackedUp(name)
		}

		if err := File(path, path); err != nil {
			return sum, fmt.Errorf("convert %s: %w", name, err)
		}
		sum.Converted = append(sum.Converted, name)
		p.Converted(name)
	}

	p.BatchDone(len(sum.Converted), cfg.BackupDir)
	return sum, nil
}
