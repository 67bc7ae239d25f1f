// Package icon regenerates the Windows and macOS icon containers from an
// already converted PNG.
package icon

import (
	"fmt"
	"image"
	"io"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/jackmordaunt/icns/v3"

	"purple-icons/internal/backup"
	"purple-icons/internal/imgio"
	"purple-icons/internal/report"
)

// DefaultSizes are the square frame sizes of a generated ICO.
var DefaultSizes = []int{16, 32, 48, 64, 128, 256}

// Options describes one ICO (and optional ICNS) regeneration.
type Options struct {
	Source   string
	ICOPath  string
	ICNSPath string // empty skips the ICNS container
	Sizes    []int
	Backup   backup.Set
}

// Result lists what Build wrote.
type Result struct {
	BackedUp []string
	ICO      string
	ICNS     string
	Sizes    []int
}

// Resample scales src to a size x size copy for every entry of sizes.
func Resample(src image.Image, sizes []int) []image.Image {
	frames := make([]image.Image, len(sizes))
	for i, size := range sizes {
		frames[i] = imaging.Resize(src, size, size, imaging.Lanczos)
	}
	return frames
}

// EncodeICNS writes img as a macOS icon set.
func EncodeICNS(w io.Writer, img image.Image) error {
	if err := icns.Encode(w, img); err != nil {
		return fmt.Errorf("encoding icns: %w", err)
	}
	return nil
}

// Build backs up existing containers, then writes the ICO (and ICNS) built
// from opts.Source. Existing backups are kept unless opts.Backup.Force.
func Build(opts Options, p *report.Printer) (Result, error) {
	res := Result{ICO: opts.ICOPath, Sizes: opts.Sizes}
	if len(opts.Sizes) == 0 {
		res.Sizes = DefaultSizes
	}
	for _, size := range res.Sizes {
		if size < 1 || size > MaxSize {
			return res, fmt.Errorf("ico size %d out of range 1..%d", size, MaxSize)
		}
	}

	for _, old := range []string{opts.ICOPath, opts.ICNSPath} {
		if old == "" || !imgio.Exists(old) {
			continue
		}
		created, err := opts.Backup.Ensure()
		if err != nil {
			return res, err
		}
		if created {
			p.CreatedDir(opts.Backup.Dir)
		}
		copied, err := opts.Backup.Save(old)
		if err != nil {
			return res, err
		}
		if copied {
			res.BackedUp = append(res.BackedUp, filepath.Base(old))
			p.BackedUp("old " + filepath.Base(old))
		}
	}

	src, err := imgio.Load(opts.Source)
	if err != nil {
		return res, err
	}

	frames := Resample(src, res.Sizes)
	err = imgio.WriteAtomic(opts.ICOPath, func(w io.Writer) error {
		return EncodeICO(w, frames)
	})
	if err != nil {
		return res, err
	}
	p.Generated(filepath.Base(opts.ICOPath), res.Sizes)

	if opts.ICNSPath != "" {
		err = imgio.WriteAtomic(opts.ICNSPath, func(w io.Writer) error {
			return EncodeICNS(w, src)
		})
		if err != nil {
			return res, err
		}
		res.ICNS = opts.ICNSPath
		p.Generated(filepath.Base(opts.ICNSPath), nil)
	}
	return res, nil
}
