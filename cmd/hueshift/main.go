// Command hueshift turns the blue app icons purple, in place.
//
// Each original is copied to the backup directory once, before its first
// conversion; later runs keep that copy.
package main

import (
	"errors"
	"os"

	"github.com/spf13/pflag"

	"purple-icons/internal/config"
	"purple-icons/internal/convert"
	"purple-icons/internal/report"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		report.New(os.Stderr).Error("hueshift", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Parse("hueshift", args, os.Stderr)
	if err != nil {
		return err
	}
	_, err = convert.Run(cfg, report.New(os.Stdout))
	return err
}
