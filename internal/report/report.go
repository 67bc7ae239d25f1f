// Package report prints the progress lines of the icon tools.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes human readable progress to a writer. Colours are only
// used when the writer is a terminal.
type Printer struct {
	w io.Writer

	label lipgloss.Style
	done  lipgloss.Style
	fail  lipgloss.Style
}

func New(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:     w,
		label: r.NewStyle().Foreground(lipgloss.Color("#9B6BFF")),
		done:  r.NewStyle().Foreground(lipgloss.Color("#7D56F4")).Bold(true),
		fail:  r.NewStyle().Foreground(lipgloss.Color("#FF5F87")).Bold(true),
	}
}

func (p *Printer) line(label, msg string) {
	fmt.Fprintf(p.w, "%s %s\n", p.label.Render(label), msg)
}

// CreatedDir reports a freshly created backup directory.
func (p *Printer) CreatedDir(dir string) {
	p.line("Created backup directory:", dir)
}

func (p *Printer) BackedUp(name string) {
	p.line("Backed up:", name)
}

func (p *Printer) Converted(name string) {
	p.line("Converted:", name)
}

// Generated reports a written container and, for ICO files, its frame sizes.
func (p *Printer) Generated(name string, sizes []int) {
	if len(sizes) == 0 {
		p.line("Generated:", name)
		return
	}
	s := make([]string, len(sizes))
	for i, n := range sizes {
		s[i] = fmt.Sprint(n)
	}
	p.line("Generated:", fmt.Sprintf("%s (%s)", name, strings.Join(s, ", ")))
}

// BatchDone prints the completion notice of a hue shift run.
func (p *Printer) BatchDone(converted int, backupDir string) {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, p.done.Render(fmt.Sprintf("All PNG icons have been converted from blue to purple! (%d files)", converted)))
	fmt.Fprintf(p.w, "Original blue icons backed up to: %s\n", backupDir)
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, "Note: .ico and .icns files need to be regenerated from the PNG files.")
}

func (p *Printer) IconDone(name string) {
	fmt.Fprintln(p.w, p.done.Render("Generated purple "+name+" for Windows"))
}

// Error prints a fatal error for the named command.
func (p *Printer) Error(cmd string, err error) {
	fmt.Fprintf(p.w, "%s %v\n", p.fail.Render(cmd+":"), err)
}
