// Package term provides the console surface for asinit: styled plan and
// outcome reports plus the yes/no confirmation prompt. Styling is disabled
// automatically when output is not a terminal.
package term

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/wasmkit/asinit/pkg/project"
)

var styles = struct {
	Title   lipgloss.Style
	Success lipgloss.Style
	Notice  lipgloss.Style
	Muted   lipgloss.Style
	Error   lipgloss.Style
}{
	Title:   lipgloss.NewStyle().Bold(true),
	Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	Notice:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
}

// Printer writes styled reports to a terminal, or plain text anywhere else.
type Printer struct {
	w      io.Writer
	styled bool
}

// NewPrinter creates a Printer for the given file, enabling color only when
// it is a terminal.
func NewPrinter(f *os.File) *Printer {
	return &Printer{
		w:      f,
		styled: isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()),
	}
}

// NewWriterPrinter creates an unstyled Printer for an arbitrary writer.
func NewWriterPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Plan prints the managed file set the run will ensure.
func (p *Printer) Plan(plan *project.Plan, root string) {
	fmt.Fprintln(p.w, p.render(styles.Title, "This command makes sure the following files exist in "+root+":"))
	fmt.Fprintln(p.w)

	for _, f := range plan.Files {
		name := f.Name
		if f.Kind == project.KindDirectory {
			name += "/"
		}
		fmt.Fprintf(p.w, "  %s\n", name)
	}

	fmt.Fprintln(p.w)
	fmt.Fprintf(p.w, "  Package manager: %s\n", plan.PackageManager)
	fmt.Fprintf(p.w, "  Compiler version: %s\n", plan.CompilerVersion)
	fmt.Fprintln(p.w)
}

// Summary prints one line per entry with its outcome, or the abort notice.
func (p *Printer) Summary(s *project.Summary) {
	if s.Aborted {
		fmt.Fprintln(p.w, p.render(styles.Muted, "Aborted. Nothing was written."))
		return
	}

	for _, r := range s.Results {
		fmt.Fprintf(p.w, "  %s %s %s\n", p.icon(r.Outcome), r.File.Name, p.render(styles.Muted, r.Outcome.String()))
		if r.Err != nil {
			fmt.Fprintf(p.w, "    %s\n", p.render(styles.Error, r.Err.Error()))
		}
	}

	fmt.Fprintln(p.w)
	if s.Failed() {
		fmt.Fprintln(p.w, p.render(styles.Error, "Done, with failures. See above."))
		return
	}
	fmt.Fprintln(p.w, p.render(styles.Success, "Done. Happy coding!"))
}

func (p *Printer) icon(o project.Outcome) string {
	switch o {
	case project.Created:
		return p.render(styles.Success, "✓")
	case project.Updated:
		return p.render(styles.Notice, "✓")
	case project.Unchanged:
		return p.render(styles.Muted, "○")
	default:
		return p.render(styles.Error, "✗")
	}
}

func (p *Printer) render(s lipgloss.Style, text string) string {
	if !p.styled {
		return text
	}

	return s.Render(text)
}

// Confirm asks a yes/no question and reads one line of input. An empty line
// or "y" (case-insensitive) confirms; anything else declines, including a
// read failure.
func Confirm(r io.Reader, w io.Writer, question string) bool {
	fmt.Fprintf(w, "%s [Y/n] ", question)

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && line == "" {
		return false
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "" || answer == "y"
}
