// Package render prints alignment results as plain console text.
//
// The layout is a tab-separated score table whose first row is headed by the
// column sequence and whose rows are headed by the row sequence, followed by
// the optimal score, the number of alignments and every alignment framed by
// separator lines. Sequence symbols in the headers are highlighted through a
// Style; PlainStyle turns highlighting off for logs, pipes and tests.
//
// Nothing here computes anything: the printers only read nw results.
package render

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/katalvlaran/nwalign/nw"
)

// Separator frames each printed alignment.
const Separator = "----------"

// Style holds the lipgloss styles used for highlighted text.
type Style struct {
	Header lipgloss.Style // sequence symbols heading the table
	Warn   lipgloss.Style // warnings such as a truncated listing
}

// NewStyle builds the coloured style on renderer r. The renderer decides
// which colour profile the escape sequences are written for.
func NewStyle(r *lipgloss.Renderer) Style {
	return Style{
		Header: r.NewStyle().Foreground(lipgloss.Color("2")),
		Warn:   r.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
	}
}

// DefaultStyle is NewStyle on the default renderer (standard output).
func DefaultStyle() Style {
	return NewStyle(lipgloss.DefaultRenderer())
}

// PlainStyle renders every string unchanged.
func PlainStyle() Style {
	return Style{Header: lipgloss.NewStyle(), Warn: lipgloss.NewStyle()}
}

// Printer writes results to one writer. Write errors are sticky: after the
// first failure nothing more is written and every method returns that error.
type Printer struct {
	bw    *bufio.Writer
	style Style
}

// NewPrinter returns a Printer writing to w with style s.
func NewPrinter(w io.Writer, s Style) *Printer {
	return &Printer{bw: bufio.NewWriter(w), style: s}
}

// flush ends every public method so partial output is visible at once.
func (p *Printer) flush() error {
	if err := p.bw.Flush(); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	return nil
}

// Matrix prints the score table of m.
func (p *Printer) Matrix(m *nw.Matrix) error {
	first, second := []rune(m.First()), []rune(m.Second())

	p.bw.WriteString("Solution matrix:\n")

	// 1. Column header: two empty cells, then one symbol per column
	p.bw.WriteString("\t\t")
	for _, r := range second {
		p.bw.WriteString(p.style.Header.Render(string(r)))
		p.bw.WriteByte('\t')
	}
	p.bw.WriteByte('\n')

	// 2. One line per row, headed by its symbol (none for row 0)
	for i := 0; i < m.Rows(); i++ {
		if i > 0 {
			p.bw.WriteString(p.style.Header.Render(string(first[i-1])))
		}
		p.bw.WriteByte('\t')
		for _, v := range m.Row(i) {
			p.bw.WriteString(strconv.Itoa(v))
			p.bw.WriteByte('\t')
		}
		p.bw.WriteByte('\n')
	}

	return p.flush()
}

// Summary prints the optimal score and how many alignments reach it.
func (p *Printer) Summary(res *nw.Result) error {
	fmt.Fprintf(p.bw, "\nObtained score: %d\n", res.Score())
	fmt.Fprintf(p.bw, "Number of backtraces: %d\n", res.Count())

	return p.flush()
}

// Count prints an alignment count that may exceed the int range.
func (p *Printer) Count(score int, n *big.Int) error {
	fmt.Fprintf(p.bw, "Obtained score: %d\n", score)
	fmt.Fprintf(p.bw, "Number of backtraces: %s\n", n.String())

	return p.flush()
}

// Alignments prints every pair framed by Separator lines.
func (p *Printer) Alignments(pairs []nw.AlignedPair) error {
	p.bw.WriteString("\nAll possible alignments:\n")
	for _, pair := range pairs {
		p.bw.WriteString(Separator + "\n")
		p.bw.WriteString(pair.First + "\n")
		p.bw.WriteString(pair.Second + "\n")
	}
	p.bw.WriteString(Separator + "\n")

	return p.flush()
}

// Elapsed prints the pipeline wall-clock time in whole milliseconds.
func (p *Printer) Elapsed(d time.Duration) error {
	fmt.Fprintf(p.bw, "\nExecution time: %d milliseconds\n\n", d.Milliseconds())

	return p.flush()
}

// Warning prints msg on its own line in the warning style.
func (p *Printer) Warning(msg string) error {
	p.bw.WriteString(p.style.Warn.Render("warning: "+msg) + "\n")

	return p.flush()
}

// Report prints the table, the summary, every alignment and the elapsed time.
func (p *Printer) Report(res *nw.Result, elapsed time.Duration) error {
	if err := p.Matrix(res.Matrix); err != nil {
		return err
	}
	if err := p.Summary(res); err != nil {
		return err
	}
	if err := p.Alignments(res.Pairs); err != nil {
		return err
	}

	return p.Elapsed(elapsed)
}
