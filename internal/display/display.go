// Package display renders pmergeme output. Colors follow the terminal unless
// forced on or off.
package display

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"PmergeMe/FordJohnson"
	"PmergeMe/FordJohnson/chain"
	"PmergeMe/internal/bench"
)

type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	}
	return 0, fmt.Errorf("unknown color mode %q (want auto, always or never)", s)
}

var (
	teal    = lipgloss.Color("6")
	magenta = lipgloss.Color("5")
	red     = lipgloss.Color("1")
	green   = lipgloss.Color("2")
	orange  = lipgloss.Color("208")
)

type Printer struct {
	w   io.Writer
	max int

	banner    map[chain.Kind]lipgloss.Style
	ok        lipgloss.Style
	bad       lipgloss.Style
	count     lipgloss.Style
	underline lipgloss.Style
}

// New returns a Printer writing to w that shows at most maxElements values
// per sequence.
func New(w io.Writer, mode ColorMode, maxElements int) *Printer {
	r := lipgloss.NewRenderer(w)
	if useColor(w, mode) {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	if maxElements < 1 {
		maxElements = 1
	}
	return &Printer{
		w:   w,
		max: maxElements,
		banner: map[chain.Kind]lipgloss.Style{
			chain.KindVector: r.NewStyle().Reverse(true).Foreground(teal),
			chain.KindDeque:  r.NewStyle().Reverse(true).Foreground(magenta),
		},
		ok:        r.NewStyle().Foreground(green),
		bad:       r.NewStyle().Foreground(red),
		count:     r.NewStyle().Foreground(orange),
		underline: r.NewStyle().Underline(true),
	}
}

func useColor(w io.Writer, mode ColorMode) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (p *Printer) Header(kind chain.Kind) {
	fmt.Fprintf(p.w, "%s\n\n", p.banner[kind].Render("--- "+strings.ToUpper(kind.String())+" ---"))
}

// Elements prints label followed by the first values, then " [...]" when
// some were left out.
func (p *Printer) Elements(label string, values []int) {
	n := len(values)
	if n > p.max {
		n = p.max
	}
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = strconv.Itoa(values[i])
	}
	line := label + " " + strings.Join(parts, " ")
	if len(values) > p.max {
		line += " [...]"
	}
	fmt.Fprintln(p.w, line)
}

func (p *Printer) SortedCheck(ok bool) {
	mark := p.ok.Render("[OK]")
	if !ok {
		mark = p.bad.Render("[NO]")
	}
	fmt.Fprintf(p.w, "Sorted? %s\n\n", mark)
}

// Timing prints the C++-style container name, std:: prefix included.
func (p *Printer) Timing(n int, kind chain.Kind, d time.Duration) {
	fmt.Fprintf(p.w, "Time to process a range of %s elements with std::%s: %s\n\n",
		p.count.Render(strconv.Itoa(n)), kind,
		p.underline.Render(fmt.Sprintf("%.6f seconds.", d.Seconds())))
}

func (p *Printer) Stats(st FordJohnson.Stats) {
	fmt.Fprintf(p.w, "Comparisons: %d, insertions: %d, recursion levels: %d\n\n",
		st.Comparisons, st.Insertions, st.Levels)
}

func (p *Printer) Error(err error) {
	fmt.Fprintf(p.w, "%s %v\n", p.bad.Render("Error:"), err)
}

// Line prints a plain line.
func (p *Printer) Line(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// BenchTable prints one row per algorithm and size with averaged figures.
func (p *Printer) BenchTable(avgs []bench.Average) {
	rows := make([][]string, 0, len(avgs))
	for _, a := range avgs {
		cmps := "-"
		if a.Comparisons > 0 {
			cmps = strconv.Itoa(a.Comparisons)
		}
		rows = append(rows, []string{
			strconv.Itoa(a.DataSize), a.Name, strconv.Itoa(a.Runs),
			fmt.Sprintf("%.6f", a.Duration.Seconds()), cmps, strconv.FormatUint(a.MemoryBytes, 10),
		})
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("SIZE", "ALGORITHM", "RUNS", "SECONDS", "COMPARISONS", "BYTES").
		Rows(rows...)
	fmt.Fprintln(p.w, t.Render())
}

// Sessions lists stored benchmark sessions, each followed by its averages.
func (p *Printer) Sessions(sessions []*bench.Session) {
	if len(sessions) == 0 {
		fmt.Fprintln(p.w, "No benchmark sessions recorded")
		return
	}
	for _, s := range sessions {
		fmt.Fprintf(p.w, "#%d %s seed=%d trials=%d\n",
			s.ID, s.StartedAt.Format("2006-01-02 15:04:05"), s.Seed, len(s.Results))
		for _, a := range bench.Averages(s.Results) {
			fmt.Fprintf(p.w, "    %-20s n=%-8d %.6fs\n", a.Name, a.DataSize, a.Duration.Seconds())
		}
	}
}
