package viz

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/twinpal/internal/twin"
)

// Console streams human readable progress. It is not meant to be parsed.
type Console struct {
	w         io.Writer
	theme     Theme
	maxLength int
	width     int
	quiet     bool
}

func NewConsole(w io.Writer, theme Theme, maxLength, width int, quiet bool) *Console {
	return &Console{w: w, theme: theme, maxLength: maxLength, width: width, quiet: quiet}
}

// OnLength prints the proportion for one finished length.
func (c *Console) OnLength(stat twin.LengthStat) {
	if c.quiet {
		return
	}
	label := lipgloss.NewStyle().Foreground(c.theme.Muted).Render(fmt.Sprintf("length %2d", stat.Length))
	value := lipgloss.NewStyle().Foreground(c.theme.Accent).Bold(true).Render(strconv.FormatFloat(stat.Fraction, 'g', -1, 64))
	progress := 0.0
	if c.maxLength > 0 {
		progress = float64(stat.Length) / float64(c.maxLength)
	}
	fmt.Fprintf(c.w, "%s %s %s (%d/%d)\n", label, ProgressBar(progress, 20), value, stat.Qualified, stat.Candidates)
}

// Rug prints the ASCII lines in the theme's rug color, clipped to the
// console width.
func (c *Console) Rug(lines []string) {
	if c.quiet {
		return
	}
	style := lipgloss.NewStyle().Foreground(c.theme.Rug)
	for _, line := range lines {
		fmt.Fprintln(c.w, style.Render(Clip(line, c.width)))
	}
}

// Printf writes a summary line in the theme's text color.
func (c *Console) Printf(format string, args ...any) {
	if c.quiet {
		return
	}
	text := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	fmt.Fprintln(c.w, lipgloss.NewStyle().Foreground(c.theme.Text).Render(text))
}

// Separator writes a rule across the console width.
func (c *Console) Separator() {
	if c.quiet {
		return
	}
	width := c.width
	if width <= 0 || width > 60 {
		width = 60
	}
	fmt.Fprintln(c.w, Separator(width))
}
