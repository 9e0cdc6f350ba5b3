package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/twinpal/internal/order"
	"github.com/san-kum/twinpal/internal/render"
	"github.com/san-kum/twinpal/internal/twin"
)

// chrome is the number of rows used by header and footer.
const chrome = 4

// Viewer browses a set of middles as an ASCII rug.
type Viewer struct {
	title   string
	middles []twin.Middle
	policy  order.Policy
	theme   Theme
	lines   []string
	offset  int
	width   int
	height  int
	err     error
}

func NewViewer(title string, middles []twin.Middle, policy order.Policy, theme Theme) *Viewer {
	v := &Viewer{
		title:   title,
		middles: middles,
		policy:  policy,
		theme:   theme,
		width:   80,
		height:  24,
	}
	v.relayout()
	return v
}

func (v *Viewer) relayout() {
	ordered, err := order.Sort(v.middles, v.policy)
	if err != nil {
		v.err = err
		return
	}
	v.err = nil
	v.lines = render.ASCII(ordered, render.Width(ordered))
}

func (v *Viewer) page() int {
	if p := v.height - chrome; p > 0 {
		return p
	}
	return 1
}

func (v *Viewer) scroll(delta int) {
	v.offset += delta
	if limit := len(v.lines) - v.page(); v.offset > limit {
		v.offset = limit
	}
	if v.offset < 0 {
		v.offset = 0
	}
}

func (v *Viewer) Init() tea.Cmd { return nil }

func (v *Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return v, tea.Quit
		case "j", "down":
			v.scroll(1)
		case "k", "up":
			v.scroll(-1)
		case "pgdown", " ":
			v.scroll(v.page())
		case "pgup":
			v.scroll(-v.page())
		case "g", "home":
			v.offset = 0
		case "G", "end":
			v.scroll(len(v.lines))
		case "o":
			v.policy = v.policy.Next()
			v.offset = 0
			v.relayout()
		case "t":
			v.theme = NextTheme(v.theme)
		}
	case tea.WindowSizeMsg:
		v.width, v.height = msg.Width, msg.Height
		v.scroll(0)
	}
	return v, nil
}

func (v *Viewer) View() string {
	var b strings.Builder

	accent := lipgloss.NewStyle().Foreground(v.theme.Accent).Bold(true)
	b.WriteString(HeaderStyle.Render(fmt.Sprintf("%s  %s  %s",
		accent.Render(v.title),
		lipgloss.NewStyle().Foreground(v.theme.Text).Render(fmt.Sprintf("%d middles", len(v.middles))),
		Subtle.Render("order: "+string(v.policy)+"  theme: "+v.theme.Name))))
	b.WriteString("\n")

	if v.err != nil {
		b.WriteString(SparkLow.Render(v.err.Error()))
		b.WriteString("\n")
	} else {
		rug := lipgloss.NewStyle().Foreground(v.theme.Rug)
		end := v.offset + v.page()
		if end > len(v.lines) {
			end = len(v.lines)
		}
		for _, line := range v.lines[v.offset:end] {
			b.WriteString(rug.Render(Clip(line, v.width)))
			b.WriteString("\n")
		}
	}

	b.WriteString(KeyHint.Render("j/k scroll · o order · t theme · q quit"))
	return b.String()
}

// Policy returns the ordering currently shown.
func (v *Viewer) Policy() order.Policy { return v.policy }

// Lines returns the rendered rug for the current ordering.
func (v *Viewer) Lines() []string { return v.lines }

// Offset returns the index of the first visible line.
func (v *Viewer) Offset() int { return v.offset }

// Theme returns the active theme.
func (v *Viewer) Theme() Theme { return v.theme }

// RunViewer runs the viewer on the alternate screen until the user quits.
func RunViewer(v *Viewer) error {
	_, err := tea.NewProgram(v, tea.WithAltScreen()).Run()
	return err
}
