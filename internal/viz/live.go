package viz

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/algoviz/internal/algorithms"
	"github.com/san-kum/algoviz/internal/input"
	"github.com/san-kum/algoviz/internal/playback"
	"github.com/san-kum/algoviz/internal/stats"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	speedStep     = 5
)

// fireMsg carries a due session callback into Update.
type fireMsg struct{ f func() }

type prompt int

const (
	promptNone prompt = iota
	promptCustom
	promptTarget
)

// Model is the Bubble Tea model of the player. It holds no playback state of
// its own; every frame is rendered from the session snapshot.
type Model struct {
	session       *playback.Session
	tracker       *stats.Tracker
	theme         Theme
	styles        styles
	size          int
	width, height int
	showHelp      bool
	prompt        prompt
	editBuf       string
	notice        string
}

// NewModel wraps s. size is the array length used when regenerating.
func NewModel(s *playback.Session, size int, theme Theme) Model {
	tr := stats.NewTracker()
	tr.Follow(s)
	return Model{
		session: s,
		tracker: tr,
		theme:   theme,
		styles:  newStyles(theme),
		size:    input.ClampSize(size),
		width:   defaultWidth,
		height:  defaultHeight,
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fireMsg:
		msg.f()
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		if m.prompt != promptNone {
			return m.promptKey(msg), nil
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	s := m.session
	snap := s.Snapshot()
	m.notice = ""

	switch msg.String() {
	case "q", "ctrl+c":
		s.Close()
		return m, tea.Quit
	case " ", "p":
		m.check(s.Play())
	case "n", "right":
		m.check(s.StepForward())
	case "[", "left":
		m.check(s.JumpTo(snap.Index - 1))
	case "]":
		m.check(s.JumpTo(snap.Index + 1))
	case "home":
		m.check(s.JumpTo(0))
	case "end":
		m.check(s.JumpTo(math.MaxInt32))
	case "+", "=":
		s.SetSpeed(snap.Speed + speedStep)
	case "-", "_":
		s.SetSpeed(snap.Speed - speedStep)
	case "r":
		s.Reset()
	case "g":
		s.Regenerate(m.size)
	case "a", "tab":
		m.check(s.SetAlgorithm(nextAlgorithm(snap.Algorithm)))
	case "c":
		m.prompt, m.editBuf = promptCustom, ""
	case "f":
		if info, _ := algorithms.Lookup(snap.Algorithm); info.IsSearch() {
			m.prompt, m.editBuf = promptTarget, ""
		} else {
			m.notice = "target applies to search algorithms only"
		}
	case "t":
		m.theme = NextTheme(m.theme)
		m.styles = newStyles(m.theme)
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

func (m Model) promptKey(msg tea.KeyMsg) Model {
	switch msg.Type {
	case tea.KeyEnter:
		switch m.prompt {
		case promptCustom:
			if !m.session.ApplyCustom(m.editBuf) {
				m.notice = "no numbers in input, array unchanged"
			}
		case promptTarget:
			m.session.SetTarget(m.editBuf)
		}
		m.prompt, m.editBuf = promptNone, ""
	case tea.KeyEsc:
		m.prompt, m.editBuf = promptNone, ""
	case tea.KeyBackspace:
		if r := []rune(m.editBuf); len(r) > 0 {
			m.editBuf = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		m.editBuf += " "
	case tea.KeyRunes:
		m.editBuf += string(msg.Runes)
	}
	return m
}

func (m *Model) check(err error) {
	if err != nil {
		m.notice = err.Error()
	}
}

func nextAlgorithm(id algorithms.ID) algorithms.ID {
	list := algorithms.List()
	for i, info := range list {
		if info.ID == id {
			return list[(i+1)%len(list)].ID
		}
	}
	return list[0].ID
}

func (m Model) statusText(st playback.State) string {
	switch st {
	case playback.Running:
		return m.styles.running.Render("● running")
	case playback.Paused:
		return m.styles.paused.Render("○ paused")
	case playback.Completed:
		return m.styles.done.Render("✓ completed")
	default:
		return m.styles.muted.Render("◌ ready")
	}
}

// View renders the TUI interface.
func (m Model) View() string {
	snap := m.session.Snapshot()
	info, _ := algorithms.Lookup(snap.Algorithm)
	st := stats.Of(snap, info)

	cw := m.width - 6
	if cw < 20 {
		cw = 20
	}
	ch := m.height - 18
	if ch < 6 {
		ch = 6
	}
	canvas := NewCanvas(cw, ch)
	DrawBars(canvas, snap.Step, m.theme)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("\n  %s  %s  %s\n",
		m.styles.header.Render(strings.ToUpper(info.Name)),
		m.statusText(snap.State),
		m.styles.muted.Render(info.Complexity)))

	desc := snap.Step.Description
	if !snap.HasTrace {
		desc = "press space to run"
	}
	b.WriteString("  " + m.styles.value.Render(desc) + "\n\n")

	for _, line := range strings.Split(canvas.String(), "\n") {
		b.WriteString("  " + line + "\n")
	}

	b.WriteString("\n  " + ProgressBar(st.Progress(), 36, m.styles.header, m.styles.muted))
	b.WriteString(m.styles.muted.Render(fmt.Sprintf("  step %d/%d  speed %d", st.Step, st.Total, snap.Speed)) + "\n\n")

	var panel strings.Builder
	panel.WriteString(m.styles.label.Render("comparisons") + m.styles.value.Render(fmt.Sprint(st.Comparisons)) + "\n")
	panel.WriteString(m.styles.label.Render("swaps") + m.styles.value.Render(fmt.Sprint(st.Swaps)) + "\n")
	panel.WriteString(m.styles.label.Render("complexity") + m.styles.value.Render(st.Complexity))
	if info.IsSearch() {
		target := "first element"
		if v, ok := m.session.Target(); ok {
			target = fmt.Sprint(v)
		}
		panel.WriteString("\n" + m.styles.label.Render("target") + m.styles.value.Render(target))
	}
	side := m.styles.panel.Render(panel.String())

	if hist := m.tracker.History(); len(hist.Comparisons) > 1 {
		chart := asciigraph.Plot(hist.Comparisons, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("comparisons"))
		side = lipgloss.JoinHorizontal(lipgloss.Top, side, "  ", m.styles.graph.Render(chart))
	}
	b.WriteString(indent(side) + "\n\n")

	b.WriteString("  " + Legend(m.theme) + "\n")

	switch m.prompt {
	case promptCustom:
		b.WriteString("\n  " + m.styles.prompt.Render("values (comma separated): ") + m.editBuf + "█\n")
	case promptTarget:
		b.WriteString("\n  " + m.styles.prompt.Render("search target: ") + m.editBuf + "█\n")
	}
	if m.notice != "" {
		b.WriteString("\n  " + m.styles.accent.Render(m.notice) + "\n")
	}

	b.WriteString("\n" + m.styles.help.Render("  space play  n step  [ ] scrub  ± speed  r reset  g new  a algo  c input  ? help  q quit") + "\n")

	if m.showHelp {
		return helpOverlay + "\n" + b.String()
	}
	return b.String()
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = "  " + l
	}
	return strings.Join(lines, "\n")
}

const helpOverlay = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Play/Pause               ║
║  N / →    - Step forward             ║
║  [ / ←    - Step back (pauses)       ║
║  ]        - Jump forward (pauses)    ║
║  Home/End - First/last step          ║
║  + / -    - Faster/slower            ║
║  R        - Reset to original array  ║
║  G        - New random array         ║
║  A / Tab  - Next algorithm           ║
║  C        - Custom input             ║
║  F        - Search target            ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝`
