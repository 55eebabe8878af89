package viz

import (
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/flipsort/internal/metrics"
	"github.com/san-kum/flipsort/internal/registry"
	"github.com/san-kum/flipsort/internal/sorting"
)

type tickMsg struct{ gen int }

// Player steps through a trace interactively. Steps are pulled from the
// algorithm only when the player first moves past them, and cached so the
// user can scrub backwards.
type Player struct {
	options []registry.Option
	optIdx  int
	alg     registry.Algorithm
	input   []sorting.Item

	cursor *sorting.Cursor
	steps  []sorting.Step
	pos    int

	playing bool
	gen     int
	fps     int
	width   int
	theme   Theme
	styles  Styles
}

func NewPlayer(algorithm string, input []sorting.Item, fps int, theme Theme) (*Player, error) {
	alg, err := registry.Lookup(algorithm)
	if err != nil {
		return nil, err
	}
	if fps <= 0 {
		fps = 4
	}

	p := &Player{
		options: registry.Options(),
		input:   input,
		fps:     fps,
		width:   80,
		theme:   theme,
		styles:  NewStyles(theme),
	}
	for i, o := range p.options {
		if o.ID == alg.ID {
			p.optIdx = i
		}
	}
	p.load(alg)
	return p, nil
}

func (p *Player) load(alg registry.Algorithm) {
	if p.cursor != nil {
		p.cursor.Stop()
	}
	p.alg = alg
	p.cursor = sorting.NewCursor(alg.Sort(p.input))
	p.steps = p.steps[:0]
	p.pos = 0
	p.playing = false
	p.gen++
	if s, ok := p.cursor.Next(); ok {
		p.steps = append(p.steps, s)
	}
}

// Close releases the suspended algorithm.
func (p *Player) Close() {
	if p.cursor != nil {
		p.cursor.Stop()
	}
}

func (p *Player) Algorithm() string     { return p.alg.ID }
func (p *Player) Position() int         { return p.pos }
func (p *Player) Pulled() int           { return len(p.steps) }
func (p *Player) Playing() bool         { return p.playing }
func (p *Player) Current() sorting.Step { return p.steps[p.pos] }
func (p *Player) Exhausted() bool       { return p.cursor.Done() }
func (p *Player) ThemeName() string     { return p.theme.Name }

func (p *Player) next() bool {
	if p.pos < len(p.steps)-1 {
		p.pos++
		return true
	}
	s, ok := p.cursor.Next()
	if !ok {
		return false
	}
	p.steps = append(p.steps, s)
	p.pos++
	return true
}

func (p *Player) last() {
	for p.next() {
	}
}

func (p *Player) tick() tea.Cmd {
	gen := p.gen
	return tea.Tick(time.Second/time.Duration(p.fps), func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

func (p *Player) Init() tea.Cmd { return nil }

func (p *Player) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return p.handleKey(msg)
	case tea.WindowSizeMsg:
		p.width = msg.Width
	case tickMsg:
		if !p.playing || msg.gen != p.gen {
			return p, nil
		}
		if !p.next() {
			p.playing = false
			return p, nil
		}
		return p, p.tick()
	}
	return p, nil
}

func (p *Player) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		p.Close()
		return p, tea.Quit
	case " ", "space", "p":
		p.playing = !p.playing
		p.gen++
		if p.playing {
			return p, p.tick()
		}
	case "right", "l":
		p.playing = false
		p.next()
	case "left", "h":
		p.playing = false
		if p.pos > 0 {
			p.pos--
		}
	case "home", "g":
		p.playing = false
		p.pos = 0
	case "end", "G":
		p.playing = false
		p.last()
	case "a", "tab":
		p.optIdx = (p.optIdx + 1) % len(p.options)
		if alg, err := registry.Lookup(p.options[p.optIdx].ID); err == nil {
			p.load(alg)
		}
	case "t":
		p.theme = nextTheme(p.theme)
		p.styles = NewStyles(p.theme)
	case "r":
		p.load(p.alg)
	}
	return p, nil
}

func (p *Player) View() string {
	total := 0
	if p.cursor.Done() {
		total = len(p.steps)
	}
	barWidth := max(p.width-24, minBarWidth)

	var b strings.Builder
	b.WriteString(p.styles.Panel.Render(Frame(p.alg.Label, p.steps[p.pos], p.pos, total, barWidth, p.styles)))
	b.WriteString("\n")

	if total > 0 {
		b.WriteString(ProgressBar(float64(p.pos+1)/float64(total), barWidth, p.styles))
	} else {
		b.WriteString(p.styles.Subtle.Render("pulled " + strconv.Itoa(len(p.steps)) + " steps"))
	}
	b.WriteString("  ")
	b.WriteString(p.styles.Subtle.Render("inversions " + Sparkline(metrics.Curve(p.steps[:p.pos+1]), 24)))
	b.WriteString("\n")

	state := "paused"
	if p.playing {
		state = "playing"
	}
	b.WriteString(p.styles.KeyHint.Render(state + " · space play · ←/→ step · g/G ends · a algorithm · t theme · r restart · q quit"))
	return b.String()
}

// RunPlayer opens the interactive player on the alternate screen.
func RunPlayer(algorithm string, input []sorting.Item, fps int, theme Theme) error {
	p, err := NewPlayer(algorithm, input, fps, theme)
	if err != nil {
		return err
	}
	defer p.Close()

	_, err = tea.NewProgram(p, tea.WithAltScreen()).Run()
	return err
}
