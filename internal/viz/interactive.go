package viz

import (
	"log/slog"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/algoviz/internal/config"
	"github.com/san-kum/algoviz/internal/input"
	"github.com/san-kum/algoviz/internal/playback"
)

// programScheduler arms wall-clock timers whose callbacks are delivered to
// the program as fireMsg instead of running on the timer goroutine.
type programScheduler struct {
	mu   sync.Mutex
	send func(tea.Msg)
}

func (p *programScheduler) attach(send func(tea.Msg)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.send = send
}

func (p *programScheduler) AfterFunc(d time.Duration, f func()) playback.Timer {
	return time.AfterFunc(d, func() {
		p.mu.Lock()
		send := p.send
		p.mu.Unlock()
		if send != nil {
			send(fireMsg{f: f})
		}
	})
}

// Run opens the player over in with the selection, speed and theme of cfg.
func Run(cfg *config.Config, in *input.Manager, logger *slog.Logger) error {
	sched := &programScheduler{}
	opts := append(cfg.SessionOptions(), playback.WithScheduler(sched), playback.WithLogger(logger))
	s, err := playback.NewSession(in, cfg.AlgorithmID(), opts...)
	if err != nil {
		return err
	}
	defer s.Close()

	p := tea.NewProgram(NewModel(s, cfg.ArraySize, GetTheme(cfg.Theme)), tea.WithAltScreen())
	sched.attach(p.Send)
	_, err = p.Run()
	return err
}
