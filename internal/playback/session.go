package playback

import (
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"github.com/san-kum/algoviz/internal/algorithms"
	"github.com/san-kum/algoviz/internal/input"
	"github.com/san-kum/algoviz/internal/trace"
)

type State int

const (
	Idle State = iota
	Running
	Paused
	Completed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Completed:
		return "completed"
	default:
		return "State(" + strconv.Itoa(int(s)) + ")"
	}
}

// Snapshot is a consistent view of a session at one instant.
type Snapshot struct {
	State     State
	Index     int
	Len       int
	Speed     int
	Algorithm algorithms.ID
	// Step is trace[Index], or the working array with zero counters when no
	// trace exists.
	Step     trace.Step
	HasTrace bool
}

// AtEnd reports whether the cursor sits on the last step.
func (s Snapshot) AtEnd() bool { return s.HasTrace && s.Index == s.Len-1 }

type Option func(*Session)

func WithScheduler(sched Scheduler) Option {
	return func(s *Session) { s.sched = sched }
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

func WithSpeed(speed int) Option {
	return func(s *Session) { s.speed = ClampSpeed(speed) }
}

// WithTarget fixes the search target. Without it search runs default to the
// first element of the array.
func WithTarget(target int) Option {
	return func(s *Session) { s.target = &target }
}

// Session is the live owner of a trace, a cursor and the playback state of
// one run.
type Session struct {
	mu        sync.Mutex
	input     *input.Manager
	algorithm algorithms.ID
	target    *int
	trace     *trace.Trace
	index     int
	state     State
	speed     int
	sched     Scheduler
	timer     Timer
	gen       uint64
	observers []func(Snapshot)
	logger    *slog.Logger
}

// NewSession returns an idle session over in. algorithm must be registered.
func NewSession(in *input.Manager, algorithm algorithms.ID, opts ...Option) (*Session, error) {
	if _, ok := algorithms.Lookup(algorithm); !ok {
		return nil, trace.Invalid("unknown algorithm " + strconv.Quote(string(algorithm)))
	}
	s := &Session{
		input:     in,
		algorithm: algorithm,
		speed:     DefaultSpeed,
		sched:     WallClock,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// OnChange registers fn to receive a snapshot after every transition,
// including automatic advances.
func (s *Session) OnChange(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

// Play starts a fresh run from Idle, resumes from Paused and pauses when
// Running. It has no effect once Completed.
func (s *Session) Play() error {
	return s.transition("play", func() error {
		switch s.state {
		case Idle:
			if err := s.generateLocked(); err != nil {
				return err
			}
			s.state = Running
			s.armLocked()
		case Paused:
			s.state = Running
			s.armLocked()
		case Running:
			s.cancelLocked()
			s.state = Paused
		}
		return nil
	})
}

// Pause stops auto-advance. It only affects a Running session.
func (s *Session) Pause() {
	_ = s.transition("pause", func() error {
		if s.state == Running {
			s.cancelLocked()
			s.state = Paused
		}
		return nil
	})
}

// StepForward moves the cursor one step while not Running. From Idle it
// generates the trace and parks on its first step.
func (s *Session) StepForward() error {
	return s.transition("step", func() error {
		switch s.state {
		case Idle:
			if err := s.generateLocked(); err != nil {
				return err
			}
			s.state = Paused
		case Paused:
			if s.index < s.trace.Len()-1 {
				s.index++
			}
		}
		return nil
	})
}

// JumpTo moves the cursor to i, clamped into the trace, and leaves the
// session Paused with no timer armed.
func (s *Session) JumpTo(i int) error {
	return s.transition("jump", func() error {
		s.cancelLocked()
		if s.trace == nil {
			if err := s.generateLocked(); err != nil {
				return err
			}
		}
		s.index = s.trace.Clamp(i)
		s.state = Paused
		return nil
	})
}

// Reset discards the trace and restores the original array.
func (s *Session) Reset() {
	_ = s.transition("reset", func() error {
		s.resetLocked()
		return nil
	})
}

// SetSpeed clamps v into [MinSpeed, MaxSpeed]. A Running session re-arms
// its timer with the new interval.
func (s *Session) SetSpeed(v int) {
	_ = s.transition("speed", func() error {
		s.speed = ClampSpeed(v)
		if s.state == Running {
			s.armLocked()
		}
		return nil
	})
}

// SetAlgorithm selects the algorithm for the next run and resets the session.
func (s *Session) SetAlgorithm(id algorithms.ID) error {
	if _, ok := algorithms.Lookup(id); !ok {
		return trace.Invalid("unknown algorithm " + strconv.Quote(string(id)))
	}
	return s.transition("algorithm", func() error {
		s.algorithm = id
		s.resetLocked()
		return nil
	})
}

// SetTarget sets the search target from user text. Text without a leading
// integer clears it so the run falls back to the default target.
func (s *Session) SetTarget(text string) {
	_ = s.transition("target", func() error {
		s.target = algorithms.ParseTarget(text)
		s.resetLocked()
		return nil
	})
}

// Regenerate fills the array with size random values and resets the session.
func (s *Session) Regenerate(size int) {
	_ = s.transition("regenerate", func() error {
		s.input.Generate(size)
		s.resetLocked()
		return nil
	})
}

// ApplyCustom replaces the array with parsed custom input. When nothing
// parses the array and the session are left untouched.
func (s *Session) ApplyCustom(text string) bool {
	applied := false
	_ = s.transition("custom", func() error {
		if s.input.ApplyCustom(text) {
			applied = true
			s.resetLocked()
		}
		return nil
	})
	return applied
}

// Close stops any armed timer. The session stays usable.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelLocked()
	if s.state == Running {
		s.state = Paused
	}
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Trace returns the current trace, or nil before the first run.
func (s *Session) Trace() *trace.Trace {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.trace
}

func (s *Session) Algorithm() algorithms.ID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.algorithm
}

// Target reports the explicit search target, if one was set.
func (s *Session) Target() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.target == nil {
		return 0, false
	}
	return *s.target, true
}

func (s *Session) transition(op string, fn func() error) error {
	s.mu.Lock()
	from := s.state
	err := fn()
	snap := s.snapshotLocked()
	observers := s.observers
	s.mu.Unlock()

	if err != nil {
		s.logger.Warn("playback transition failed", "op", op, "state", from, "err", err)
		return fmt.Errorf("%s: %w", op, err)
	}
	s.logger.Debug("playback transition", "op", op, "from", from, "to", snap.State, "index", snap.Index)
	for _, fn := range observers {
		fn(snap)
	}
	return nil
}

func (s *Session) tick(gen uint64) {
	s.mu.Lock()
	if gen != s.gen || s.state != Running {
		s.mu.Unlock()
		return
	}
	s.timer = nil
	last := s.trace.Len() - 1
	if s.index < last {
		s.index++
	}
	if s.index >= last {
		s.state = Completed
	} else {
		s.armLocked()
	}
	snap := s.snapshotLocked()
	observers := s.observers
	s.mu.Unlock()

	for _, fn := range observers {
		fn(snap)
	}
}

func (s *Session) generateLocked() error {
	t, err := algorithms.Run(s.algorithm, s.input.Values(), s.target)
	if err != nil {
		return err
	}
	s.trace = t
	s.index = 0
	s.logger.Debug("trace generated", "algorithm", s.algorithm, "steps", t.Len())
	return nil
}

// armLocked replaces any armed timer with one firing after the current
// interval.
func (s *Session) armLocked() {
	s.cancelLocked()
	gen := s.gen
	s.timer = s.sched.AfterFunc(Interval(s.speed), func() { s.tick(gen) })
}

func (s *Session) cancelLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.gen++
}

func (s *Session) resetLocked() {
	s.cancelLocked()
	s.trace = nil
	s.index = 0
	s.input.Restore()
	s.state = Idle
}

func (s *Session) snapshotLocked() Snapshot {
	snap := Snapshot{
		State:     s.state,
		Index:     s.index,
		Speed:     s.speed,
		Algorithm: s.algorithm,
	}
	if s.trace == nil {
		snap.Step = trace.Step{Elements: s.input.Working()}
		return snap
	}
	snap.HasTrace = true
	snap.Len = s.trace.Len()
	snap.Step = s.trace.At(s.index)
	return snap
}
