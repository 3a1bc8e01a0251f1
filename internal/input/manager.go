// Package input owns the working array of a playback session and the frozen
// original it is reset to.
package input

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"sync"

	"github.com/san-kum/algoviz/internal/trace"
)

const (
	MinSize     = 5
	MaxSize     = 50
	DefaultSize = 20

	// generated values fall in [minValue, minValue+valueSpan)
	minValue  = 10
	valueSpan = 300
)

// ClampSize maps size into [MinSize, MaxSize].
func ClampSize(size int) int {
	if size < MinSize {
		return MinSize
	}
	if size > MaxSize {
		return MaxSize
	}
	return size
}

// Manager holds the working array and the original snapshot.
type Manager struct {
	mu       sync.Mutex
	rng      *rand.Rand
	working  []trace.Element
	original []trace.Element
}

// NewManager returns a manager seeded with seed and an initial random array
// of DefaultSize elements.
func NewManager(seed int64) *Manager {
	m := &Manager{rng: rand.New(rand.NewSource(seed))}
	m.Generate(DefaultSize)
	return m
}

// FromValues returns a manager whose array is values, ids by position.
func FromValues(values []int, seed int64) *Manager {
	m := &Manager{rng: rand.New(rand.NewSource(seed))}
	m.replace(values)
	return m
}

// Generate replaces both arrays with size random values. size is clamped.
func (m *Manager) Generate(size int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	size = ClampSize(size)
	values := make([]int, size)
	for i := range values {
		values[i] = m.rng.Intn(valueSpan) + minValue
	}
	m.replaceLocked(values)
}

// ApplyCustom parses comma-separated integers, silently dropping tokens that
// do not parse. It reports whether the array was replaced; an input with no
// usable token leaves the current array untouched.
func (m *Manager) ApplyCustom(text string) bool {
	values := ParseList(text)
	if len(values) == 0 {
		return false
	}
	m.replace(values)
	return true
}

// ParseList splits text on commas and keeps every token with a leading
// integer, so "3.5" yields 3 and "12abc" yields 12.
func ParseList(text string) []int {
	var values []int
	for _, tok := range strings.Split(text, ",") {
		if v, ok := ParseInt(tok); ok {
			values = append(values, v)
		}
	}
	return values
}

// ParseInt reads the optionally signed decimal integer at the start of text,
// after leading whitespace. It reports false when there are no digits or the
// value overflows int.
func ParseInt(text string) (int, bool) {
	s := strings.TrimLeft(text, " \t\n\r")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	v, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseJSON decodes a strict JSON array of integers, e.g. "[64, 34, 25]".
// Anything else is a contract violation reported as trace.ErrInvalidInput.
func ParseJSON(payload []byte) ([]int, error) {
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()

	var raw []any
	if err := dec.Decode(&raw); err != nil {
		return nil, trace.Invalid(fmt.Sprintf("expected a JSON array of integers: %v", err))
	}
	if raw == nil {
		return nil, trace.Invalid("expected a JSON array of integers, got null")
	}

	values := make([]int, len(raw))
	for i, item := range raw {
		num, ok := item.(json.Number)
		if !ok {
			return nil, trace.Invalid(fmt.Sprintf("element %d is not a number: %v", i, item))
		}
		v, err := strconv.Atoi(num.String())
		if err != nil {
			return nil, trace.Invalid(fmt.Sprintf("element %d is not an integer: %s", i, num))
		}
		values[i] = v
	}
	return values, nil
}

func (m *Manager) replace(values []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.replaceLocked(values)
}

func (m *Manager) replaceLocked(values []int) {
	m.original = trace.Elements(values)
	m.working = trace.Elements(values)
}

// Restore copies the original snapshot back into the working array.
func (m *Manager) Restore() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.working = cloneElements(m.original)
}

func (m *Manager) Working() []trace.Element {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneElements(m.working)
}

func (m *Manager) Original() []trace.Element {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneElements(m.original)
}

// Values returns the plain values of the working array.
func (m *Manager) Values() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]int, len(m.working))
	for i, e := range m.working {
		out[i] = e.Value
	}
	return out
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.working)
}

func cloneElements(els []trace.Element) []trace.Element {
	c := make([]trace.Element, len(els))
	copy(c, els)
	return c
}
