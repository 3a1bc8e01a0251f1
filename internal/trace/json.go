package trace

import (
	"encoding/json"
	"fmt"
)

func (f Flag) MarshalJSON() ([]byte, error) {
	names := f.Names()
	if names == nil {
		names = []string{}
	}
	return json.Marshal(names)
}

func (f *Flag) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}
	var out Flag
	for _, n := range names {
		flag, ok := ParseFlag(n)
		if !ok {
			return fmt.Errorf("trace: unknown flag %q", n)
		}
		out = out.With(flag)
	}
	*f = out
	return nil
}

// ParseFlag resolves a single flag name.
func ParseFlag(name string) (Flag, bool) {
	for _, fn := range flagNames {
		if fn.name == name {
			return fn.flag, true
		}
	}
	return None, false
}

type wireTrace struct {
	Algorithm string `json:"algorithm"`
	Target    *int   `json:"target,omitempty"`
	Steps     []Step `json:"steps"`
}

func (t *Trace) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireTrace{Algorithm: t.algorithm, Target: t.target, Steps: t.steps})
}

func (t *Trace) UnmarshalJSON(data []byte) error {
	var w wireTrace
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if len(w.Steps) == 0 {
		return ErrEmptyTrace
	}
	t.algorithm, t.target, t.steps = w.Algorithm, w.Target, w.Steps
	return nil
}
