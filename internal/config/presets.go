package config

import "sort"

func target(v int) *int { return &v }

var Presets = map[string]map[string]*Config{
	"bubble": {
		"textbook": {
			Algorithm: "bubble", Speed: 40, ArraySize: 5,
			CustomInput: "64, 34, 25, 12, 22",
		},
		"reversed": {
			Algorithm: "bubble", Speed: 70, ArraySize: 8,
			CustomInput: "80, 70, 60, 50, 40, 30, 20, 10",
		},
		"sorted": {
			Algorithm: "bubble", Speed: 70, ArraySize: 8,
			CustomInput: "10, 20, 30, 40, 50, 60, 70, 80",
		},
	},
	"quick": {
		"best": {
			Algorithm: "quick", Speed: 50, ArraySize: 7,
			CustomInput: "3, 6, 8, 10, 1, 2, 1",
		},
		"worst": {
			Algorithm: "quick", Speed: 50, ArraySize: 7,
			CustomInput: "1, 2, 3, 4, 5, 6, 7",
		},
	},
	"merge": {
		"textbook": {
			Algorithm: "merge", Speed: 50, ArraySize: 8,
			CustomInput: "38, 27, 43, 3, 9, 82, 10, 19",
		},
	},
	"selection": {
		"textbook": {
			Algorithm: "selection", Speed: 50, ArraySize: 5,
			CustomInput: "64, 25, 12, 22, 11",
		},
	},
	"insertion": {
		"textbook": {
			Algorithm: "insertion", Speed: 50, ArraySize: 6,
			CustomInput: "12, 11, 13, 5, 6, 7",
		},
	},
	"linear": {
		"found": {
			Algorithm: "linear", Speed: 40, ArraySize: 5,
			CustomInput: "5, 3, 8, 1", SearchTarget: target(8),
		},
		"missing": {
			Algorithm: "linear", Speed: 40, ArraySize: 5,
			CustomInput: "5, 3, 8, 1", SearchTarget: target(7),
		},
	},
	"binary": {
		"odd": {
			Algorithm: "binary", Speed: 30, ArraySize: 16,
			CustomInput:  "1, 3, 5, 7, 9, 11, 13, 15, 17, 19, 21, 23, 25, 27, 29, 31",
			SearchTarget: target(15),
		},
		"missing": {
			Algorithm: "binary", Speed: 30, ArraySize: 16,
			CustomInput:  "1, 3, 5, 7, 9, 11, 13, 15, 17, 19, 21, 23, 25, 27, 29, 31",
			SearchTarget: target(16),
		},
	},
}

// GetPreset returns a copy of the named preset with defaults filled in, or
// nil when either name is unknown.
func GetPreset(algorithm, preset string) *Config {
	algoPresets, ok := Presets[algorithm]
	if !ok {
		return nil
	}
	p, ok := algoPresets[preset]
	if !ok {
		return nil
	}
	cfg := *p
	if p.SearchTarget != nil {
		cfg.SearchTarget = target(*p.SearchTarget)
	}
	cfg.Normalize()
	return &cfg
}

// ListPresets returns the preset names of algorithm in sorted order.
func ListPresets(algorithm string) []string {
	algoPresets, ok := Presets[algorithm]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(algoPresets))
	for name := range algoPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default returns the preset used when a run is given no data: "textbook"
// for bubble, "odd" for binary, "found" for linear. Other algorithms have
// none.
func Default(algorithm string) *Config {
	switch algorithm {
	case "bubble":
		return GetPreset(algorithm, "textbook")
	case "binary":
		return GetPreset(algorithm, "odd")
	case "linear":
		return GetPreset(algorithm, "found")
	}
	return nil
}
