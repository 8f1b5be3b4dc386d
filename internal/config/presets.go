package config

import "sort"

var Presets = map[string]*Config{
	"scenario": {
		Element: "int", Capacity: 4,
		Ops: []string{
			"add 10", "add 20", "add 30", "add 40", "add 50",
			"insert 2 99", "remove 30", "trim",
		},
	},
	"from-zero": {
		Element: "int", Capacity: 0,
		Ops: []string{
			"add 1", "add 2", "add 3", "add 4", "add 5", "add 6", "add 7", "add 8", "add 9",
		},
	},
	"duplicates": {
		Element: "string", Capacity: 4,
		Ops: []string{"add a", "add x", "add b", "add x", "remove x", "show"},
	},
	"round-trip": {
		Element: "int", Capacity: 4,
		Ops: []string{"add 1", "add 2", "add 3", "insert 1 42", "removeat 1", "show"},
	},
	"errors": {
		Element: "option", Capacity: 2,
		Ops: []string{
			"pop", "get 0", "add none", "add 1", "insert 3 2", "set 1 5", "remove none", "removeat 1", "pop", "pop",
		},
	},
	"drain": {
		Element: "int", Capacity: 4,
		Ops: []string{"add 1", "add 2", "add 3", "add 4", "add 5", "pop", "pop", "clear", "add 1", "get 0", "trim"},
	},
}

// GetPreset returns a copy of the named preset with defaults filled in,
// or nil if it does not exist.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := p.Clone()
	def := DefaultConfig()
	cfg.Theme = def.Theme
	cfg.Graph = def.Graph
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
