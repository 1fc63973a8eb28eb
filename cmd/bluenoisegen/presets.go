package main

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed presets.yaml
var defaultPresetsYAML []byte

// preset is one named parameter bundle. Fields are pointers so a preset can
// set only some parameters and leave the rest at their flag defaults.
type preset struct {
	Sigma   *float64 `yaml:"sigma"`
	Epsilon *float64 `yaml:"epsilon"`
	Init    *int     `yaml:"init"`
	Bits    *int     `yaml:"bits"`
	Layers  *int     `yaml:"layers"`
}

type presetFile struct {
	Presets map[string]preset `yaml:"presets"`
}

// loadPreset resolves a named preset from the built-in table, optionally
// overlaid with a user preset file.
func loadPreset(path, name string) (preset, error) {
	var pf presetFile
	if err := yaml.Unmarshal(defaultPresetsYAML, &pf); err != nil {
		return preset{}, fmt.Errorf("built-in presets: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return preset{}, err
		}
		var user presetFile
		if err := yaml.Unmarshal(data, &user); err != nil {
			return preset{}, fmt.Errorf("%s: %w", path, err)
		}
		for k, v := range user.Presets {
			pf.Presets[k] = v
		}
	}

	p, ok := pf.Presets[name]
	if !ok {
		names := make([]string, 0, len(pf.Presets))
		for k := range pf.Presets {
			names = append(names, k)
		}
		sort.Strings(names)
		return preset{}, fmt.Errorf("unknown preset %q (have: %s)", name, strings.Join(names, ", "))
	}
	return p, nil
}
