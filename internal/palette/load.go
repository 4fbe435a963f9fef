package palette

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// paletteFile is the on-disk form of a palette override. Ramps and
// absolutes that are left out inherit from the base table.
type paletteFile struct {
	Black string              `yaml:"black"`
	White string              `yaml:"white"`
	Ramps map[string][]string `yaml:"ramps"`
}

// LoadFile reads a YAML palette override and applies it over base.
func LoadFile(path string, base Table) (Table, error) {
	if strings.TrimSpace(path) == "" {
		return Table{}, fmt.Errorf("palette path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("read palette %s: %w", path, err)
	}

	table, err := Parse(data, base)
	if err != nil {
		return Table{}, fmt.Errorf("parse palette %s: %w", path, err)
	}
	return table, nil
}

// Parse decodes a YAML palette override and applies it over base. Unknown
// keys and ramp names are rejected; every ramp must have RampSize entries.
func Parse(data []byte, base Table) (Table, error) {
	var file paletteFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return Table{}, err
	}

	table := base
	if v := strings.TrimSpace(file.Black); v != "" {
		table.Black = v
	}
	if v := strings.TrimSpace(file.White); v != "" {
		table.White = v
	}

	names := make([]string, 0, len(file.Ramps))
	for name := range file.Ramps {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		steps := file.Ramps[name]
		p := table.rampPtr(strings.ToLower(strings.TrimSpace(name)))
		if p == nil {
			return Table{}, fmt.Errorf("unknown ramp %q (want one of %s)", name, strings.Join(RampNames, ", "))
		}
		if len(steps) != RampSize {
			return Table{}, fmt.Errorf("ramp %q: want %d colors, got %d", name, RampSize, len(steps))
		}
		var ramp Ramp
		for i, step := range steps {
			ramp[i] = strings.TrimSpace(step)
		}
		*p = ramp
	}

	if err := table.Validate(); err != nil {
		return Table{}, err
	}
	return table, nil
}

// Marshal encodes t in the palette file format.
func Marshal(t Table) ([]byte, error) {
	file := paletteFile{
		Black: t.Black,
		White: t.White,
		Ramps: make(map[string][]string, len(RampNames)),
	}
	for _, name := range RampNames {
		ramp, _ := t.Ramp(name)
		file.Ramps[name] = append([]string(nil), ramp[:]...)
	}
	return yaml.Marshal(file)
}
