package config

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

type Manifest struct {
	Days []DayConfig `yaml:"days"`
}

type DayConfig struct {
	Day   int    `yaml:"day"`
	Title string `yaml:"title"`
	Parts []int  `yaml:"parts"`
}

func LoadManifest() (*Manifest, error) {

	path := os.Getenv("AOC_DAYS_CONFIG_PATH")
	if path == "" {
		path = "configs/days.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return ParseManifest(data)
}

func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse days manifest: %w", err)
	}

	applyDefaults(&m)

	if err := m.Validate(); err != nil {
		return nil, err
	}

	return &m, nil
}

func applyDefaults(m *Manifest) {
	for i := range m.Days {
		if len(m.Days[i].Parts) == 0 {
			m.Days[i].Parts = []int{1, 2}
		}
	}
}

func (m *Manifest) Validate() error {
	seen := make(map[int]bool)
	for _, d := range m.Days {
		if d.Day < 1 || d.Day > 25 {
			return fmt.Errorf("invalid day number: %d", d.Day)
		}
		if seen[d.Day] {
			return fmt.Errorf("duplicate day: %d", d.Day)
		}
		seen[d.Day] = true

		if d.Title == "" {
			return fmt.Errorf("day %d is missing a title", d.Day)
		}
		for _, p := range d.Parts {
			if p != 1 && p != 2 {
				return fmt.Errorf("day %d has invalid part: %d", d.Day, p)
			}
		}
	}

	return nil
}

func (m *Manifest) Lookup(day int) (DayConfig, bool) {
	for _, d := range m.Days {
		if d.Day == day {
			return d, true
		}
	}

	return DayConfig{}, false
}
