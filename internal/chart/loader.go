package chart

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// LoadChart loads a chart from a YAML file.
func LoadChart(path string) (*Chart, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read chart %s: %w", path, err)
	}

	var c Chart
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse chart %s: %w", path, err)
	}

	normalize(&c)
	return &c, nil
}

// normalize sorts notes by time, fills PreviousNoteIndex back-links, and
// computes the chart's duration.
func normalize(c *Chart) {
	sort.Slice(c.Notes, func(i, j int) bool {
		return c.Notes[i].Time < c.Notes[j].Time
	})

	prev := -1
	for i := range c.Notes {
		c.Notes[i].PreviousNoteIndex = prev
		prev = i
	}

	if c.Resolution == 0 {
		c.Resolution = 192
	}

	c.CalculateDuration()
}

// LoadChartsFromDirectory loads every .yaml/.yml file in dir, skipping
// files that fail to load or parse; their errors are not returned.
func LoadChartsFromDirectory(dir string) ([]*Chart, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read chart directory %s: %w", dir, err)
	}

	var charts []*Chart
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		c, err := LoadChart(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		charts = append(charts, c)
	}

	sort.Slice(charts, func(i, j int) bool {
		return charts[i].Title < charts[j].Title
	})
	return charts, nil
}
