package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config is the configuration data as present in a config file at
// '${PLANLAYOUT_HOME}/config.yaml'.
type Config struct {
	Timezone string    `yaml:"timezone"`
	Layout   Layout    `yaml:"layout"`
	Dayparts []Daypart `yaml:"dayparts"`

	// KindColors are the default colors of events by kind (e.g., "task").
	KindColors map[string]string `yaml:"kind-colors"`
}

// Layout holds the layout engine parameters.
type Layout struct {
	VisibleRange     VisibleRange `yaml:"visible-range"`
	SlotInterval     string       `yaml:"slot-interval"`
	SlotHeight       float64      `yaml:"slot-height"`
	HourBlockHeight  float64      `yaml:"hour-block-height"`
	MultiDayTieBreak string       `yaml:"multi-day-tie-break"`
}

// VisibleRange is the default hour window of a day.
// The fields are pointers so that an explicit 0 can be told apart from an
// omitted value.
type VisibleRange struct {
	From *int `yaml:"from,omitempty"`
	To   *int `yaml:"to,omitempty"`
}

// A Daypart maps a named part of the day to a time window.
//
// Start and End are in the "HH:MM" format.
type Daypart struct {
	Name  string `yaml:"name"`
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

// The supported values for Layout.MultiDayTieBreak.
const (
	TieBreakLongerSpanFirst = "longer-span-first"
	TieBreakInputOrder      = "input-order"
)

// ParseConfigAugmentDefaults parses the configuration specified in
// YAML-formatted data and uses it to augment the default configuration.
func ParseConfigAugmentDefaults(yamlData []byte) (Config, error) {
	defaultConfig := Default()

	parsedConfig := Config{}
	err := yaml.Unmarshal(yamlData, &parsedConfig)
	if err != nil {
		return defaultConfig, fmt.Errorf("error unmarshaling yaml (%w)", err)
	}

	return defaultConfig.augmentWith(parsedConfig), nil
}

func (base Config) augmentWith(augment Config) Config {
	result := base

	if augment.Timezone != "" {
		result.Timezone = augment.Timezone
	}
	result.Layout = base.Layout.augmentWith(augment.Layout)
	if len(augment.Dayparts) > 0 {
		result.Dayparts = augment.Dayparts
	}
	result.KindColors = make(map[string]string, len(base.KindColors)+len(augment.KindColors))
	for kind, color := range base.KindColors {
		result.KindColors[kind] = color
	}
	for kind, color := range augment.KindColors {
		result.KindColors[kind] = color
	}

	return result
}

func (base Layout) augmentWith(augment Layout) Layout {
	result := base

	if augment.VisibleRange.From != nil {
		result.VisibleRange.From = augment.VisibleRange.From
	}
	if augment.VisibleRange.To != nil {
		result.VisibleRange.To = augment.VisibleRange.To
	}
	if augment.SlotInterval != "" {
		result.SlotInterval = augment.SlotInterval
	}
	if augment.SlotHeight != 0 {
		result.SlotHeight = augment.SlotHeight
	}
	if augment.HourBlockHeight != 0 {
		result.HourBlockHeight = augment.HourBlockHeight
	}
	if augment.MultiDayTieBreak != "" {
		result.MultiDayTieBreak = augment.MultiDayTieBreak
	}

	return result
}
